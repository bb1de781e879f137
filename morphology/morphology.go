package morphology

import "io"

//go:generate mockgen -source=morphology.go -destination=mock_morphology/mock_morphology.go -package=mock_morphology

// Tokenizer is the external morphological analyzer. Analyze returns the
// tokens of text in emission order, decompounded according to the mode the
// tokenizer was opened with.
type Tokenizer interface {
	Analyze(field, text string) ([]Token, error)
}

// Backend opens tokenizers over one tag vocabulary.
type Backend interface {
	Catalog() Catalog
	Open(Options) (Tokenizer, error)
}

type Options struct {
	UserDictionary io.Reader // nil: no user dictionary
	DecompoundMode DecompoundMode
	Exclude        TagSet // tags the tokenizer may drop early
}

type Token struct {
	Surface string
	Tag     Tag
	Reading string // set only when the reading differs from the surface (한자 → 한글)
}

func NewToken(surface string, tag Tag) Token {
	return Token{
		Surface: surface,
		Tag:     tag,
	}
}
