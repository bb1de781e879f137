package nori

import (
	"github.com/twosom/logstash-filter-nori/morphology"
)

type Tokenizer interface {
	Tokenize(field, text string) (TokenStream, error)
}

type MorphologicalTokenizer struct {
	morphology morphology.Tokenizer
}

func NewMorphologicalTokenizer(morphology morphology.Tokenizer) *MorphologicalTokenizer {
	return &MorphologicalTokenizer{
		morphology: morphology,
	}
}

func (t *MorphologicalTokenizer) Tokenize(field, text string) (TokenStream, error) {
	tokens, err := t.morphology.Analyze(field, text)
	if err != nil {
		return TokenStream{}, &AnalysisError{Field: field, Err: err}
	}
	return NewTokenStream(tokens), nil
}

// Close releases the underlying tokenizer if it holds resources.
func (t *MorphologicalTokenizer) Close() error {
	if c, ok := t.morphology.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
