package nori

import (
	"strings"

	"github.com/twosom/logstash-filter-nori/morphology"
)

type TokenFilter interface {
	Filter(TokenStream) TokenStream
}

// PartOfSpeechFilter drops tokens whose tag is in the stop set.
type PartOfSpeechFilter struct {
	stopTags morphology.TagSet
}

func NewPartOfSpeechFilter(stopTags morphology.TagSet) PartOfSpeechFilter {
	return PartOfSpeechFilter{
		stopTags: stopTags,
	}
}

func (f PartOfSpeechFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]morphology.Token, 0, tokenStream.Size())
	for _, token := range tokenStream.Tokens {
		if !f.stopTags.Contains(token.Tag) {
			r = append(r, token)
		}
	}
	return NewTokenStream(r)
}

// ReadingFormFilter replaces a token by its reading when the analyzer gave
// one, so 漢字 is indexed as 한자.
type ReadingFormFilter struct{}

func NewReadingFormFilter() ReadingFormFilter {
	return ReadingFormFilter{}
}

func (f ReadingFormFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]morphology.Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		if token.Reading != "" {
			token.Surface = token.Reading
			token.Reading = ""
		}
		r[i] = token
	}
	return NewTokenStream(r)
}

type LowercaseFilter struct{}

func NewLowercaseFilter() LowercaseFilter {
	return LowercaseFilter{}
}

func (f LowercaseFilter) Filter(tokenStream TokenStream) TokenStream {
	r := make([]morphology.Token, tokenStream.Size())
	for i, token := range tokenStream.Tokens {
		token.Surface = strings.ToLower(token.Surface)
		r[i] = token
	}
	return NewTokenStream(r)
}
