package nori

import "github.com/twosom/logstash-filter-nori/morphology"

type TokenStream struct {
	Tokens []morphology.Token
}

func NewTokenStream(tokens []morphology.Token) TokenStream {
	if tokens == nil {
		tokens = []morphology.Token{}
	}
	return TokenStream{
		Tokens: tokens,
	}
}

func (ts TokenStream) Size() int {
	return len(ts.Tokens)
}

// Terms returns the surface forms in stream order. The result is never nil.
func (ts TokenStream) Terms() []string {
	terms := make([]string, ts.Size())
	for i, t := range ts.Tokens {
		terms[i] = t.Surface
	}
	return terms
}
