package nori

import (
	"os"

	"github.com/twosom/logstash-filter-nori/morphology"
)

type AnalyzerConfig struct {
	UserDictionaryPath string // empty: no user dictionary
	DecompoundMode     morphology.DecompoundMode
	Exclude            morphology.TagSet
}

// Analyzer is a tokenizer followed by token filters. It is read-only once
// built and may be shared by concurrent Filter calls.
type Analyzer struct {
	tokenizer    Tokenizer
	tokenFilters []TokenFilter
}

func NewAnalyzer(backend morphology.Backend, cfg AnalyzerConfig) (*Analyzer, error) {
	opts := morphology.Options{
		DecompoundMode: cfg.DecompoundMode,
		Exclude:        cfg.Exclude,
	}
	if cfg.UserDictionaryPath != "" {
		f, err := os.Open(cfg.UserDictionaryPath)
		if err != nil {
			return nil, &ConfigError{Setting: SettingUserDictionaryPath, Err: err}
		}
		defer f.Close()
		opts.UserDictionary = f
	}

	t, err := backend.Open(opts)
	if err != nil {
		if cfg.UserDictionaryPath != "" {
			return nil, &ConfigError{Setting: SettingUserDictionaryPath, Err: err}
		}
		return nil, err
	}

	return &Analyzer{
		tokenizer:    NewMorphologicalTokenizer(t),
		tokenFilters: []TokenFilter{
			NewPartOfSpeechFilter(cfg.Exclude),
			NewReadingFormFilter(),
			NewLowercaseFilter(),
		},
	}, nil
}

func (a *Analyzer) Analyze(field, text string) ([]string, error) {
	tokenStream, err := a.tokenizer.Tokenize(field, text)
	if err != nil {
		return nil, err
	}
	for _, f := range a.tokenFilters {
		tokenStream = f.Filter(tokenStream)
	}
	return tokenStream.Terms(), nil
}

func (a *Analyzer) Close() error {
	if c, ok := a.tokenizer.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}
