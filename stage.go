// Package nori annotates pipeline events with the morphemes of their text
// fields. Tokenization is delegated to a morphology.Backend, normally
// morphology.NewMecabKo, which runs mecab with mecab-ko-dic and tags with
// the Sejong tag set. The stage only chooses which tags to keep and where the
// result goes.
package nori

import (
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/twosom/logstash-filter-nori/morphology"
)

//go:generate mockgen -source=stage.go -destination=mock_stage_test.go -package=nori

// MatchListener is notified by Filter after each processed field.
type MatchListener interface {
	FilterMatched(Event)
}

type MatchListenerFunc func(Event)

func (f MatchListenerFunc) FilterMatched(e Event) {
	f(e)
}

type Stage struct {
	id        string
	fields    []string
	analyzer  *Analyzer
	processor *Processor
	logger    *slog.Logger
}

type Option func(*Stage)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Stage) {
		s.logger = logger
	}
}

// WithID overrides the configured id.
func WithID(id string) Option {
	return func(s *Stage) {
		s.id = id
	}
}

// New validates cfg and builds the analyzer shared by every Filter call.
func New(cfg Config, backend morphology.Backend, opts ...Option) (*Stage, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	mode, err := morphology.ParseDecompoundMode(cfg.DecompoundMode)
	if err != nil {
		return nil, &ConfigError{Setting: SettingDecompoundMode, Err: err}
	}

	catalog := backend.Catalog()
	exclude, err := BuildExclusionSet(catalog.Tags(), cfg.ExtractTags, catalog)
	if err != nil {
		return nil, err
	}

	analyzer, err := NewAnalyzer(backend, AnalyzerConfig{
		UserDictionaryPath: cfg.UserDictionaryPath,
		DecompoundMode:     mode,
		Exclude:            exclude,
	})
	if err != nil {
		return nil, err
	}

	s := &Stage{
		id:       cfg.ID,
		fields:   append([]string{}, cfg.Fields...),
		analyzer: analyzer,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.id == "" {
		s.id = ulid.Make().String()
	}
	s.logger = s.logger.With("filter", "nori", "id", s.id)
	s.processor = NewProcessor(analyzer, s.logger)

	s.logger.Info("morpheme filter ready",
		"fields", s.fields,
		"decompound_mode", mode.String(),
		"excluded_tags", exclude.Len(),
		"user_dictionary", cfg.UserDictionaryPath != "",
	)
	return s, nil
}

func (s *Stage) ID() string {
	return s.id
}

func (s *Stage) Fields() []string {
	return append([]string{}, s.fields...)
}

// Filter annotates every configured field of every event, in batch order then
// field order, and notifies listener after each field. Events are mutated in
// place and none are dropped. The first analysis error aborts the call.
func (s *Stage) Filter(events []Event, listener MatchListener) ([]Event, error) {
	for _, e := range events {
		for _, field := range s.fields {
			if err := s.processor.Process(e, field); err != nil {
				s.logger.Error("analysis failed", "field", field, "err", err)
				return nil, err
			}
			if listener != nil {
				listener.FilterMatched(e)
			}
		}
	}
	return events, nil
}

func (s *Stage) Close() error {
	return s.analyzer.Close()
}
