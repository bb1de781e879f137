package nori

import (
	"fmt"
	"log/slog"
)

const MorphemeSuffix = "_morpheme"

// MorphemeField is the field the morphemes of field are written to.
func MorphemeField(field string) string {
	return field + MorphemeSuffix
}

// NullValueTag is the diagnostic tag added when field is absent.
func NullValueTag(field string) string {
	return fmt.Sprintf("[%s]'s value is null", field)
}

// Processor annotates one field of one event.
type Processor struct {
	analyzer *Analyzer
	logger   *slog.Logger
}

func NewProcessor(analyzer *Analyzer, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		analyzer: analyzer,
		logger:   logger,
	}
}

// Process writes the morphemes of field to <field>_morpheme. An absent field
// is tagged and skipped; a non-string field is skipped silently.
func (p *Processor) Process(e Event, field string) error {
	v := ReadField(e, field)
	switch v.Kind {
	case Absent:
		e.Tag(NullValueTag(field))
		p.logger.Debug("field is null", "field", field)
		return nil
	case Other:
		p.logger.Debug("field is not a string, skipped", "field", field, "type", fmt.Sprintf("%T", v.Raw))
		return nil
	}

	morphemes, err := p.analyzer.Analyze(field, v.Text)
	if err != nil {
		return err
	}
	e.SetField(MorphemeField(field), morphemes)
	return nil
}
