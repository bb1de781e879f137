package nori

// Event is a structured record owned by the host pipeline.
type Event interface {
	GetField(name string) interface{} // nil when absent
	SetField(name string, value interface{})
	Tag(tag string)
}

type ValueKind int

const (
	Absent ValueKind = iota
	Text
	Other
)

// FieldValue is a field read resolved once into one of its three shapes.
type FieldValue struct {
	Kind ValueKind
	Text string
	Raw  interface{}
}

func ReadField(e Event, name string) FieldValue {
	v := e.GetField(name)
	switch s := v.(type) {
	case nil:
		return FieldValue{Kind: Absent}
	case string:
		return FieldValue{Kind: Text, Text: s, Raw: v}
	}
	return FieldValue{Kind: Other, Raw: v}
}

const TagsField = "tags"

// MapEvent is a map backed Event.
type MapEvent struct {
	fields map[string]interface{}
}

func NewEvent(fields map[string]interface{}) *MapEvent {
	m := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		m[k] = v
	}
	return &MapEvent{fields: m}
}

func (e *MapEvent) GetField(name string) interface{} {
	return e.fields[name]
}

func (e *MapEvent) SetField(name string, value interface{}) {
	e.fields[name] = value
}

// Tag appends tag to the tags field unless it is already there.
func (e *MapEvent) Tag(tag string) {
	tags := e.Tags()
	for _, t := range tags {
		if t == tag {
			return
		}
	}
	e.fields[TagsField] = append(tags, tag)
}

// Tags returns the tags field, or nil if the event has none.
func (e *MapEvent) Tags() []string {
	switch ts := e.fields[TagsField].(type) {
	case []string:
		return ts
	case []interface{}:
		r := make([]string, 0, len(ts))
		for _, t := range ts {
			if s, ok := t.(string); ok {
				r = append(r, s)
			}
		}
		return r
	case string:
		return []string{ts}
	}
	return nil
}

func (e *MapEvent) Fields() map[string]interface{} {
	return e.fields
}
