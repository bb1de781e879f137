package morphology

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownTag = errors.New("unknown part-of-speech tag")

// Tag is a part-of-speech identifier produced by a tokenizer.
type Tag string

type TagSet map[Tag]struct{}

func NewTagSet(tags ...Tag) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s[t] = struct{}{}
	}
	return s
}

func (s TagSet) Contains(t Tag) bool {
	_, ok := s[t]
	return ok
}

func (s TagSet) Len() int {
	return len(s)
}

func (s TagSet) Clone() TagSet {
	c := make(TagSet, len(s))
	for t := range s {
		c[t] = struct{}{}
	}
	return c
}

// Difference returns the tags of s that are not in o.
func (s TagSet) Difference(o TagSet) TagSet {
	d := make(TagSet, len(s))
	for t := range s {
		if !o.Contains(t) {
			d[t] = struct{}{}
		}
	}
	return d
}

// Names returns the tag names in ascending order.
func (s TagSet) Names() []string {
	names := make([]string, 0, len(s))
	for t := range s {
		names = append(names, string(t))
	}
	sort.Strings(names)
	return names
}

// Catalog is the closed vocabulary of tags a tokenizer can emit.
type Catalog interface {
	Tags() TagSet
	Resolve(name string) (Tag, error)
}

type catalog struct {
	tags TagSet
}

// NewCatalog returns a catalog resolving names by exact match.
func NewCatalog(tags ...Tag) Catalog {
	return catalog{tags: NewTagSet(tags...)}
}

func (c catalog) Tags() TagSet {
	return c.tags.Clone()
}

func (c catalog) Resolve(name string) (Tag, error) {
	t := Tag(name)
	if !c.tags.Contains(t) {
		return "", fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return t, nil
}
