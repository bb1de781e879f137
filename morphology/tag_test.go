package morphology

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSejongCatalogResolve(t *testing.T) {
	cases := []struct {
		name     string
		expected Tag
	}{
		{name: "NNG", expected: TagNNG},
		{name: "nnp", expected: TagNNP},
		{name: "JKS", expected: TagJ},
		{name: "jx", expected: TagJ},
		{name: "EF", expected: TagE},
		{name: "ETM", expected: TagE},
		{name: "UNKNOWN", expected: TagUNKNOWN},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprintf("name = %v, expected = %v", tt.name, tt.expected), func(t *testing.T) {
			actual, err := SejongCatalog.Resolve(tt.name)
			if err != nil {
				t.Fatal(err)
			}
			if actual != tt.expected {
				t.Errorf("SejongCatalog.Resolve() = %v, want %v", actual, tt.expected)
			}
		})
	}
}

func TestSejongCatalogResolveUnknown(t *testing.T) {
	for _, name := range []string{"NOUN", "", "XX"} {
		_, err := SejongCatalog.Resolve(name)
		if !errors.Is(err, ErrUnknownTag) {
			t.Errorf("SejongCatalog.Resolve(%q) error = %v, want ErrUnknownTag", name, err)
		}
	}
}

func TestCatalogTagsIsCopy(t *testing.T) {
	tags := SejongCatalog.Tags()
	delete(tags, TagNNG)
	if !SejongCatalog.Tags().Contains(TagNNG) {
		t.Error("mutating Tags() result must not change the catalog")
	}
	if got := SejongCatalog.Tags().Len(); got != len(sejongTags) {
		t.Errorf("SejongCatalog.Tags().Len() = %d, want %d", got, len(sejongTags))
	}
}

func TestCatalogResolveExact(t *testing.T) {
	c := NewCatalog("A", "B")
	if _, err := c.Resolve("a"); !errors.Is(err, ErrUnknownTag) {
		t.Errorf("Resolve(a) error = %v, want ErrUnknownTag", err)
	}
	if got, err := c.Resolve("B"); err != nil || got != "B" {
		t.Errorf("Resolve(B) = %v, %v", got, err)
	}
}

func TestTagSetDifference(t *testing.T) {
	all := NewTagSet("A", "B", "C")
	d := all.Difference(NewTagSet("B"))
	if diff := cmp.Diff([]string{"A", "C"}, d.Names()); diff != "" {
		t.Errorf("Diff: (-got +want)\n%s", diff)
	}
	if all.Len() != 3 {
		t.Error("Difference must not mutate the receiver")
	}
}

func TestParseDecompoundMode(t *testing.T) {
	cases := []struct {
		in       string
		expected DecompoundMode
	}{
		{in: "", expected: DecompoundNone},
		{in: "none", expected: DecompoundNone},
		{in: "NONE", expected: DecompoundNone},
		{in: "Discard", expected: DecompoundDiscard},
		{in: " mixed ", expected: DecompoundMixed},
	}
	for _, tt := range cases {
		actual, err := ParseDecompoundMode(tt.in)
		if err != nil {
			t.Fatalf("ParseDecompoundMode(%q): %v", tt.in, err)
		}
		if actual != tt.expected {
			t.Errorf("ParseDecompoundMode(%q) = %v, want %v", tt.in, actual, tt.expected)
		}
	}

	if _, err := ParseDecompoundMode("wrong_decompound_mode"); !errors.Is(err, ErrUnknownDecompoundMode) {
		t.Errorf("ParseDecompoundMode(wrong_decompound_mode) error = %v, want ErrUnknownDecompoundMode", err)
	}
}
