package morphology

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UserDictionary holds user entries in the Korean analyzer's text format:
//
//	# comment
//	일며들다
//	세종시 세종 시
//
// one word per line, optionally followed by its segmentation. The segments
// must spell the word.
type UserDictionary struct {
	entries map[string][]string
	maxLen  int
}

func ParseUserDictionary(r io.Reader) (*UserDictionary, error) {
	d := &UserDictionary{entries: make(map[string][]string)}
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cols := strings.Fields(line)
		word, segs := cols[0], cols[1:]
		if len(segs) > 0 && strings.Join(segs, "") != word {
			return nil, fmt.Errorf("illegal user dictionary entry at line %d: %q does not spell %q", n, strings.Join(segs, " "), word)
		}
		d.entries[word] = segs
		if len(word) > d.maxLen {
			d.maxLen = len(word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read user dictionary: %w", err)
	}
	return d, nil
}

func (d *UserDictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// Lookup returns the segmentation of word, empty for a single morpheme.
func (d *UserDictionary) Lookup(word string) ([]string, bool) {
	if d == nil {
		return nil, false
	}
	segs, ok := d.entries[word]
	return segs, ok
}

// LongestPrefix returns the longest entry that s starts with.
func (d *UserDictionary) LongestPrefix(s string) (string, []string, bool) {
	if d == nil {
		return "", nil, false
	}
	l := d.maxLen
	if l > len(s) {
		l = len(s)
	}
	for ; l > 0; l-- {
		if segs, ok := d.entries[s[:l]]; ok {
			return s[:l], segs, true
		}
	}
	return "", nil, false
}

// userEntry returns word as a 일반 명사 with its segments as the parts.
func userEntry(word string, segs []string) (Token, []Token) {
	parts := make([]Token, len(segs))
	for i, s := range segs {
		parts[i] = NewToken(s, TagNNG)
	}
	return NewToken(word, TagNNG), parts
}
