package morphology

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownDecompoundMode = errors.New("unknown decompound mode")

// DecompoundMode controls how compound tokens are emitted.
type DecompoundMode int

const (
	// DecompoundNone emits the compound only.
	DecompoundNone DecompoundMode = iota
	// DecompoundDiscard emits the constituents only.
	DecompoundDiscard
	// DecompoundMixed emits the compound followed by its constituents.
	DecompoundMixed
)

func (m DecompoundMode) String() string {
	switch m {
	case DecompoundNone:
		return "none"
	case DecompoundDiscard:
		return "discard"
	case DecompoundMixed:
		return "mixed"
	}
	return fmt.Sprintf("DecompoundMode(%d)", int(m))
}

// ParseDecompoundMode parses none, discard or mixed in any letter case.
// An empty string means none.
func ParseDecompoundMode(s string) (DecompoundMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return DecompoundNone, nil
	case "discard":
		return DecompoundDiscard, nil
	case "mixed":
		return DecompoundMixed, nil
	}
	return DecompoundNone, fmt.Errorf("%w: %q (want one of none, discard, mixed)", ErrUnknownDecompoundMode, s)
}

// AppendDecompounded appends compound to dst as mode dictates. parts with
// fewer than two tokens mean compound is not a compound.
func AppendDecompounded(dst []Token, mode DecompoundMode, compound Token, parts []Token) []Token {
	if mode == DecompoundNone || len(parts) < 2 {
		return append(dst, compound)
	}
	if mode == DecompoundMixed {
		dst = append(dst, compound)
	}
	return append(dst, parts...)
}
