package chimera

import (
	"strings"
	"unicode"
)

// DefaultSymbols is the alphabet used when none is configured.
const DefaultSymbols = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Alphabet is an ordered set of unique upper-case symbols.
// Symbol order defines all index arithmetic; an Alphabet never changes after
// construction and is safe to share.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

// NewAlphabet normalizes symbols into an Alphabet.
// Symbols are upper-cased and deduplicated in first-seen order. Punctuation,
// whitespace and non-ASCII runes are kept as given.
func NewAlphabet(symbols string) (*Alphabet, error) {
	upper := strings.ToUpper(symbols)

	a := &Alphabet{
		symbols: make([]rune, 0, len(upper)),
		index:   make(map[rune]int, len(upper)),
	}
	for _, r := range upper {
		if _, seen := a.index[r]; seen {
			continue
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}

	if len(a.symbols) == 0 {
		return nil, ErrEmptyAlphabet
	}
	return a, nil
}

// DefaultAlphabet returns the alphanumeric upper-case alphabet.
func DefaultAlphabet() *Alphabet {
	a, err := NewAlphabet(DefaultSymbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the number of symbols.
func (a *Alphabet) Size() int {
	return len(a.symbols)
}

// Symbols returns the normalized symbol string.
func (a *Alphabet) Symbols() string {
	return string(a.symbols)
}

// Contains reports whether r (case-folded) is a member.
func (a *Alphabet) Contains(r rune) bool {
	return a.Index(r) >= 0
}

// Index returns the position of r (case-folded), or -1 if r is not a member.
func (a *Alphabet) Index(r rune) int {
	if i, ok := a.index[unicode.ToUpper(r)]; ok {
		return i
	}
	return -1
}

// Char returns the symbol at position i modulo Size.
// Negative positions wrap, so Char(-1) is the last symbol.
func (a *Alphabet) Char(i int) rune {
	n := len(a.symbols)
	return a.symbols[((i%n)+n)%n]
}

// Filter upper-cases raw and drops every rune that is not a member.
func (a *Alphabet) Filter(raw string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(raw) {
		if _, ok := a.index[r]; ok {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Sanitize filters raw down to alphabet members.
// The filter is lossy: anything outside the alphabet, including whitespace,
// is discarded and cannot be recovered by decoding. Returns ErrEmptyText when
// nothing survives.
func (a *Alphabet) Sanitize(raw string) (string, error) {
	text := a.Filter(raw)
	if text == "" {
		return "", newInputError(ErrEmptyText, raw)
	}
	return text, nil
}
