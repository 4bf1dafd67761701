package chimera

import (
	"regexp"
)

// patternShape splits a token into a lazy selector run and trailing digits.
var patternShape = regexp.MustCompile(`(?i)^([A-Z0-9]*?)(\d*)$`)

// Pattern is a parsed pattern token.
type Pattern struct {
	Raw       string     // Token as supplied
	Selectors []Selector // Selectors in application order, never empty
	Shift     int        // Shift for SelectorShift, in [0, alphabet size)
}

// ParsePattern parses raw against alphabet a.
//
// The token is read as a selector run followed by optional decimal digits:
// "AC10" has selectors "AC" and shift 10 mod a.Size(). Without digits the
// shift is DefaultShift mod a.Size(). Tokens containing anything other
// than ASCII letters and digits are filtered through the alphabet as a
// whole and take the default shift. Selectors are always filtered through
// the alphabet.
func ParsePattern(raw string, a *Alphabet) (Pattern, error) {
	if raw == "" {
		return Pattern{}, newInputError(ErrMissingPattern, "")
	}

	var selectors string
	shift := DefaultShift % a.Size()

	if m := patternShape.FindStringSubmatch(raw); m != nil {
		selectors = a.Filter(m[1])
		if m[2] != "" {
			shift = digitsMod(m[2], a.Size())
		}
	} else {
		selectors = a.Filter(raw)
	}

	if selectors == "" {
		return Pattern{}, newInputError(ErrEmptyPattern, raw)
	}

	p := Pattern{
		Raw:       raw,
		Selectors: make([]Selector, 0, len(selectors)),
		Shift:     shift,
	}
	for _, r := range selectors {
		p.Selectors = append(p.Selectors, Selector(r))
	}
	return p, nil
}

// MustParsePattern is like ParsePattern but panics on error.
func MustParsePattern(raw string, a *Alphabet) Pattern {
	p, err := ParsePattern(raw, a)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the selector sequence.
func (p Pattern) String() string {
	rs := make([]rune, len(p.Selectors))
	for i, s := range p.Selectors {
		rs[i] = rune(s)
	}
	return string(rs)
}

// digitsMod reduces a decimal digit string modulo n without overflowing.
func digitsMod(digits string, n int) int {
	rem := 0
	for _, d := range digits {
		rem = (rem*10 + int(d-'0')) % n
	}
	return rem
}
