package chimera

import (
	"strings"
)

// Mode selects the pipeline direction.
type Mode string

const (
	// ModeEncode applies forward transforms in pattern order.
	ModeEncode Mode = "encode"

	// ModeDecode applies inverse transforms in reverse pattern order.
	ModeDecode Mode = "decode"
)

// modeAliases maps accepted mode tokens (lower-case) to modes.
var modeAliases = map[string]Mode{
	"encode": ModeEncode,
	"e":      ModeEncode,
	"decode": ModeDecode,
	"d":      ModeDecode,
}

// ParseMode parses a mode token. Matching is case-insensitive.
func ParseMode(raw string) (Mode, error) {
	if m, ok := modeAliases[strings.ToLower(raw)]; ok {
		return m, nil
	}
	return "", newInputError(ErrInvalidMode, raw)
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}
