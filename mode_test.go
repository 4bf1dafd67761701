package chimera

import (
	"errors"
	"testing"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"encode", ModeEncode},
		{"e", ModeEncode},
		{"ENCODE", ModeEncode},
		{"E", ModeEncode},
		{"decode", ModeDecode},
		{"d", ModeDecode},
		{"Decode", ModeDecode},
		{"D", ModeDecode},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.input)
		if err != nil {
			t.Fatalf("ParseMode(%q) error: %v", tt.input, err)
		}
		if got != tt.expected {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParseMode_Invalid(t *testing.T) {
	for _, input := range []string{"", "x", "enc", "encoded", " e", "de"} {
		if _, err := ParseMode(input); !errors.Is(err, ErrInvalidMode) {
			t.Errorf("ParseMode(%q) error = %v, want ErrInvalidMode", input, err)
		}
	}
}

func TestMode_String(t *testing.T) {
	if ModeEncode.String() != "encode" {
		t.Errorf("ModeEncode.String() = %q, want %q", ModeEncode.String(), "encode")
	}
	if ModeDecode.String() != "decode" {
		t.Errorf("ModeDecode.String() = %q, want %q", ModeDecode.String(), "decode")
	}
}
