package chimera

import (
	"errors"
	"testing"
)

func TestParsePattern(t *testing.T) {
	a := DefaultAlphabet()

	tests := []struct {
		input     string
		selectors string
		shift     int
	}{
		{"AC10", "AC", 10},
		{"AC", "AC", DefaultShift},
		{"ac10", "AC", 10},
		{"C3", "C", 3},
		{"A40", "A", 4},  // 40 mod 36
		{"A36", "A", 0},  // Wraps to zero
		{"A00", "A", 0},  // Explicit zero
		{"A1B2", "A1B", 2},
		{"a-b10", "AB10", DefaultShift}, // Non-alphanumeric: whole token filtered
		{"A" + "36" + "0000000000000000000000000000", "A", 0},
		{"ZZZ", "ZZZ", DefaultShift},
	}

	for _, tt := range tests {
		p, err := ParsePattern(tt.input, a)
		if err != nil {
			t.Fatalf("ParsePattern(%q) error: %v", tt.input, err)
		}
		if p.String() != tt.selectors {
			t.Errorf("ParsePattern(%q) selectors = %q, want %q", tt.input, p.String(), tt.selectors)
		}
		if p.Shift != tt.shift {
			t.Errorf("ParsePattern(%q) shift = %d, want %d", tt.input, p.Shift, tt.shift)
		}
		if p.Raw != tt.input {
			t.Errorf("ParsePattern(%q) raw = %q", tt.input, p.Raw)
		}
	}
}

func TestParsePattern_ShiftReducedByAlphabet(t *testing.T) {
	a, err := NewAlphabet("abc")
	if err != nil {
		t.Fatalf("NewAlphabet() error: %v", err)
	}

	p, err := ParsePattern("C10", a)
	if err != nil {
		t.Fatalf("ParsePattern() error: %v", err)
	}
	if p.Shift != 1 {
		t.Errorf("ParsePattern(\"C10\") shift = %d, want 1", p.Shift)
	}
}

func TestParsePattern_DefaultShiftReduced(t *testing.T) {
	a, err := NewAlphabet("abc")
	if err != nil {
		t.Fatalf("NewAlphabet() error: %v", err)
	}

	p, err := ParsePattern("C", a)
	if err != nil {
		t.Fatalf("ParsePattern() error: %v", err)
	}
	if p.Shift != DefaultShift%3 {
		t.Errorf("ParsePattern(\"C\") shift = %d, want %d", p.Shift, DefaultShift%3)
	}
}

func TestParsePattern_SelectorsFiltered(t *testing.T) {
	a, err := NewAlphabet("abc")
	if err != nil {
		t.Fatalf("NewAlphabet() error: %v", err)
	}

	p, err := ParsePattern("AXC", a)
	if err != nil {
		t.Fatalf("ParsePattern() error: %v", err)
	}
	if p.String() != "AC" {
		t.Errorf("ParsePattern(\"AXC\") selectors = %q, want %q", p.String(), "AC")
	}
}

func TestParsePattern_Errors(t *testing.T) {
	a := DefaultAlphabet()

	tests := []struct {
		input    string
		expected error
	}{
		{"", ErrMissingPattern},
		{"5", ErrEmptyPattern},
		{"123", ErrEmptyPattern},
		{"!!", ErrEmptyPattern},
		{"-", ErrEmptyPattern},
	}

	for _, tt := range tests {
		_, err := ParsePattern(tt.input, a)
		if !errors.Is(err, tt.expected) {
			t.Errorf("ParsePattern(%q) error = %v, want %v", tt.input, err, tt.expected)
		}
	}
}

func TestMustParsePattern_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParsePattern(\"5\") should panic")
		}
	}()
	MustParsePattern("5", DefaultAlphabet())
}

func TestDigitsMod(t *testing.T) {
	tests := []struct {
		digits   string
		n        int
		expected int
	}{
		{"0", 36, 0},
		{"10", 36, 10},
		{"100", 36, 28},
		{"99999999999999999999", 7, 1},
	}

	for _, tt := range tests {
		if got := digitsMod(tt.digits, tt.n); got != tt.expected {
			t.Errorf("digitsMod(%q, %d) = %d, want %d", tt.digits, tt.n, got, tt.expected)
		}
	}
}
