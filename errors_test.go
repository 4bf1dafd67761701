package chimera

import (
	"errors"
	"testing"
)

func TestInputError_Is(t *testing.T) {
	err := newInputError(ErrEmptyText, "!!!")

	if !errors.Is(err, ErrEmptyText) {
		t.Error("InputError should unwrap to ErrEmptyText")
	}

	if errors.Is(err, ErrEmptyPattern) {
		t.Error("InputError should not match ErrEmptyPattern")
	}
}

func TestInputError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "invalid mode",
			err:  newInputError(ErrInvalidMode, "x"),
			want: `first argument must be "encode/e" or "decode/d" (got "x")`,
		},
		{
			name: "missing pattern",
			err:  newInputError(ErrMissingPattern, ""),
			want: "second argument must be the pattern string",
		},
		{
			name: "missing text",
			err:  newInputError(ErrMissingText, ""),
			want: "third argument must be the text to encode/decode",
		},
		{
			name: "empty pattern",
			err:  newInputError(ErrEmptyPattern, "5"),
			want: `pattern must contain at least one alphanumeric character (got "5")`,
		},
		{
			name: "empty text",
			err:  newInputError(ErrEmptyText, "?"),
			want: `text must contain at least one character from the alphabet (got "?")`,
		},
		{
			name: "sentinel without message",
			err:  &InputError{Err: ErrEmptyAlphabet},
			want: "empty alphabet",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTransformError_Is(t *testing.T) {
	err := newTransformError(ErrEncode, "encode", "Body", ErrEmptyText)

	if !errors.Is(err, ErrEncode) {
		t.Error("TransformError should unwrap to ErrEncode")
	}

	if errors.Is(err, ErrDecode) {
		t.Error("TransformError should not match ErrDecode")
	}
}

func TestTransformError_Message(t *testing.T) {
	err := newTransformError(ErrDecode, "decode", "Body", errors.New("bad input"))

	want := "decode field Body: bad input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestTransformError_NoCause(t *testing.T) {
	err := &TransformError{Err: ErrEncode, Field: "Body", Operation: "encode"}

	want := "encode field Body"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("unexpected end of JSON input"))

	want := "unmarshal failed: unexpected end of JSON input"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestCodecError_NoCause(t *testing.T) {
	err := &CodecError{Err: ErrMarshal}

	want := "marshal failed"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorsAs_InputError(t *testing.T) {
	_, err := ParsePattern("123", DefaultAlphabet())

	var inputErr *InputError
	if !errors.As(err, &inputErr) {
		t.Fatalf("ParsePattern() error should be *InputError, got %T", err)
	}
	if inputErr.Input != "123" {
		t.Errorf("InputError.Input = %q, want %q", inputErr.Input, "123")
	}
	if inputErr.Unwrap() != ErrEmptyPattern {
		t.Errorf("Unwrap() = %v, want %v", inputErr.Unwrap(), ErrEmptyPattern)
	}
}
