package chimera

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidMode indicates the mode token is not encode/e or decode/d.
	ErrInvalidMode = errors.New("invalid mode")

	// ErrMissingPattern indicates no pattern token was supplied.
	ErrMissingPattern = errors.New("missing pattern")

	// ErrMissingText indicates no text was supplied.
	ErrMissingText = errors.New("missing text")

	// ErrEmptyPattern indicates the pattern has no selectors after sanitization.
	ErrEmptyPattern = errors.New("empty pattern")

	// ErrEmptyText indicates the text has no alphabet symbols after sanitization.
	ErrEmptyText = errors.New("empty text")

	// ErrEmptyAlphabet indicates an alphabet was built from no symbols.
	ErrEmptyAlphabet = errors.New("empty alphabet")

	// ErrInvalidTag indicates a struct tag holds an unusable pattern.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrEncode indicates encoding of a field failed.
	ErrEncode = errors.New("encode failed")

	// ErrDecode indicates decoding of a field failed.
	ErrDecode = errors.New("decode failed")
)

// inputMessages holds the user-facing explanation for each validation failure.
var inputMessages = map[error]string{
	ErrInvalidMode:    `first argument must be "encode/e" or "decode/d"`,
	ErrMissingPattern: "second argument must be the pattern string",
	ErrMissingText:    "third argument must be the text to encode/decode",
	ErrEmptyPattern:   "pattern must contain at least one alphanumeric character",
	ErrEmptyText:      "text must contain at least one character from the alphabet",
}

// InputError represents a rejected mode, pattern or text.
// It wraps a sentinel error with the raw input that failed validation.
type InputError struct {
	Err   error  // Underlying sentinel error (ErrInvalidMode, ErrEmptyText, etc.)
	Input string // Raw input as received
}

func (e *InputError) Error() string {
	msg, ok := inputMessages[e.Err]
	if !ok {
		msg = e.Err.Error()
	}
	if e.Input != "" {
		return fmt.Sprintf("%s (got %q)", msg, e.Input)
	}
	return msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// TransformError represents an error while encoding or decoding a field.
// It wraps a sentinel error with context about which field and operation failed.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrEncode, ErrDecode)
	Field     string // Field name that failed
	Operation string // Operation that failed (encode, decode)
	Cause     error  // Original error from the engine
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newInputError creates an InputError for a rejected argument.
func newInputError(sentinel error, input string) error {
	return &InputError{
		Err:   sentinel,
		Input: input,
	}
}

// newTransformError creates a TransformError for field transformation failures.
func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
