package chimera

import (
	"context"
)

// Override interfaces allow types to bypass reflection-based processing.
// When a type implements one of these interfaces, the Processor calls the
// interface method instead of walking tagged fields.

// Encodable bypasses reflection when marshaling.
type Encodable interface {
	// EncodeFields encodes the receiver's fields with the engine.
	// The receiver is a clone, so mutations are safe.
	EncodeFields(ctx context.Context, e *Engine) error
}

// Decodable bypasses reflection when unmarshaling.
type Decodable interface {
	// DecodeFields decodes the receiver's fields with the engine.
	// Called on freshly unmarshaled data.
	DecodeFields(ctx context.Context, e *Engine) error
}
