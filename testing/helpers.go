// Package testing provides test utilities for chimera.
package testing

import (
	"context"
	"testing"

	"github.com/zoobzio/chimera"
)

// AllSelectors is a pattern exercising every builtin transform once.
const AllSelectors = "ABCDEHIJS"

// TestEngine returns an engine over the default alphabet.
func TestEngine(tb testing.TB) *chimera.Engine {
	tb.Helper()
	e, err := chimera.NewEngine()
	if err != nil {
		tb.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

// TestEngineWithSymbols returns an engine over the given symbols.
func TestEngineWithSymbols(tb testing.TB, symbols string) *chimera.Engine {
	tb.Helper()
	e, err := chimera.NewEngine(chimera.WithSymbols(symbols))
	if err != nil {
		tb.Fatalf("NewEngine(%q) error: %v", symbols, err)
	}
	return e
}

// AssertRoundTrip encodes then decodes text with pattern and fails unless
// the result equals the sanitized text. Returns the encoded form.
func AssertRoundTrip(tb testing.TB, e *chimera.Engine, pattern, text string) string {
	tb.Helper()

	p, err := e.Parse(pattern)
	if err != nil {
		tb.Fatalf("Parse(%q) error: %v", pattern, err)
	}
	want, err := e.Sanitize(text)
	if err != nil {
		tb.Fatalf("Sanitize(%q) error: %v", text, err)
	}

	ctx := context.Background()
	encoded, err := e.Encode(ctx, p, text)
	if err != nil {
		tb.Fatalf("Encode(%q, %q) error: %v", pattern, text, err)
	}
	decoded, err := e.Decode(ctx, p, encoded)
	if err != nil {
		tb.Fatalf("Decode(%q, %q) error: %v", pattern, encoded, err)
	}
	if decoded != want {
		tb.Errorf("Decode(%q, Encode(%q)) = %q, want %q", pattern, text, decoded, want)
	}
	return encoded
}

// PlainNote is a test type with no chimera tags.
type PlainNote struct {
	ID   string `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Body string `json:"body" yaml:"body" msgpack:"body" bson:"body"`
}

// Clone implements Cloner[PlainNote].
func (n PlainNote) Clone() PlainNote { return n }

// ObfuscatedNote is a test type with tagged string, slice and map fields.
type ObfuscatedNote struct {
	ID     string            `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Body   string            `json:"body" yaml:"body" msgpack:"body" bson:"body" chimera:"AEJ7"`
	Tags   []string          `json:"tags" yaml:"tags" msgpack:"tags" bson:"tags" chimera:"CS"`
	Labels map[string]string `json:"labels" yaml:"labels" msgpack:"labels" bson:"labels" chimera:"HID"`
}

// Clone implements Cloner[ObfuscatedNote].
func (n ObfuscatedNote) Clone() ObfuscatedNote {
	clone := ObfuscatedNote{ID: n.ID, Body: n.Body}
	if n.Tags != nil {
		clone.Tags = make([]string, len(n.Tags))
		copy(clone.Tags, n.Tags)
	}
	if n.Labels != nil {
		clone.Labels = make(map[string]string, len(n.Labels))
		for k, v := range n.Labels {
			clone.Labels[k] = v
		}
	}
	return clone
}

// SampleNote returns an ObfuscatedNote whose fields are already sanitized,
// so a round trip reproduces it exactly.
func SampleNote() ObfuscatedNote {
	return ObfuscatedNote{
		ID:     "note-1",
		Body:   "MEETATDAWN",
		Tags:   []string{"URGENT", "OPS2"},
		Labels: map[string]string{"owner": "ALICE", "site": "B7"},
	}
}
