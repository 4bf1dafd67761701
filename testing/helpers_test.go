package testing

import (
	"testing"
)

func TestTestEngine(t *testing.T) {
	e := TestEngine(t)
	if e.Alphabet().Size() != 36 {
		t.Errorf("TestEngine() alphabet size = %d, want 36", e.Alphabet().Size())
	}
}

func TestTestEngineWithSymbols(t *testing.T) {
	e := TestEngineWithSymbols(t, "abcabc")
	if e.Alphabet().Symbols() != "ABC" {
		t.Errorf("TestEngineWithSymbols() symbols = %q, want %q", e.Alphabet().Symbols(), "ABC")
	}
}

func TestAssertRoundTrip(t *testing.T) {
	e := TestEngine(t)
	encoded := AssertRoundTrip(t, e, AllSelectors, "attack at dawn")
	if encoded == "ATTACKATDAWN" {
		t.Error("AssertRoundTrip() should return the encoded text")
	}
}

func TestObfuscatedNote_Clone(t *testing.T) {
	original := SampleNote()
	cloned := original.Clone()

	cloned.Tags[0] = "CHANGED"
	cloned.Labels["owner"] = "CHANGED"

	if original.Tags[0] != "URGENT" {
		t.Error("Clone() should deep copy Tags")
	}
	if original.Labels["owner"] != "ALICE" {
		t.Error("Clone() should deep copy Labels")
	}
}

func TestPlainNote_Clone(t *testing.T) {
	original := PlainNote{ID: "1", Body: "hello"}
	if original.Clone() != original {
		t.Error("Clone() should copy all fields")
	}
}
