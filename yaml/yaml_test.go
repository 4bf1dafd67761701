package yaml

import (
	"testing"
)

func TestNew(t *testing.T) {
	c := New()
	if c == nil {
		t.Error("New() should return non-nil codec")
	}
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/yaml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/yaml")
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	c := New()

	type envelope struct {
		Pattern string `yaml:"pattern"`
		Body    string `yaml:"body"`
		Shift   int    `yaml:"shift"`
	}

	original := envelope{Pattern: "AC10", Body: "OLLEH", Shift: 10}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored envelope
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct {
		Body string `yaml:"body"`
	}
	if err := c.Unmarshal([]byte("body: [unclosed"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}
}
