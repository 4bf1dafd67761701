package integration

import (
	"context"
	"reflect"
	"testing"

	"github.com/zoobzio/chimera"
	"github.com/zoobzio/chimera/bson"
	"github.com/zoobzio/chimera/json"
	"github.com/zoobzio/chimera/msgpack"
	chimeratest "github.com/zoobzio/chimera/testing"
	"github.com/zoobzio/chimera/xml"
	"github.com/zoobzio/chimera/yaml"
)

func TestProcessor_RoundTrip_JSON(t *testing.T) {
	testRoundTrip(t, json.New())
}

func TestProcessor_RoundTrip_YAML(t *testing.T) {
	testRoundTrip(t, yaml.New())
}

func TestProcessor_RoundTrip_MessagePack(t *testing.T) {
	testRoundTrip(t, msgpack.New())
}

func TestProcessor_RoundTrip_BSON(t *testing.T) {
	testRoundTrip(t, bson.New())
}

// XMLNote for XML-specific tests; encoding/xml cannot marshal maps.
type XMLNote struct {
	ID   string   `xml:"id"`
	Body string   `xml:"body" chimera:"AEJ7"`
	Tags []string `xml:"tag" chimera:"CS"`
}

func (n XMLNote) Clone() XMLNote {
	tags := make([]string, len(n.Tags))
	copy(tags, n.Tags)
	return XMLNote{ID: n.ID, Body: n.Body, Tags: tags}
}

func TestProcessor_RoundTrip_XML(t *testing.T) {
	proc, err := chimera.NewProcessor[XMLNote](xml.New(), chimeratest.TestEngine(t))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	original := &XMLNote{ID: "n1", Body: "MEETATDAWN", Tags: []string{"OPS", "RED5"}}

	data, err := proc.Marshal(context.Background(), original)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	restored, err := proc.Unmarshal(context.Background(), data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if !reflect.DeepEqual(restored, original) {
		t.Errorf("round-trip = %+v, want %+v", restored, original)
	}
}

func testRoundTrip(t *testing.T, c chimera.Codec) {
	t.Helper()

	proc, err := chimera.NewProcessor[chimeratest.ObfuscatedNote](c, chimeratest.TestEngine(t))
	if err != nil {
		t.Fatalf("NewProcessor error: %v", err)
	}

	original := chimeratest.SampleNote()

	data, err := proc.Marshal(context.Background(), &original)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	// The wire form carries encoded text
	var wire chimeratest.ObfuscatedNote
	if err := c.Unmarshal(data, &wire); err != nil {
		t.Fatalf("codec Unmarshal error: %v", err)
	}
	if wire.ID != original.ID {
		t.Errorf("wire ID = %q, want untouched %q", wire.ID, original.ID)
	}
	if wire.Body == original.Body {
		t.Errorf("wire Body = %q, want encoded text", wire.Body)
	}

	restored, err := proc.Unmarshal(context.Background(), data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}

	if !reflect.DeepEqual(*restored, original) {
		t.Errorf("round-trip = %+v, want %+v", *restored, original)
	}
}
