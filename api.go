// Package chimera provides reversible, pattern-driven text obfuscation.
//
// A pattern is a short token such as "AC10": each letter selects a
// transform and trailing digits set the shift used by the "C" transform.
// Encoding applies the selected transforms left to right; decoding applies
// their inverses right to left, so decoding an encoded text always returns
// the sanitized original.
//
// Transforms are reversible obfuscations, not ciphers. Do not use them to
// protect secrets.
//
// # Alphabet
//
// All index arithmetic runs over an Alphabet, an ordered set of unique
// upper-case symbols. The default is A-Z followed by 0-9:
//
//	a, _ := chimera.NewAlphabet("abcdefghijklmnopqrstuvwxyz0123456789 .")
//	engine, _ := chimera.NewEngine(chimera.WithAlphabet(a))
//
// Input text is upper-cased and filtered to alphabet members before any
// transform runs. Characters outside the alphabet are dropped.
//
// # Selectors
//
//	A  reverse
//	B  ROT13 on A-Z
//	C  shift by the pattern shift
//	D  shift by -5
//	E  swap halves
//	H  rotate right by one
//	I  rotate left by two
//	J  atbash (mirror alphabet positions)
//	S  shift by the alphabet position of "S"
//
// Any other selector leaves text unchanged.
//
// # Basic Usage
//
//	engine := chimera.Default()
//	p, _ := engine.Parse("AC3")
//	encoded, _ := engine.Encode(ctx, p, "Hello, World!")
//	decoded, _ := engine.Decode(ctx, p, encoded) // "HELLOWORLD"
//
// # Field Processing
//
// Processor encodes tagged fields and marshals through a Codec:
//
//	type Note struct {
//	    ID   string `json:"id"`
//	    Body string `json:"body" chimera:"AEJ7"`
//	}
//
//	func (n Note) Clone() Note { return n }
//
//	proc, _ := chimera.NewProcessor[Note](json.New(), chimera.Default())
//	data, _ := proc.Marshal(ctx, &note)
//	note2, _ := proc.Unmarshal(ctx, data)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package chimera
