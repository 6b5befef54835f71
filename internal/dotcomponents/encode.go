package dotcomponents

import (
	"encoding/json"
	"fmt"
)

// Encode serializes the model to its canonical JSON document. Key order
// follows struct declaration order and map keys are emitted sorted, so
// output is byte-stable for identical input; regression tests diff it
// directly. Optional fields encode as explicit null, never as a typed
// zero value.
func Encode(m *DataModel) ([]byte, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encode data model: %w", err)
	}
	return data, nil
}

// EncodeIndented renders the same document human-readably for debugging.
// Content is identical to Encode; only the formatting differs.
func EncodeIndented(m *DataModel) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode data model: %w", err)
	}
	return data, nil
}

// Decode parses a serialized document back into a model. It exists for
// round-trip verification and client-side fixtures.
func Decode(data []byte) (*DataModel, error) {
	var m DataModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("decode data model: %w", err)
	}
	return &m, nil
}
