// Package serde converts values to JSON text and reconstructs values from it.
//
// Deserialization is positional: field values of the parsed object are passed
// to a Constructor in the order they appear in the text, not by name. This
// works only when constructor parameters are ordered the same way as fields of
// the serialized value.
package serde

import (
	"encoding/json"
	"fmt"
)

// Serialize returns JSON text of v. Cyclic structures and values JSON cannot
// represent (channels, functions, NaN) result in an error.
func Serialize(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("unable to serialize %T: %w", v, err)
	}
	return string(data), nil
}

// SerializeIndent is Serialize producing indented output.
func SerializeIndent(v any, prefix, indent string) (string, error) {
	data, err := json.MarshalIndent(v, prefix, indent)
	if err != nil {
		return "", fmt.Errorf("unable to serialize %T: %w", v, err)
	}
	return string(data), nil
}
