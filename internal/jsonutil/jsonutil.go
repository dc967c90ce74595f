// Package jsonutil provides shared helpers for decoding JSON response bodies
// with contextual errors.
package jsonutil

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// UnmarshalWithContext unmarshals JSON data into v and wraps any error
// with the provided context message.
func UnmarshalWithContext(data []byte, v interface{}, context string) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", context, err)
	}
	return nil
}

// UnmarshalObject is UnmarshalWithContext restricted to a JSON object.
// Empty input, "null", and non-object values are rejected.
func UnmarshalObject(data []byte, v interface{}, context string) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return fmt.Errorf("%s: empty body", context)
	}
	if trimmed[0] != '{' {
		return fmt.Errorf("%s: expected JSON object", context)
	}
	return UnmarshalWithContext(trimmed, v, context)
}
