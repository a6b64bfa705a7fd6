// Package schema bridges Go types and the JSON schemas the LLM is prompted
// with. Schemas are generated by reflection and the model's JSON reply is
// decoded and validated against the same type.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/runpod/gopenapi"
)

// JSONFor renders the JSON schema of T for embedding in a prompt.
func JSONFor[T any]() (string, error) {
	s := gopenapi.Schema{Type: gopenapi.Object[T]()}
	b, err := json.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("render schema: %w", err)
	}
	return string(b), nil
}

// Decode validates raw against T's schema and returns the typed value.
func Decode[T any](raw string) (T, error) {
	var zero T

	s := gopenapi.Schema{Type: gopenapi.Object[T]()}
	v, err := s.Validate(raw)
	if err != nil {
		return zero, fmt.Errorf("validate model output: %w", err)
	}

	out, ok := v.(*T)
	if !ok || out == nil {
		return zero, fmt.Errorf("validate model output: unexpected decoded type %T", v)
	}
	return *out, nil
}
