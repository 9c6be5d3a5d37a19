package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Load parses and validates a serialized catalog.
//
// Loading is all-or-nothing: a document that is not well-formed YAML fails
// with a *ParseError, and a well-formed document that violates the catalog
// shape fails with a *SchemaError. Nothing is coerced and nothing partial
// is returned. JSON documents also load, since YAML is a superset of JSON.
func Load(data []byte) (Catalog, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	normalized, err := normalizeForValidation(doc)
	if err != nil {
		return nil, &SchemaError{Err: err}
	}
	if err := validateDocument(normalized); err != nil {
		return nil, &SchemaError{Err: err}
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		// The document already passed schema validation; a decode failure
		// here means the schema and the Catalog type have diverged.
		return nil, &SchemaError{Err: fmt.Errorf("failed to decode validated catalog: %w", err)}
	}
	return c, nil
}

// Decode reads a serialized catalog from r and loads it.
func Decode(r io.Reader) (Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return Load(data)
}

// LoadFile loads a catalog resource from disk.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Load(data)
}

// normalizeForValidation converts a YAML-decoded document into the generic
// JSON value forms the schema validator expects (float64 numbers,
// map[string]any objects).
func normalizeForValidation(doc any) (any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("document is not representable as structured data: %w", err)
	}
	var normalized any
	if err := json.Unmarshal(raw, &normalized); err != nil {
		return nil, fmt.Errorf("failed to normalize document: %w", err)
	}
	return normalized, nil
}
