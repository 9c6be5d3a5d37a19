package catalog

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes the catalog to w as YAML.
// Encoding a loaded catalog and loading the result yields an identical
// structure. A catalog that violates the shape invariants is refused, since
// the output could never be loaded back.
func Encode(w io.Writer, c Catalog) error {
	if err := checkInvariants(c); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// Marshal serializes the catalog to YAML.
func Marshal(c Catalog) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, c); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// checkInvariants verifies the in-memory catalog shape: at least one genre,
// every genre non-empty, every idea fully populated.
func checkInvariants(c Catalog) error {
	if len(c) == 0 {
		return &SchemaError{Err: fmt.Errorf("catalog has no genres")}
	}
	for genre, ideas := range c {
		if len(ideas) == 0 {
			return &SchemaError{Err: fmt.Errorf("genre %q has no ideas", genre)}
		}
		for i, idea := range ideas {
			if idea.Title == "" {
				return &SchemaError{Err: fmt.Errorf("genre %q idea %d has an empty title", genre, i)}
			}
			if idea.Description == "" {
				return &SchemaError{Err: fmt.Errorf("genre %q idea %d has an empty description", genre, i)}
			}
		}
	}
	return nil
}
