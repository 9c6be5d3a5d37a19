package catalog

import (
	"errors"
	"reflect"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	original, err := Load([]byte(validCatalogYAML))
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}

	raw, err := Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal catalog: %v", err)
	}

	reloaded, err := Load(raw)
	if err != nil {
		t.Fatalf("failed to reload marshaled catalog: %v", err)
	}

	if !reflect.DeepEqual(original, reloaded) {
		t.Errorf("round trip changed the catalog:\noriginal: %#v\nreloaded: %#v", original, reloaded)
	}
}

func TestRoundTrip_Default(t *testing.T) {
	original, err := Default()
	if err != nil {
		t.Fatalf("failed to load embedded catalog: %v", err)
	}

	raw, err := Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal embedded catalog: %v", err)
	}

	reloaded, err := Load(raw)
	if err != nil {
		t.Fatalf("failed to reload marshaled catalog: %v", err)
	}

	if !reflect.DeepEqual(original, reloaded) {
		t.Error("round trip changed the embedded catalog")
	}
}

func TestMarshal_RejectsInvalid(t *testing.T) {
	cases := map[string]Catalog{
		"nil catalog":       nil,
		"no genres":         {},
		"empty idea list":   {"mystery": {}},
		"empty title":       {"mystery": {{Title: "", Description: "d"}}},
		"empty description": {"mystery": {{Title: "t", Description: ""}}},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Marshal(c)
			if err == nil {
				t.Fatal("expected an error")
			}
			var schemaErr *SchemaError
			if !errors.As(err, &schemaErr) {
				t.Errorf("expected *SchemaError, got %T: %v", err, err)
			}
		})
	}
}
