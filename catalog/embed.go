package catalog

import (
	"embed"
	"fmt"
)

//go:embed data/catalog.yaml
var dataFS embed.FS

// Default loads the catalog shipped with this module.
// The embedded resource goes through the same parse and schema validation
// as any external resource.
func Default() (Catalog, error) {
	raw, err := dataFS.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded catalog: %w", err)
	}
	return Load(raw)
}

// DefaultYAML returns the raw bytes of the embedded catalog resource.
func DefaultYAML() ([]byte, error) {
	return dataFS.ReadFile("data/catalog.yaml")
}
