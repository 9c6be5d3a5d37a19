package catalog

import (
	"bytes"
	"embed"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/catalog.schema.json
var schemaFS embed.FS

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// catalogSchema returns the compiled catalog schema.
// Compilation happens once; the embedded document is trusted, so a compile
// failure is a build defect and every load will report it.
func catalogSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := schemaFS.ReadFile("schemas/catalog.schema.json")
		if err != nil {
			schemaErr = fmt.Errorf("failed to read catalog schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("catalog.schema.json", bytes.NewReader(raw)); err != nil {
			schemaErr = fmt.Errorf("failed to load catalog schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile("catalog.schema.json")
	})
	return compiledSchema, schemaErr
}

// validateDocument checks a parsed document against the catalog schema.
// The document must be the generic form produced by yaml.Unmarshal into any.
func validateDocument(doc any) error {
	schema, err := catalogSchema()
	if err != nil {
		return err
	}
	return schema.Validate(doc)
}
