package catalog

import "fmt"

// ParseError indicates the resource is not well-formed YAML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("catalog parse error: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError indicates the resource parsed but violates the catalog shape:
// the root is not a mapping of genres to idea arrays, a genre's list is
// empty, or an idea is missing a non-empty title or description.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catalog schema error: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
