// Package catalog holds a curated catalog of book-writing ideas, keyed by
// genre, together with a validating loader for the YAML resource format the
// catalog is authored in.
//
// A Catalog is immutable after load. Any number of readers may share one
// instance without coordination; nothing in this package mutates a loaded
// catalog.
package catalog

import "sort"

// Idea is a single book concept: a title and a short description.
type Idea struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Catalog maps a genre name to its ordered list of ideas.
// Every genre holds at least one idea, and every idea has both fields
// populated - the loader rejects anything else.
type Catalog map[string][]Idea

// Genres returns the genre names in sorted order.
func (c Catalog) Genres() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Ideas returns the ordered idea list for a genre.
// The second return is false if the genre is not in the catalog.
func (c Catalog) Ideas(genre string) ([]Idea, bool) {
	ideas, ok := c[genre]
	return ideas, ok
}

// Len returns the number of genres.
func (c Catalog) Len() int {
	return len(c)
}

// IdeaCount returns the total number of ideas across all genres.
func (c Catalog) IdeaCount() int {
	n := 0
	for _, ideas := range c {
		n += len(ideas)
	}
	return n
}
