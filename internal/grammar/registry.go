package grammar

import (
	"path/filepath"
	"sort"
	"strings"
)

// Info is the id/name pair shown in language listings.
type Info struct {
	ID   string
	Name string
}

// Registry is a read-only lookup table of grammars with a designated fallback.
// It is safe for concurrent use because it is never mutated after construction.
type Registry struct {
	grammars map[string]*Grammar
	fallback string
}

// NewRegistry builds a registry; fallback must name one of the grammars.
func NewRegistry(fallback string, grammars ...*Grammar) *Registry {
	r := &Registry{grammars: make(map[string]*Grammar, len(grammars)), fallback: fallback}
	for _, g := range grammars {
		r.grammars[g.ID] = g
	}
	if _, ok := r.grammars[fallback]; !ok {
		panic("grammar: fallback " + fallback + " is not registered")
	}
	return r
}

// Lookup returns the grammar registered under id.
func (r *Registry) Lookup(id string) (*Grammar, bool) {
	g, ok := r.grammars[id]
	return g, ok
}

// Get returns the grammar for id, or the fallback grammar when id is unknown.
func (r *Registry) Get(id string) *Grammar {
	if g, ok := r.grammars[id]; ok {
		return g
	}
	return r.grammars[r.fallback]
}

// Fallback returns the designated default grammar.
func (r *Registry) Fallback() *Grammar {
	return r.grammars[r.fallback]
}

// ForFilename picks a grammar by file extension, falling back to the default.
func (r *Registry) ForFilename(name string) (*Grammar, bool) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext != "" {
		for _, id := range r.ids() {
			if g := r.grammars[id]; g.Extension == ext {
				return g, true
			}
		}
	}
	return r.Fallback(), false
}

// All lists registered grammars sorted by id.
func (r *Registry) All() []Info {
	ids := r.ids()
	out := make([]Info, 0, len(ids))
	for _, id := range ids {
		out = append(out, Info{ID: id, Name: r.grammars[id].Name})
	}
	return out
}

func (r *Registry) ids() []string {
	ids := make([]string, 0, len(r.grammars))
	for id := range r.grammars {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var builtin = NewRegistry(CSharpID, csharp())

// Default returns the process-wide registry of built-in grammars.
func Default() *Registry {
	return builtin
}

// Get resolves id against the built-in registry with fallback.
func Get(id string) *Grammar {
	return builtin.Get(id)
}

// All lists the built-in grammars.
func All() []Info {
	return builtin.All()
}
