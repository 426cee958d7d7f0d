package theme

import "sort"

// Info is the id/name pair shown in theme listings.
type Info struct {
	ID   string
	Name string
}

// Registry is a read-only theme table with a designated fallback theme.
type Registry struct {
	themes   map[string]*Theme
	fallback string
}

// NewRegistry builds a registry; fallback must name one of the themes.
func NewRegistry(fallback string, themes ...*Theme) *Registry {
	r := &Registry{themes: make(map[string]*Theme, len(themes)), fallback: fallback}
	for _, t := range themes {
		r.themes[t.ID] = t
	}
	if _, ok := r.themes[fallback]; !ok {
		panic("theme: fallback " + fallback + " is not registered")
	}
	return r
}

// With returns a new registry containing r's themes plus extra. Extra themes
// replace same-id entries. r itself is left untouched.
func (r *Registry) With(extra ...*Theme) *Registry {
	themes := make([]*Theme, 0, len(r.themes)+len(extra))
	for _, t := range r.themes {
		themes = append(themes, t)
	}
	themes = append(themes, extra...)
	return NewRegistry(r.fallback, themes...)
}

// Lookup returns the theme registered under id.
func (r *Registry) Lookup(id string) (*Theme, bool) {
	t, ok := r.themes[id]
	return t, ok
}

// Get returns the theme for id or the fallback theme when id is unknown.
func (r *Registry) Get(id string) *Theme {
	if t, ok := r.themes[id]; ok {
		return t
	}
	return r.themes[r.fallback]
}

// IDs returns registered theme ids in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.themes))
	for id := range r.themes {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All lists registered themes sorted by id.
func (r *Registry) All() []Info {
	ids := r.IDs()
	out := make([]Info, 0, len(ids))
	for _, id := range ids {
		out = append(out, Info{ID: id, Name: r.themes[id].Name})
	}
	return out
}

var builtin = NewRegistry(PalenightID, palenight(), dracula(), monokai(), githubLight())

// Default returns the process-wide registry of built-in themes.
func Default() *Registry {
	return builtin
}

// Get resolves id against the built-in registry with fallback.
func Get(id string) *Theme {
	return builtin.Get(id)
}

// All lists the built-in themes.
func All() []Info {
	return builtin.All()
}
