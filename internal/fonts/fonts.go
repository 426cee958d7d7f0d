// Package fonts describes the monospace fonts snapcode can render with,
// fetches remote font files and measures text with opentype faces.
package fonts

import (
	"sort"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// DefaultID is the embedded font used when nothing else is available.
const DefaultID = "go-mono"

// DefaultLineHeight is the line-height multiplier shared by all built-in fonts.
const DefaultLineHeight = 1.6

// Font describes one font family. Embedded fonts carry their data; remote
// fonts carry the URLs of their regular and bold TTF files.
type Font struct {
	ID         string
	Name       string
	Family     string
	Weight     int
	LineHeight float64
	RegularURL string
	BoldURL    string

	embedded *Data
}

// Embedded reports whether the font ships inside the binary.
func (f Font) Embedded() bool {
	return f.embedded != nil
}

// Data holds the raw TTF bytes of a font family.
type Data struct {
	Regular []byte
	Bold    []byte
}

// Info is the listing view of a font.
type Info struct {
	ID   string
	Name string
}

func builtins() []Font {
	return []Font{
		{
			ID:         DefaultID,
			Name:       "Go Mono",
			Family:     "Go Mono",
			Weight:     400,
			LineHeight: DefaultLineHeight,
			embedded:   &Data{Regular: gomono.TTF, Bold: gomonobold.TTF},
		},
		{
			ID:         "jetbrains-mono",
			Name:       "JetBrains Mono",
			Family:     "JetBrains Mono",
			Weight:     400,
			LineHeight: DefaultLineHeight,
			RegularURL: "https://github.com/JetBrains/JetBrainsMono/raw/master/fonts/ttf/JetBrainsMono-Regular.ttf",
			BoldURL:    "https://github.com/JetBrains/JetBrainsMono/raw/master/fonts/ttf/JetBrainsMono-Bold.ttf",
		},
		{
			ID:         "fira-code",
			Name:       "Fira Code",
			Family:     "Fira Code",
			Weight:     400,
			LineHeight: DefaultLineHeight,
			RegularURL: "https://github.com/tonsky/FiraCode/raw/master/distr/ttf/FiraCode-Regular.ttf",
			BoldURL:    "https://github.com/tonsky/FiraCode/raw/master/distr/ttf/FiraCode-Bold.ttf",
		},
	}
}

// Registry is a read-only table of fonts keyed by id.
type Registry struct {
	fonts map[string]Font
}

// NewRegistry builds a registry from the built-in fonts plus any extras.
// Extras replace built-ins with the same id.
func NewRegistry(extra ...Font) *Registry {
	r := &Registry{fonts: make(map[string]Font)}
	for _, f := range builtins() {
		r.fonts[f.ID] = f
	}
	for _, f := range extra {
		if f.LineHeight <= 0 {
			f.LineHeight = DefaultLineHeight
		}
		r.fonts[f.ID] = f
	}
	return r
}

// Lookup returns the font registered under id.
func (r *Registry) Lookup(id string) (Font, bool) {
	f, ok := r.fonts[id]
	return f, ok
}

// Get returns the font registered under id, or the default font.
func (r *Registry) Get(id string) Font {
	if f, ok := r.fonts[id]; ok {
		return f
	}
	return r.fonts[DefaultID]
}

// All lists fonts sorted by id.
func (r *Registry) All() []Info {
	out := make([]Info, 0, len(r.fonts))
	for _, f := range r.fonts {
		out = append(out, Info{ID: f.ID, Name: f.Name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide built-in registry.
func Default() *Registry {
	return defaultRegistry
}
