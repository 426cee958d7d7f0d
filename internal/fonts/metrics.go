package fonts

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"github.com/patrickmn/go-cache"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/alexisbeaulieu97/snapcode/internal/layout"
)

// BoldWeight is the lowest weight drawn with the bold face.
const BoldWeight = 600

type family struct {
	regular    *opentype.Font
	bold       *opentype.Font
	lineHeight float64
}

// Metrics measures and draws text with parsed opentype fonts. It implements
// layout.Metrics. Faces used for measuring are cached per font, weight and
// size; faces handed out by Face are owned by the caller.
type Metrics struct {
	mu       sync.RWMutex
	families map[string]*family

	measureMu sync.Mutex
	faces     *cache.Cache
}

// NewMetrics returns a provider with the embedded default font registered.
func NewMetrics() *Metrics {
	m := &Metrics{
		families: make(map[string]*family),
		faces:    cache.New(cache.NoExpiration, 0),
	}
	def := Default().Get(DefaultID)
	if err := m.Register(def, *def.embedded); err != nil {
		panic(fmt.Sprintf("fonts: embedded font: %v", err))
	}
	return m
}

// Register parses a font's data and makes it available under its id.
// Registering an id twice replaces the previous family.
func (m *Metrics) Register(f Font, data Data) error {
	regular, err := opentype.Parse(data.Regular)
	if err != nil {
		return fmt.Errorf("parse %s regular: %w", f.ID, err)
	}
	bold := regular
	if len(data.Bold) > 0 {
		if bold, err = opentype.Parse(data.Bold); err != nil {
			return fmt.Errorf("parse %s bold: %w", f.ID, err)
		}
	}

	lh := f.LineHeight
	if lh <= 0 {
		lh = DefaultLineHeight
	}

	m.mu.Lock()
	m.families[f.ID] = &family{regular: regular, bold: bold, lineHeight: lh}
	m.mu.Unlock()

	m.faces.Flush()
	return nil
}

// Registered reports whether id has been registered.
func (m *Metrics) Registered(id string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.families[id]
	return ok
}

func (m *Metrics) family(id string) *family {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if fam, ok := m.families[id]; ok {
		return fam
	}
	return m.families[DefaultID]
}

// LineHeight returns the line-height multiplier of the font.
func (m *Metrics) LineHeight(fontID string) float64 {
	return m.family(fontID).lineHeight
}

// Measure returns the advance width of text in pixels.
func (m *Metrics) Measure(text string, style layout.TextStyle) float64 {
	if text == "" {
		return 0
	}

	m.measureMu.Lock()
	defer m.measureMu.Unlock()

	face, err := m.cachedFace(style)
	if err != nil {
		// Monospace estimate keeps layout total when a face cannot be built.
		return float64(utf8.RuneCountInString(text)) * style.Size * 0.6
	}
	return fixedToFloat(font.MeasureString(face, text))
}

func (m *Metrics) cachedFace(style layout.TextStyle) (font.Face, error) {
	key := fmt.Sprintf("%s/%d/%g", style.Font, style.Weight, style.Size)
	if v, ok := m.faces.Get(key); ok {
		return v.(font.Face), nil
	}
	face, err := m.Face(style)
	if err != nil {
		return nil, err
	}
	m.faces.Set(key, face, cache.NoExpiration)
	return face, nil
}

// Face builds a new face for style. Size is in pixels at 72 DPI.
func (m *Metrics) Face(style layout.TextStyle) (font.Face, error) {
	fam := m.family(style.Font)
	f := fam.regular
	if style.Weight >= BoldWeight {
		f = fam.bold
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    style.Size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
