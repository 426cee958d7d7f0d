package layout

// Align controls how a text run is positioned relative to its X coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// Baseline selects which part of the glyph box sits on the Y coordinate.
type Baseline int

const (
	// BaselineTop places the top of the em box at Y.
	BaselineTop Baseline = iota
	// BaselineAlphabetic places the alphabetic baseline at Y.
	BaselineAlphabetic
)

// Primitive is one paint instruction. Later primitives paint over earlier ones.
type Primitive interface {
	primitive()
}

// Shadow describes a drop shadow cast by a filled shape.
type Shadow struct {
	Color   string
	Blur    float64
	OffsetX float64
	OffsetY float64
}

// RoundedRect is a filled rectangle with uniformly rounded corners.
type RoundedRect struct {
	X, Y, W, H float64
	Radius     float64
	Fill       string
	Shadow     *Shadow
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R float64
	Fill      string
}

// Text is a single-line run of glyphs.
type Text struct {
	X, Y     float64
	Text     string
	Color    string
	Align    Align
	Baseline Baseline
	Style    TextStyle
}

func (RoundedRect) primitive() {}
func (Circle) primitive()      {}
func (Text) primitive()        {}

// Scene is the complete output of a render pass: canvas size in CSS pixels
// and the ordered primitives that paint it.
type Scene struct {
	Width      float64
	Height     float64
	Primitives []Primitive
}
