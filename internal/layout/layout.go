// Package layout computes canvas geometry for a highlighted snippet and
// emits the ordered draw primitives that paint it.
package layout

import (
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	"github.com/alexisbeaulieu97/snapcode/internal/highlight"
	"github.com/alexisbeaulieu97/snapcode/internal/theme"
)

// Window chrome geometry in pixels.
const (
	HeaderHeight    = 50.0
	ShadowBlur      = 40.0
	ShadowOffset    = 20.0
	CornerRadius    = 12.0
	DotRadius       = 6.0
	DotSpacing      = 20.0
	DotInset        = 25.0
	TitleLift       = 5.0
	GutterPadding   = 30.0
	LineNumberInset = 15.0
)

// Font weights used by the engine.
const (
	RegularWeight = 400
	TitleWeight   = 600
)

// DefaultFilename labels the window when no filename is supplied.
const DefaultFilename = "Untitled"

// ShadowColor is rgba(0, 0, 0, 0.5).
const ShadowColor = "#00000080"

// DotColors are the close, minimize and zoom controls, left to right.
var DotColors = [3]string{"#ff5f56", "#ffbd2e", "#27c93f"}

// TextStyle identifies the font face a run is measured and drawn with.
type TextStyle struct {
	Font   string
	Size   float64
	Weight int
}

// Metrics measures text. Implementations must be deterministic and free of
// visible side effects.
type Metrics interface {
	Measure(text string, style TextStyle) float64
	LineHeight(fontID string) float64
}

// Options are the caller-supplied layout settings for one render pass.
type Options struct {
	FontID          string
	FontSize        int
	Padding         int
	ShowLineNumbers bool
	Filename        string
}

// Title returns the window label, defaulting to DefaultFilename.
func (o Options) Title() string {
	if name := strings.TrimSpace(o.Filename); name != "" {
		return name
	}
	return DefaultFilename
}

// Render lays out tokens as a window-framed code image. The physical lines
// of the concatenated token text decide the content box; the tokens decide
// the colored runs.
func Render(tokens []token.Token, th *theme.Theme, opts Options, m Metrics) Scene {
	codeStyle := TextStyle{Font: opts.FontID, Size: float64(opts.FontSize), Weight: RegularWeight}
	padding := float64(opts.Padding)

	lines := strings.Split(token.Join(tokens), "\n")
	lineHeight := float64(opts.FontSize) * m.LineHeight(opts.FontID)

	maxLineWidth := 0.0
	for _, line := range lines {
		if w := m.Measure(line, codeStyle); w > maxLineWidth {
			maxLineWidth = w
		}
	}

	gutter := 0.0
	if opts.ShowLineNumbers {
		gutter = m.Measure(strconv.Itoa(len(lines)), codeStyle) + GutterPadding
	}

	contentWidth := maxLineWidth + padding + gutter
	contentHeight := float64(len(lines))*lineHeight + padding + HeaderHeight

	scene := Scene{
		Width:  contentWidth + ShadowBlur*2,
		Height: contentHeight + ShadowBlur + ShadowOffset,
	}

	rectX, rectY := ShadowBlur, ShadowBlur
	prims := make([]Primitive, 0, 5+2*len(tokens)+len(lines))

	prims = append(prims, RoundedRect{
		X: rectX, Y: rectY, W: contentWidth, H: contentHeight,
		Radius: CornerRadius,
		Fill:   th.Background,
		Shadow: &Shadow{Color: ShadowColor, Blur: ShadowBlur, OffsetY: ShadowOffset},
	})

	dotY := rectY + DotInset
	for i, fill := range DotColors {
		prims = append(prims, Circle{CX: rectX + DotInset + DotSpacing*float64(i), CY: dotY, R: DotRadius, Fill: fill})
	}

	prims = append(prims, Text{
		X:        rectX + contentWidth/2,
		Y:        dotY - TitleLift,
		Text:     opts.Title(),
		Color:    th.Foreground,
		Align:    AlignCenter,
		Baseline: BaselineAlphabetic,
		Style:    TextStyle{Font: opts.FontID, Size: float64(opts.FontSize - 2), Weight: TitleWeight},
	})

	codeStartX := rectX + gutter + padding/2
	startY := rectY + HeaderHeight + padding/2
	lineNumberColor := highlight.ColorFor(token.Comment, th)

	line := 0
	numbered := -1
	x, y := codeStartX, startY

	for _, tok := range tokens {
		color := highlight.ColorFor(tok.Kind, th)
		for i, frag := range strings.Split(tok.Text, "\n") {
			if i > 0 {
				line++
				x = codeStartX
				y = startY + float64(line)*lineHeight
			}

			if opts.ShowLineNumbers && line > numbered {
				num := strconv.Itoa(line + 1)
				prims = append(prims, Text{
					X:     rectX + gutter - m.Measure(num, codeStyle) - LineNumberInset,
					Y:     y,
					Text:  num,
					Color: lineNumberColor,
					Style: codeStyle,
				})
				numbered = line
			}

			if frag != "" {
				prims = append(prims, Text{X: x, Y: y, Text: frag, Color: color, Style: codeStyle})
				x += m.Measure(frag, codeStyle)
			}
		}
	}

	scene.Primitives = prims
	return scene
}
