// Package theme holds color palettes and the per-token-kind color tables
// used to paint highlighted code.
package theme

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
)

// Theme is an immutable named palette.
type Theme struct {
	ID         string
	Name       string
	Background string
	Foreground string
	// Palette carries named accent colors (selection, cyan, ...) that are
	// not tied to a token kind.
	Palette map[string]string
	Tokens  map[token.Kind]string
}

// TokenColor returns the color configured for kind and whether it was present.
func (t *Theme) TokenColor(kind token.Kind) (string, bool) {
	c, ok := t.Tokens[kind]
	if !ok || c == "" {
		return "", false
	}
	return c, true
}

// RGBA parses a hex color of the form #rgb, #rgba, #rrggbb or #rrggbbaa,
// the forms the hexcolor validation accepts.
func RGBA(hex string) (color.RGBA, error) {
	hex = strings.TrimSpace(hex)
	if len(hex) == 5 && hex[0] == '#' {
		hex = "#" + strings.Repeat(hex[1:2], 2) + strings.Repeat(hex[2:3], 2) +
			strings.Repeat(hex[3:4], 2) + strings.Repeat(hex[4:5], 2)
	}
	alpha := uint8(0xff)
	if len(hex) == 9 {
		a, err := strconv.ParseUint(hex[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:7]
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	if alpha == 0xff {
		return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
	}
	// color.RGBA is alpha-premultiplied.
	scale := func(v uint8) uint8 { return uint8(uint16(v) * uint16(alpha) / 0xff) }
	return color.RGBA{R: scale(r), G: scale(g), B: scale(b), A: alpha}, nil
}

// MustRGBA is like RGBA but falls back to opaque black on malformed input.
func MustRGBA(hex string) color.RGBA {
	c, err := RGBA(hex)
	if err != nil {
		return color.RGBA{A: 0xff}
	}
	return c
}
