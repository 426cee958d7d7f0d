// Package highlight maps token kinds to theme colors.
package highlight

import (
	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	"github.com/alexisbeaulieu97/snapcode/internal/theme"
)

// ColorFor returns the color used to paint kind under th. Plain text and
// kinds missing from the theme's table use the theme foreground.
func ColorFor(kind token.Kind, th *theme.Theme) string {
	if kind == token.Plain {
		return th.Foreground
	}
	if c, ok := th.TokenColor(kind); ok {
		return c
	}
	return th.Foreground
}

// Colored is a token paired with its resolved color.
type Colored struct {
	token.Token
	Color string
}

// Colorize resolves the color of every token.
func Colorize(tokens []token.Token, th *theme.Theme) []Colored {
	out := make([]Colored, len(tokens))
	for i, t := range tokens {
		out[i] = Colored{Token: t, Color: ColorFor(t.Kind, th)}
	}
	return out
}
