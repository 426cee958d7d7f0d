package theme

import "github.com/alexisbeaulieu97/snapcode/internal/domain/token"

// PalenightID is the default theme.
const PalenightID = "palenight"

func palenight() *Theme {
	return &Theme{
		ID:         PalenightID,
		Name:       "Palenight",
		Background: "#292d3e",
		Foreground: "#a6accd",
		Palette: map[string]string{
			"selection":      "#717cb450",
			"comment":        "#676e95",
			"cyan":           "#89ddff",
			"green":          "#c3e88d",
			"orange":         "#f78c6c",
			"pink":           "#c792ea",
			"red":            "#f07178",
			"yellow":         "#ffcb6b",
			"blue":           "#82aaff",
			"purple":         "#c792ea",
			"line_highlight": "#32374d",
		},
		Tokens: map[token.Kind]string{
			token.Keyword:     "#c792ea",
			token.String:      "#c3e88d",
			token.Number:      "#f78c6c",
			token.Comment:     "#676e95",
			token.Function:    "#82aaff",
			token.Class:       "#ffcb6b",
			token.Variable:    "#a6accd",
			token.Operator:    "#89ddff",
			token.Punctuation: "#89ddff",
			token.Type:        "#ffcb6b",
			token.Namespace:   "#82aaff",
			token.Attribute:   "#c792ea",
			token.Property:    "#a6accd",
			token.Constant:    "#f78c6c",
			token.Escape:      "#89ddff",
		},
	}
}

func dracula() *Theme {
	return &Theme{
		ID:         "dracula",
		Name:       "Dracula",
		Background: "#282a36",
		Foreground: "#f8f8f2",
		Palette: map[string]string{
			"selection": "#44475a",
			"comment":   "#6272a4",
			"cyan":      "#8be9fd",
			"green":     "#50fa7b",
			"orange":    "#ffb86c",
			"pink":      "#ff79c6",
			"purple":    "#bd93f9",
			"red":       "#ff5555",
			"yellow":    "#f1fa8c",
		},
		Tokens: map[token.Kind]string{
			token.Keyword:     "#ff79c6",
			token.String:      "#f1fa8c",
			token.Number:      "#bd93f9",
			token.Comment:     "#6272a4",
			token.Function:    "#50fa7b",
			token.Class:       "#8be9fd",
			token.Type:        "#8be9fd",
			token.Variable:    "#f8f8f2",
			token.Operator:    "#ff79c6",
			token.Punctuation: "#f8f8f2",
			token.Namespace:   "#8be9fd",
			token.Attribute:   "#50fa7b",
			token.Property:    "#f8f8f2",
			token.Constant:    "#bd93f9",
			token.Escape:      "#ff79c6",
		},
	}
}

func monokai() *Theme {
	return &Theme{
		ID:         "monokai",
		Name:       "Monokai",
		Background: "#272822",
		Foreground: "#f8f8f2",
		Palette: map[string]string{
			"selection": "#49483e",
			"comment":   "#75715e",
			"green":     "#a6e22e",
			"blue":      "#66d9ef",
			"orange":    "#fd971f",
			"pink":      "#f92672",
			"purple":    "#ae81ff",
			"yellow":    "#e6db74",
		},
		Tokens: map[token.Kind]string{
			token.Keyword:     "#f92672",
			token.String:      "#e6db74",
			token.Number:      "#ae81ff",
			token.Comment:     "#75715e",
			token.Function:    "#a6e22e",
			token.Class:       "#a6e22e",
			token.Type:        "#66d9ef",
			token.Variable:    "#f8f8f2",
			token.Operator:    "#f92672",
			token.Punctuation: "#f8f8f2",
			token.Namespace:   "#a6e22e",
			token.Attribute:   "#a6e22e",
			token.Property:    "#f8f8f2",
			token.Constant:    "#ae81ff",
			token.Escape:      "#ae81ff",
		},
	}
}

func githubLight() *Theme {
	return &Theme{
		ID:         "github-light",
		Name:       "GitHub Light",
		Background: "#ffffff",
		Foreground: "#24292f",
		Palette: map[string]string{
			"selection": "#0969da4a",
			"comment":   "#6e7781",
			"red":       "#cf222e",
			"blue":      "#0550ae",
			"purple":    "#8250df",
			"orange":    "#953800",
		},
		Tokens: map[token.Kind]string{
			token.Keyword:     "#cf222e",
			token.String:      "#0a3069",
			token.Number:      "#0550ae",
			token.Comment:     "#6e7781",
			token.Function:    "#8250df",
			token.Class:       "#953800",
			token.Type:        "#953800",
			token.Variable:    "#24292f",
			token.Operator:    "#cf222e",
			token.Punctuation: "#24292f",
			token.Namespace:   "#953800",
			token.Attribute:   "#8250df",
			token.Property:    "#0550ae",
			token.Constant:    "#0550ae",
			token.Escape:      "#0a3069",
		},
	}
}
