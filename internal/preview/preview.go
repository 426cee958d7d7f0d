// Package preview renders highlighted code as ANSI text for terminals.
package preview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	"github.com/alexisbeaulieu97/snapcode/internal/highlight"
	"github.com/alexisbeaulieu97/snapcode/internal/layout"
	"github.com/alexisbeaulieu97/snapcode/internal/theme"
)

// Options control the terminal preview.
type Options struct {
	Title       string
	LineNumbers bool
	// Padding is the number of blank columns around the code.
	Padding int
	// Renderer defaults to lipgloss' default renderer.
	Renderer *lipgloss.Renderer
}

type run struct {
	text  string
	color string
}

// Render draws the window chrome, an optional line-number gutter and the
// colored runs on the theme background.
func Render(colored []highlight.Colored, th *theme.Theme, opts Options) string {
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	lines := splitLines(colored)
	numberWidth := len(strconv.Itoa(len(lines)))

	bg := lipgloss.Color(th.Background)
	base := r.NewStyle().Background(bg)
	gutter := base.Foreground(lipgloss.Color(highlight.ColorFor(token.Comment, th)))

	width := 0
	for _, line := range lines {
		width = max(width, lineWidth(line))
	}
	if opts.LineNumbers {
		width += numberWidth + 1
	}

	title := opts.Title
	if strings.TrimSpace(title) == "" {
		title = layout.DefaultFilename
	}

	var body []string
	body = append(body, header(base, title, width))
	for i, line := range lines {
		var b strings.Builder
		if opts.LineNumbers {
			num := strconv.Itoa(i + 1)
			b.WriteString(gutter.Render(strings.Repeat(" ", numberWidth-len(num)) + num + " "))
		}
		used := 0
		for _, seg := range line {
			b.WriteString(base.Foreground(lipgloss.Color(seg.color)).Render(seg.text))
			used += lipgloss.Width(seg.text)
		}
		if pad := width - used - gutterWidth(opts.LineNumbers, numberWidth); pad > 0 {
			b.WriteString(base.Render(strings.Repeat(" ", pad)))
		}
		body = append(body, b.String())
	}

	return base.Padding(0, opts.Padding).Render(strings.Join(body, "\n"))
}

func header(base lipgloss.Style, title string, width int) string {
	dots := make([]string, 0, len(layout.DotColors))
	for _, c := range layout.DotColors {
		dots = append(dots, base.Foreground(lipgloss.Color(c)).Render("●"))
	}
	left := strings.Join(dots, base.Render(" "))
	label := base.Bold(true).Render(" " + title)

	line := left + label
	if pad := width - lipgloss.Width(line); pad > 0 {
		line += base.Render(strings.Repeat(" ", pad))
	}
	return line
}

func gutterWidth(enabled bool, numberWidth int) int {
	if !enabled {
		return 0
	}
	return numberWidth + 1
}

func lineWidth(line []run) int {
	w := 0
	for _, seg := range line {
		w += lipgloss.Width(seg.text)
	}
	return w
}

// splitLines breaks colored tokens into per-line runs. The line count
// always equals the number of newlines plus one.
func splitLines(colored []highlight.Colored) [][]run {
	lines := [][]run{nil}
	for _, c := range colored {
		for i, frag := range strings.Split(c.Text, "\n") {
			if i > 0 {
				lines = append(lines, nil)
			}
			if frag != "" {
				last := len(lines) - 1
				lines[last] = append(lines[last], run{text: frag, color: c.Color})
			}
		}
	}
	return lines
}
