package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/snapcode/internal/app/render"
	"github.com/alexisbeaulieu97/snapcode/internal/config"
	"github.com/alexisbeaulieu97/snapcode/internal/export"
	"github.com/alexisbeaulieu97/snapcode/internal/source"
)

// snippetFlags are shared by every command that reads and highlights code.
type snippetFlags struct {
	theme       string
	language    string
	font        string
	fontSize    int
	padding     int
	tabWidth    int
	lineNumbers bool
	filename    string
	lines       string
	gitRev      string
	repo        string
}

func (f *snippetFlags) register(cmd *cobra.Command) {
	defaults := config.Defaults()
	fs := cmd.Flags()
	fs.StringVar(&f.theme, "theme", defaults.Theme, "Color theme id")
	fs.StringVar(&f.language, "language", defaults.Language, "Language grammar id (default: picked by file extension)")
	fs.StringVar(&f.font, "font", defaults.Font, "Font id")
	fs.IntVar(&f.fontSize, "font-size", defaults.FontSize, "Font size in pixels")
	fs.IntVar(&f.padding, "padding", defaults.Padding, "Padding around the code in pixels")
	fs.IntVar(&f.tabWidth, "tab-width", defaults.TabWidth, "Expand tabs to this many columns (0 keeps tabs)")
	fs.BoolVar(&f.lineNumbers, "line-numbers", defaults.LineNumbers, "Show line numbers")
	fs.StringVar(&f.filename, "filename", "", "Window title (defaults to the input file name)")
	fs.StringVar(&f.lines, "lines", "", "Line range to include, e.g. 10:25")
	fs.StringVar(&f.gitRev, "git-rev", "", "Read the file as of this git revision")
	fs.StringVar(&f.repo, "repo", ".", "Repository used with --git-rev")
}

// apply copies explicitly set flags over cfg.
func (f *snippetFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	fs := cmd.Flags()
	if fs.Changed("theme") {
		cfg.Theme = f.theme
	}
	if fs.Changed("language") {
		cfg.Language = f.language
	}
	if fs.Changed("font") {
		cfg.Font = f.font
	}
	if fs.Changed("font-size") {
		cfg.FontSize = f.fontSize
	}
	if fs.Changed("padding") {
		cfg.Padding = f.padding
	}
	if fs.Changed("tab-width") {
		cfg.TabWidth = f.tabWidth
	}
	if fs.Changed("line-numbers") {
		cfg.LineNumbers = f.lineNumbers
	}
	if fs.Changed("filename") {
		cfg.Filename = f.filename
	}
}

// readSnippet loads code from a git revision, a file or stdin, then
// normalizes it and applies the line range.
func (f *snippetFlags) readSnippet(cmd *cobra.Command, args []string, cfg *config.Config) (source.Snippet, error) {
	var (
		snippet source.Snippet
		err     error
	)

	fromStdin := len(args) == 0 || args[0] == "-"
	switch {
	case f.gitRev != "":
		if fromStdin {
			return source.Snippet{}, fmt.Errorf("--git-rev requires a file argument")
		}
		snippet, err = source.FromGit(f.repo, f.gitRev, args[0])
	case fromStdin:
		snippet, err = source.FromReader(cmd.InOrStdin(), "")
	default:
		snippet, err = source.FromFile(args[0])
	}
	if err != nil {
		return source.Snippet{}, err
	}

	code := source.Normalize(snippet.Code, cfg.TabWidth)
	if snippet.Code, err = source.SelectLines(code, f.lines); err != nil {
		return source.Snippet{}, err
	}
	return snippet, nil
}

func buildRequest(cfg *config.Config, snippet source.Snippet) render.Request {
	filename := cfg.Filename
	if strings.TrimSpace(filename) == "" {
		filename = snippet.Name
	}
	return render.Request{
		Code:        snippet.Code,
		Language:    cfg.Language,
		Theme:       cfg.Theme,
		Font:        cfg.Font,
		FontSize:    cfg.FontSize,
		Padding:     cfg.Padding,
		LineNumbers: cfg.LineNumbers,
		Filename:    filename,
		Scale:       cfg.Scale,
	}
}

// resolveFormat prefers an explicit --format, then the output extension,
// then the configured format.
func resolveFormat(explicit bool, flagValue, output, configured string) (export.Format, error) {
	if explicit {
		return export.ParseFormat(flagValue)
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".pdf":
		return export.FormatPDF, nil
	case ".png":
		return export.FormatPNG, nil
	}
	return export.ParseFormat(configured)
}
