// Package render coordinates a full snippet render: grammar, theme and font
// resolution, tokenizing, layout, rasterizing and export.
package render

import (
	"context"
	"fmt"
	"image"
	"io"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	"github.com/alexisbeaulieu97/snapcode/internal/export"
	"github.com/alexisbeaulieu97/snapcode/internal/fonts"
	"github.com/alexisbeaulieu97/snapcode/internal/grammar"
	"github.com/alexisbeaulieu97/snapcode/internal/highlight"
	"github.com/alexisbeaulieu97/snapcode/internal/layout"
	"github.com/alexisbeaulieu97/snapcode/internal/logger"
	"github.com/alexisbeaulieu97/snapcode/internal/raster"
	"github.com/alexisbeaulieu97/snapcode/internal/theme"
	"github.com/alexisbeaulieu97/snapcode/internal/tokenizer"
	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

// EmptyCodeMessage is reported when there is nothing to render.
const EmptyCodeMessage = "Please enter some code first"

// FontLoader makes font files available.
type FontLoader interface {
	Ensure(ctx context.Context, f fonts.Font) (fonts.Data, error)
}

// Dependencies wires a Service. Nil fields fall back to the built-in
// registries, a loader on the default cache directory and a no-op logger.
type Dependencies struct {
	Grammars *grammar.Registry
	Themes   *theme.Registry
	Fonts    *fonts.Registry
	Loader   FontLoader
	Metrics  *fonts.Metrics
	Logger   *logger.Logger
}

// Service renders snippets. Registries are read-only and shared, so a
// Service may serve concurrent calls.
type Service struct {
	grammars *grammar.Registry
	themes   *theme.Registry
	fonts    *fonts.Registry
	loader   FontLoader
	metrics  *fonts.Metrics
	log      *logger.Logger
}

// NewService constructs a Service.
func NewService(deps Dependencies) *Service {
	s := &Service{
		grammars: deps.Grammars,
		themes:   deps.Themes,
		fonts:    deps.Fonts,
		loader:   deps.Loader,
		metrics:  deps.Metrics,
		log:      deps.Logger,
	}
	if s.grammars == nil {
		s.grammars = grammar.Default()
	}
	if s.themes == nil {
		s.themes = theme.Default()
	}
	if s.fonts == nil {
		s.fonts = fonts.Default()
	}
	if s.log == nil {
		s.log = logger.Nop()
	}
	if s.loader == nil {
		s.loader = fonts.NewLoader("", nil, s.log)
	}
	if s.metrics == nil {
		s.metrics = fonts.NewMetrics()
	}
	return s
}

// Request describes one render.
type Request struct {
	Code        string
	Language    string
	Theme       string
	Font        string
	FontSize    int
	Padding     int
	LineNumbers bool
	Filename    string
	Scale       float64
}

// Highlighted is a tokenized and colorized snippet with the resolved
// grammar and theme.
type Highlighted struct {
	Tokens  []token.Token
	Colored []highlight.Colored
	Grammar *grammar.Grammar
	Theme   *theme.Theme
}

// Result is a rendered snippet ready for export.
type Result struct {
	Highlighted
	Font  fonts.Font
	Scene layout.Scene
	Image *image.RGBA
	Scale float64
}

// Highlight resolves the grammar and theme for req and tokenizes its code.
func (s *Service) Highlight(ctx context.Context, req Request) (*Highlighted, error) {
	if strings.TrimSpace(req.Code) == "" {
		return nil, snaperrors.NewValidationError("code", EmptyCodeMessage, nil)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	g := s.resolveGrammar(req.Language, req.Filename)
	th := s.resolveTheme(req.Theme)

	start := time.Now()
	tokens, err := tokenizer.Tokenize(req.Code, g)
	if err != nil {
		return nil, snaperrors.NewRenderError("tokenize", err)
	}
	s.log.Timing("tokenize", time.Since(start))

	return &Highlighted{
		Tokens:  tokens,
		Colored: highlight.Colorize(tokens, th),
		Grammar: g,
		Theme:   th,
	}, nil
}

// Render produces the image for req.
func (s *Service) Render(ctx context.Context, req Request) (*Result, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	hl, err := s.Highlight(ctx, req)
	if err != nil {
		return nil, err
	}

	f := s.resolveFont(ctx, req.Font)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	scene := layout.Render(hl.Tokens, hl.Theme, layout.Options{
		FontID:          f.ID,
		FontSize:        req.FontSize,
		Padding:         req.Padding,
		ShowLineNumbers: req.LineNumbers,
		Filename:        req.Filename,
	}, s.metrics)
	s.log.Timing("layout", time.Since(start))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start = time.Now()
	img, err := raster.Rasterize(scene, s.metrics, req.Scale)
	if err != nil {
		return nil, snaperrors.NewRenderError("rasterize", err)
	}
	s.log.Timing("rasterize", time.Since(start))

	s.log.WithFields(map[string]any{
		"language": hl.Grammar.ID,
		"theme":    hl.Theme.ID,
		"font":     f.ID,
		"width":    img.Bounds().Dx(),
		"height":   img.Bounds().Dy(),
	}).Debug("rendered snippet")

	return &Result{Highlighted: *hl, Font: f, Scene: scene, Image: img, Scale: req.Scale}, nil
}

// Export encodes a rendered result in the given format.
func (s *Service) Export(ctx context.Context, res *Result, format export.Format, w io.Writer) error {
	if res == nil || res.Image == nil {
		return snaperrors.NewExportError(string(format), "", fmt.Errorf("nothing rendered"))
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	if err := export.Write(w, format, res.Image, res.Scene.Width, res.Scene.Height); err != nil {
		return err
	}
	s.log.Timing("export", time.Since(start))
	return nil
}

func validateRequest(req Request) error {
	switch {
	case req.FontSize <= 0:
		return snaperrors.NewValidationError("font_size", "must be positive", nil)
	case req.Padding < 0:
		return snaperrors.NewValidationError("padding", "must not be negative", nil)
	case req.Scale <= 0:
		return snaperrors.NewValidationError("scale", "must be positive", nil)
	}
	return nil
}

func (s *Service) resolveGrammar(id, filename string) *grammar.Grammar {
	if id == "" {
		if g, ok := s.grammars.ForFilename(filename); ok {
			return g
		}
		return s.grammars.Fallback()
	}
	if g, ok := s.grammars.Lookup(id); ok {
		return g
	}
	g := s.grammars.Fallback()
	s.log.Warn(fmt.Sprintf("unknown language %q, falling back to %s", id, g.ID))
	return g
}

func (s *Service) resolveTheme(id string) *theme.Theme {
	if th, ok := s.themes.Lookup(id); ok {
		return th
	}
	th := s.themes.Get(id)
	if id != "" {
		s.log.Warn(fmt.Sprintf("unknown theme %q, falling back to %s", id, th.ID))
	}
	return th
}

// resolveFont returns a font whose faces are registered with the metrics
// provider, falling back to the embedded default.
func (s *Service) resolveFont(ctx context.Context, id string) fonts.Font {
	f, ok := s.fonts.Lookup(id)
	if !ok {
		f = s.fonts.Get(fonts.DefaultID)
		if id != "" {
			s.log.Warn(fmt.Sprintf("unknown font %q, falling back to %s", id, f.ID))
		}
	}
	if s.metrics.Registered(f.ID) {
		return f
	}

	start := time.Now()
	data, err := s.loader.Ensure(ctx, f)
	if err == nil {
		err = s.metrics.Register(f, data)
	}
	if err != nil {
		s.log.WithFields(map[string]any{"font": f.ID, "error": err.Error()}).Warn(fmt.Sprintf("font unavailable, falling back to %s", fonts.DefaultID))
		return s.fonts.Get(fonts.DefaultID)
	}
	s.log.Timing("font", time.Since(start))
	return f
}
