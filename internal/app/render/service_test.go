package render

import (
	"bytes"
	"context"
	"errors"
	"image/png"
	"math"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/snapcode/internal/domain/token"
	"github.com/alexisbeaulieu97/snapcode/internal/export"
	"github.com/alexisbeaulieu97/snapcode/internal/fonts"
	"github.com/alexisbeaulieu97/snapcode/internal/grammar"
	"github.com/alexisbeaulieu97/snapcode/internal/logger"
	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

type stubLoader struct {
	calls atomic.Int32
	err   error
}

func (l *stubLoader) Ensure(context.Context, fonts.Font) (fonts.Data, error) {
	l.calls.Add(1)
	return fonts.Data{}, l.err
}

func newService(t *testing.T, loader FontLoader) (*Service, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	log, err := logger.New(logger.Options{Level: "debug", Writer: &buf})
	require.NoError(t, err)

	return NewService(Dependencies{Loader: loader, Logger: log}), &buf
}

func baseRequest() Request {
	return Request{
		Code:        "public class Foo {\n    int x = 42;\n}",
		Language:    "csharp",
		Theme:       "palenight",
		Font:        fonts.DefaultID,
		FontSize:    16,
		Padding:     60,
		LineNumbers: true,
		Filename:    "Foo.cs",
		Scale:       2,
	}
}

func TestRenderRejectsEmptyCode(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, &stubLoader{})
	for _, code := range []string{"", "   \n\t  "} {
		req := baseRequest()
		req.Code = code

		_, err := svc.Render(context.Background(), req)
		var verr *snaperrors.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, EmptyCodeMessage, verr.Message)
	}
}

func TestRenderProducesScaledImage(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{}
	svc, logs := newService(t, loader)

	res, err := svc.Render(context.Background(), baseRequest())
	require.NoError(t, err)

	assert.Equal(t, "csharp", res.Grammar.ID)
	assert.Equal(t, "palenight", res.Theme.ID)
	assert.Equal(t, fonts.DefaultID, res.Font.ID)
	assert.Equal(t, baseRequest().Code, token.Join(res.Tokens))
	assert.Len(t, res.Colored, len(res.Tokens))

	assert.Equal(t, int(math.Ceil(res.Scene.Width*2)), res.Image.Bounds().Dx())
	assert.Equal(t, int(math.Ceil(res.Scene.Height*2)), res.Image.Bounds().Dy())
	assert.Zero(t, loader.calls.Load(), "embedded font needs no loading")

	for _, stage := range []string{`"stage":"tokenize"`, `"stage":"layout"`, `"stage":"rasterize"`} {
		assert.Contains(t, logs.String(), stage)
	}
}

func TestRenderFallsBackOnUnknownIdentifiers(t *testing.T) {
	t.Parallel()

	svc, logs := newService(t, &stubLoader{})

	req := baseRequest()
	req.Language = "cobol"
	req.Theme = "solarized-nope"
	req.Font = "papyrus"

	res, err := svc.Render(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "csharp", res.Grammar.ID)
	assert.Equal(t, "palenight", res.Theme.ID)
	assert.Equal(t, fonts.DefaultID, res.Font.ID)
	assert.Contains(t, logs.String(), `unknown language \"cobol\"`)
	assert.Contains(t, logs.String(), `unknown theme \"solarized-nope\"`)
	assert.Contains(t, logs.String(), `unknown font \"papyrus\"`)
}

func TestRenderFallsBackWhenFontCannotLoad(t *testing.T) {
	t.Parallel()

	loader := &stubLoader{err: errors.New("offline")}
	svc, logs := newService(t, loader)

	req := baseRequest()
	req.Font = "jetbrains-mono"

	res, err := svc.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, fonts.DefaultID, res.Font.ID)
	assert.EqualValues(t, 1, loader.calls.Load())
	assert.Contains(t, logs.String(), "font unavailable")
}

func TestRenderPicksLanguageFromFilename(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, &stubLoader{})

	req := baseRequest()
	req.Language = ""
	res, err := svc.Render(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "csharp", res.Grammar.ID)
}

func TestHighlightPrefersExtensionOverFallback(t *testing.T) {
	t.Parallel()

	mini := grammar.MustNew("mini", "Mini", ".mini", []grammar.RuleSpec{
		{Kind: token.Keyword, Pattern: `\bdo\b`},
	})
	grammars := grammar.NewRegistry(grammar.CSharpID, grammar.Get(grammar.CSharpID), mini)
	svc := NewService(Dependencies{Grammars: grammars, Loader: &stubLoader{}, Logger: logger.Nop()})

	req := baseRequest()
	req.Code = "do it"
	req.Language = ""
	req.Filename = "task.mini"
	hl, err := svc.Highlight(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "mini", hl.Grammar.ID)

	req.Language = grammar.CSharpID
	hl, err = svc.Highlight(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, grammar.CSharpID, hl.Grammar.ID)

	req.Language = ""
	req.Filename = "notes.txt"
	hl, err = svc.Highlight(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, grammar.CSharpID, hl.Grammar.ID)
}

func TestRenderValidatesRequest(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, &stubLoader{})

	cases := map[string]func(*Request){
		"font_size": func(r *Request) { r.FontSize = 0 },
		"padding":   func(r *Request) { r.Padding = -5 },
		"scale":     func(r *Request) { r.Scale = 0 },
	}
	for field, mutate := range cases {
		req := baseRequest()
		mutate(&req)

		_, err := svc.Render(context.Background(), req)
		var verr *snaperrors.ValidationError
		require.ErrorAs(t, err, &verr, field)
		assert.Equal(t, field, verr.Field)
	}
}

func TestRenderHonorsCancellation(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, &stubLoader{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Render(ctx, baseRequest())
	require.ErrorIs(t, err, context.Canceled)
}

func TestExport(t *testing.T) {
	t.Parallel()

	svc, _ := newService(t, &stubLoader{})
	res, err := svc.Render(context.Background(), baseRequest())
	require.NoError(t, err)

	var pngBuf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), res, export.FormatPNG, &pngBuf))
	decoded, err := png.Decode(&pngBuf)
	require.NoError(t, err)
	assert.Equal(t, res.Image.Bounds(), decoded.Bounds())

	var pdfBuf bytes.Buffer
	require.NoError(t, svc.Export(context.Background(), res, export.FormatPDF, &pdfBuf))
	assert.True(t, bytes.HasPrefix(pdfBuf.Bytes(), []byte("%PDF-")))

	err = svc.Export(context.Background(), nil, export.FormatPNG, &pngBuf)
	var eerr *snaperrors.ExportError
	require.ErrorAs(t, err, &eerr)
}
