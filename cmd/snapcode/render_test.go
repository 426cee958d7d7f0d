package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/snapcode/internal/app/render"
	"github.com/alexisbeaulieu97/snapcode/internal/export"
	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

func TestRenderWritesPNG(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Program.cs", sampleCode)
	out := filepath.Join(dir, "shot.png")

	res := execute(t, nil, "render", src, "-o", out, "--scale", "1", "--theme", "dracula")
	require.NoError(t, res.err, res.stderr)
	assert.Contains(t, res.stdout, "Wrote "+out)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Greater(t, img.Bounds().Dx(), 200)
	assert.Greater(t, img.Bounds().Dy(), 200)
}

func TestRenderInfersPDFFromOutputExtension(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Program.cs", sampleCode)
	out := filepath.Join(dir, "shot.pdf")

	res := execute(t, nil, "render", src, "-o", out, "--scale", "1")
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRenderFromStdinToStdout(t *testing.T) {
	res := execute(t, strings.NewReader("int x = 1;"), "render", "-", "-o", "-", "--scale", "1", "--line-numbers=false")
	require.NoError(t, res.err, res.stderr)

	img, err := png.Decode(strings.NewReader(res.stdout))
	require.NoError(t, err)
	assert.Positive(t, img.Bounds().Dx())
}

func TestRenderDefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	res := execute(t, strings.NewReader("var a = 1;"), "render", "--format", "pdf", "--scale", "1")
	require.NoError(t, res.err, res.stderr)
	assert.FileExists(t, filepath.Join(dir, "code.pdf"))

	writeSource(t, dir, "Main.cs", "var b = 2;")
	res = execute(t, nil, "render", "Main.cs", "--scale", "1")
	require.NoError(t, res.err, res.stderr)
	assert.FileExists(t, filepath.Join(dir, export.FileName("Main.cs", export.FormatPNG)))
}

func TestRenderRejectsEmptyCode(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Empty.cs", "  \n\t\n")

	res := execute(t, nil, "render", src, "-o", filepath.Join(dir, "x.png"))
	var verr *snaperrors.ValidationError
	require.ErrorAs(t, res.err, &verr)
	assert.Equal(t, render.EmptyCodeMessage, verr.Message)
	assert.NoFileExists(t, filepath.Join(dir, "x.png"))
}

func TestRenderValidatesFlags(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Program.cs", sampleCode)

	cases := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "font size", args: []string{"--font-size", "2"}, field: "font_size"},
		{name: "format", args: []string{"--format", "gif"}, field: "format"},
		{name: "lines", args: []string{"--lines", "40:50"}, field: "lines"},
		{name: "watch stdin", args: []string{"-", "--watch"}, field: "watch"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := append([]string{"render"}, tc.args...)
			if tc.field != "watch" {
				args = append(args, src)
			}
			args = append(args, "-o", filepath.Join(dir, "out.png"))

			res := execute(t, strings.NewReader("x"), args...)
			var verr *snaperrors.ValidationError
			require.ErrorAs(t, res.err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestRenderMissingFile(t *testing.T) {
	res := execute(t, nil, "render", filepath.Join(t.TempDir(), "nope.cs"))
	var serr *snaperrors.SourceError
	require.ErrorAs(t, res.err, &serr)
}

func TestRenderUsesConfigFile(t *testing.T) {
	dir := t.TempDir()
	src := writeSource(t, dir, "Program.cs", "int a;")
	cfgPath := filepath.Join(dir, "snap.yaml")
	out := filepath.Join(dir, "cfg.pdf")
	require.NoError(t, os.WriteFile(cfgPath, []byte("format: pdf\nscale: 1\noutput: "+out+"\n"), 0o644))

	res := execute(t, nil, "render", src, "--config", cfgPath)
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	f, err := resolveFormat(true, "pdf", "out.png", "png")
	require.NoError(t, err)
	assert.Equal(t, export.FormatPDF, f)

	f, err = resolveFormat(false, "png", "OUT.PDF", "png")
	require.NoError(t, err)
	assert.Equal(t, export.FormatPDF, f)

	f, err = resolveFormat(false, "png", "-", "pdf")
	require.NoError(t, err)
	assert.Equal(t, export.FormatPDF, f)
}
