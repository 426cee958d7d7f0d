package export

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

func sample(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		img.SetRGBA(x, h/2, color.RGBA{R: 0xc7, G: 0x92, B: 0xea, A: 0xff})
	}
	return img
}

func TestPageFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		w, h        float64
		want        Page
		isLandscape bool
	}{
		{name: "wide", w: 800, h: 400, want: Page{Width: 600, Height: 300, Orientation: "L"}, isLandscape: true},
		{name: "tall", w: 400, h: 800, want: Page{Width: 300, Height: 600, Orientation: "P"}},
		{name: "square is portrait", w: 500, h: 500, want: Page{Width: 375, Height: 375, Orientation: "P"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PageFor(tt.w, tt.h)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.isLandscape, got.Landscape())
		})
	}
}

func TestFileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "code.png", FileName("", FormatPNG))
	assert.Equal(t, "code.pdf", FileName("   ", FormatPDF))
	assert.Equal(t, "Program.cs.png", FileName(" Program.cs ", FormatPNG))
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	f, err := ParseFormat(" PDF ")
	require.NoError(t, err)
	assert.Equal(t, FormatPDF, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	_, err = ParseFormat("svg")
	var verr *snaperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "format", verr.Field)
}

func TestWritePNGRoundTrips(t *testing.T) {
	t.Parallel()

	src := sample(40, 20)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, src))

	decoded, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, src.Bounds(), decoded.Bounds())
	r, g, b, a := decoded.At(3, 10).RGBA()
	assert.Equal(t, []uint32{0xc7c7, 0x9292, 0xeaea, 0xffff}, []uint32{r, g, b, a})
}

func TestWritePDFPageGeometry(t *testing.T) {
	t.Parallel()

	var landscape bytes.Buffer
	require.NoError(t, WritePDF(&landscape, sample(400, 200), 200, 100))
	assert.True(t, bytes.HasPrefix(landscape.Bytes(), []byte("%PDF-")))
	assert.Contains(t, landscape.String(), "/MediaBox [0 0 150.00 75.00]")

	var portrait bytes.Buffer
	require.NoError(t, WritePDF(&portrait, sample(200, 400), 100, 200))
	assert.Contains(t, portrait.String(), "/MediaBox [0 0 75.00 150.00]")
}

func TestWritePDFIsDeterministic(t *testing.T) {
	t.Parallel()

	var first, second bytes.Buffer
	require.NoError(t, WritePDF(&first, sample(60, 30), 30, 15))
	require.NoError(t, WritePDF(&second, sample(60, 30), 30, 15))
	assert.Equal(t, first.Bytes(), second.Bytes())
}

func TestWritePDFRejectsEmptyPage(t *testing.T) {
	t.Parallel()

	err := WritePDF(&bytes.Buffer{}, sample(1, 1), 0, 10)
	var eerr *snaperrors.ExportError
	require.ErrorAs(t, err, &eerr)
	assert.Equal(t, "pdf", eerr.Format)
}

func TestWriteDispatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FormatPNG, sample(4, 4), 2, 2))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))

	err := Write(&buf, Format("gif"), sample(4, 4), 2, 2)
	require.Error(t, err)

	err = Write(failingWriter{}, FormatPNG, sample(4, 4), 2, 2)
	var eerr *snaperrors.ExportError
	require.ErrorAs(t, err, &eerr)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
