// Package export encodes rendered snippets as PNG images or single-page
// PDF documents.
package export

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	snaperrors "github.com/alexisbeaulieu97/snapcode/pkg/errors"
)

// PxToPt converts CSS pixels (96 DPI) to PDF points (72 DPI).
const PxToPt = 0.75

// DefaultBaseName names exported files when no filename is supplied.
const DefaultBaseName = "code"

// Format is an export file format.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Formats lists the supported formats.
func Formats() []Format {
	return []Format{FormatPNG, FormatPDF}
}

// ParseFormat accepts a format name case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatPNG, FormatPDF:
		return f, nil
	case "":
		return FormatPNG, nil
	default:
		return "", snaperrors.NewValidationError("format", fmt.Sprintf("unsupported format %q (want png or pdf)", name), nil)
	}
}

// FileName returns the download name for a snippet: the trimmed name or
// DefaultBaseName, followed by the format extension.
func FileName(name string, format Format) string {
	base := strings.TrimSpace(name)
	if base == "" {
		base = DefaultBaseName
	}
	return base + "." + string(format)
}

// Page is the PDF page geometry for a canvas.
type Page struct {
	Width       float64
	Height      float64
	Orientation string
}

// Landscape reports whether the page is wider than tall.
func (p Page) Landscape() bool {
	return p.Orientation == "L"
}

// PageFor sizes a page in points for a canvas measured in CSS pixels.
// Pages are landscape only when strictly wider than tall.
func PageFor(widthPx, heightPx float64) Page {
	p := Page{Width: widthPx * PxToPt, Height: heightPx * PxToPt, Orientation: "P"}
	if p.Width > p.Height {
		p.Orientation = "L"
	}
	return p
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return snaperrors.NewExportError(string(FormatPNG), "", err)
	}
	return nil
}

// WritePDF writes a single-page PDF whose page is the canvas size converted
// to points, with img stretched over the whole page.
func WritePDF(w io.Writer, img image.Image, widthPx, heightPx float64) error {
	if widthPx <= 0 || heightPx <= 0 {
		return snaperrors.NewExportError(string(FormatPDF), "", fmt.Errorf("invalid page size %gx%g", widthPx, heightPx))
	}
	page := PageFor(widthPx, heightPx)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return snaperrors.NewExportError(string(FormatPDF), "", err)
	}

	// fpdf swaps the supplied size for landscape, so pass it portrait-ordered.
	size := fpdf.SizeType{Wd: min(page.Width, page.Height), Ht: max(page.Width, page.Height)}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: page.Orientation,
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("snapcode", true)
	pdf.SetCreationDate(time.Unix(0, 0).UTC())
	pdf.SetCatalogSort(true)
	pdf.AddPage()

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("snippet", opts, &buf)
	pdf.ImageOptions("snippet", 0, 0, page.Width, page.Height, false, opts, 0, "")

	if err := pdf.Output(w); err != nil {
		return snaperrors.NewExportError(string(FormatPDF), "", err)
	}
	return nil
}

// Write dispatches to WritePNG or WritePDF.
func Write(w io.Writer, format Format, img image.Image, widthPx, heightPx float64) error {
	switch format {
	case FormatPNG:
		return WritePNG(w, img)
	case FormatPDF:
		return WritePDF(w, img, widthPx, heightPx)
	default:
		return snaperrors.NewExportError(string(format), "", fmt.Errorf("unsupported format"))
	}
}
