// Package raster paints a layout scene onto an RGBA image.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/alexisbeaulieu97/snapcode/internal/layout"
	"github.com/alexisbeaulieu97/snapcode/internal/theme"
)

// kappa places cubic control points so four segments approximate a circle.
const kappa = 0.5522847498

// FaceSource builds font faces for text runs. Sizes are device pixels.
type FaceSource interface {
	Face(style layout.TextStyle) (font.Face, error)
}

// Rasterize paints scene at the given device pixel ratio. The canvas starts
// fully transparent and primitives paint in order.
func Rasterize(scene layout.Scene, faces FaceSource, scale float64) (*image.RGBA, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("invalid scale %g", scale)
	}

	w := int(math.Ceil(scene.Width * scale))
	h := int(math.Ceil(scene.Height * scale))
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("invalid canvas %dx%d", w, h)
	}

	p := &painter{dst: image.NewRGBA(image.Rect(0, 0, w, h)), faces: faces, scale: scale}
	for i, prim := range scene.Primitives {
		var err error
		switch v := prim.(type) {
		case layout.RoundedRect:
			err = p.roundedRect(v)
		case layout.Circle:
			err = p.circle(v)
		case layout.Text:
			err = p.text(v)
		default:
			err = fmt.Errorf("unsupported primitive %T", prim)
		}
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
	}
	return p.dst, nil
}

type painter struct {
	dst   *image.RGBA
	faces FaceSource
	scale float64
}

func (p *painter) fill(hex string, path func(z *vector.Rasterizer)) error {
	c, err := theme.RGBA(hex)
	if err != nil {
		return err
	}
	p.fillOn(p.dst, c, path)
	return nil
}

func (p *painter) fillOn(dst draw.Image, c color.Color, path func(z *vector.Rasterizer)) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	path(z)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func (p *painter) roundedRect(r layout.RoundedRect) error {
	s := float32(p.scale)
	x, y, w, h := float32(r.X)*s, float32(r.Y)*s, float32(r.W)*s, float32(r.H)*s
	radius := float32(r.Radius) * s
	if limit := min(w, h) / 2; radius > limit {
		radius = limit
	}

	if r.Shadow != nil {
		if err := p.shadow(r.Shadow, x, y, w, h, radius); err != nil {
			return err
		}
	}
	return p.fill(r.Fill, func(z *vector.Rasterizer) { roundedPath(z, x, y, w, h, radius) })
}

// shadow paints the blurred silhouette of the shape offset beneath it.
func (p *painter) shadow(sh *layout.Shadow, x, y, w, h, radius float32) error {
	c, err := theme.RGBA(sh.Color)
	if err != nil {
		return err
	}

	s := float32(p.scale)
	dx, dy := float32(sh.OffsetX)*s, float32(sh.OffsetY)*s

	mask := image.NewRGBA(p.dst.Bounds())
	p.fillOn(mask, c, func(z *vector.Rasterizer) { roundedPath(z, x+dx, y+dy, w, h, radius) })

	var src image.Image = mask
	if sigma := sh.Blur * p.scale / 2; sigma > 0 {
		src = imaging.Blur(mask, sigma)
	}
	draw.Draw(p.dst, p.dst.Bounds(), src, image.Point{}, draw.Over)
	return nil
}

func roundedPath(z *vector.Rasterizer, x, y, w, h, r float32) {
	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.QuadTo(x+w, y, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.QuadTo(x+w, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.QuadTo(x, y+h, x, y+h-r)
	z.LineTo(x, y+r)
	z.QuadTo(x, y, x+r, y)
	z.ClosePath()
}

func (p *painter) circle(c layout.Circle) error {
	s := float32(p.scale)
	cx, cy, r := float32(c.CX)*s, float32(c.CY)*s, float32(c.R)*s
	k := r * kappa
	return p.fill(c.Fill, func(z *vector.Rasterizer) {
		z.MoveTo(cx+r, cy)
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
		z.ClosePath()
	})
}

func (p *painter) text(t layout.Text) error {
	if t.Text == "" {
		return nil
	}
	c, err := theme.RGBA(t.Color)
	if err != nil {
		return err
	}

	style := t.Style
	style.Size *= p.scale
	face, err := p.faces.Face(style)
	if err != nil {
		return err
	}
	defer face.Close()

	d := font.Drawer{Dst: p.dst, Src: image.NewUniform(c), Face: face}

	x := fixed.Int26_6(math.Round(t.X * p.scale * 64))
	if t.Align == layout.AlignCenter {
		x -= d.MeasureString(t.Text) / 2
	}

	y := fixed.Int26_6(math.Round(t.Y * p.scale * 64))
	if t.Baseline == layout.BaselineTop {
		y += face.Metrics().Ascent
	}

	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(t.Text)
	return nil
}
