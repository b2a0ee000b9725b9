// Package raster fills stroke outlines and renders SVG graphics into RGBA
// images that the window can upload as textures.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/ha1tch/pencilpad/sketch"
)

// Canvas is an RGBA image with a filler bound to it.
type Canvas struct {
	Image  *image.RGBA
	filler *rasterx.Filler
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	f := rasterx.NewFiller(width, height, scanner)
	f.SetWinding(true)
	return &Canvas{Image: img, filler: f}
}

// Size returns the canvas size in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.Image.Bounds()
	return b.Dx(), b.Dy()
}

// Reset clears every pixel to transparent.
func (c *Canvas) Reset() {
	clear(c.Image.Pix)
}

// Fill draws one stroke.
func (c *Canvas) Fill(s *sketch.Stroke) {
	segs := s.Segments
	if len(segs) < 2 {
		return
	}
	c.filler.Clear()
	c.filler.SetColor(s.Fill)
	c.filler.Start(toFixed(segs[0].Point.X, segs[0].Point.Y))
	for i := 1; i < len(segs); i++ {
		curve(c.filler, segs[i-1], segs[i])
	}
	if s.Closed {
		curve(c.filler, segs[len(segs)-1], segs[0])
	}
	c.filler.Stop(true)
	c.filler.Draw()
}

// FillAll draws strokes in order.
func (c *Canvas) FillAll(strokes []sketch.Stroke) {
	for i := range strokes {
		c.Fill(&strokes[i])
	}
}

func curve(f *rasterx.Filler, from, to sketch.Segment) {
	f.CubeBezier(
		toFixed(from.Point.X+from.Out.X, from.Point.Y+from.Out.Y),
		toFixed(to.Point.X+to.In.X, to.Point.Y+to.In.Y),
		toFixed(to.Point.X, to.Point.Y),
	)
}

func toFixed(x, y float32) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(x) * 64)),
		Y: fixed.Int26_6(math.Round(float64(y) * 64)),
	}
}

// Icon renders an SVG document at its view box size times scale.
func Icon(r io.Reader, scale float64) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(icon.ViewBox.W * scale))
	h := int(math.Ceil(icon.ViewBox.H * scale))
	if w < 1 || h < 1 {
		return nil, fmt.Errorf("svg has an empty view box (%gx%g)", icon.ViewBox.W, icon.ViewBox.H)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.SetTarget(0, 0, float64(w), float64(h))
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}

// Pixels returns img's pixels as a slice of colors, row by row.
func Pixels(img *image.RGBA) []color.RGBA {
	b := img.Bounds()
	out := make([]color.RGBA, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := 0; x < b.Dx(); x++ {
			i := x * 4
			out = append(out, color.RGBA{R: row[i], G: row[i+1], B: row[i+2], A: row[i+3]})
		}
	}
	return out
}
