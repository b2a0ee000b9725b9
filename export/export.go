// Package export saves the drawing layer as PNG or PDF.
package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/ha1tch/pencilpad/raster"
	"github.com/ha1tch/pencilpad/sketch"
)

// Page is the drawing area being exported, in window pixels.
type Page struct {
	Bounds  sketch.Bounds
	Strokes []sketch.Stroke
}

// PNG renders the page on a white background.
func PNG(w io.Writer, page Page) error {
	width, height := int(page.Bounds.Width), int(page.Bounds.Height)
	if width < 1 || height < 1 {
		return fmt.Errorf("empty page %dx%d", width, height)
	}

	// Draw strokes in page coordinates
	c := raster.NewCanvas(width, height)
	for _, s := range page.Strokes {
		shifted := shift(s, -page.Bounds.X, -page.Bounds.Y)
		c.Fill(&shifted)
	}

	out := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), &image.Uniform{color.White}, image.Point{}, draw.Src)
	draw.Draw(out, out.Bounds(), c.Image, image.Point{}, draw.Over)
	return png.Encode(w, out)
}

// PDF writes the page as vector paths, one point per pixel.
func PDF(w io.Writer, page Page) error {
	width, height := float64(page.Bounds.Width), float64(page.Bounds.Height)
	if width < 1 || height < 1 {
		return fmt.Errorf("empty page %gx%g", width, height)
	}
	// gofpdf swaps a custom size for "L", so the page size alone decides the shape
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.AddPage()

	ox, oy := float64(page.Bounds.X), float64(page.Bounds.Y)
	for _, s := range page.Strokes {
		segs := s.Segments
		if len(segs) < 2 {
			continue
		}
		pdf.SetFillColor(int(s.Fill.R), int(s.Fill.G), int(s.Fill.B))
		pdf.MoveTo(float64(segs[0].Point.X)-ox, float64(segs[0].Point.Y)-oy)
		n := len(segs)
		last := n - 1
		if s.Closed {
			last = n
		}
		for i := 1; i <= last; i++ {
			from, to := segs[i-1], segs[i%n]
			pdf.CurveBezierCubicTo(
				float64(from.Point.X+from.Out.X)-ox, float64(from.Point.Y+from.Out.Y)-oy,
				float64(to.Point.X+to.In.X)-ox, float64(to.Point.Y+to.In.Y)-oy,
				float64(to.Point.X)-ox, float64(to.Point.Y)-oy,
			)
		}
		pdf.ClosePath()
		pdf.DrawPath("F")
	}
	return pdf.Output(w)
}

// Files writes page.png and page.pdf into dir with a timestamped name and
// returns the two paths.
func Files(dir string, page Page, now time.Time) (string, string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", "", err
	}
	base := filepath.Join(dir, "sketch-"+now.Format("20060102-150405"))
	pngPath, pdfPath := base+".png", base+".pdf"
	if err := writeFile(pngPath, page, PNG); err != nil {
		return "", "", err
	}
	if err := writeFile(pdfPath, page, PDF); err != nil {
		return "", "", err
	}
	return pngPath, pdfPath, nil
}

func writeFile(path string, page Page, enc func(io.Writer, Page) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := enc(f, page); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", filepath.Base(path), err)
	}
	return f.Close()
}

func shift(s sketch.Stroke, dx, dy float32) sketch.Stroke {
	out := s
	out.Segments = make([]sketch.Segment, len(s.Segments))
	for i, seg := range s.Segments {
		seg.Point.X += dx
		seg.Point.Y += dy
		out.Segments[i] = seg
	}
	return out
}
