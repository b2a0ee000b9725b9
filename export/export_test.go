package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ha1tch/pencilpad/sketch"
)

func page() Page {
	s := sketch.Stroke{Fill: sketch.DefaultFill, Closed: true}
	for _, p := range []rl.Vector2{{X: 60, Y: 60}, {X: 90, Y: 60}, {X: 90, Y: 90}, {X: 60, Y: 90}} {
		s.Segments = append(s.Segments, sketch.Segment{Point: p})
	}
	dot := sketch.Stroke{Fill: sketch.DefaultFill, Segments: []sketch.Segment{{Point: rl.NewVector2(70, 70)}}}
	return Page{
		Bounds:  sketch.Bounds{X: 50, Y: 50, Width: 100, Height: 80},
		Strokes: []sketch.Stroke{s, dot},
	}
}

func TestPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PNG(&buf, page()))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())

	r, g, b, a := img.At(25, 25).RGBA()
	assert.Equal(t, [4]uint32{0x4242, 0x4242, 0x4242, 0xffff}, [4]uint32{r, g, b, a})
	assert.Equal(t, color.RGBAModel.Convert(color.White), color.RGBAModel.Convert(img.At(2, 2)))
}

func TestPDF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, PDF(&buf, page()))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

func TestEmptyPage(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, PNG(&buf, Page{}))
	assert.Error(t, PDF(&buf, Page{}))
}

func TestFiles(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)
	pngPath, pdfPath, err := Files(dir, page(), now)
	require.NoError(t, err)
	assert.Contains(t, pngPath, "sketch-20261017-093000.png")

	for _, p := range []string{pngPath, pdfPath} {
		st, err := os.Stat(p)
		require.NoError(t, err)
		assert.NotZero(t, st.Size())
	}
}
