// Package sketch turns pointer drags into filled freehand strokes and keeps
// the finished ones in a drawing layer.
package sketch

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bounds is the region strokes may be drawn in. Edges are inside.
type Bounds struct {
	X, Y, Width, Height float32
}

// Contains reports whether p lies inside the bounds.
func (b Bounds) Contains(p rl.Vector2) bool {
	return p.X >= b.X && p.X <= b.X+b.Width &&
		p.Y >= b.Y && p.Y <= b.Y+b.Height
}

// Rectangle returns the bounds as a raylib rectangle.
func (b Bounds) Rectangle() rl.Rectangle {
	return rl.Rectangle{X: b.X, Y: b.Y, Width: b.Width, Height: b.Height}
}

// Segment is one vertex of a stroke outline with its curve handles. In and
// Out are relative to Point.
type Segment struct {
	Point rl.Vector2
	In    rl.Vector2
	Out   rl.Vector2
}

// Stroke is a filled outline.
type Stroke struct {
	ID       string
	Segments []Segment
	Fill     color.RGBA
	Closed   bool
}

// Points returns the outline vertices.
func (s *Stroke) Points() []rl.Vector2 {
	pts := make([]rl.Vector2, len(s.Segments))
	for i, seg := range s.Segments {
		pts[i] = seg.Point
	}
	return pts
}

func (s *Stroke) add(p rl.Vector2) {
	s.Segments = append(s.Segments, Segment{Point: p})
}

func (s *Stroke) insert(p rl.Vector2) {
	s.Segments = append([]Segment{{Point: p}}, s.Segments...)
}

func (s *Stroke) clone() Stroke {
	c := *s
	c.Segments = append([]Segment(nil), s.Segments...)
	return c
}

// Smooth recomputes the curve handles of every segment so the outline passes
// through its points with continuous tangents. Each handle is a sixth of the
// chord between the neighbouring points, clamped to radius. The ends use
// their single neighbour.
func (s *Stroke) Smooth(radius float32) {
	n := len(s.Segments)
	if n < 2 {
		return
	}
	for i := range s.Segments {
		prev, next := i-1, i+1
		if prev < 0 {
			prev = i
		}
		if next >= n {
			next = i
		}
		chord := rl.Vector2Subtract(s.Segments[next].Point, s.Segments[prev].Point)
		out := clampLength(rl.Vector2Scale(chord, 1.0/6), radius)
		s.Segments[i].Out = out
		s.Segments[i].In = rl.Vector2Negate(out)
	}
}

func clampLength(v rl.Vector2, max float32) rl.Vector2 {
	l := rl.Vector2Length(v)
	if max <= 0 || l <= max {
		return v
	}
	return rl.Vector2Scale(v, max/l)
}
