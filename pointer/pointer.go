// Package pointer keeps the latest pointer position and window size. A single
// Tracker is shared by the components of a pad instead of package globals.
package pointer

import rl "github.com/gen2brain/raylib-go/raylib"

// Tracker holds the latest pointer sample and the window pixel size.
type Tracker struct {
	Pos    rl.Vector2
	Width  float32
	Height float32
}

// NewTracker creates a tracker for a window of the given size.
func NewTracker(width, height float32) *Tracker {
	return &Tracker{Width: width, Height: height}
}

// Move records a pointer-move sample.
func (t *Tracker) Move(p rl.Vector2) {
	t.Pos = p
}

// Resize records the new window size.
func (t *Tracker) Resize(width, height float32) {
	t.Width = width
	t.Height = height
}

// Range returns where (x, y) sits relative to the window center, as a
// fraction of the window size in [-0.5, 0.5] for points inside the window.
func (t *Tracker) Range(x, y float32) (float32, float32) {
	return ratio(x, t.Width) - 0.5, ratio(y, t.Height) - 0.5
}

// Center returns the middle of the window.
func (t *Tracker) Center() rl.Vector2 {
	return rl.Vector2{X: t.Width / 2, Y: t.Height / 2}
}

func ratio(v, size float32) float32 {
	if size == 0 {
		return 0.5
	}
	return v / size
}
