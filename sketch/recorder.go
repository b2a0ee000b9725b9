package sketch

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
)

// Default recorder settings.
const (
	DefaultAngle     = 10 // degrees added to the half-delta offset
	DefaultSmoothing = 10 // handle clamp used by Smooth
)

// DefaultFill is the pencil lead colour (#424242).
var DefaultFill = color.RGBA{R: 0x42, G: 0x42, B: 0x42, A: 0xff}

// Recorder owns the stroke currently being drawn and moves it into the
// layer when it is finished.
//
// A pointer path is turned into a tapered outline: for every drag sample two
// points are placed on either side of the midpoint between the previous and
// the current sample, one appended and one prepended, so the outline grows
// at both ends and is filled as a single shape.
type Recorder struct {
	Fill      color.RGBA
	Angle     float32
	Smoothing float32

	layer    *Layer
	bounds   Bounds
	current  *Stroke
	last     rl.Vector2
	revision int
}

// NewRecorder creates a recorder that finishes strokes into layer.
func NewRecorder(layer *Layer) *Recorder {
	return &Recorder{
		Fill:      DefaultFill,
		Angle:     DefaultAngle,
		Smoothing: DefaultSmoothing,
		layer:     layer,
	}
}

// SetBounds sets the drawing bounds.
func (r *Recorder) SetBounds(b Bounds) {
	r.bounds = b
}

// Bounds returns the drawing bounds.
func (r *Recorder) Bounds() Bounds {
	return r.bounds
}

// Drawing reports whether a stroke is in progress.
func (r *Recorder) Drawing() bool {
	return r.current != nil
}

// Current returns the stroke in progress, or nil.
func (r *Recorder) Current() *Stroke {
	return r.current
}

// Revision changes every time the stroke in progress changes.
func (r *Recorder) Revision() int {
	return r.revision
}

// Layer returns the layer finished strokes go to.
func (r *Recorder) Layer() *Layer {
	return r.layer
}

// Begin starts a stroke at p. It returns false if a stroke is already in
// progress.
func (r *Recorder) Begin(p rl.Vector2) bool {
	if r.current != nil {
		return false
	}
	r.current = &Stroke{ID: uuid.NewString(), Fill: r.Fill}
	r.current.add(p)
	r.last = p
	r.revision++
	return true
}

// Extend grows the stroke toward p. A point outside the bounds finishes the
// stroke through End instead. It returns false when no stroke is in progress
// after the call.
func (r *Recorder) Extend(p rl.Vector2) bool {
	if r.current == nil {
		return false
	}
	if !r.bounds.Contains(p) {
		r.End(p)
		return false
	}

	delta := rl.Vector2Subtract(p, r.last)
	middle := rl.Vector2Scale(rl.Vector2Add(p, r.last), 0.5)
	step := rl.Vector2Rotate(rl.Vector2Scale(delta, 0.5), r.Angle*rl.Deg2rad)

	r.current.add(rl.Vector2Add(middle, step))
	r.current.insert(rl.Vector2Subtract(middle, step))
	r.current.Smooth(r.Smoothing)

	r.last = p
	r.revision++
	return true
}

// End finishes the stroke. A point inside the bounds is added and closes the
// outline; otherwise the outline is left open. The stroke moves to the layer.
func (r *Recorder) End(p rl.Vector2) {
	if r.current == nil {
		return
	}
	if r.bounds.Contains(p) {
		r.current.add(p)
		r.current.Closed = true
	}
	r.layer.Add(*r.current)
	r.current = nil
	r.revision++
}
