// Package shadow animates the flat shadow drawn under the pencil.
//
// The shadow hangs below the pointer on an arm that pivots at the pointer,
// so turning the arm as the pencil crosses the window keeps the light
// apparently coming from the top right. It darkens and tucks in when the
// pencil touches the pad and fades and stretches when it lifts.
package shadow

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween/ease"

	"github.com/ha1tch/pencilpad/anim"
	"github.com/ha1tch/pencilpad/pointer"
)

const (
	StartAngle    = -25 // degrees
	RotationRange = 90  // degrees across the window width
	BaseScale     = 0.6

	initialOffset  = 85
	initialOpacity = 0.5

	nearOpacity = 0.4
	nearOffset  = 105
	nearScaleY  = 1
	farOpacity  = 0.1
	farOffset   = 205
	farScaleY   = 1.2
	fadeTime    = 0.2
)

// Loader imports the shadow graphic and calls done once it is available.
// A failed import never calls done.
type Loader interface {
	LoadShadow(done func())
}

// State is a snapshot of the shadow.
type State struct {
	Position rl.Vector2 // pivot, at the pointer
	Rotation float32    // degrees, clockwise
	Opacity  float32
	OffsetY  float32 // graphic center below the pivot, before rotation
	ScaleY   float32 // vertical stretch on top of BaseScale
}

// Pose is the shadow's animated state.
type Pose struct {
	view     *pointer.Tracker
	pos      rl.Vector2
	rotation float32
	opacity  *anim.Value
	offsetY  *anim.Value
	scaleY   *anim.Value
	near     bool
	loaded   bool
}

// New creates a shadow that follows the pointer over view.
func New(view *pointer.Tracker, clock *anim.Clock) *Pose {
	return &Pose{
		view:     view,
		rotation: StartAngle,
		opacity:  clock.NewValue(initialOpacity),
		offsetY:  clock.NewValue(initialOffset),
		scaleY:   clock.NewValue(1),
	}
}

// Load asks loader for the graphic. Once it arrives the shadow is placed and
// sent far from the pad.
func (p *Pose) Load(loader Loader) {
	loader.LoadShadow(func() {
		if p.loaded {
			return
		}
		p.loaded = true
		p.offsetY.Set(initialOffset)
		p.opacity.Set(initialOpacity)
		p.GoFar()
	})
}

// Loaded reports whether the graphic has arrived.
func (p *Pose) Loaded() bool {
	return p.loaded
}

// Near reports whether the shadow was last sent near the pad.
func (p *Pose) Near() bool {
	return p.near
}

// Move pins the shadow to the pointer and turns it for the pointer's
// horizontal position.
func (p *Pose) Move(x, y float32) {
	if !p.loaded {
		return
	}
	rangeX, _ := p.view.Range(x, y)
	p.rotation = StartAngle - RotationRange*rangeX
	p.pos = rl.NewVector2(x, y)
}

// GoNear darkens the shadow and pulls it in under the pencil.
func (p *Pose) GoNear() {
	if !p.loaded {
		return
	}
	p.near = true
	p.opacity.To(nearOpacity, fadeTime, ease.OutQuad)
	p.offsetY.To(nearOffset, fadeTime, ease.OutExpo)
	p.scaleY.To(nearScaleY, fadeTime, ease.OutExpo)
}

// GoFar lightens the shadow and pushes it away from the pencil.
func (p *Pose) GoFar() {
	if !p.loaded {
		return
	}
	p.near = false
	p.opacity.To(farOpacity, fadeTime, ease.OutQuad)
	p.offsetY.To(farOffset, fadeTime, ease.InOutQuad)
	p.scaleY.To(farScaleY, fadeTime, ease.InOutQuad)
}

// State returns the current shadow.
func (p *Pose) State() State {
	return State{
		Position: p.pos,
		Rotation: p.rotation,
		Opacity:  p.opacity.Get(),
		OffsetY:  p.offsetY.Get(),
		ScaleY:   p.scaleY.Get(),
	}
}

// Center returns where the middle of the graphic lands on screen.
func (s State) Center() rl.Vector2 {
	arm := rl.Vector2Rotate(rl.NewVector2(0, s.OffsetY), s.Rotation*rl.Deg2rad)
	return rl.Vector2Add(s.Position, arm)
}

// Dest returns the destination rectangle and origin for drawing a w x h
// texture of the graphic rotated by s.Rotation around the pivot.
func (s State) Dest(w, h float32) (rl.Rectangle, rl.Vector2) {
	dw := w * BaseScale
	dh := h * BaseScale * s.ScaleY
	dest := rl.Rectangle{X: s.Position.X, Y: s.Position.Y, Width: dw, Height: dh}
	origin := rl.NewVector2(dw/2, dh/2-s.OffsetY)
	return dest, origin
}
