// Package pad ties pointer input to the drawing, the pencil and its shadow,
// and runs the per-frame update.
//
// The coordinator is a two state machine. A press starts a stroke and puts
// the pencil on the pad; a release, or dragging out of the drawing bounds,
// finishes the stroke and lifts the pencil. Pointer moves are eased into the
// position both the pencil and its shadow follow.
package pad

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween/ease"

	"github.com/ha1tch/pencilpad/anim"
	"github.com/ha1tch/pencilpad/pencil"
	"github.com/ha1tch/pencilpad/pointer"
	"github.com/ha1tch/pencilpad/shadow"
	"github.com/ha1tch/pencilpad/sketch"
)

type State int

const (
	Idle State = iota
	Drawing
)

func (s State) String() string {
	switch s {
	case Idle:
		return "IDLE"
	case Drawing:
		return "DRAWING"
	default:
		return "UNKNOWN"
	}
}

// Pointer easing while hovering and while drawing, in seconds.
const (
	hoverFollow = 0.25
	drawFollow  = 0.05
)

// Renderer draws one pass of a frame.
type Renderer interface {
	Render()
}

// View is the 2D pass. It is told about window size changes.
type View interface {
	Renderer
	Relayout(width, height int)
}

// Loaders fetch the pencil model and the shadow graphic.
type Loaders interface {
	pencil.Loader
	shadow.Loader
}

// Parts are the components the coordinator drives.
type Parts struct {
	Tracker  *pointer.Tracker
	Clock    *anim.Clock
	Recorder *sketch.Recorder
	Tool     *sketch.Tool
	Pencil   *pencil.Pose
	Shadow   *shadow.Pose
	Scene    Renderer
	View     View
}

// Options tune the coordinator.
type Options struct {
	Margin     float32 // gap between the window edge and the drawing bounds
	IntroDelay float32 // seconds between the pencil arriving and the intro
}

type Coordinator struct {
	Parts
	opts Options

	state       State
	x, y        *anim.Value
	intro       *anim.Timeline
	caption     *anim.Value
	padScale    *anim.Value
	interactive bool
}

// New creates a coordinator. Call Resize with the window size and Start to
// begin loading.
func New(parts Parts, opts Options) *Coordinator {
	c := &Coordinator{
		Parts:    parts,
		opts:     opts,
		x:        parts.Clock.NewValue(0),
		y:        parts.Clock.NewValue(0),
		caption:  parts.Clock.NewValue(1),
		padScale: parts.Clock.NewValue(0),
	}
	c.intro = c.newIntro()
	parts.Clock.Track(c.intro)
	return c
}

// The intro fades the caption, unfolds the pad and brings the pencil in from
// below the window. Input is accepted once it is over.
func (c *Coordinator) newIntro() *anim.Timeline {
	tl := anim.NewTimeline(c.opts.IntroDelay)
	tl.Add(0.3, func() {
		c.caption.To(0, 0.3, ease.OutQuad)
	})
	tl.Add(0.5, func() {
		c.padScale.FromTo(0, 1, 0.5, ease.InOutExpo)
	})
	tl.Add(0.7, func() {
		w, h := c.Tracker.Width, c.Tracker.Height
		c.x.FromTo(w/2, w*0.7, 0.7, ease.OutExpo)
		c.y.FromTo(h+300, h*0.5, 0.7, ease.OutExpo)
	})
	tl.OnComplete = func() {
		c.interactive = true
	}
	return tl
}

// Start asks for the shadow and the pencil. The intro plays once the pencil
// has arrived.
func (c *Coordinator) Start(loaders Loaders) {
	c.Shadow.Load(loaders)
	c.Pencil.Load(loaders, c.intro.Play)
}

// State returns the current drawing state.
func (c *Coordinator) State() State {
	return c.state
}

// Interactive reports whether pointer input is accepted.
func (c *Coordinator) Interactive() bool {
	return c.interactive
}

// Pointer returns the eased pointer position the pencil follows.
func (c *Coordinator) Pointer() rl.Vector2 {
	return rl.NewVector2(c.x.Get(), c.y.Get())
}

// CaptionOpacity is the opacity of the loading caption.
func (c *Coordinator) CaptionOpacity() float32 {
	return c.caption.Get()
}

// Pad returns the on-screen pad rectangle. During the intro it grows
// vertically from its middle.
func (c *Coordinator) Pad() sketch.Bounds {
	b := c.Recorder.Bounds()
	s := c.padScale.Get()
	h := b.Height * s
	return sketch.Bounds{X: b.X, Y: b.Y + (b.Height-h)/2, Width: b.Width, Height: h}
}

// Resize lays everything out for a new window size. It may be called at any
// time, including before the assets arrive.
func (c *Coordinator) Resize(width, height int) {
	w, h := float32(max(width, 0)), float32(max(height, 0))
	c.Tracker.Resize(w, h)

	m := c.opts.Margin
	c.Recorder.SetBounds(sketch.Bounds{
		X:      m,
		Y:      m,
		Width:  max(w-2*m, 0),
		Height: max(h-2*m, 0),
	})
	c.View.Relayout(width, height)
}

// PointerDown starts a stroke at p.
func (c *Coordinator) PointerDown(p rl.Vector2) {
	if !c.interactive || c.state != Idle {
		return
	}
	c.Tracker.Move(p)
	c.Tool.Down(p)
	c.Recorder.Begin(p)
	c.Pencil.EnterDrawing()
	c.Shadow.GoNear()
	c.state = Drawing
}

// PointerMove follows the pointer and, while drawing, extends the stroke.
func (c *Coordinator) PointerMove(p rl.Vector2) {
	if !c.interactive {
		return
	}
	c.Tracker.Move(p)

	d := float32(hoverFollow)
	if c.Pencil.Touching() {
		d = drawFollow
	}
	c.x.To(p.X, d, ease.OutQuad)
	c.y.To(p.Y, d, ease.OutQuad)

	if c.state != Drawing {
		return
	}
	for _, q := range c.Tool.Drag(p) {
		if !c.Recorder.Extend(q) {
			c.lift()
			return
		}
	}
}

// PointerUp finishes the stroke at p.
func (c *Coordinator) PointerUp(p rl.Vector2) {
	if c.state != Drawing {
		return
	}
	c.Recorder.End(p)
	c.lift()
}

func (c *Coordinator) lift() {
	c.Pencil.ExitDrawing()
	c.Shadow.GoFar()
	c.state = Idle
}

// Tick advances the animations by dt seconds and renders one frame: the 3D
// pass shows the pencil where it was, then both poses move to the eased
// pointer, then the 2D pass draws the shadow and drawing where they are now.
func (c *Coordinator) Tick(dt float32) {
	c.Clock.Update(dt)
	c.Scene.Render()
	p := c.Pointer()
	c.Pencil.Move(p.X, p.Y)
	c.Shadow.Move(p.X, p.Y)
	c.View.Render()
}
