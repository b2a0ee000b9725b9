// Package pencil computes where the 3D pencil sits for a pointer position.
//
// The pencil hovers over a working plane at world Z = 0. Its X and Y follow
// the pointer by casting a ray from the camera through the pointer and
// intersecting it with that plane; its Z is animated separately between the
// touching and lifted heights. Rotation tilts toward the pointer's offset from
// the window center.
package pencil

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween/ease"

	"github.com/ha1tch/pencilpad/anim"
	"github.com/ha1tch/pencilpad/pointer"
)

const (
	TouchZ      = 0
	LiftedZ     = 2
	depthTime   = 0.2
	turnTime    = 0.2
	ModelScale  = 1.5
	RangeX      = 100 // degrees of yaw across the window width
	RangeY      = 30  // degrees of pitch across the window height
	RollFactor  = 200 // degrees of roll across the window height
	defaultNear = 0.1
	defaultFar  = 1000
)

// Loader loads the pencil mesh and material and calls done once both are
// available. A failed load never calls done.
type Loader interface {
	LoadPencil(done func())
}

// State is a snapshot of the pose.
type State struct {
	Position rl.Vector3
	Rotation rl.Vector3
	Touching bool
}

// Pose is the pencil's position, rotation and touching state.
type Pose struct {
	Camera rl.Camera3D
	Near   float32
	Far    float32

	view    *pointer.Tracker
	canvasW float32
	canvasH float32

	x, y       float32
	z          *anim.Value
	rx, ry, rz *anim.Value
	touching   bool
	loaded     bool
}

// DefaultCamera is the camera the pencil is seen through: 25 units in front
// of the working plane, looking at the origin.
func DefaultCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 25),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

// New creates a pose rendered into a canvasW x canvasH target while the
// pointer moves over the window described by view.
func New(view *pointer.Tracker, clock *anim.Clock, canvasW, canvasH float32) *Pose {
	return &Pose{
		Camera:  DefaultCamera(),
		Near:    defaultNear,
		Far:     defaultFar,
		view:    view,
		canvasW: canvasW,
		canvasH: canvasH,
		z:       clock.NewValue(LiftedZ),
		rx:      clock.NewValue(0),
		ry:      clock.NewValue(0),
		rz:      clock.NewValue(0),
	}
}

// Load asks loader for the model. When it arrives the pencil is lifted and
// onReady runs, once.
func (p *Pose) Load(loader Loader, onReady func()) {
	loader.LoadPencil(func() {
		if p.loaded {
			return
		}
		p.loaded = true
		p.ExitDrawing()
		if onReady != nil {
			onReady()
		}
	})
}

// Loaded reports whether the model has arrived.
func (p *Pose) Loaded() bool {
	return p.loaded
}

// Touching reports whether the pencil is on the pad.
func (p *Pose) Touching() bool {
	return p.touching
}

// Canvas returns the size of the 3D render target.
func (p *Pose) Canvas() (float32, float32) {
	return p.canvasW, p.canvasH
}

// EnterDrawing lowers the pencil onto the pad.
func (p *Pose) EnterDrawing() {
	p.touching = true
	p.z.To(TouchZ, depthTime, ease.OutExpo)
}

// ExitDrawing lifts the pencil off the pad.
func (p *Pose) ExitDrawing() {
	p.touching = false
	p.z.To(LiftedZ, depthTime, ease.InOutQuad)
}

// Move places the pencil under the pointer at (x, y) window pixels and starts
// turning it toward the matching tilt. It does nothing before the model is
// loaded.
func (p *Pose) Move(x, y float32) {
	if !p.loaded {
		return
	}
	pos := p.Unproject(x, y)
	p.x, p.y = pos.X, pos.Y

	rangeX, rangeY := p.view.Range(x, y)
	p.ry.To(rangeX*RangeX*rl.Deg2rad, turnTime, ease.OutQuad)
	p.rx.To(rangeY*RangeY*rl.Deg2rad, turnTime, ease.OutQuad)
	p.rz.To(rangeY*RollFactor*rl.Deg2rad, turnTime, ease.OutQuad)
}

// Unproject returns the point on the working plane under window pixel (x, y).
//
// The ray leaves the camera through the pointer's spot on the image plane,
// built from the camera basis. The pointer is normalized against the window
// but the camera projects into the render canvas, so the ray is stretched by
// window/canvas before it is intersected with the plane.
func (p *Pose) Unproject(x, y float32) rl.Vector3 {
	w, h := p.view.Width, p.view.Height
	if w == 0 || h == 0 || p.canvasW == 0 || p.canvasH == 0 {
		return rl.Vector3{}
	}
	ndcX := x/w*2 - 1
	ndcY := 1 - y/h*2

	cam := p.Camera.Position
	fwd := rl.Vector3Normalize(rl.Vector3Subtract(p.Camera.Target, cam))
	right := rl.Vector3Normalize(rl.Vector3CrossProduct(fwd, p.Camera.Up))
	up := rl.Vector3CrossProduct(right, fwd)

	tan := float32(math.Tan(float64(p.Camera.Fovy) * math.Pi / 360))
	aspect := p.canvasW / p.canvasH
	dir := rl.Vector3Add(fwd, rl.Vector3Add(
		rl.Vector3Scale(right, ndcX*tan*aspect),
		rl.Vector3Scale(up, ndcY*tan),
	))
	dir = rl.Vector3Normalize(dir)
	dir.X *= w / p.canvasW
	dir.Y *= h / p.canvasH
	if dir.Z == 0 {
		return rl.Vector3{X: cam.X, Y: cam.Y}
	}
	distance := -cam.Z / dir.Z
	return rl.Vector3Add(cam, rl.Vector3Scale(dir, distance))
}

// State returns the current pose.
func (p *Pose) State() State {
	return State{
		Position: rl.NewVector3(p.x, p.y, p.z.Get()),
		Rotation: rl.NewVector3(p.rx.Get(), p.ry.Get(), p.rz.Get()),
		Touching: p.touching,
	}
}

// Transform is the model matrix for the pencil mesh: the mesh is scaled and
// given a quarter turn about X, then the pose rotation (Euler XYZ) and
// translation apply.
func (p *Pose) Transform() rl.Matrix {
	s := p.State()
	m := rl.MatrixMultiply(rl.MatrixScale(ModelScale, ModelScale, ModelScale), rl.MatrixRotateX(90*rl.Deg2rad))
	m = rl.MatrixMultiply(m, rl.MatrixRotateZ(s.Rotation.Z))
	m = rl.MatrixMultiply(m, rl.MatrixRotateY(s.Rotation.Y))
	m = rl.MatrixMultiply(m, rl.MatrixRotateX(s.Rotation.X))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(s.Position.X, s.Position.Y, s.Position.Z))
}
