// Package render draws the pad with raylib: a 3D pass that renders the
// pencil into an off-screen canvas and a 2D pass that composes the pad, the
// drawing, the shadow and that canvas into the window.
package render

import (
	"context"
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/pencilpad/assets"
	"github.com/ha1tch/pencilpad/pencil"
)

// Scene is the 3D pass.
type Scene struct {
	Pose   *pencil.Pose
	Target rl.RenderTexture2D

	assets *assets.Loader
	obj    string
	mtl    string
	model  rl.Model
	loaded bool
}

// NewScene creates the off-screen canvas for pose. obj and mtl locate the
// pencil mesh and its material.
func NewScene(pose *pencil.Pose, loader *assets.Loader, obj, mtl string) *Scene {
	w, h := pose.Canvas()
	return &Scene{
		Pose:   pose,
		Target: rl.LoadRenderTexture(int32(w), int32(h)),
		assets: loader,
		obj:    obj,
		mtl:    mtl,
	}
}

// LoadPencil fetches the material and the mesh and loads the model. done is
// called on the frame loop once the model is usable.
func (s *Scene) LoadPencil(done func()) {
	sources := []string{s.obj}
	if s.mtl != "" {
		sources = append(sources, s.mtl)
	}
	s.assets.Fetch(context.Background(), sources, func(paths []string) {
		model := rl.LoadModel(paths[0])
		if model.MeshCount == 0 {
			log.Printf("Pencil model %s has no meshes\n", paths[0])
			return
		}
		s.model = model
		s.loaded = true
		done()
	})
}

// Render draws the pencil at its current pose into Target.
func (s *Scene) Render() {
	rl.BeginTextureMode(s.Target)
	rl.ClearBackground(rl.Blank)
	if s.loaded {
		rl.SetClipPlanes(float64(s.Pose.Near), float64(s.Pose.Far))
		rl.BeginMode3D(s.Pose.Camera)
		s.model.Transform = s.Pose.Transform()
		rl.DrawModel(s.model, rl.Vector3{}, 1, rl.White)
		rl.EndMode3D()
	}
	rl.EndTextureMode()
}

// Unload releases the GPU resources.
func (s *Scene) Unload() {
	if s.loaded {
		rl.UnloadModel(s.model)
		s.loaded = false
	}
	rl.UnloadRenderTexture(s.Target)
}
