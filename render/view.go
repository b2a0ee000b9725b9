package render

import (
	"context"
	"image"
	"log"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/pencilpad/assets"
	"github.com/ha1tch/pencilpad/raster"
	"github.com/ha1tch/pencilpad/shadow"
	"github.com/ha1tch/pencilpad/sketch"
)

const captionSize = 20

// Chrome is the animated frame around the drawing.
type Chrome interface {
	Pad() sketch.Bounds
	CaptionOpacity() float32
}

// View is the 2D pass.
type View struct {
	Chrome     Chrome
	Scene      *Scene
	Recorder   *sketch.Recorder
	Shadow     *shadow.Pose
	Caption    string
	Background rl.Color
	Paper      rl.Color

	assets *assets.Loader
	svg    string

	width, height int
	layer         *raster.Canvas
	stroke        *raster.Canvas
	layerTex      rl.Texture2D
	strokeTex     rl.Texture2D
	layerRev      int
	layerCount    int
	strokeRev     int

	shadowTex    rl.Texture2D
	shadowLoaded bool
}

// NewView creates the 2D pass. svg locates the shadow graphic.
func NewView(scene *Scene, rec *sketch.Recorder, sh *shadow.Pose, loader *assets.Loader, svg string) *View {
	return &View{
		Scene:      scene,
		Recorder:   rec,
		Shadow:     sh,
		Background: rl.NewColor(0xe8, 0xe8, 0xe8, 0xff),
		Paper:      rl.White,
		assets:     loader,
		svg:        svg,
	}
}

// LoadShadow fetches and rasterizes the shadow graphic. done is called on
// the frame loop once the texture is ready.
func (v *View) LoadShadow(done func()) {
	v.assets.Fetch(context.Background(), []string{v.svg}, func(paths []string) {
		img, err := readIcon(paths[0])
		if err != nil {
			log.Printf("Couldn't import shadow %s: %v\n", paths[0], err)
			return
		}
		v.shadowTex = textureFrom(img)
		rl.SetTextureFilter(v.shadowTex, rl.FilterBilinear)
		v.shadowLoaded = true
		done()
	})
}

func readIcon(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return raster.Icon(f, 1)
}

func textureFrom(img *image.RGBA) rl.Texture2D {
	im := rl.NewImageFromImage(img)
	defer rl.UnloadImage(im)
	return rl.LoadTextureFromImage(im)
}

// Relayout reallocates the stroke textures for a width x height window and
// redraws the layer into them.
func (v *View) Relayout(width, height int) {
	if width == v.width && height == v.height && v.layer != nil {
		return
	}
	v.unloadCanvases()
	v.width, v.height = width, height
	v.layer = raster.NewCanvas(width, height)
	v.stroke = raster.NewCanvas(width, height)
	v.layerTex = textureFrom(v.layer.Image)
	v.strokeTex = textureFrom(v.stroke.Image)

	// force both to be baked on the next frame
	v.layerRev, v.layerCount = -1, 0
	v.strokeRev = -1
}

func (v *View) unloadCanvases() {
	if v.layer == nil {
		return
	}
	rl.UnloadTexture(v.layerTex)
	rl.UnloadTexture(v.strokeTex)
	v.layer, v.stroke = nil, nil
}

// bake rasterizes what changed since the last frame and uploads it.
func (v *View) bake() {
	l := v.Recorder.Layer()
	if rev := l.Revision(); rev != v.layerRev {
		strokes := l.Strokes()
		if v.layerRev < 0 || len(strokes) < v.layerCount {
			v.layer.Reset()
			v.layerCount = 0
		}
		v.layer.FillAll(strokes[v.layerCount:])
		v.layerCount = len(strokes)
		v.layerRev = rev
		rl.UpdateTexture(v.layerTex, raster.Pixels(v.layer.Image))
	}

	if rev := v.Recorder.Revision(); rev != v.strokeRev {
		v.stroke.Reset()
		if cur := v.Recorder.Current(); cur != nil {
			v.stroke.Fill(cur)
		}
		v.strokeRev = rev
		rl.UpdateTexture(v.strokeTex, raster.Pixels(v.stroke.Image))
	}
}

// Render draws one frame into the window.
func (v *View) Render() {
	if v.layer == nil {
		return
	}
	v.bake()

	rl.BeginDrawing()
	rl.ClearBackground(v.Background)

	var caption float32
	if v.Chrome != nil {
		rl.DrawRectangleRec(v.Chrome.Pad().Rectangle(), v.Paper)
		caption = v.Chrome.CaptionOpacity()
	}
	rl.DrawTexture(v.layerTex, 0, 0, rl.White)
	rl.DrawTexture(v.strokeTex, 0, 0, rl.White)

	if v.shadowLoaded {
		st := v.Shadow.State()
		w, h := float32(v.shadowTex.Width), float32(v.shadowTex.Height)
		dest, origin := st.Dest(w, h)
		src := rl.Rectangle{Width: w, Height: h}
		rl.DrawTexturePro(v.shadowTex, src, dest, origin, st.Rotation, rl.Fade(rl.White, st.Opacity))
	}

	if v.Scene != nil {
		t := v.Scene.Target.Texture
		cw, ch := float32(t.Width), float32(t.Height)
		src := rl.Rectangle{Width: cw, Height: -ch}
		rl.DrawTexturePro(t, src, canvasDest(v.width, v.height, cw, ch), rl.Vector2{}, 0, rl.White)
	}

	if caption > 0 && v.Caption != "" {
		x, y := captionPos(v.width, v.height, rl.MeasureText(v.Caption, captionSize), captionSize)
		rl.DrawText(v.Caption, x, y, captionSize, rl.Fade(rl.DarkGray, caption))
	}

	rl.EndDrawing()
}

// Unload releases the GPU resources.
func (v *View) Unload() {
	v.unloadCanvases()
	if v.shadowLoaded {
		rl.UnloadTexture(v.shadowTex)
		v.shadowLoaded = false
	}
}

// canvasDest centers a cw x ch canvas in a width x height window without
// scaling it. Larger canvases spill over every edge equally.
func canvasDest(width, height int, cw, ch float32) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(width)/2 - cw/2,
		Y:      float32(height)/2 - ch/2,
		Width:  cw,
		Height: ch,
	}
}

func captionPos(width, height int, textWidth, size int32) (int32, int32) {
	return int32(width)/2 - textWidth/2, int32(height)/2 - size/2
}
