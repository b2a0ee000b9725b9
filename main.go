package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/pencilpad/anim"
	"github.com/ha1tch/pencilpad/assets"
	"github.com/ha1tch/pencilpad/config"
	"github.com/ha1tch/pencilpad/export"
	"github.com/ha1tch/pencilpad/pad"
	"github.com/ha1tch/pencilpad/pencil"
	"github.com/ha1tch/pencilpad/pointer"
	"github.com/ha1tch/pencilpad/render"
	"github.com/ha1tch/pencilpad/shadow"
	"github.com/ha1tch/pencilpad/sketch"
)

// App is everything the frame loop needs.
type App struct {
	conf   *config.Config
	loader *assets.Loader
	layer  *sketch.Layer
	rec    *sketch.Recorder
	scene  *render.Scene
	view   *render.View
	pad    *pad.Coordinator

	lastMouse rl.Vector2
}

func NewApp(conf *config.Config) (*App, error) {
	fill, err := config.ParseColor(conf.Stroke.Color)
	if err != nil {
		return nil, err
	}
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()

	tracker := pointer.NewTracker(float32(w), float32(h))
	clock := anim.NewClock()
	layer := sketch.NewLayer()

	rec := sketch.NewRecorder(layer)
	rec.Fill = fill
	rec.Angle = conf.Stroke.Angle
	rec.Smoothing = conf.Stroke.Smoothing

	tool := sketch.NewTool()
	tool.MinDistance = conf.Stroke.MinDistance
	tool.MaxDistance = conf.Stroke.MaxDistance

	pose := pencil.New(tracker, clock, float32(conf.Canvas.Width), float32(conf.Canvas.Height))
	pose.Camera.Position.Z = conf.Camera.Distance
	pose.Camera.Fovy = conf.Camera.Fovy
	sh := shadow.New(tracker, clock)

	loader := assets.NewLoader(conf.Assets.CacheDir)
	scene := render.NewScene(pose, loader, conf.Assets.PencilOBJ, conf.Assets.PencilMTL)
	view := render.NewView(scene, rec, sh, loader, conf.Assets.ShadowSVG)
	view.Caption = conf.Intro.Caption

	coord := pad.New(pad.Parts{
		Tracker:  tracker,
		Clock:    clock,
		Recorder: rec,
		Tool:     tool,
		Pencil:   pose,
		Shadow:   sh,
		Scene:    scene,
		View:     view,
	}, pad.Options{Margin: conf.Margin, IntroDelay: conf.Intro.Delay})
	view.Chrome = coord

	app := &App{
		conf:   conf,
		loader: loader,
		layer:  layer,
		rec:    rec,
		scene:  scene,
		view:   view,
		pad:    coord,
	}
	coord.Resize(w, h)
	coord.Start(struct {
		*render.Scene
		*render.View
	}{scene, view})
	return app, nil
}

// Update handles window and input events for one frame.
func (app *App) Update() {
	app.loader.Poll()

	if rl.IsWindowResized() {
		app.pad.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	mouse := rl.GetMousePosition()
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		app.pad.PointerDown(mouse)
	}
	if mouse != app.lastMouse {
		app.pad.PointerMove(mouse)
		app.lastMouse = mouse
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		app.pad.PointerUp(mouse)
	}

	ctrl := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
	if ctrl && rl.IsKeyPressed(rl.KeyS) {
		app.Export()
	}
	if !ctrl && rl.IsKeyPressed(rl.KeyC) && app.pad.State() == pad.Idle {
		app.layer.Clear()
		log.Println("Cleared drawing")
	}
}

// Export saves the finished strokes inside the drawing bounds.
func (app *App) Export() {
	page := export.Page{Bounds: app.rec.Bounds(), Strokes: app.layer.Strokes()}
	pngPath, pdfPath, err := export.Files(app.conf.ExportDir, page, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't export drawing: %v\n", err)
		return
	}
	log.Printf("Exported %s and %s\n", pngPath, pdfPath)
}

func (app *App) Unload() {
	app.view.Unload()
	app.scene.Unload()
}

func main() {
	opt := parseCLIOpts()

	if opt.doLog {
		log.SetOutput(os.Stdout)
		rl.SetTraceLogLevel(rl.LogInfo)
	} else {
		log.SetOutput(io.Discard)
		rl.SetTraceLogLevel(rl.LogWarning)
	}

	file := opt.configFile
	if file == "" {
		file = config.Path()
	}
	if err := config.InitializeIfNot(file); err != nil {
		fmt.Fprintf(os.Stderr, "Couldn't initialize config: %v\n", err)
		os.Exit(1)
	}
	conf, err := config.Read(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if opt.exportDir != "" {
		conf.ExportDir = opt.exportDir
	}
	log.Printf("Using config %s\n", file)

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagVsyncHint | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(conf.Window.Width), int32(conf.Window.Height), conf.Window.Title)
	rl.SetTargetFPS(60)

	app, err := NewApp(conf)
	if err != nil {
		rl.CloseWindow()
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	for !rl.WindowShouldClose() {
		app.Update()
		app.pad.Tick(rl.GetFrameTime())
	}

	// Clean up
	app.Unload()
	rl.CloseWindow()
}
