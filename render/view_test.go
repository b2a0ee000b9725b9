package render

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func TestCanvasDest(t *testing.T) {
	assert.Equal(t, rl.Rectangle{X: -320, Y: -140, Width: 1920, Height: 1080}, canvasDest(1280, 800, 1920, 1080))
	assert.Equal(t, rl.Rectangle{X: 0, Y: 0, Width: 1920, Height: 1080}, canvasDest(1920, 1080, 1920, 1080))
	assert.Equal(t, rl.Rectangle{X: 40, Y: 10, Width: 20, Height: 80}, canvasDest(100, 100, 20, 80))
}

func TestCaptionPos(t *testing.T) {
	x, y := captionPos(1280, 800, 200, 20)
	assert.Equal(t, int32(540), x)
	assert.Equal(t, int32(390), y)
}
