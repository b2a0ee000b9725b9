package sketch

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecorder() (*Recorder, *Layer) {
	layer := NewLayer()
	r := NewRecorder(layer)
	r.SetBounds(Bounds{X: 0, Y: 0, Width: 100, Height: 100})
	return r, layer
}

func TestBoundsContains(t *testing.T) {
	b := Bounds{X: 50, Y: 50, Width: 100, Height: 20}
	assert.True(t, b.Contains(rl.NewVector2(50, 50)))
	assert.True(t, b.Contains(rl.NewVector2(150, 70)))
	assert.False(t, b.Contains(rl.NewVector2(49.9, 60)))
	assert.False(t, b.Contains(rl.NewVector2(100, 71)))
}

func TestRecorderClosedStroke(t *testing.T) {
	r, layer := newRecorder()

	require.True(t, r.Begin(rl.NewVector2(10, 10)))
	assert.True(t, r.Drawing())
	assert.True(t, r.Extend(rl.NewVector2(12, 11)))
	assert.True(t, r.Extend(rl.NewVector2(20, 15)))
	r.End(rl.NewVector2(22, 16))

	assert.False(t, r.Drawing())
	assert.Nil(t, r.Current())
	require.Equal(t, 1, layer.Len())

	s := layer.Strokes()[0]
	assert.True(t, s.Closed)
	assert.GreaterOrEqual(t, len(s.Segments), 5)
	assert.Len(t, s.Segments, 6)
	assert.Equal(t, DefaultFill, s.Fill)
	assert.NotEmpty(t, s.ID)

	pts := s.Points()
	assert.Equal(t, rl.NewVector2(22, 16), pts[len(pts)-1])
}

func TestRecorderOffsetPoints(t *testing.T) {
	r, _ := newRecorder()
	r.Angle = 0
	r.Begin(rl.NewVector2(10, 10))
	r.Extend(rl.NewVector2(20, 10))

	pts := r.Current().Points()
	require.Len(t, pts, 3)
	// middle (15,10), half delta (5,0)
	assert.InDelta(t, 10, pts[0].X, 1e-4)
	assert.InDelta(t, 10, pts[1].X, 1e-4)
	assert.InDelta(t, 20, pts[2].X, 1e-4)
}

func TestRecorderAngleBias(t *testing.T) {
	r, _ := newRecorder()
	r.Begin(rl.NewVector2(10, 10))
	r.Extend(rl.NewVector2(20, 10))

	pts := r.Current().Points()
	require.Len(t, pts, 3)
	top, bottom := pts[2], pts[0]
	// the offset is rotated clockwise on screen, so the appended point sits below the path
	assert.Greater(t, top.Y, float32(10))
	assert.Less(t, bottom.Y, float32(10))
	assert.InDelta(t, 15, (top.X+bottom.X)/2, 1e-4)
	assert.InDelta(t, 10, (top.Y+bottom.Y)/2, 1e-4)
}

func TestRecorderForcedEnd(t *testing.T) {
	r, layer := newRecorder()
	r.Begin(rl.NewVector2(10, 10))

	assert.False(t, r.Extend(rl.NewVector2(200, 10)))
	assert.False(t, r.Drawing())
	require.Equal(t, 1, layer.Len())

	s := layer.Strokes()[0]
	assert.False(t, s.Closed)
	assert.Len(t, s.Segments, 1)
}

func TestRecorderEndOutsideLeavesOpen(t *testing.T) {
	r, layer := newRecorder()
	r.Begin(rl.NewVector2(10, 10))
	r.Extend(rl.NewVector2(30, 30))
	r.End(rl.NewVector2(-5, 30))

	s := layer.Strokes()[0]
	assert.False(t, s.Closed)
	assert.Len(t, s.Segments, 3)
}

func TestRecorderWithoutBegin(t *testing.T) {
	r, layer := newRecorder()
	rev := layer.Revision()

	assert.False(t, r.Extend(rl.NewVector2(12, 12)))
	r.End(rl.NewVector2(12, 12))

	assert.Zero(t, layer.Len())
	assert.Equal(t, rev, layer.Revision())
	assert.False(t, r.Drawing())
}

func TestRecorderBeginTwice(t *testing.T) {
	r, _ := newRecorder()
	assert.True(t, r.Begin(rl.NewVector2(1, 1)))
	assert.False(t, r.Begin(rl.NewVector2(5, 5)))
	assert.Equal(t, rl.NewVector2(1, 1), r.Current().Points()[0])
}

func TestRecorderBoundsChange(t *testing.T) {
	r, layer := newRecorder()
	r.Begin(rl.NewVector2(10, 10))
	r.Extend(rl.NewVector2(80, 80))
	assert.True(t, r.Drawing())

	r.SetBounds(Bounds{X: 0, Y: 0, Width: 50, Height: 50})
	r.Extend(rl.NewVector2(80, 80))
	assert.False(t, r.Drawing())
	assert.Equal(t, 1, layer.Len())
}

func TestLayerKeepsCopies(t *testing.T) {
	r, layer := newRecorder()
	r.Begin(rl.NewVector2(10, 10))
	r.Extend(rl.NewVector2(20, 20))
	r.End(rl.NewVector2(25, 25))

	want := layer.Strokes()[0]
	got := layer.Strokes()
	got[0].Segments[0].Point = rl.NewVector2(-1, -1)
	got[0].Segments = append(got[0].Segments[:1], got[0].Segments[2:]...)
	assert.Equal(t, want, layer.Strokes()[0])
	assert.Len(t, layer.Strokes()[0].Segments, 4)

	s := Stroke{Segments: []Segment{{Point: rl.NewVector2(1, 1)}}}
	layer.Add(s)
	s.Segments[0].Point = rl.NewVector2(-1, -1)
	assert.Equal(t, rl.NewVector2(1, 1), layer.Strokes()[1].Segments[0].Point)

	rev := layer.Revision()
	layer.Clear()
	assert.Zero(t, layer.Len())
	assert.NotEqual(t, rev, layer.Revision())
	rev = layer.Revision()
	layer.Clear()
	assert.Equal(t, rev, layer.Revision())
}

func TestSmoothClampsHandles(t *testing.T) {
	s := &Stroke{}
	s.add(rl.NewVector2(0, 0))
	s.add(rl.NewVector2(120, 0))
	s.add(rl.NewVector2(240, 0))
	s.Smooth(10)
	for _, seg := range s.Segments {
		assert.InDelta(t, 10, rl.Vector2Length(seg.Out), 1e-4)
		assert.Equal(t, rl.Vector2Negate(seg.Out), seg.In)
	}

	s.Smooth(100)
	assert.InDelta(t, 40, s.Segments[1].Out.X, 1e-4)
	assert.InDelta(t, 20, s.Segments[0].Out.X, 1e-4)
}

func TestToolThresholds(t *testing.T) {
	tool := NewTool()
	tool.Down(rl.NewVector2(0, 0))

	assert.Empty(t, tool.Drag(rl.NewVector2(3, 0)))
	assert.Equal(t, rl.NewVector2(0, 0), tool.Last())

	got := tool.Drag(rl.NewVector2(6, 0))
	assert.Equal(t, []rl.Vector2{rl.NewVector2(6, 0)}, got)

	got = tool.Drag(rl.NewVector2(76, 0))
	require.Len(t, got, 3)
	assert.InDelta(t, 36, got[0].X, 1e-4)
	assert.InDelta(t, 66, got[1].X, 1e-4)
	assert.Equal(t, rl.NewVector2(76, 0), got[2])
}
