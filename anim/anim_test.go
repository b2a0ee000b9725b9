package anim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween/ease"
)

const tol = 1e-4

func TestValueReachesTarget(t *testing.T) {
	c := NewClock()
	v := c.NewValue(0)
	v.To(10, 0.2, ease.Linear)
	assert.True(t, v.Active())
	assert.Equal(t, float32(10), v.Target())

	c.Update(0.1)
	assert.InDelta(t, 5, v.Get(), tol)

	c.Update(0.2)
	assert.Equal(t, float32(10), v.Get())
	assert.False(t, v.Active())
}

func TestValueOverrideStartsFromCurrent(t *testing.T) {
	c := NewClock()
	v := c.NewValue(0)
	v.To(10, 1, ease.Linear)
	c.Update(0.5)
	assert.InDelta(t, 5, v.Get(), tol)

	v.To(0, 1, ease.Linear)
	assert.Equal(t, float32(0), v.Target())
	c.Update(0.5)
	assert.InDelta(t, 2.5, v.Get(), tol)
	c.Update(0.5)
	assert.Equal(t, float32(0), v.Get())
}

func TestValueSnap(t *testing.T) {
	v := &Value{}
	v.To(3, 0, nil)
	assert.Equal(t, float32(3), v.Get())
	assert.False(t, v.Active())

	v.To(5, 1, nil)
	v.Set(1)
	v.Update(1)
	assert.Equal(t, float32(1), v.Get())
}

func TestValueFromTo(t *testing.T) {
	v := &Value{}
	v.FromTo(100, 200, 1, ease.Linear)
	assert.Equal(t, float32(100), v.Get())
	v.Update(0.25)
	assert.InDelta(t, 125, v.Get(), tol)
}

func TestClockIgnoresNegativeDelta(t *testing.T) {
	c := NewClock()
	v := c.NewValue(0)
	v.To(1, 1, ease.Linear)
	c.Update(-5)
	assert.Equal(t, float32(0), v.Get())
	assert.Equal(t, float32(0), c.Elapsed())
}

func TestTimeline(t *testing.T) {
	c := NewClock()
	a := c.NewValue(0)
	var started []string
	completed := 0

	tl := NewTimeline(2)
	tl.Add(0.3, func() {
		started = append(started, "fade")
		a.To(1, 0.3, ease.Linear)
	})
	tl.Add(0.5, func() { started = append(started, "grow") })
	tl.OnComplete = func() { completed++ }
	c.Track(tl)
	assert.InDelta(t, 0.8, tl.Duration(), tol)

	// paused until Play
	c.Update(5)
	assert.Empty(t, started)

	tl.Play()
	c.Update(1.9)
	assert.Empty(t, started)
	assert.True(t, tl.Playing())

	c.Update(0.2)
	assert.Equal(t, []string{"fade"}, started)

	c.Update(0.3)
	assert.Equal(t, []string{"fade", "grow"}, started)
	assert.Equal(t, 0, completed)

	c.Update(1)
	assert.Equal(t, 1, completed)
	assert.True(t, tl.Done())
	assert.False(t, tl.Playing())

	c.Update(1)
	assert.Equal(t, 1, completed)
}

func TestTimelineLargeStep(t *testing.T) {
	tl := NewTimeline(0)
	n := 0
	tl.Add(0.1, func() { n++ }).Add(0.1, func() { n++ }).Add(0.1, func() { n++ })
	done := false
	tl.OnComplete = func() { done = true }
	tl.Play()
	tl.Update(10)
	assert.Equal(t, 3, n)
	assert.True(t, done)
}
