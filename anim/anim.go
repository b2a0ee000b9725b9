// Package anim drives time based property animation for the pad.
//
// Every animated property is a Value: it holds its current value and, while
// a transition is running, a gween tween from the value it had when the
// transition started toward its target. Starting a new transition on a Value
// replaces the running one, so the last target always wins and the ramp starts
// from wherever the property currently is.
//
// Values and Timelines are advanced by a shared Clock once per frame. Nothing
// in this package blocks or sleeps.
package anim

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Updater is anything the Clock advances each frame.
type Updater interface {
	Update(dt float32)
}

// Clock is the shared per-frame clock.
type Clock struct {
	items   []Updater
	elapsed float32
}

// NewClock creates an empty clock.
func NewClock() *Clock {
	return &Clock{}
}

// Track registers items to be advanced on every Update.
func (c *Clock) Track(items ...Updater) {
	c.items = append(c.items, items...)
}

// NewValue creates a Value starting at v and tracks it.
func (c *Clock) NewValue(v float32) *Value {
	val := &Value{v: v}
	c.Track(val)
	return val
}

// Update advances every tracked item by dt seconds.
func (c *Clock) Update(dt float32) {
	if dt < 0 {
		dt = 0
	}
	c.elapsed += dt
	for _, it := range c.items {
		it.Update(dt)
	}
}

// Elapsed returns the total time the clock has advanced.
func (c *Clock) Elapsed() float32 {
	return c.elapsed
}

// Value is a single animated property.
type Value struct {
	v      float32
	target float32
	tween  *gween.Tween
}

// Get returns the current value.
func (v *Value) Get() float32 {
	return v.v
}

// Target returns the value the property is heading to. When no transition
// is running it is the current value.
func (v *Value) Target() float32 {
	if v.tween == nil {
		return v.v
	}
	return v.target
}

// Active reports whether a transition is in flight.
func (v *Value) Active() bool {
	return v.tween != nil
}

// Set snaps the value and cancels any running transition.
func (v *Value) Set(x float32) {
	v.v = x
	v.target = x
	v.tween = nil
}

// To starts a transition from the current value to target over duration
// seconds. A nil easing means ease.OutQuad. A non-positive duration snaps.
func (v *Value) To(target, duration float32, easing ease.TweenFunc) {
	if duration <= 0 {
		v.Set(target)
		return
	}
	if easing == nil {
		easing = ease.OutQuad
	}
	v.target = target
	v.tween = gween.New(v.v, target, duration, easing)
}

// FromTo snaps to from and then starts a transition to target.
func (v *Value) FromTo(from, target, duration float32, easing ease.TweenFunc) {
	v.Set(from)
	v.To(target, duration, easing)
}

// Update advances the running transition, if any.
func (v *Value) Update(dt float32) {
	if v.tween == nil {
		return
	}
	cur, done := v.tween.Update(dt)
	v.v = cur
	if done {
		v.v = v.target
		v.tween = nil
	}
}
