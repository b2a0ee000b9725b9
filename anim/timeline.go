package anim

// Timeline runs steps one after the other. Each step starts its own
// transitions when it is reached and occupies the timeline for its
// duration. A timeline is created paused; Play starts it after Delay.
type Timeline struct {
	Delay      float32
	OnComplete func()

	steps   []step
	elapsed float32
	next    int
	playing bool
	done    bool
}

type step struct {
	at    float32
	dur   float32
	start func()
}

// NewTimeline creates a paused timeline that waits delay seconds after Play.
func NewTimeline(delay float32) *Timeline {
	return &Timeline{Delay: delay}
}

// Add appends a step. start is called when the step is reached and should
// kick off the transitions that make up the step.
func (t *Timeline) Add(duration float32, start func()) *Timeline {
	t.steps = append(t.steps, step{at: t.Duration(), dur: duration, start: start})
	return t
}

// Duration is the total length of the steps, not counting Delay.
func (t *Timeline) Duration() float32 {
	if len(t.steps) == 0 {
		return 0
	}
	last := t.steps[len(t.steps)-1]
	return last.at + last.dur
}

// Play starts the timeline. Calling it again is a no-op.
func (t *Timeline) Play() {
	t.playing = true
}

// Playing reports whether the timeline has been started and is not done.
func (t *Timeline) Playing() bool {
	return t.playing && !t.done
}

// Done reports whether every step ran and OnComplete fired.
func (t *Timeline) Done() bool {
	return t.done
}

func (t *Timeline) Update(dt float32) {
	if !t.playing || t.done {
		return
	}
	t.elapsed += dt
	local := t.elapsed - t.Delay
	if local < 0 {
		return
	}
	for t.next < len(t.steps) && local >= t.steps[t.next].at {
		if s := t.steps[t.next]; s.start != nil {
			s.start()
		}
		t.next++
	}
	if t.next == len(t.steps) && local >= t.Duration() {
		t.done = true
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}
