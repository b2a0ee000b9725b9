package sketch

import rl "github.com/gen2brain/raylib-go/raylib"

// Default capture thresholds.
const (
	DefaultMinDistance = 5
	DefaultMaxDistance = 30
)

// Tool filters raw drag samples. Samples closer than MinDistance to the last
// accepted point are dropped; samples further than MaxDistance are reached in
// several steps of at most MaxDistance. A zero threshold disables it.
type Tool struct {
	MinDistance float32
	MaxDistance float32

	last rl.Vector2
}

// NewTool creates a tool with the default thresholds.
func NewTool() *Tool {
	return &Tool{MinDistance: DefaultMinDistance, MaxDistance: DefaultMaxDistance}
}

// Down resets the tool at the press point.
func (t *Tool) Down(p rl.Vector2) {
	t.last = p
}

// Last returns the last accepted point.
func (t *Tool) Last() rl.Vector2 {
	return t.last
}

// Drag returns the points accepted for the raw sample p, possibly none.
func (t *Tool) Drag(p rl.Vector2) []rl.Vector2 {
	var out []rl.Vector2
	for {
		v := rl.Vector2Subtract(p, t.last)
		d := rl.Vector2Length(v)
		if d == 0 || d < t.MinDistance {
			return out
		}
		next := p
		if t.MaxDistance > 0 && d > t.MaxDistance {
			next = rl.Vector2Add(t.last, rl.Vector2Scale(v, t.MaxDistance/d))
		}
		t.last = next
		out = append(out, next)
		if next == p {
			return out
		}
	}
}
