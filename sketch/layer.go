package sketch

// Layer is the persistent drawing: the strokes that have been finished, in
// the order they were finished. Strokes are copied in and never changed.
type Layer struct {
	strokes  []Stroke
	revision int
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Add appends a copy of a finished stroke.
func (l *Layer) Add(s Stroke) {
	l.strokes = append(l.strokes, s.clone())
	l.revision++
}

// Strokes returns a copy of the finished strokes. Changing the result never
// changes the layer.
func (l *Layer) Strokes() []Stroke {
	out := make([]Stroke, len(l.strokes))
	for i := range l.strokes {
		out[i] = l.strokes[i].clone()
	}
	return out
}

// Len returns the number of finished strokes.
func (l *Layer) Len() int {
	return len(l.strokes)
}

// Clear drops every stroke.
func (l *Layer) Clear() {
	if len(l.strokes) == 0 {
		return
	}
	l.strokes = nil
	l.revision++
}

// Revision changes every time the layer content changes.
func (l *Layer) Revision() int {
	return l.revision
}
