// Package input captures the pointer state once per frame.
package input

import "interstellar/internal/geom"

// Pointer is an immutable snapshot of the primary pointer for one frame.
type Pointer struct {
	Pos         geom.Vec
	Pressed     bool // button held this frame
	JustPressed bool // button went down this frame
}

// Next builds the snapshot that follows prev given the raw pointer state,
// deriving the pressed edge from the previous frame.
func Next(prev Pointer, pos geom.Vec, pressed bool) Pointer {
	return Pointer{
		Pos:         pos,
		Pressed:     pressed,
		JustPressed: pressed && !prev.Pressed,
	}
}
