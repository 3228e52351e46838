// Package drawtest provides a draw.Surface that records calls for tests.
package drawtest

import (
	"image/color"

	"interstellar/internal/draw"
	"interstellar/internal/geom"
)

// Kind names a recorded draw call.
type Kind string

const (
	KindFillRect    Kind = "fill_rect"
	KindStrokeRect  Kind = "stroke_rect"
	KindLine        Kind = "line"
	KindFillCircle  Kind = "fill_circle"
	KindFillPolygon Kind = "fill_polygon"
	KindSprite      Kind = "sprite"
	KindText        Kind = "text"
	KindClip        Kind = "clip"
)

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind   Kind
	Rect   geom.Rect
	From   geom.Vec
	To     geom.Vec
	Radius float64
	Width  float64
	Points []geom.Vec
	Sprite *draw.Sprite
	Text   string
	Size   float64
	Color  color.Color
	Blend  draw.Blend
}

// Recorder implements draw.Surface by appending every call to Ops.
type Recorder struct {
	Ops []Op
}

var _ draw.Surface = (*Recorder)(nil)

func (r *Recorder) FillRect(rect geom.Rect, c color.Color, blend draw.Blend) {
	r.Ops = append(r.Ops, Op{Kind: KindFillRect, Rect: rect, Color: c, Blend: blend})
}

func (r *Recorder) StrokeRect(rect geom.Rect, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindStrokeRect, Rect: rect, Width: width, Color: c})
}

func (r *Recorder) Line(from, to geom.Vec, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindLine, From: from, To: to, Width: width, Color: c})
}

func (r *Recorder) FillCircle(center geom.Vec, radius float64, c color.Color, blend draw.Blend) {
	r.Ops = append(r.Ops, Op{Kind: KindFillCircle, From: center, Radius: radius, Color: c, Blend: blend})
}

func (r *Recorder) FillPolygon(points []geom.Vec, c color.Color) {
	pts := append([]geom.Vec(nil), points...)
	r.Ops = append(r.Ops, Op{Kind: KindFillPolygon, Points: pts, Color: c})
}

func (r *Recorder) DrawSprite(s *draw.Sprite, at geom.Vec, blend draw.Blend) {
	r.Ops = append(r.Ops, Op{Kind: KindSprite, Sprite: s, From: at, Blend: blend})
}

func (r *Recorder) DrawText(str string, size float64, center geom.Vec, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: KindText, Text: str, Size: size, From: center, Color: c})
}

// Clip records the clip rect and keeps recording into the same list.
func (r *Recorder) Clip(rect geom.Rect) draw.Surface {
	r.Ops = append(r.Ops, Op{Kind: KindClip, Rect: rect})
	return r
}

// Filter returns the recorded ops of the given kind, in call order.
func (r *Recorder) Filter(kind Kind) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards everything recorded so far.
func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }
