// Package draw defines the 2D canvas that windows and programs paint onto.
//
// Nothing in the simulation depends on a rendering backend; the ebiten
// implementation lives in package render and tests use drawtest.Recorder.
package draw

import (
	"image/color"

	"interstellar/internal/geom"
)

// Blend selects how a draw call is composited onto the destination.
type Blend int

const (
	BlendNormal   Blend = iota // source-over
	BlendAdd                   // additive, used for the explosion flash
	BlendMultiply              // multiply, used for the selected-icon tint
)

func (b Blend) String() string {
	switch b {
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	default:
		return "normal"
	}
}

// Surface is an abstract drawing target. Coordinates are screen pixels.
type Surface interface {
	FillRect(r geom.Rect, c color.Color, blend Blend)
	StrokeRect(r geom.Rect, width float64, c color.Color)
	Line(from, to geom.Vec, width float64, c color.Color)
	FillCircle(center geom.Vec, radius float64, c color.Color, blend Blend)
	FillPolygon(points []geom.Vec, c color.Color)
	DrawSprite(s *Sprite, at geom.Vec, blend Blend)
	// DrawText renders str at the given point size, centred on center.
	DrawText(str string, size float64, center geom.Vec, c color.Color)
	// Clip returns a surface sharing this one's coordinates whose drawing is
	// limited to r.
	Clip(r geom.Rect) Surface
}
