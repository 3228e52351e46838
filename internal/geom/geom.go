// Package geom holds the float geometry shared by the desktop, its windows
// and the programs running inside them.
package geom

import "math"

// Vec is a 2D point or displacement in screen pixels.
type Vec struct {
	X, Y float64
}

// V is shorthand for Vec{x, y}.
func V(x, y float64) Vec { return Vec{X: x, Y: y} }

func (v Vec) Add(o Vec) Vec             { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec             { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(f float64) Vec       { return Vec{v.X * f, v.Y * f} }
func (v Vec) Len() float64              { return math.Hypot(v.X, v.Y) }
func (v Vec) Dist(o Vec) float64        { return v.Sub(o).Len() }
func (v Vec) Lerp(o Vec, t float64) Vec { return v.Add(o.Sub(v).Scale(t)) }

// Normalize returns the unit vector of v and false when v has zero length.
func (v Vec) Normalize() (Vec, bool) {
	l := v.Len()
	if l == 0 {
		return Vec{}, false
	}
	return Vec{v.X / l, v.Y / l}, true
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, W: w, H: h} }

// RectAt builds a rect from a top-left position and a size vector.
func RectAt(pos, size Vec) Rect { return Rect{pos.X, pos.Y, size.X, size.Y} }

func (r Rect) Pos() Vec        { return Vec{r.X, r.Y} }
func (r Rect) Size() Vec       { return Vec{r.W, r.H} }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) Center() Vec     { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// Contains reports whether p lies inside r. Like pixel rects, the left and
// top edges are inclusive and the right and bottom edges exclusive.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// BottomEdge returns the two end points of the rect's bottom edge.
func (r Rect) BottomEdge() (Vec, Vec) {
	return Vec{r.X, r.Bottom()}, Vec{r.Right(), r.Bottom()}
}

// Inset shrinks r by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{r.X + d, r.Y + d, r.W - 2*d, r.H - 2*d}
}

// Lerp returns a scalar linear interpolation between a and b.
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }
