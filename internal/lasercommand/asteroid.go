package lasercommand

import (
	"image"

	"interstellar/internal/draw"
	"interstellar/internal/geom"
	"interstellar/internal/mask"
)

// Asteroid is a falling rock whose coverage mask is chipped away by hits.
// Pos is the centre in content-area coordinates.
type Asteroid struct {
	Pos    geom.Vec
	Goal   geom.Vec
	Speed  float64
	Radius float64
	Alive  bool
	Mask   *mask.Mask

	art    *image.RGBA  // undamaged rendering
	sprite *draw.Sprite // art with the mask applied
}

// NewAsteroid builds an asteroid from its rendered art. The mask starts as
// the art's alpha coverage.
func NewAsteroid(art *image.RGBA, pos, goal geom.Vec, speed, radius float64) *Asteroid {
	a := &Asteroid{
		Pos:    pos,
		Goal:   goal,
		Speed:  speed,
		Radius: radius,
		Alive:  true,
		Mask:   mask.FromAlpha(art, mask.DefaultThreshold),
		art:    art,
		sprite: draw.NewSprite(image.NewRGBA(art.Bounds())),
	}
	a.refresh()
	return a
}

// TopLeft is the sprite origin in content coordinates.
func (a *Asteroid) TopLeft() geom.Vec {
	return a.Pos.Sub(a.sprite.Size().Scale(0.5))
}

// Sprite returns the damaged rendering.
func (a *Asteroid) Sprite() *draw.Sprite { return a.sprite }

// Move steps toward Goal at Speed, stopping on it. A zero-length direction
// leaves the asteroid where it is.
func (a *Asteroid) Move(dt float64) {
	delta := a.Goal.Sub(a.Pos)
	dir, ok := delta.Normalize()
	if !ok {
		return
	}
	step := a.Speed * dt
	if step >= delta.Len() {
		a.Pos = a.Goal
		return
	}
	a.Pos = a.Pos.Add(dir.Scale(step))
}

// Hit reports whether a shot at target lands. Only the nominal radius
// counts, not the current mask shape.
func (a *Asteroid) Hit(target geom.Vec) bool {
	return a.Pos.Dist(target) < a.Radius
}

// Damage clears a disc around target from the mask and keeps only the
// largest surviving region.
func (a *Asteroid) Damage(target geom.Vec, radius float64) {
	a.Mask.ClearCircle(target.Sub(a.TopLeft()), radius)
	a.Mask.KeepLargest()
	a.refresh()
}

// Intact returns the number of pixels left.
func (a *Asteroid) Intact() int { return a.Mask.Count() }

func (a *Asteroid) refresh() {
	a.Mask.ApplyTo(a.sprite.Image(), a.art)
	a.sprite.Invalidate()
}
