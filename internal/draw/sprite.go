package draw

import (
	"image"
	stddraw "image/draw"

	"interstellar/internal/geom"
)

// Sprite is a CPU-side RGBA bitmap. Code that edits the pixels in place must
// call Invalidate so backends holding a GPU copy re-upload it.
type Sprite struct {
	img *image.RGBA
	rev uint64
}

// NewSprite wraps img without copying it.
func NewSprite(img *image.RGBA) *Sprite {
	return &Sprite{img: img}
}

// SpriteFromImage copies any image into a new zero-origin RGBA sprite.
func SpriteFromImage(src image.Image) *Sprite {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	stddraw.Draw(dst, dst.Bounds(), src, b.Min, stddraw.Src)
	return NewSprite(dst)
}

func (s *Sprite) Image() *image.RGBA { return s.img }
func (s *Sprite) Revision() uint64   { return s.rev }
func (s *Sprite) Invalidate()        { s.rev++ }

// Size returns the sprite dimensions in pixels.
func (s *Sprite) Size() geom.Vec {
	b := s.img.Bounds()
	return geom.V(float64(b.Dx()), float64(b.Dy()))
}
