// Package render draws onto ebiten images through the draw.Surface
// interface.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"interstellar/internal/draw"
	"interstellar/internal/geom"
)

// blendMultiply scales the destination colour by the source colour and
// leaves destination alpha alone.
var blendMultiply = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
	BlendFactorSourceAlpha:      ebiten.BlendFactorZero,
	BlendFactorDestinationRGB:   ebiten.BlendFactorZero,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOne,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

func toEbiten(b draw.Blend) ebiten.Blend {
	switch b {
	case draw.BlendAdd:
		return ebiten.BlendLighter
	case draw.BlendMultiply:
		return blendMultiply
	default:
		return ebiten.BlendSourceOver
	}
}

type spriteEntry struct {
	img       *ebiten.Image
	rev       uint64
	lastFrame uint64
}

// Renderer owns the GPU-side resources shared across frames: the font and
// uploaded copies of sprites.
type Renderer struct {
	font    *text.GoTextFaceSource
	faces   map[float64]*text.GoTextFace
	sprites map[*draw.Sprite]*spriteEntry
	white   *ebiten.Image
	frame   uint64
}

// NewRenderer loads the embedded UI font.
func NewRenderer() (*Renderer, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Renderer{
		font:    src,
		faces:   make(map[float64]*text.GoTextFace),
		sprites: make(map[*draw.Sprite]*spriteEntry),
		white:   white,
	}, nil
}

// Begin starts a frame on dst. Sprites that were not drawn during the
// previous frame are released.
func (r *Renderer) Begin(dst *ebiten.Image) draw.Surface {
	for s, e := range r.sprites {
		if e.lastFrame < r.frame {
			e.img.Deallocate()
			delete(r.sprites, s)
		}
	}
	r.frame++
	return &Screen{r: r, dst: dst}
}

// Sprites returns the number of sprites currently uploaded.
func (r *Renderer) Sprites() int { return len(r.sprites) }

func (r *Renderer) face(size float64) *text.GoTextFace {
	f, ok := r.faces[size]
	if !ok {
		f = &text.GoTextFace{Source: r.font, Size: size}
		r.faces[size] = f
	}
	return f
}

// upload returns the GPU copy of s, rewriting its pixels when the sprite has
// been invalidated since the last upload.
func (r *Renderer) upload(s *draw.Sprite) *ebiten.Image {
	e, ok := r.sprites[s]
	if !ok {
		b := s.Image().Bounds()
		e = &spriteEntry{img: ebiten.NewImage(b.Dx(), b.Dy()), rev: s.Revision() + 1}
		r.sprites[s] = e
	}
	if e.rev != s.Revision() {
		e.img.WritePixels(s.Image().Pix)
		e.rev = s.Revision()
	}
	e.lastFrame = r.frame
	return e.img
}

// Screen is a draw.Surface over one ebiten image.
type Screen struct {
	r   *Renderer
	dst *ebiten.Image
}

var _ draw.Surface = (*Screen)(nil)

func f32(v float64) float32 { return float32(v) }

func (s *Screen) FillRect(rect geom.Rect, c color.Color, blend draw.Blend) {
	if blend == draw.BlendNormal {
		vector.DrawFilledRect(s.dst, f32(rect.X), f32(rect.Y), f32(rect.W), f32(rect.H), c, false)
		return
	}
	op := &ebiten.DrawImageOptions{Blend: toEbiten(blend)}
	op.GeoM.Scale(rect.W, rect.H)
	op.GeoM.Translate(rect.X, rect.Y)
	op.ColorScale.ScaleWithColor(c)
	s.dst.DrawImage(s.r.white, op)
}

func (s *Screen) StrokeRect(rect geom.Rect, width float64, c color.Color) {
	vector.StrokeRect(s.dst, f32(rect.X), f32(rect.Y), f32(rect.W), f32(rect.H), f32(width), c, false)
}

func (s *Screen) Line(from, to geom.Vec, width float64, c color.Color) {
	if width <= 0 {
		return
	}
	vector.StrokeLine(s.dst, f32(from.X), f32(from.Y), f32(to.X), f32(to.Y), f32(width), c, true)
}

func (s *Screen) FillCircle(center geom.Vec, radius float64, c color.Color, blend draw.Blend) {
	if radius <= 0 {
		return
	}
	if blend == draw.BlendNormal {
		vector.DrawFilledCircle(s.dst, f32(center.X), f32(center.Y), f32(radius), c, true)
		return
	}
	var path vector.Path
	path.Arc(f32(center.X), f32(center.Y), f32(radius), 0, 2*math.Pi, vector.Clockwise)
	path.Close()
	s.fillPath(&path, c, toEbiten(blend))
}

func (s *Screen) FillPolygon(points []geom.Vec, c color.Color) {
	if len(points) < 3 {
		return
	}
	var path vector.Path
	path.MoveTo(f32(points[0].X), f32(points[0].Y))
	for _, p := range points[1:] {
		path.LineTo(f32(p.X), f32(p.Y))
	}
	path.Close()
	s.fillPath(&path, c, ebiten.BlendSourceOver)
}

func (s *Screen) fillPath(path *vector.Path, c color.Color, blend ebiten.Blend) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{Blend: blend, AntiAlias: true}
	s.dst.DrawTriangles(vs, is, s.r.white, op)
}

func (s *Screen) DrawSprite(sp *draw.Sprite, at geom.Vec, blend draw.Blend) {
	op := &ebiten.DrawImageOptions{Blend: toEbiten(blend)}
	op.GeoM.Translate(at.X, at.Y)
	s.dst.DrawImage(s.r.upload(sp), op)
}

func (s *Screen) DrawText(str string, size float64, center geom.Vec, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(center.X, center.Y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(s.dst, str, s.r.face(size), op)
}

// Clip returns a surface over the part of the destination inside rect.
// Coordinates are unchanged.
func (s *Screen) Clip(rect geom.Rect) draw.Surface {
	b := image.Rect(
		int(math.Floor(rect.X)), int(math.Floor(rect.Y)),
		int(math.Ceil(rect.Right())), int(math.Ceil(rect.Bottom())),
	).Intersect(s.dst.Bounds())
	return &Screen{r: s.r, dst: s.dst.SubImage(b).(*ebiten.Image)}
}
