package draw

import (
	"image/color"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"
)

// LerpRGB interpolates two colours channel by channel. Channels are clamped
// to the valid range, t is not.
func LerpRGB(a, b color.RGBA, t float64) color.RGBA {
	ca, _ := colorful.MakeColor(opaque(a))
	cb, _ := colorful.MakeColor(opaque(b))
	r, g, bl := ca.BlendRgb(cb, t).Clamped().RGB255()
	alpha := float64(a.A) + (float64(b.A)-float64(a.A))*t
	return color.RGBA{R: r, G: g, B: bl, A: clampByte(alpha)}
}

// Brightness scales the RGB channels of c by t, clamped to [0, 255].
func Brightness(c color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * t),
		G: clampByte(float64(c.G) * t),
		B: clampByte(float64(c.B) * t),
		A: c.A,
	}
}

// WithAlpha returns c with its alpha replaced. c is treated as straight
// (non-premultiplied) colour.
func WithAlpha(c color.RGBA, a uint8) color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: a}
}

// RandomHue returns an opaque colour with a uniformly random hue.
func RandomHue(rng *rand.Rand, saturation, value float64) color.RGBA {
	r, g, b := colorful.Hsv(rng.Float64()*360, saturation, value).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// RandomGray returns an opaque gray of random intensity.
func RandomGray(rng *rand.Rand) color.RGBA {
	v := uint8(rng.IntN(256))
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}

func clampByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v + 0.5)
	}
}
