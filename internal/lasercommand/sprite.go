package lasercommand

import (
	"image"
	"image/color"
	"math"
	"math/rand/v2"

	"interstellar/internal/draw"
)

// palette is rolled fresh for every round.
type palette struct {
	sky        color.RGBA
	ground     color.RGBA
	rockLight  color.RGBA
	rockDark   color.RGBA
	trailStart color.RGBA
	trailEnd   color.RGBA
}

func newPalette(rng *rand.Rand) palette {
	sky := color.RGBA{0x0a, 0x0a, 0x1e, 0xff}
	rock := draw.RandomHue(rng, 0.35, 0.8)
	return palette{
		sky:        sky,
		ground:     color.RGBA{0x28, 0x3c, 0x28, 0xff},
		rockLight:  rock,
		rockDark:   draw.Brightness(rock, 0.4),
		trailStart: draw.RandomHue(rng, 0.8, 1.0),
		trailEnd:   sky,
	}
}

// renderAsteroid draws a lumpy cratered rock filling a square of side
// 2*radius. Pixels outside the rock are fully transparent.
func renderAsteroid(rng *rand.Rand, radius float64, pal palette) *image.RGBA {
	side := int(math.Ceil(radius * 2))
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	c := float64(side) / 2

	var phase [3]float64
	for i := range phase {
		phase[i] = rng.Float64() * 2 * math.Pi
	}
	outline := func(theta float64) float64 {
		n := 0.5*math.Sin(3*theta+phase[0]) + 0.3*math.Sin(5*theta+phase[1]) + 0.2*math.Sin(7*theta+phase[2])
		return radius * (0.85 + 0.15*n)
	}

	type crater struct{ x, y, r float64 }
	craters := make([]crater, 4)
	for i := range craters {
		a := rng.Float64() * 2 * math.Pi
		d := rng.Float64() * radius * 0.55
		craters[i] = crater{
			x: c + math.Cos(a)*d,
			y: c + math.Sin(a)*d,
			r: radius * (0.12 + rng.Float64()*0.13),
		}
	}

	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			dist := math.Hypot(dx, dy)
			if dist > outline(math.Atan2(dy, dx)) {
				continue
			}
			shade := 0.9 - 0.4*dist/radius - 0.25*(dx+dy)/(radius*math.Sqrt2)
			col := draw.LerpRGB(pal.rockDark, pal.rockLight, math.Max(0, math.Min(1, shade)))
			for _, cr := range craters {
				if math.Hypot(float64(x)+0.5-cr.x, float64(y)+0.5-cr.y) < cr.r {
					col = draw.Brightness(col, 0.7)
					break
				}
			}
			img.SetRGBA(x, y, col)
		}
	}
	return img
}
