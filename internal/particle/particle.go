// Package particle implements short-lived decaying points and the emitter
// lists that own them.
package particle

import (
	"image/color"

	"interstellar/internal/draw"
	"interstellar/internal/geom"
)

// Particle moves at constant velocity while its size and colour fade from
// their start to their end values over Lifetime seconds.
type Particle struct {
	Pos      geom.Vec
	Vel      geom.Vec
	Lifetime float64
	T        float64

	StartSize, EndSize   float64
	StartColor, EndColor color.RGBA

	Size  float64
	Color color.RGBA
}

// New returns a particle at the start of its life.
func New(pos, vel geom.Vec, startSize, endSize, lifetime float64, startColor, endColor color.RGBA) Particle {
	return Particle{
		Pos:        pos,
		Vel:        vel,
		Lifetime:   lifetime,
		StartSize:  startSize,
		EndSize:    endSize,
		StartColor: startColor,
		EndColor:   endColor,
		Size:       startSize,
		Color:      startColor,
	}
}

// Alive reports whether the particle has time left.
func (p *Particle) Alive() bool { return p.T < p.Lifetime }

// Update advances the particle by dt seconds. The interpolation ratio is not
// clamped; owners stop updating once Alive is false.
func (p *Particle) Update(dt float64) {
	p.T += dt
	ratio := p.T / p.Lifetime
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
	p.Color = draw.LerpRGB(p.StartColor, p.EndColor, ratio)
	p.Size = geom.Lerp(p.StartSize, p.EndSize, ratio)
}

// Draw paints the particle as a filled circle offset by origin.
func (p *Particle) Draw(s draw.Surface, origin geom.Vec) {
	if p.Size <= 0 {
		return
	}
	s.FillCircle(origin.Add(p.Pos), p.Size, p.Color, draw.BlendNormal)
}
