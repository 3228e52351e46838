package particle

import (
	"interstellar/internal/draw"
	"interstellar/internal/geom"
)

// Emitter owns a list of particles and paces spawning against an external
// clock, normally a window's open timer.
type Emitter struct {
	// Interval is the minimum clock time between two Due results.
	Interval float64

	particles []Particle
	lastSpawn float64
}

// NewEmitter returns an empty emitter spawning every interval seconds.
func NewEmitter(interval float64) *Emitter {
	return &Emitter{Interval: interval}
}

// Due reports whether at least Interval has passed on the clock since the
// last time it returned true, and records now as the spawn time if so.
func (e *Emitter) Due(now float64) bool {
	if now-e.lastSpawn < e.Interval {
		return false
	}
	e.lastSpawn = now
	return true
}

// Emit adds particles to the list.
func (e *Emitter) Emit(ps ...Particle) {
	e.particles = append(e.particles, ps...)
}

// Update advances every live particle and then compacts the list so only
// live particles remain.
func (e *Emitter) Update(dt float64) {
	n := 0
	for i := range e.particles {
		p := &e.particles[i]
		if p.Alive() {
			p.Update(dt)
		}
		if p.Alive() {
			e.particles[n] = *p
			n++
		}
	}
	clear(e.particles[n:])
	e.particles = e.particles[:n]
}

// Draw paints every live particle offset by origin.
func (e *Emitter) Draw(s draw.Surface, origin geom.Vec) {
	for i := range e.particles {
		if e.particles[i].Alive() {
			e.particles[i].Draw(s, origin)
		}
	}
}

// Len returns the number of particles held.
func (e *Emitter) Len() int { return len(e.particles) }

// Particles exposes the current list. Callers must not retain it across
// Update calls.
func (e *Emitter) Particles() []Particle { return e.particles }

// Reset drops every particle and restarts the spawn clock.
func (e *Emitter) Reset() {
	e.particles = e.particles[:0]
	e.lastSpawn = 0
}
