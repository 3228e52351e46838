package particle

import (
	"image/color"
	"math"
	"testing"

	"interstellar/internal/draw/drawtest"
	"interstellar/internal/geom"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
)

func TestParticle_AliveWindow(t *testing.T) {
	p := New(geom.V(0, 0), geom.V(0, 0), 4, 0, 1.0, white, black)
	if !p.Alive() {
		t.Fatalf("expected particle alive at t=0")
	}
	p.Update(0.75)
	if !p.Alive() {
		t.Fatalf("expected particle alive at t=0.75")
	}
	p.Update(0.25)
	if p.Alive() {
		t.Fatalf("expected particle dead at t=lifetime")
	}
}

func TestParticle_InterpolatesToEndValues(t *testing.T) {
	p := New(geom.V(0, 0), geom.V(10, -20), 4, 0, 0.5, white, black)
	if p.Size != 4 || p.Color != white {
		t.Fatalf("expected start values, got size=%v color=%v", p.Size, p.Color)
	}

	p.Update(0.5)
	if math.Abs(p.Size) > 1e-9 {
		t.Fatalf("expected end size 0, got %v", p.Size)
	}
	if p.Color != black {
		t.Fatalf("expected end color %v, got %v", black, p.Color)
	}
	if p.Pos != geom.V(5, -10) {
		t.Fatalf("expected position (5,-10), got %v", p.Pos)
	}
}

func TestEmitter_DuePacing(t *testing.T) {
	e := NewEmitter(0.05)
	if e.Due(0.02) {
		t.Fatalf("expected no spawn before the first interval")
	}
	if !e.Due(0.05) {
		t.Fatalf("expected spawn once the interval elapsed")
	}
	if e.Due(0.08) {
		t.Fatalf("expected no spawn 0.03s after the previous one")
	}
	if !e.Due(0.11) {
		t.Fatalf("expected spawn 0.06s after the previous one")
	}
}

func TestEmitter_SweepsDeadParticles(t *testing.T) {
	e := NewEmitter(0.05)
	e.Emit(
		New(geom.V(0, 0), geom.V(0, 0), 1, 1, 0.1, white, black),
		New(geom.V(0, 0), geom.V(0, 0), 1, 1, 1.0, white, black),
		New(geom.V(0, 0), geom.V(0, 0), 1, 1, 0.1, white, black),
	)

	e.Update(0.2)
	if e.Len() != 1 {
		t.Fatalf("expected 1 survivor, got %d", e.Len())
	}
	if e.Particles()[0].Lifetime != 1.0 {
		t.Fatalf("expected the long-lived particle to survive")
	}

	e.Update(1.0)
	if e.Len() != 0 {
		t.Fatalf("expected empty list, got %d", e.Len())
	}
}

func TestEmitter_DrawOffsetsByOrigin(t *testing.T) {
	e := NewEmitter(0.05)
	e.Emit(New(geom.V(3, 4), geom.V(0, 0), 2, 2, 1, white, black))

	rec := &drawtest.Recorder{}
	e.Draw(rec, geom.V(100, 200))
	circles := rec.Filter(drawtest.KindFillCircle)
	if len(circles) != 1 {
		t.Fatalf("expected 1 circle, got %d", len(circles))
	}
	if circles[0].From != geom.V(103, 204) {
		t.Fatalf("expected circle at (103,204), got %v", circles[0].From)
	}
}
