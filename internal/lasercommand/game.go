// Package lasercommand implements the Laser Command program: a single
// asteroid falls toward the ground while the player chips it apart with a
// laser before it lands.
package lasercommand

import (
	"image/color"
	"math/rand/v2"

	"interstellar/internal/applog"
	"interstellar/internal/audio"
	"interstellar/internal/draw"
	"interstellar/internal/geom"
	"interstellar/internal/input"
	"interstellar/internal/particle"
	"interstellar/internal/program"
)

// Name is the window title and program name.
const Name = "Laser Command"

// Phase is the state of the current round.
type Phase int

const (
	PhaseFalling   Phase = iota // asteroid inbound
	PhaseExploding              // asteroid hit the ground; flash running
	PhaseDestroyed              // signal lost until the program is relaunched
	PhaseCleared                // asteroid fully shot away
)

func (p Phase) String() string {
	switch p {
	case PhaseFalling:
		return "falling"
	case PhaseExploding:
		return "exploding"
	case PhaseDestroyed:
		return "destroyed"
	case PhaseCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

var (
	colBeamBright = color.RGBA{0xff, 0x50, 0x50, 0xff}
	colBeamDark   = color.RGBA{0x40, 0x00, 0x00, 0xff}
	colFlash      = color.RGBA{0xff, 0xff, 0xff, 0xff}
	colTurret     = color.RGBA{0x90, 0x90, 0xa0, 0xff}
)

const (
	beamWidth    = 4.0
	groundHeight = 6.0
	turretSize   = 10.0
)

// Game is the Laser Command program.
type Game struct {
	*program.Base

	cfg   Config
	rng   *rand.Rand
	sound audio.Trigger

	phase    Phase
	asteroid *Asteroid
	pal      palette
	trail    *particle.Emitter
	debris   *particle.Emitter

	explosionTimer float64

	lastShot  float64
	firing    bool
	fireTimer float64
	target    geom.Vec

	shots, hits int
}

var _ program.Program = (*Game)(nil)

// New builds the program around base with its first round ready. sound may
// be nil.
func New(base *program.Base, cfg Config, rng *rand.Rand, sound audio.Trigger) *Game {
	if sound == nil {
		sound = audio.Silent{}
	}
	g := &Game{
		Base:   base,
		cfg:    cfg,
		rng:    rng,
		sound:  sound,
		trail:  particle.NewEmitter(cfg.ParticleInterval),
		debris: particle.NewEmitter(cfg.ParticleInterval),
	}
	g.setup()
	return g
}

// setup starts a new round: fresh palette, asteroid, target and mask.
func (g *Game) setup() {
	size := g.Window.ContentRect().Size()
	r := g.cfg.AsteroidRadius

	g.pal = newPalette(g.rng)
	start := geom.V(g.randomX(size.X, r), 0)
	goal := geom.V(g.randomX(size.X, r), size.Y)
	g.asteroid = NewAsteroid(renderAsteroid(g.rng, r, g.pal), start, goal, g.cfg.AsteroidSpeed, r)

	g.phase = PhaseFalling
	g.explosionTimer = 0
	g.trail.Reset()
	g.debris.Reset()
	g.lastShot = -g.cfg.LaserInterval
	g.firing = false
	g.fireTimer = 0
	g.shots, g.hits = 0, 0
}

func (g *Game) randomX(width, r float64) float64 {
	if width <= 2*r {
		return width / 2
	}
	return r + g.rng.Float64()*(width-2*r)
}

func (g *Game) Phase() Phase                { return g.phase }
func (g *Game) Asteroid() *Asteroid         { return g.asteroid }
func (g *Game) Firing() bool                { return g.firing }
func (g *Game) Target() geom.Vec            { return g.target }
func (g *Game) Shots() int                  { return g.shots }
func (g *Game) Hits() int                   { return g.hits }
func (g *Game) Trail() []particle.Particle  { return g.trail.Particles() }
func (g *Game) Debris() []particle.Particle { return g.debris.Particles() }

// Launch opens the window and starts a new round.
func (g *Game) Launch() {
	if !g.Life.Closed() {
		return
	}
	g.Base.Launch()
	g.setup()
}

// HandleInput handles the close button, then fires at a fresh press inside
// the focused window's content area.
func (g *Game) HandleInput(p input.Pointer) {
	g.Base.HandleInput(p)
	if !p.JustPressed || !g.Life.Open() || !g.Window.Focused {
		return
	}
	content := g.Window.ContentRect()
	if !content.Contains(p.Pos) {
		return
	}
	g.Fire(p.Pos.Sub(content.Pos()))
}

// Fire shoots at target (content coordinates). It reports false when the
// laser is still recharging or the round is over.
func (g *Game) Fire(target geom.Vec) bool {
	if g.phase == PhaseDestroyed {
		return false
	}
	now := g.Window.OpenTime()
	if now-g.lastShot < g.cfg.LaserInterval {
		return false
	}
	g.lastShot = now
	g.firing = true
	g.fireTimer = 0
	g.target = target
	g.shots++
	g.sound.Trigger(audio.CueLaser)

	a := g.asteroid
	if a.Alive && a.Hit(target) {
		g.hits++
		a.Damage(target, g.cfg.HitRadius)
		g.spawnHit(target)
		g.sound.Trigger(audio.CueHit)
		applog.Logger().Debug("laser hit", "program", g.Name, "target", target, "intact", a.Intact())
		if a.Intact() == 0 {
			a.Alive = false
			g.phase = PhaseCleared
			applog.Logger().Info("asteroid cleared", "program", g.Name, "shots", g.shots, "hits", g.hits)
		}
	}
	return true
}

// Update advances the round while the window is open. The frame on which
// the window finishes opening does not advance the simulation.
func (g *Game) Update(dt float64) {
	wasOpen := g.Life.Open()
	g.Base.Update(dt)
	if !wasOpen || !g.Life.Open() {
		return
	}

	if g.firing {
		g.fireTimer += dt
		if g.fireTimer >= g.cfg.LaserDrawTime {
			g.firing = false
		}
	}

	switch g.phase {
	case PhaseFalling:
		g.asteroid.Move(dt)
		if g.trail.Due(g.Window.OpenTime()) {
			g.spawnTrail()
		}
		if g.asteroid.Pos.Y > g.impactLine() {
			g.impact()
		}
	case PhaseExploding:
		g.explosionTimer += dt
		if g.explosionTimer >= g.cfg.ExplosionLength {
			g.phase = PhaseDestroyed
			applog.Logger().Debug("signal lost", "program", g.Name)
		}
	}

	g.trail.Update(dt)
	g.debris.Update(dt)
}

func (g *Game) impactLine() float64 {
	return g.Window.ContentRect().H - impactFactor*g.asteroid.Radius
}

func (g *Game) impact() {
	a := g.asteroid
	a.Alive = false
	g.phase = PhaseExploding
	g.explosionTimer = 0

	for i := 0; i < g.cfg.BurstParticles; i++ {
		pos := a.Pos.Add(g.randomVec(a.Radius))
		out, ok := a.Pos.Sub(pos).Normalize()
		if !ok {
			out, _ = g.randomVec(1).Normalize()
		}
		vel := out.Scale(-(20 + g.rng.Float64()*40))
		g.debris.Emit(particle.New(pos, vel, 3+g.rng.Float64()*3, 0, g.cfg.ExplosionLength, g.pal.rockLight, g.pal.sky))
	}
	g.sound.Trigger(audio.CueImpact)
	applog.Logger().Info("asteroid impact", "program", g.Name, "at", a.Pos, "hits", g.hits)
}

func (g *Game) spawnTrail() {
	a := g.asteroid
	back, ok := a.Pos.Sub(a.Goal).Normalize()
	if !ok {
		return
	}
	pos := a.Pos.Add(back.Scale(a.Radius * 0.8)).Add(g.randomVec(a.Radius * 0.3))
	vel := back.Scale(10).Add(g.randomVec(4))
	g.trail.Emit(particle.New(pos, vel, 4, 0, 1.0, g.pal.trailStart, g.pal.trailEnd))
}

func (g *Game) spawnHit(at geom.Vec) {
	for i := 0; i < g.cfg.HitParticles; i++ {
		g.debris.Emit(particle.New(at, g.randomVec(40), 3, 0, 0.6, g.pal.rockLight, g.pal.rockDark))
	}
}

// randomVec returns a vector with each component uniform in [-scale, scale].
func (g *Game) randomVec(scale float64) geom.Vec {
	return geom.V((g.rng.Float64()*2-1)*scale, (g.rng.Float64()*2-1)*scale)
}

// DrawWindow draws the window with the game scene, or static once the
// signal is lost.
func (g *Game) DrawWindow(s draw.Surface) {
	g.DrawWindowWith(s, g.drawContent)
}

func (g *Game) drawContent(s draw.Surface, content geom.Rect) {
	if g.phase == PhaseDestroyed {
		g.Window.DrawFuzzyScreen(s)
		return
	}
	o := content.Pos()

	s.FillRect(content, g.pal.sky, draw.BlendNormal)
	g.trail.Draw(s, o)

	if g.asteroid.Alive {
		s.DrawSprite(g.asteroid.Sprite(), o.Add(g.asteroid.TopLeft()), draw.BlendNormal)
	}

	s.FillRect(geom.R(content.X, content.Bottom()-groundHeight, content.W, groundHeight), g.pal.ground, draw.BlendNormal)
	base := g.laserBase(content)
	s.FillPolygon([]geom.Vec{
		base,
		geom.V(base.X-turretSize, content.Bottom()),
		geom.V(base.X+turretSize, content.Bottom()),
	}, colTurret)

	if g.phase == PhaseExploding {
		t := g.explosionTimer / g.cfg.ExplosionLength
		r := geom.Lerp(g.asteroid.Radius, g.asteroid.Radius*explosionGrowth, t)
		s.FillCircle(o.Add(g.asteroid.Pos), r, colFlash, draw.BlendNormal)
		s.FillRect(content, draw.WithAlpha(colFlash, uint8(255*min(1, t))), draw.BlendAdd)
	}

	g.debris.Draw(s, o)

	if g.firing {
		t := g.fireTimer / g.cfg.LaserDrawTime
		s.Line(base, o.Add(g.target), geom.Lerp(beamWidth, 0, t), draw.LerpRGB(colBeamBright, colBeamDark, t))
	}
}

// laserBase is the beam origin: bottom centre of the play area, on the
// turret tip.
func (g *Game) laserBase(content geom.Rect) geom.Vec {
	return geom.V(content.X+content.W/2, content.Bottom()-turretSize)
}
