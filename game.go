package main

import (
	"fmt"
	"image/color"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"interstellar/internal/applog"
	"interstellar/internal/assets"
	sfx "interstellar/internal/audio"
	"interstellar/internal/chat"
	"interstellar/internal/config"
	"interstellar/internal/desktop"
	"interstellar/internal/geom"
	"interstellar/internal/input"
	"interstellar/internal/lasercommand"
	"interstellar/internal/program"
	"interstellar/internal/render"
	"interstellar/internal/window"
)

// Game holds global state
type Game struct {
	cfg      *config.Config
	dt       float64
	desktop  *desktop.Desktop
	renderer *render.Renderer
	pointer  input.Pointer
	debug    bool

	// Audio
	audioCtx *audio.Context
	player   *audio.Player
}

func NewGame(cfg *config.Config) (*Game, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	g := &Game{
		cfg:   cfg,
		dt:    cfg.FrameTime(),
		debug: cfg.LogLevel == "debug",
	}

	var sound sfx.Trigger = sfx.Silent{}
	if cfg.Audio.Enabled {
		synth := sfx.NewSynth(cfg.Audio.Volume, rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
		g.audioCtx = audio.NewContext(sfx.SampleRate)
		player, err := g.audioCtx.NewPlayer(synth)
		if err != nil {
			return nil, fmt.Errorf("audio: %w", err)
		}
		player.Play()
		g.player = player
		sound = synth
	}

	renderer, err := render.NewRenderer()
	if err != nil {
		return nil, err
	}
	g.renderer = renderer

	chatIcon, err := assets.LoadImage(assets.ChatIcon)
	if err != nil {
		return nil, err
	}
	laserIcon, err := assets.LoadImage(assets.LaserIcon)
	if err != nil {
		return nil, err
	}
	script, err := assets.Dialogue()
	if err != nil {
		return nil, err
	}

	newWindow := func(title string, size, pos geom.Vec) *window.Window {
		return window.New(title, size, pos, cfg.WindowConfig(), rand.New(rand.NewPCG(rng.Uint64(), rng.Uint64())))
	}
	chatBase := program.NewBase(chat.Name, chatIcon, geom.V(20, 25),
		newWindow(chat.Name, geom.V(250, 300), geom.V(360, 60)), cfg.ProgramConfig())
	laserBase := program.NewBase(lasercommand.Name, laserIcon, geom.V(20, 100),
		newWindow(lasercommand.Name, geom.V(300, 200), geom.V(100, 100)), cfg.ProgramConfig())

	g.desktop = desktop.New(geom.R(0, 0, float64(cfg.Screen.Width), float64(cfg.Screen.Height)))
	g.desktop.Add(
		chat.New(chatBase, script),
		lasercommand.New(laserBase, cfg.LaserCommandConfig(), rng, sound),
	)
	return g, nil
}

// pollPointer reads the mouse once per frame.
func (g *Game) pollPointer() input.Pointer {
	x, y := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	return input.Next(g.pointer, geom.V(float64(x), float64(y)), pressed)
}

// Update: Logic (fixed TPS)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		applog.Logger().Info("quit requested")
		return ebiten.Termination
	}

	g.pointer = g.pollPointer()
	g.desktop.Update(g.pointer, g.dt)
	return nil
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	g.desktop.Draw(g.renderer.Begin(screen))

	if g.debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("TPS %0.1f  FPS %0.1f  sprites %d", ebiten.ActualTPS(), ebiten.ActualFPS(), g.renderer.Sprites()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Screen.Width, g.cfg.Screen.Height
}
