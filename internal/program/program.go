// Package program implements launchable desktop programs: an icon, a window
// and the lifecycle that animates between them.
package program

import (
	"image"
	"image/color"

	"interstellar/internal/applog"
	"interstellar/internal/draw"
	"interstellar/internal/geom"
	"interstellar/internal/input"
	"interstellar/internal/mask"
	"interstellar/internal/window"
)

// Program is one launchable entity hosted by the desktop. Variants embed
// *Base and override the calls they need.
type Program interface {
	Core() *Base
	HandleInput(p input.Pointer)
	Update(dt float64)
	DrawIcon(s draw.Surface)
	DrawWindow(s draw.Surface)
	Launch()
	Close()
}

var (
	ColSelectedTint = color.RGBA{0x00, 0x32, 0xc8, 0xff}
	ColAnimOutline  = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
)

// Base carries the state shared by every program.
type Base struct {
	Name     string
	Icon     *draw.Sprite
	IconPos  geom.Vec
	Selected bool
	Life     *Lifecycle
	Window   *window.Window

	selectedOverlay *draw.Sprite
}

var _ Program = (*Base)(nil)

// NewBase builds the shared part of a program. The window is owned by the
// program from here on.
func NewBase(name string, icon image.Image, iconPos geom.Vec, win *window.Window, cfg Config) *Base {
	overlay := mask.FromAlpha(icon, mask.DefaultThreshold).ToImage(ColSelectedTint, color.White)
	return &Base{
		Name:            name,
		Icon:            draw.SpriteFromImage(icon),
		IconPos:         iconPos,
		Life:            NewLifecycle(cfg),
		Window:          win,
		selectedOverlay: draw.NewSprite(overlay),
	}
}

func (b *Base) Core() *Base { return b }

// IconRect is the icon's screen rect.
func (b *Base) IconRect() geom.Rect {
	return geom.RectAt(b.IconPos, b.Icon.Size())
}

// Visible reports whether anything of the window should be drawn.
func (b *Base) Visible() bool { return !b.Life.Closed() }

// HandleInput closes the program when the pointer goes down on the close
// button of its focused window.
func (b *Base) HandleInput(p input.Pointer) {
	if p.JustPressed && b.Life.Open() && b.Window.CheckClose(p.Pos) {
		b.Close()
	}
}

// Update lays out the window and advances the lifecycle. Reaching Open
// restarts the window's open timer.
func (b *Base) Update(dt float64) {
	b.Window.Update(dt)
	from := b.Life.State()
	if b.Life.Update(dt) {
		to := b.Life.State()
		if to == StateOpen {
			b.Window.ResetTimer()
		}
		applog.Logger().Debug("program state", "program", b.Name, "from", from, "to", to)
	}
}

// Launch starts opening the program if it is closed.
func (b *Base) Launch() {
	if b.Life.Launch() {
		applog.Logger().Info("program launched", "program", b.Name)
	}
}

// Close starts closing the program if it is open.
func (b *Base) Close() {
	if b.Life.Close() {
		applog.Logger().Info("program closed", "program", b.Name)
	}
}

// DrawIcon blits the icon, tinted when selected.
func (b *Base) DrawIcon(s draw.Surface) {
	s.DrawSprite(b.Icon, b.IconPos, draw.BlendNormal)
	if b.Selected {
		s.DrawSprite(b.selectedOverlay, b.IconPos, draw.BlendMultiply)
	}
}

// DrawWindow draws the window without content.
func (b *Base) DrawWindow(s draw.Surface) {
	b.DrawWindowWith(s, nil)
}

// DrawWindowWith draws the launch or close outline while animating, and the
// window with content otherwise.
func (b *Base) DrawWindowWith(s draw.Surface, content window.ContentFunc) {
	switch b.Life.State() {
	case StateOpening:
		s.StrokeRect(b.animRect(b.IconRect(), b.Window.Rect()), 1, ColAnimOutline)
	case StateClosing:
		s.StrokeRect(b.animRect(b.Window.Rect(), b.IconRect()), 1, ColAnimOutline)
	case StateOpen:
		b.Window.Draw(s, content)
	}
}

// animRect interpolates between two rects using the stepped progress.
func (b *Base) animRect(from, to geom.Rect) geom.Rect {
	t := b.Life.Progress()
	pos := from.Pos().Lerp(to.Pos(), t)
	return geom.R(pos.X, pos.Y, geom.Lerp(from.W, to.W, t), geom.Lerp(from.H, to.H, t))
}
