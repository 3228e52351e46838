// Package window implements program window chrome: geometry derived from a
// draggable position, title bar, close button, focus overlay and the
// "signal lost" static screen.
package window

import (
	"image/color"
	"math"
	"math/rand/v2"

	"interstellar/internal/draw"
	"interstellar/internal/geom"
)

var (
	ColBackground = color.RGBA{0xe8, 0xe8, 0xe8, 0xff}
	ColTitleBar   = color.RGBA{0xb8, 0xc4, 0xd0, 0xff}
	ColBorder     = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColTitleText  = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColClose      = color.RGBA{0xd0, 0x40, 0x40, 0xff}
	ColUnfocused  = color.NRGBA{0x60, 0x60, 0x60, 0x70}
)

const (
	borderWidth  = 2
	embossDarken = 0.6
	closeInset   = 8
	closeXInset  = 4
	closeXWidth  = 2
)

// Config sizes the chrome and paces the static effect.
type Config struct {
	TitleBarHeight float64
	TitleFontSize  float64
	// FuzzyInterval is how much open time passes between static regenerations.
	FuzzyInterval float64
	// FuzzyBlock is the edge length of one static block in pixels.
	FuzzyBlock float64
}

// DefaultConfig returns the stock chrome settings.
func DefaultConfig() Config {
	return Config{
		TitleBarHeight: 40,
		TitleFontSize:  25,
		FuzzyInterval:  0.25,
		FuzzyBlock:     10,
	}
}

// ContentFunc paints a program's content into the window's content rect.
type ContentFunc func(s draw.Surface, content geom.Rect)

// Window is the chrome around one program. Position is owned by the desktop
// while dragging; every derived rect is recomputed by Update.
type Window struct {
	Title    string
	Size     geom.Vec
	Position geom.Vec
	Focused  bool

	cfg Config
	rng *rand.Rand

	rect        geom.Rect
	titleBar    geom.Rect
	content     geom.Rect
	closeButton geom.Rect

	openTimer float64

	fuzzy      []color.RGBA
	fuzzyCols  int
	fuzzyRows  int
	fuzzyStamp float64
}

// New creates a window with its rects already laid out.
func New(title string, size, position geom.Vec, cfg Config, rng *rand.Rand) *Window {
	w := &Window{
		Title:    title,
		Size:     size,
		Position: position,
		cfg:      cfg,
		rng:      rng,
	}
	w.Layout()
	return w
}

// Update lays out the rects for the current position and advances the open
// timer. It must run once per frame before Draw or any hit test.
func (w *Window) Update(dt float64) {
	w.Layout()
	w.openTimer += dt
}

// Layout recomputes every rect from Position and Size without touching the
// open timer.
func (w *Window) Layout() {
	w.rect = geom.RectAt(w.Position, w.Size)
	h := w.cfg.TitleBarHeight
	w.titleBar = geom.R(w.rect.X, w.rect.Y, w.rect.W, h)
	w.content = geom.R(w.rect.X, w.rect.Y+h, w.rect.W, w.rect.H-h)
	side := h - 2*closeInset
	w.closeButton = geom.R(w.titleBar.Right()-closeInset-side, w.titleBar.Y+closeInset, side, side)
}

func (w *Window) Rect() geom.Rect         { return w.rect }
func (w *Window) TitleBarRect() geom.Rect { return w.titleBar }
func (w *Window) ContentRect() geom.Rect  { return w.content }
func (w *Window) CloseRect() geom.Rect    { return w.closeButton }

// OpenTime is the time accumulated since the last ResetTimer.
func (w *Window) OpenTime() float64 { return w.openTimer }

// ResetTimer restarts the open timer and forces fresh static on next draw.
func (w *Window) ResetTimer() {
	w.openTimer = 0
	w.fuzzy = nil
}

// MoveBy shifts the window. Rects follow on the next Update.
func (w *Window) MoveBy(d geom.Vec) {
	w.Position = w.Position.Add(d)
}

// CheckClose reports whether pos hits the close button of a focused window.
func (w *Window) CheckClose(pos geom.Vec) bool {
	return w.Focused && w.closeButton.Contains(pos)
}

// Draw paints the chrome, then content (if any), then the unfocused overlay.
func (w *Window) Draw(s draw.Surface, content ContentFunc) {
	s.FillRect(w.rect, ColBackground, draw.BlendNormal)
	if content != nil {
		content(s.Clip(w.content), w.content)
	}

	s.FillRect(w.titleBar, ColTitleBar, draw.BlendNormal)
	from, to := w.titleBar.BottomEdge()
	from.Y--
	to.Y--
	s.Line(from, to, 1, draw.Brightness(ColTitleBar, embossDarken))
	s.StrokeRect(w.titleBar, 1, ColBorder)
	s.DrawText(w.Title, w.cfg.TitleFontSize, w.titleBar.Center(), ColTitleText)

	s.FillRect(w.closeButton, ColClose, draw.BlendNormal)
	s.StrokeRect(w.closeButton, 1, ColBorder)
	x := w.closeButton.Inset(closeXInset)
	s.Line(x.Pos(), geom.V(x.Right(), x.Bottom()), closeXWidth, ColBorder)
	s.Line(geom.V(x.Right(), x.Y), geom.V(x.X, x.Bottom()), closeXWidth, ColBorder)

	s.StrokeRect(w.rect, borderWidth, ColBorder)

	if !w.Focused {
		s.FillRect(w.rect, ColUnfocused, draw.BlendNormal)
	}
}

// DrawFuzzyScreen covers the content area with blocks of random gray. The
// pattern only changes once every FuzzyInterval of open time.
func (w *Window) DrawFuzzyScreen(s draw.Surface) {
	block := w.cfg.FuzzyBlock
	cols := int(math.Ceil(w.content.W / block))
	rows := int(math.Ceil(w.content.H / block))
	if cols <= 0 || rows <= 0 {
		return
	}

	stale := w.openTimer-w.fuzzyStamp >= w.cfg.FuzzyInterval
	if w.fuzzy == nil || stale || cols != w.fuzzyCols || rows != w.fuzzyRows {
		w.regenerateFuzz(cols, rows)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x := w.content.X + float64(col)*block
			y := w.content.Y + float64(row)*block
			r := geom.R(x, y, min(block, w.content.Right()-x), min(block, w.content.Bottom()-y))
			s.FillRect(r, w.fuzzy[row*cols+col], draw.BlendNormal)
		}
	}
}

func (w *Window) regenerateFuzz(cols, rows int) {
	if cap(w.fuzzy) < cols*rows {
		w.fuzzy = make([]color.RGBA, cols*rows)
	}
	w.fuzzy = w.fuzzy[:cols*rows]
	for i := range w.fuzzy {
		w.fuzzy[i] = draw.RandomGray(w.rng)
	}
	w.fuzzyCols, w.fuzzyRows = cols, rows
	w.fuzzyStamp = w.openTimer
}
