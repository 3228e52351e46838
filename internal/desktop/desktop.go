// Package desktop hosts programs: it owns their z-order, routes pointer
// presses to windows and icons, drags the topmost window and paints the
// desktop around them.
package desktop

import (
	"image/color"
	"slices"
	"sort"

	"interstellar/internal/applog"
	"interstellar/internal/draw"
	"interstellar/internal/geom"
	"interstellar/internal/input"
	"interstellar/internal/program"
)

var (
	ColBackground  = color.RGBA{5, 144, 186, 0xff}
	ColTaskbar     = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	ColTaskbarEdge = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	ColTaskButton  = color.RGBA{0xa8, 0xa8, 0xa8, 0xff}
	ColTaskActive  = color.RGBA{0x80, 0x80, 0x90, 0xff}
	ColTaskText    = color.RGBA{0x00, 0x00, 0x00, 0xff}
)

const (
	TaskbarHeight = 28.0

	taskButtonWidth = 140.0
	taskButtonGap   = 4.0
	taskFontSize    = 14.0
)

// Desktop is the program list plus drag state. The slice order is the
// z-order: the last program is topmost and the only one that can be focused.
type Desktop struct {
	programs []program.Program
	rect     geom.Rect

	dragging bool
	prevPos  geom.Vec
}

// New returns an empty desktop covering rect.
func New(rect geom.Rect) *Desktop {
	return &Desktop{rect: rect}
}

// Add appends programs on top of the current ones.
func (d *Desktop) Add(ps ...program.Program) {
	d.programs = append(d.programs, ps...)
}

func (d *Desktop) Programs() []program.Program { return d.programs }
func (d *Desktop) Rect() geom.Rect             { return d.rect }
func (d *Desktop) Dragging() bool              { return d.dragging }

// Focused returns the topmost program, or nil on an empty desktop.
func (d *Desktop) Focused() program.Program {
	if len(d.programs) == 0 {
		return nil
	}
	return d.programs[len(d.programs)-1]
}

// TaskbarRect is the strip along the bottom of the desktop.
func (d *Desktop) TaskbarRect() geom.Rect {
	return geom.R(d.rect.X, d.rect.Bottom()-TaskbarHeight, d.rect.W, TaskbarHeight)
}

// Update runs one frame: press routing, dragging, then every program's
// Update followed by its HandleInput. Window rects are laid out first so
// press routing hits this frame's layout. A press only reaches programs
// whose window was already focused before it landed, so the press that
// raises a background window does not also act on it.
func (d *Desktop) Update(p input.Pointer, dt float64) {
	for _, prog := range d.programs {
		prog.Core().Window.Layout()
	}

	var focused []program.Program
	if p.JustPressed {
		focused = d.focusedPrograms()
		d.DetectWindowClick(p.Pos)
		d.HandleIconClick(p.Pos)
	}
	d.drag(p)

	for _, prog := range d.programs {
		prog.Update(dt)
	}
	for _, prog := range d.programs {
		in := p
		if p.JustPressed && !slices.Contains(focused, prog) {
			in.JustPressed = false
		}
		prog.HandleInput(in)
	}
}

func (d *Desktop) focusedPrograms() []program.Program {
	var out []program.Program
	for _, prog := range d.programs {
		if prog.Core().Window.Focused {
			out = append(out, prog)
		}
	}
	return out
}

// DetectWindowClick unfocuses every window, then focuses the topmost open
// window under pos and raises it. A press on empty desktop leaves every
// window unfocused.
func (d *Desktop) DetectWindowClick(pos geom.Vec) {
	selected := -1
	for i, prog := range d.programs {
		b := prog.Core()
		b.Window.Focused = false
		if b.Life.Open() && b.Window.Rect().Contains(pos) {
			selected = i
		}
	}
	if selected < 0 {
		return
	}

	prog := d.programs[selected]
	prog.Core().Window.Focused = true
	copy(d.programs[selected:], d.programs[selected+1:])
	d.programs[len(d.programs)-1] = prog
	applog.Logger().Debug("window focused", "program", prog.Core().Name)
}

// HandleIconClick applies a press to the icons. A press on the icon of a
// program that is neither open nor opening selects it, or launches it when
// already selected. Every other icon is deselected. Icons under windows
// still respond.
func (d *Desktop) HandleIconClick(pos geom.Vec) {
	for _, prog := range d.programs {
		b := prog.Core()
		if !b.Life.Open() && !b.Life.Opening() && b.IconRect().Contains(pos) {
			if b.Selected {
				prog.Launch()
				b.Selected = false
			} else {
				b.Selected = true
			}
			continue
		}
		b.Selected = false
	}
}

// drag arms on a fresh press inside the topmost open window's title bar,
// moves that window by the pointer delta while held, and disarms on
// release.
func (d *Desktop) drag(p input.Pointer) {
	defer func() { d.prevPos = p.Pos }()

	top := d.Focused()
	if top == nil {
		return
	}
	win := top.Core().Window
	switch {
	case !p.Pressed:
		d.dragging = false
	case p.JustPressed:
		d.dragging = top.Core().Life.Open() && win.TitleBarRect().Contains(p.Pos)
	case d.dragging:
		win.MoveBy(p.Pos.Sub(d.prevPos))
	}
}

// Draw paints the background, icons, visible windows in z-order and the
// taskbar.
func (d *Desktop) Draw(s draw.Surface) {
	s.FillRect(d.rect, ColBackground, draw.BlendNormal)
	for _, prog := range d.programs {
		prog.DrawIcon(s)
	}
	for _, prog := range d.programs {
		if prog.Core().Visible() {
			prog.DrawWindow(s)
		}
	}
	d.drawTaskbar(s)
}

// drawTaskbar shows one button per visible program with the focused one
// darkened.
func (d *Desktop) drawTaskbar(s draw.Surface) {
	bar := d.TaskbarRect()
	s.FillRect(bar, ColTaskbar, draw.BlendNormal)
	s.Line(geom.V(bar.X, bar.Y), geom.V(bar.Right(), bar.Y), 2, ColTaskbarEdge)

	x := bar.X + taskButtonGap
	for _, b := range d.taskbarEntries() {
		r := geom.R(x, bar.Y+taskButtonGap, taskButtonWidth, bar.H-2*taskButtonGap)
		col := ColTaskButton
		if b.Window.Focused {
			col = ColTaskActive
		}
		s.FillRect(r, col, draw.BlendNormal)
		s.StrokeRect(r, 1, ColTaskText)
		s.DrawText(b.Name, taskFontSize, r.Center(), ColTaskText)
		x += taskButtonWidth + taskButtonGap
	}
}

// taskbarEntries lists the visible programs by icon position so buttons do
// not shuffle when focus changes the z-order.
func (d *Desktop) taskbarEntries() []*program.Base {
	var out []*program.Base
	for _, prog := range d.programs {
		if b := prog.Core(); b.Visible() {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].IconPos, out[j].IconPos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return out
}
