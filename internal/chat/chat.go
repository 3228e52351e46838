// Package chat implements the Interconnect Chat program, a support
// conversation driven by a dialogue script.
package chat

import (
	"image/color"
	"strings"

	"interstellar/internal/applog"
	"interstellar/internal/dialogue"
	"interstellar/internal/draw"
	"interstellar/internal/geom"
	"interstellar/internal/input"
	"interstellar/internal/program"
)

// Name is the window title and program name.
const Name = "Interconnect Chat"

var (
	colBackground = color.RGBA{0x10, 0x18, 0x20, 0xff}
	colText       = color.RGBA{0xf0, 0xf0, 0xf0, 0xff}
	colChoice     = color.RGBA{0x1c, 0x4a, 0x6c, 0xff}
	colChoiceEdge = color.RGBA{0x6c, 0xb4, 0xe0, 0xff}
	colHint       = color.RGBA{0x80, 0x80, 0x80, 0xff}
)

const (
	fontSize     = 16.0
	lineHeight   = 20.0
	padding      = 10.0
	choiceHeight = 28.0
	choiceGap    = 6.0
	// charWidth approximates the advance of one glyph for wrapping.
	charWidth = fontSize * 0.5
)

// Chat is the Interconnect Chat program.
type Chat struct {
	*program.Base

	cursor *dialogue.Cursor
}

var _ program.Program = (*Chat)(nil)

// New builds the program around base, starting the conversation in script.
func New(base *program.Base, script *dialogue.Script) *Chat {
	return &Chat{Base: base, cursor: dialogue.NewCursor(script)}
}

// Cursor exposes the conversation position.
func (c *Chat) Cursor() *dialogue.Cursor { return c.cursor }

// Launch opens the window and restarts the conversation.
func (c *Chat) Launch() {
	if !c.Life.Closed() {
		return
	}
	c.Base.Launch()
	c.cursor.Reset()
}

// HandleInput handles the close button, then advances the conversation on a
// fresh press inside the focused content area. When choices are on offer
// only a press on one of them counts.
func (c *Chat) HandleInput(p input.Pointer) {
	c.Base.HandleInput(p)
	if !p.JustPressed || !c.Life.Open() || !c.Window.Focused {
		return
	}
	content := c.Window.ContentRect()
	if !content.Contains(p.Pos) {
		return
	}

	if choices := c.cursor.Choices(); choices != nil {
		for i, r := range choiceRects(content, len(choices)) {
			if r.Contains(p.Pos) {
				c.cursor.Choose(i)
				applog.Logger().Debug("chat choice", "program", c.Name, "block", choices[i].ID)
				return
			}
		}
		return
	}
	c.cursor.Advance()
}

// DrawWindow draws the window with the current line and any choices.
func (c *Chat) DrawWindow(s draw.Surface) {
	c.DrawWindowWith(s, c.drawContent)
}

func (c *Chat) drawContent(s draw.Surface, content geom.Rect) {
	s.FillRect(content, colBackground, draw.BlendNormal)

	maxChars := int((content.W - 2*padding) / charWidth)
	cx := content.X + content.W/2
	y := content.Y + padding + lineHeight/2
	for _, l := range wrap(c.cursor.Line(), maxChars) {
		s.DrawText(l, fontSize, geom.V(cx, y), colText)
		y += lineHeight
	}

	choices := c.cursor.Choices()
	if choices == nil {
		if !c.cursor.Done() {
			s.DrawText("click to continue", fontSize*0.75, geom.V(cx, content.Bottom()-padding), colHint)
		}
		return
	}
	for i, r := range choiceRects(content, len(choices)) {
		s.FillRect(r, colChoice, draw.BlendNormal)
		s.StrokeRect(r, 1, colChoiceEdge)
		s.DrawText(truncate(choices[i].Label, int((r.W-padding)/charWidth)), fontSize, r.Center(), colText)
	}
}

// choiceRects stacks n buttons up from the bottom of content, first choice on
// top.
func choiceRects(content geom.Rect, n int) []geom.Rect {
	rects := make([]geom.Rect, n)
	y := content.Bottom() - padding - float64(n)*choiceHeight - float64(n-1)*choiceGap
	for i := range rects {
		rects[i] = geom.R(content.X+padding, y, content.W-2*padding, choiceHeight)
		y += choiceHeight + choiceGap
	}
	return rects
}

// wrap breaks text into lines of at most width runes on word boundaries. A
// word longer than width gets a line of its own.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var (
		lines []string
		cur   strings.Builder
	)
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && len([]rune(cur.String()))+1+len([]rune(word)) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n < 1 || len(r) <= n {
		return s
	}
	if n <= 3 {
		return string(r[:n])
	}
	return string(r[:n-3]) + "..."
}
