package chat

import (
	"image"
	"math/rand/v2"
	"strings"
	"testing"

	"interstellar/internal/dialogue"
	"interstellar/internal/draw/drawtest"
	"interstellar/internal/geom"
	"interstellar/internal/input"
	"interstellar/internal/program"
	"interstellar/internal/window"
)

const script = `[start] 0
Thanks for calling Interconnect support.
What seems to be the trouble?
[choice] 1,The laser is broken.
[choice] 2,Just browsing.
[start] 1
Have you tried aiming it?
[start] 2
Okay then.
`

func newTestChat(t *testing.T) *Chat {
	t.Helper()
	s, err := dialogue.Parse(strings.NewReader(script))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	win := window.New(Name, geom.V(250, 300), geom.V(50, 50), window.DefaultConfig(), rand.New(rand.NewPCG(3, 3)))
	base := program.NewBase(Name, image.NewRGBA(image.Rect(0, 0, 32, 32)), geom.V(20, 25), win, program.DefaultConfig())
	return New(base, s)
}

func openChat(c *Chat) {
	c.Launch()
	c.Update(c.Life.Config().LaunchTime)
	c.Window.Focused = true
}

func click(c *Chat, pos geom.Vec) {
	c.HandleInput(input.Pointer{Pos: pos, Pressed: true, JustPressed: true})
}

func TestChat_ClickAdvancesThenChooses(t *testing.T) {
	c := newTestChat(t)
	openChat(c)
	content := c.Window.ContentRect()

	click(c, content.Center())
	if c.Cursor().LineIndex() != 1 {
		t.Fatalf("expected second line, got %d", c.Cursor().LineIndex())
	}

	// With choices pending, a press off the buttons does nothing.
	click(c, geom.V(content.X+2, content.Y+2))
	if c.Cursor().Block().ID != 0 {
		t.Fatalf("expected to stay on start block")
	}

	rects := choiceRects(content, 2)
	click(c, rects[1].Center())
	if c.Cursor().Block().ID != 2 {
		t.Fatalf("expected second choice taken, at block %d", c.Cursor().Block().ID)
	}
}

func TestChat_IgnoresClicksWhenUnfocused(t *testing.T) {
	c := newTestChat(t)
	openChat(c)
	c.Window.Focused = false

	click(c, c.Window.ContentRect().Center())
	if c.Cursor().LineIndex() != 0 {
		t.Fatalf("expected unfocused window to ignore clicks")
	}
}

func TestChat_RelaunchRestartsConversation(t *testing.T) {
	c := newTestChat(t)
	openChat(c)
	click(c, c.Window.ContentRect().Center())

	c.Close()
	c.Update(c.Life.Config().CloseTime)
	if !c.Life.Closed() {
		t.Fatalf("expected closed, got %v", c.Life.State())
	}
	openChat(c)
	if c.Cursor().LineIndex() != 0 || c.Cursor().Block().ID != 0 {
		t.Fatalf("expected conversation restarted")
	}
}

func TestChat_DrawShowsChoices(t *testing.T) {
	c := newTestChat(t)
	openChat(c)
	c.Cursor().Advance()

	rec := &drawtest.Recorder{}
	c.DrawWindow(rec)

	found := map[string]bool{}
	for _, op := range rec.Filter(drawtest.KindText) {
		found[op.Text] = true
	}
	for _, want := range []string{Name, "The laser is broken.", "Just browsing."} {
		if !found[want] {
			t.Fatalf("expected text %q drawn, got %v", want, found)
		}
	}
}

func TestWrap(t *testing.T) {
	got := wrap("have you tried turning it off and on", 12)
	want := []string{"have you", "tried", "turning it", "off and on"}
	if len(got) != len(want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], got[i])
		}
	}
	if got := wrap("", 10); len(got) != 0 {
		t.Fatalf("expected no lines for empty text, got %q", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefghij", 6); got != "abc..." {
		t.Fatalf("unexpected %q", got)
	}
	if got := truncate("abc", 6); got != "abc" {
		t.Fatalf("unexpected %q", got)
	}
}
