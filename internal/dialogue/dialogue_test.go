package dialogue

import (
	"errors"
	"strings"
	"testing"
)

const sample = `[start] 0
Hello, this is tech support.
How can I help?
[choice] 1,My screen is black.
[choice] 2,Never mind.
[end]

[start] 1
Have you tried turning it on?
[next] 3
[end]

[start] 2
[next] 3
[end]

[start] 3
Goodbye.
[end]
`

func mustParse(t *testing.T, src string) *Script {
	t.Helper()
	s, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return s
}

func TestParse_BlockGraph(t *testing.T) {
	s := mustParse(t, sample)

	if got := s.IDs(); len(got) != 4 {
		t.Fatalf("expected 4 blocks, got %v", got)
	}
	start := s.Block(0)
	if len(start.Lines) != 2 || start.Lines[1] != "How can I help?" {
		t.Fatalf("unexpected start lines %q", start.Lines)
	}
	if len(start.Choices) != 2 || start.Choices[0] != 1 || start.Choices[1] != 2 {
		t.Fatalf("unexpected choices %v", start.Choices)
	}
	if start.Next != nil {
		t.Fatalf("expected no next on a choice block")
	}

	one := s.Block(1)
	if !one.IsChoice {
		t.Fatalf("expected block 1 marked as a choice")
	}
	if one.Label != "My screen is black." {
		t.Fatalf("unexpected label %q", one.Label)
	}
	if len(one.Lines) != 1 || one.Lines[0] != "Have you tried turning it on?" {
		t.Fatalf("expected body only, got %q", one.Lines)
	}
	if one.Next == nil || *one.Next != 3 {
		t.Fatalf("expected next 3, got %v", one.Next)
	}
	if s.Block(3).IsChoice {
		t.Fatalf("expected block 3 to be plain")
	}
}

func TestParse_UnknownLinesAreText(t *testing.T) {
	s := mustParse(t, "[start] 0\n[shrug] whatever\n  padded  \r\n")
	if got := s.Block(0).Lines; len(got) != 2 || got[0] != "[shrug] whatever" || got[1] != "padded" {
		t.Fatalf("unexpected lines %q", got)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{"bad start id", "[start] zero\nhi\n", ErrBadID},
		{"bad choice id", "[start] 0\nhi\n[choice] x,label\n", ErrBadID},
		{"choice without label", "[start] 0\nhi\n[choice] 1\n", ErrMalformed},
		{"bad next id", "[start] 0\nhi\n[next] !\n", ErrBadID},
		{"text before start", "hi\n[start] 0\n", ErrOutsideBlock},
		{"next before start", "[next] 1\n", ErrOutsideBlock},
		{"missing start block", "[start] 1\nhi\n", ErrNoStart},
		{"empty start block", "[start] 0\n[next] 1\n[start] 1\nhi\n", ErrEmptyStart},
		{"dangling next", "[start] 0\nhi\n[next] 9\n", ErrUnknownTarget},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if !strings.HasPrefix(err.Error(), "dialogue: line ") {
				t.Fatalf("expected line-numbered error, got %q", err)
			}
		})
	}
}

func TestCursor_WalksLinesChoicesAndNext(t *testing.T) {
	c := NewCursor(mustParse(t, sample))

	if c.Line() != "Hello, this is tech support." {
		t.Fatalf("unexpected first line %q", c.Line())
	}
	if c.Choices() != nil {
		t.Fatalf("expected choices hidden before the last line")
	}
	if !c.Advance() {
		t.Fatalf("expected advance to second line")
	}
	if c.Advance() {
		t.Fatalf("expected advance to stop at a pending choice")
	}
	if n := len(c.Choices()); n != 2 {
		t.Fatalf("expected 2 choices, got %d", n)
	}

	if !c.Choose(0) {
		t.Fatalf("expected choice accepted")
	}
	if c.Line() != "Have you tried turning it on?" {
		t.Fatalf("expected first body line, got %q", c.Line())
	}
	if !c.Advance() || c.Block().ID != 3 {
		t.Fatalf("expected next link to block 3, at %d", c.Block().ID)
	}
	if !c.Done() || c.Advance() {
		t.Fatalf("expected conversation over")
	}

	c.Reset()
	if c.Block().ID != StartID || c.LineIndex() != 0 {
		t.Fatalf("expected reset to start")
	}
}

func TestCursor_LabelOnlyChoiceFollowsNext(t *testing.T) {
	c := NewCursor(mustParse(t, sample))
	c.Advance()
	if !c.Choose(1) {
		t.Fatalf("expected choice accepted")
	}
	if c.Block().ID != 3 || c.Line() != "Goodbye." {
		t.Fatalf("expected label-only choice to continue at block 3, at %d %q", c.Block().ID, c.Line())
	}
}

func TestParse_ChoiceNamingEarlierBlock(t *testing.T) {
	src := `[start] 1
First line of one.
Second line of one.
[end]

[start] 0
Pick one.
[choice] 1,Go to one
[end]
`
	s := mustParse(t, src)
	one := s.Block(1)
	if !one.IsChoice || one.Label != "Go to one" {
		t.Fatalf("expected block 1 labelled as a choice, got %v %q", one.IsChoice, one.Label)
	}
	if len(one.Lines) != 2 {
		t.Fatalf("expected body untouched, got %q", one.Lines)
	}

	c := NewCursor(s)
	if len(c.Choices()) != 1 || c.Choices()[0].Label != "Go to one" {
		t.Fatalf("expected the label on offer, got %v", c.Choices())
	}
	if !c.Choose(0) {
		t.Fatalf("expected choice accepted")
	}
	if c.LineIndex() != 0 || c.Line() != "First line of one." {
		t.Fatalf("expected first line of block 1, got %d %q", c.LineIndex(), c.Line())
	}
	if !c.Advance() || c.Line() != "Second line of one." {
		t.Fatalf("expected second line, got %q", c.Line())
	}
}

func TestCursor_ChooseOutOfRange(t *testing.T) {
	c := NewCursor(mustParse(t, sample))
	if c.Choose(0) {
		t.Fatalf("expected no choice before the last line")
	}
	c.Advance()
	if c.Choose(2) || c.Choose(-1) {
		t.Fatalf("expected out-of-range choice rejected")
	}
}
