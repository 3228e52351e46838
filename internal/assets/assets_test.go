package assets

import (
	"testing"

	"interstellar/internal/dialogue"
)

func TestLoadImage_Icons(t *testing.T) {
	for _, name := range []string{ChatIcon, LaserIcon} {
		img, err := LoadImage(name)
		if err != nil {
			t.Fatalf("LoadImage(%s): %v", name, err)
		}
		if b := img.Bounds(); b.Dx() != 32 || b.Dy() != 32 {
			t.Fatalf("%s: expected 32x32, got %v", name, b)
		}
	}
}

func TestLoadImage_Missing(t *testing.T) {
	if _, err := LoadImage("nope.png"); err == nil {
		t.Fatalf("expected error for missing image")
	}
}

func TestDialogue_Parses(t *testing.T) {
	s, err := Dialogue()
	if err != nil {
		t.Fatalf("Dialogue: %v", err)
	}
	start := s.Block(dialogue.StartID)
	if len(start.Choices) == 0 {
		t.Fatalf("expected the opening block to offer choices")
	}
	for _, id := range s.IDs() {
		b := s.Block(id)
		if len(b.Lines) == 0 {
			t.Fatalf("block %d has no lines", id)
		}
	}
}
