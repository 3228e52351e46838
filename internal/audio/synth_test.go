package audio

import (
	"math/rand/v2"
	"testing"
)

func newTestSynth() *Synth {
	return NewSynth(1, rand.New(rand.NewPCG(3, 4)))
}

func TestSynth_SilentWhenIdle(t *testing.T) {
	s := newTestSynth()
	buf := make([]byte, 1024)
	n, err := s.Read(buf)
	if err != nil || n != len(buf) {
		t.Fatalf("expected full read, got n=%d err=%v", n, err)
	}
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("expected silence, byte %d = %d", i, b)
		}
	}
}

func TestSynth_ReadsWholeFrames(t *testing.T) {
	s := newTestSynth()
	n, _ := s.Read(make([]byte, 11))
	if n != 8 {
		t.Fatalf("expected 8 bytes (2 frames), got %d", n)
	}
}

func TestSynth_CueProducesSoundAndEnds(t *testing.T) {
	s := newTestSynth()
	s.Trigger(CueLaser)
	if s.Active() != 1 {
		t.Fatalf("expected 1 active voice, got %d", s.Active())
	}

	buf := make([]byte, 4*1024)
	s.Read(buf)
	loud := false
	for _, b := range buf {
		if b != 0 {
			loud = true
			break
		}
	}
	if !loud {
		t.Fatalf("expected non-silent output after a cue")
	}

	// 0.15s of laser is well under one second of frames.
	s.Read(make([]byte, 4*SampleRate))
	if s.Active() != 0 {
		t.Fatalf("expected voice to finish, %d still active", s.Active())
	}
}

func TestSilent(t *testing.T) {
	var tr Trigger = Silent{}
	tr.Trigger(CueImpact)
}

func TestCueString(t *testing.T) {
	if CueHit.String() != "hit" || Cue(99).String() != "unknown" {
		t.Fatalf("unexpected cue names")
	}
}
