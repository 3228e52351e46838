package mask

import (
	"image"
	"image/color"
	"testing"

	"interstellar/internal/geom"
)

func filledRect(w, h int, r image.Rectangle) *Mask {
	m := New(w, h)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.Set(x, y, true)
		}
	}
	return m
}

func TestFromAlpha_Threshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{A: 0})
	img.Set(1, 0, color.NRGBA{A: 127})
	img.Set(2, 0, color.NRGBA{A: 128})

	m := FromAlpha(img, DefaultThreshold)
	if m.Get(0, 0) || m.Get(1, 0) {
		t.Fatalf("expected pixels at or below threshold to be uncovered")
	}
	if !m.Get(2, 0) {
		t.Fatalf("expected pixel above threshold to be covered")
	}
	if m.Count() != 1 {
		t.Fatalf("expected count 1, got %d", m.Count())
	}
}

func TestClearCircle_DisjointLeavesCount(t *testing.T) {
	m := filledRect(40, 40, image.Rect(0, 0, 10, 10))
	before := m.Count()

	m.ClearCircle(geom.V(30, 30), 5)
	m.KeepLargest()

	if got := m.Count(); got != before {
		t.Fatalf("expected count %d after disjoint clear, got %d", before, got)
	}
}

func TestClearCircle_OutsideBoundsIsHarmless(t *testing.T) {
	m := filledRect(8, 8, image.Rect(0, 0, 8, 8))
	m.ClearCircle(geom.V(-100, -100), 16)
	if m.Count() != 64 {
		t.Fatalf("expected untouched mask, got %d pixels", m.Count())
	}
}

func TestClearCircle_BisectKeepsLarger(t *testing.T) {
	// A 30x6 bar; cutting it at x=10 leaves a short left piece and a long
	// right piece.
	m := filledRect(30, 6, image.Rect(0, 0, 30, 6))
	for y := 0; y < 6; y++ {
		m.Set(10, y, false)
	}
	m.ClearCircle(geom.V(10.5, 3), 1)

	_, sizes := m.Components()
	if len(sizes) != 2 {
		t.Fatalf("expected the cut to produce 2 regions, got %d", len(sizes))
	}

	m.KeepLargest()
	if m.Get(0, 0) {
		t.Fatalf("expected smaller left fragment to be discarded")
	}
	if !m.Get(29, 5) {
		t.Fatalf("expected larger right fragment to survive")
	}
	_, sizes = m.Components()
	if len(sizes) != 1 {
		t.Fatalf("expected a single region after collapse, got %d", len(sizes))
	}
}

func TestComponents_DiagonalIsNotConnected(t *testing.T) {
	m := New(2, 2)
	m.Set(0, 0, true)
	m.Set(1, 1, true)
	if _, sizes := m.Components(); len(sizes) != 2 {
		t.Fatalf("expected diagonal pixels to form 2 regions, got %d", len(sizes))
	}
}

func TestLargestComponent_Empty(t *testing.T) {
	m := New(4, 4)
	if got := m.LargestComponent().Count(); got != 0 {
		t.Fatalf("expected empty result, got %d", got)
	}
}

func TestSetCircle_CoversDisc(t *testing.T) {
	m := New(21, 21)
	m.SetCircle(geom.V(10.5, 10.5), 10, true)
	if !m.Get(10, 10) || !m.Get(10, 1) {
		t.Fatalf("expected centre and near-edge pixels to be covered")
	}
	if m.Get(0, 0) || m.Get(20, 20) {
		t.Fatalf("expected corners to stay uncovered")
	}
}

func TestApplyTo_ClearsUncovered(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	m := New(2, 1)
	m.Set(0, 0, true)

	dst := image.NewRGBA(src.Bounds())
	m.ApplyTo(dst, src)
	if got := dst.RGBAAt(0, 0); got != (color.RGBA{R: 255, A: 255}) {
		t.Fatalf("expected covered pixel copied, got %v", got)
	}
	if got := dst.RGBAAt(1, 0); got.A != 0 {
		t.Fatalf("expected uncovered pixel transparent, got %v", got)
	}
}

func TestToImage(t *testing.T) {
	m := New(2, 1)
	m.Set(1, 0, true)
	set := color.RGBA{B: 200, A: 255}
	unset := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img := m.ToImage(set, unset)
	if img.RGBAAt(0, 0) != unset || img.RGBAAt(1, 0) != set {
		t.Fatalf("unexpected overlay pixels %v %v", img.RGBAAt(0, 0), img.RGBAAt(1, 0))
	}
}
