// Package mask implements a per-pixel boolean coverage mask used for
// destructible sprites and for building tinted overlays from an alpha channel.
package mask

import (
	"image"
	"image/color"
	"math"

	"interstellar/internal/geom"
)

// DefaultThreshold is the alpha level above which a pixel counts as covered.
const DefaultThreshold = 127

// Mask is a width×height grid of covered/uncovered pixels.
type Mask struct {
	width  int
	height int
	bits   []bool
}

// New creates an empty mask.
func New(width, height int) *Mask {
	return &Mask{
		width:  width,
		height: height,
		bits:   make([]bool, width*height),
	}
}

// FromAlpha builds a mask covering every pixel of img whose 8-bit alpha is
// strictly greater than threshold.
func FromAlpha(img image.Image, threshold uint8) *Mask {
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.width+x] = uint8(a>>8) > threshold
		}
	}
	return m
}

func (m *Mask) Width() int  { return m.width }
func (m *Mask) Height() int { return m.height }

// Bounds returns the mask dimensions as a zero-origin rectangle.
func (m *Mask) Bounds() image.Rectangle { return image.Rect(0, 0, m.width, m.height) }

// Get reports whether (x, y) is covered. Out-of-range pixels are uncovered.
func (m *Mask) Get(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.bits[y*m.width+x]
}

// Set changes a single pixel. Out-of-range coordinates are ignored.
func (m *Mask) Set(x, y int, v bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.bits[y*m.width+x] = v
}

// Fill sets every pixel to v.
func (m *Mask) Fill(v bool) {
	for i := range m.bits {
		m.bits[i] = v
	}
}

// Count returns the number of covered pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	c := New(m.width, m.height)
	copy(c.bits, m.bits)
	return c
}

// SetCircle assigns v to every pixel whose centre lies within radius of
// center. center is in mask-local coordinates and may lie outside the mask.
func (m *Mask) SetCircle(center geom.Vec, radius float64, v bool) {
	if radius <= 0 {
		return
	}
	x0 := max(0, int(math.Floor(center.X-radius)))
	x1 := min(m.width-1, int(math.Ceil(center.X+radius)))
	y0 := max(0, int(math.Floor(center.Y-radius)))
	y1 := min(m.height-1, int(math.Ceil(center.Y+radius)))
	r2 := radius * radius
	for y := y0; y <= y1; y++ {
		dy := float64(y) + 0.5 - center.Y
		for x := x0; x <= x1; x++ {
			dx := float64(x) + 0.5 - center.X
			if dx*dx+dy*dy <= r2 {
				m.bits[y*m.width+x] = v
			}
		}
	}
}

// ClearCircle uncovers the disc at center.
func (m *Mask) ClearCircle(center geom.Vec, radius float64) {
	m.SetCircle(center, radius, false)
}

// Components labels the 4-connected covered regions. It returns one label
// per pixel (-1 for uncovered) and the pixel count of each region.
func (m *Mask) Components() (labels []int, sizes []int) {
	labels = make([]int, len(m.bits))
	for i := range labels {
		labels[i] = -1
	}
	queue := make([]int, 0, 64)
	for start, covered := range m.bits {
		if !covered || labels[start] >= 0 {
			continue
		}
		id := len(sizes)
		size := 0
		labels[start] = id
		queue = append(queue[:0], start)
		for len(queue) > 0 {
			i := queue[len(queue)-1]
			queue = queue[:len(queue)-1]
			size++
			x, y := i%m.width, i/m.width
			for _, n := range [4][2]int{{x - 1, y}, {x + 1, y}, {x, y - 1}, {x, y + 1}} {
				nx, ny := n[0], n[1]
				if nx < 0 || nx >= m.width || ny < 0 || ny >= m.height {
					continue
				}
				j := ny*m.width + nx
				if m.bits[j] && labels[j] < 0 {
					labels[j] = id
					queue = append(queue, j)
				}
			}
		}
		sizes = append(sizes, size)
	}
	return labels, sizes
}

// LargestComponent returns a new mask holding only the biggest 4-connected
// region. Ties go to the region found first in row-major order.
func (m *Mask) LargestComponent() *Mask {
	out := New(m.width, m.height)
	labels, sizes := m.Components()
	if len(sizes) == 0 {
		return out
	}
	best := 0
	for id, s := range sizes {
		if s > sizes[best] {
			best = id
		}
	}
	for i, l := range labels {
		out.bits[i] = l == best
	}
	return out
}

// KeepLargest discards every covered pixel outside the largest region.
func (m *Mask) KeepLargest() {
	m.bits = m.LargestComponent().bits
}

// ToImage paints covered pixels with set and uncovered ones with unset.
func (m *Mask) ToImage(set, unset color.Color) *image.RGBA {
	img := image.NewRGBA(m.Bounds())
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			if m.bits[y*m.width+x] {
				img.Set(x, y, set)
			} else {
				img.Set(x, y, unset)
			}
		}
	}
	return img
}

// ApplyTo copies src into dst, making every uncovered pixel transparent.
// Both images must have the mask's dimensions.
func (m *Mask) ApplyTo(dst, src *image.RGBA) {
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			si := src.PixOffset(x, y)
			di := dst.PixOffset(x, y)
			if m.bits[y*m.width+x] {
				copy(dst.Pix[di:di+4], src.Pix[si:si+4])
			} else {
				dst.Pix[di], dst.Pix[di+1], dst.Pix[di+2], dst.Pix[di+3] = 0, 0, 0, 0
			}
		}
	}
}
