// Package terrain provides the height field the physics engine collides
// projectiles against. Maps tile infinitely in both horizontal directions.
package terrain

import (
	"math"

	"github.com/pkg/errors"
)

// HeightMap is a grid of height samples Spacing meters apart.
// Sample (i, j) lies at x = i*Spacing, z = j*Spacing.
type HeightMap struct {
	Width   int
	Depth   int
	Spacing float32
	Heights []float32 // index i + j*Width
}

// New returns a map of w x d samples at height 0
func New(w, d int, spacing float32) (*HeightMap, error) {
	if w <= 0 || d <= 0 {
		return nil, errors.Errorf("terrain: invalid size %dx%d", w, d)
	}
	if !(spacing > 0) {
		return nil, errors.Errorf("terrain: invalid spacing %v", spacing)
	}
	return &HeightMap{
		Width:   w,
		Depth:   d,
		Spacing: spacing,
		Heights: make([]float32, w*d),
	}, nil
}

// Flat returns a map with every sample at height h
func Flat(w, d int, spacing, h float32) (*HeightMap, error) {
	m, err := New(w, d, spacing)
	if err != nil {
		return nil, err
	}
	for i := range m.Heights {
		m.Heights[i] = h
	}
	return m, nil
}

func tile(v, n int) int {
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// At returns sample (i, j), wrapping out-of-range indices
func (m *HeightMap) At(i, j int) float32 {
	return m.Heights[tile(i, m.Width)+tile(j, m.Depth)*m.Width]
}

// Set stores sample (i, j), wrapping out-of-range indices
func (m *HeightMap) Set(i, j int, h float32) {
	m.Heights[tile(i, m.Width)+tile(j, m.Depth)*m.Width] = h
}

// Extent returns the size of one tile in meters
func (m *HeightMap) Extent() (x, z float32) {
	return float32(m.Width) * m.Spacing, float32(m.Depth) * m.Spacing
}

// Height interpolates the surface at (x, z). Each grid cell is split into two
// triangles along the diagonal from (i+1, j) to (i, j+1) and the height is
// taken from the plane of the triangle containing the point.
func (m *HeightMap) Height(x, z float32) float32 {
	gx := float64(x / m.Spacing)
	gz := float64(z / m.Spacing)
	fi := math.Floor(gx)
	fj := math.Floor(gz)
	fx := float32(gx - fi)
	fz := float32(gz - fj)
	i, j := int(fi), int(fj)

	h10 := m.At(i+1, j)
	h01 := m.At(i, j+1)
	if fx+fz <= 1 {
		h00 := m.At(i, j)
		return h00 + fx*(h10-h00) + fz*(h01-h00)
	}
	h11 := m.At(i+1, j+1)
	return h11 + (1-fx)*(h01-h11) + (1-fz)*(h10-h11)
}

// Bounds returns the lowest and highest samples
func (m *HeightMap) Bounds() (lo, hi float32) {
	lo, hi = m.Heights[0], m.Heights[0]
	for _, h := range m.Heights[1:] {
		lo = min(lo, h)
		hi = max(hi, h)
	}
	return lo, hi
}
