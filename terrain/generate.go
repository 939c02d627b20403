package terrain

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// Config describes a generated map
type Config struct {
	Width, Depth int
	Spacing      float32

	// Amplitude is the distance between the lowest and highest samples
	Amplitude float32

	// Octaves of value noise summed, each at twice the frequency and half the
	// weight of the previous one. 0 selects 4.
	Octaves int

	Seed int64 // Optional (0 = Random)
}

// Generate builds a tileable fractal value-noise map. The same seed always
// yields the same map.
func Generate(cfg Config) (*HeightMap, error) {
	m, err := New(cfg.Width, cfg.Depth, cfg.Spacing)
	if err != nil {
		return nil, err
	}
	if cfg.Amplitude < 0 {
		return nil, errors.Errorf("terrain: negative amplitude %v", cfg.Amplitude)
	}
	octaves := cfg.Octaves
	if octaves <= 0 {
		octaves = 4
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	weight := float32(1)
	cells := 2
	for o := 0; o < octaves; o++ {
		// Lattice periods divide the map so the result tiles
		cx := min(cells, cfg.Width)
		cz := min(cells, cfg.Depth)
		lattice := make([]float32, cx*cz)
		for k := range lattice {
			lattice[k] = rng.Float32()
		}

		for j := 0; j < cfg.Depth; j++ {
			for i := 0; i < cfg.Width; i++ {
				u := float32(i) * float32(cx) / float32(cfg.Width)
				v := float32(j) * float32(cz) / float32(cfg.Depth)
				m.Heights[i+j*cfg.Width] += weight * smoothNoise(lattice, cx, cz, u, v)
			}
		}

		weight /= 2
		cells *= 2
	}

	normalize(m, cfg.Amplitude)
	return m, nil
}

// smoothNoise interpolates the lattice at (u, v) with a smoothstep blend
func smoothNoise(lattice []float32, cx, cz int, u, v float32) float32 {
	u0, v0 := int(u), int(v)
	su := smoothstep(u - float32(u0))
	sv := smoothstep(v - float32(v0))

	at := func(a, b int) float32 { return lattice[tile(a, cx)+tile(b, cz)*cx] }
	n0 := lerp(at(u0, v0), at(u0+1, v0), su)
	n1 := lerp(at(u0, v0+1), at(u0+1, v0+1), su)
	return lerp(n0, n1, sv)
}

func lerp(a, b, t float32) float32 { return a + t*(b-a) }

func smoothstep(t float32) float32 { return t * t * (3 - 2*t) }

// normalize rescales the samples to [0, amplitude]
func normalize(m *HeightMap, amplitude float32) {
	lo, hi := m.Bounds()
	span := hi - lo
	for k, h := range m.Heights {
		if span > 0 {
			m.Heights[k] = (h - lo) / span * amplitude
		} else {
			m.Heights[k] = 0
		}
	}
}
