package terrain

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// MaxFileHeight is the raw sample value that maps to the maximum height
const MaxFileHeight = 0x1FFF

// Read decodes a binary terrain: two little-endian uint16 dimensions
// (width, depth) followed by width*depth int16 samples in row order. A raw
// sample of MaxFileHeight becomes maxHeight meters.
func Read(r io.Reader, spacing, maxHeight float32) (*HeightMap, error) {
	var dims [2]uint16
	if err := binary.Read(r, binary.LittleEndian, &dims); err != nil {
		return nil, errors.Wrap(err, "terrain: read header")
	}

	m, err := New(int(dims[0]), int(dims[1]), spacing)
	if err != nil {
		return nil, err
	}

	raw := make([]int16, len(m.Heights))
	if err := binary.Read(r, binary.LittleEndian, raw); err != nil {
		return nil, errors.Wrapf(err, "terrain: read %d samples", len(raw))
	}
	for k, v := range raw {
		m.Heights[k] = float32(v) / MaxFileHeight * maxHeight
	}
	return m, nil
}

// Load reads a terrain file
func Load(path string, spacing, maxHeight float32) (*HeightMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "terrain: open")
	}
	defer f.Close()

	return Read(bufio.NewReader(f), spacing, maxHeight)
}

// Write encodes m in the format Read accepts
func Write(w io.Writer, m *HeightMap, maxHeight float32) error {
	if m.Width > 0xFFFF || m.Depth > 0xFFFF {
		return errors.Errorf("terrain: %dx%d too large to encode", m.Width, m.Depth)
	}
	dims := [2]uint16{uint16(m.Width), uint16(m.Depth)}
	if err := binary.Write(w, binary.LittleEndian, dims); err != nil {
		return errors.Wrap(err, "terrain: write header")
	}

	raw := make([]int16, len(m.Heights))
	for k, h := range m.Heights {
		v := math.Round(float64(h / maxHeight * MaxFileHeight))
		raw[k] = int16(max(min(v, math.MaxInt16), math.MinInt16))
	}
	return errors.Wrap(binary.Write(w, binary.LittleEndian, raw), "terrain: write samples")
}
