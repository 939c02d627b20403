package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// cueCache stores each cue rendered once at unity gain
type cueCache struct {
	mu     sync.RWMutex
	format beep.Format
	store  [cueCount]*beep.Buffer
}

func newCueCache(rate beep.SampleRate) *cueCache {
	return &cueCache{
		format: beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2},
	}
}

// get returns the cached buffer or renders it on demand
func (c *cueCache) get(cue Cue) *beep.Buffer {
	if cue < 0 || cue >= cueCount {
		return nil
	}

	c.mu.RLock()
	if buf := c.store[cue]; buf != nil {
		c.mu.RUnlock()
		return buf
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if buf := c.store[cue]; buf != nil {
		return buf
	}

	buf := beep.NewBuffer(c.format)
	buf.Append(newCueStreamer(cue, c.format.SampleRate))
	c.store[cue] = buf
	return buf
}

// preload renders every cue so the first Play does not stall
func (c *cueCache) preload() {
	for cue := Cue(0); cue < cueCount; cue++ {
		c.get(cue)
	}
}
