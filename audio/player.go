// Package audio synthesizes the game's sound cues with beep and plays them
// through the system speaker. A player that is disabled or failed to open
// the speaker ignores every cue.
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/parameter"
)

// Config holds player settings
type Config struct {
	Enabled    bool
	SampleRate int
	Volume     float64 // linear gain in [0, 1]
	MaxVoices  int
}

// DefaultConfig returns settings from parameter with sound enabled
func DefaultConfig() Config {
	return Config{
		Enabled:    true,
		SampleRate: parameter.AudioSampleRate,
		Volume:     parameter.AudioVolume,
		MaxVoices:  parameter.AudioMaxVoices,
	}
}

// Player mixes cues into the speaker, at most Config.MaxVoices at a time
type Player struct {
	mu          sync.Mutex
	cfg         Config
	rate        beep.SampleRate
	mixer       *beep.Mixer
	cache       *cueCache
	initialized bool
	active      atomic.Int32
}

// NewPlayer creates a player; Init opens the speaker
func NewPlayer(cfg Config) *Player {
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = parameter.AudioSampleRate
	}
	rate := beep.SampleRate(cfg.SampleRate)
	return &Player{
		cfg:   cfg,
		rate:  rate,
		mixer: &beep.Mixer{},
		cache: newCueCache(rate),
	}
}

// Init opens the speaker. A disabled player stays muted and returns nil.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized || !p.cfg.Enabled {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		return errors.Wrap(err, "audio: speaker init")
	}
	p.attach()
	speaker.Play(p.mixer)
	log.Info("audio initialized", "rate", p.cfg.SampleRate, "voices", p.cfg.MaxVoices)
	return nil
}

// attach renders the cues and marks the mixer ready to receive them
func (p *Player) attach() {
	p.cache.preload()
	p.initialized = true
}

// Play starts cue c and reports whether it was queued. Cues are dropped
// while the player is muted or all voices are busy.
func (p *Player) Play(c Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || !p.cfg.Enabled {
		return false
	}
	if int(p.active.Load()) >= p.cfg.MaxVoices {
		log.Debug("cue dropped", "cue", c, "active", p.active.Load())
		return false
	}
	buf := p.cache.get(c)
	if buf == nil {
		return false
	}

	p.active.Add(1)
	s := beep.Seq(
		newVolume(buf.Streamer(0, buf.Len()), p.cfg.Volume),
		beep.Callback(func() { p.active.Add(-1) }),
	)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Active returns the number of cues still sounding
func (p *Player) Active() int {
	return int(p.active.Load())
}

// SetVolume changes the gain applied to cues started afterwards
func (p *Player) SetVolume(v float64) {
	p.mu.Lock()
	p.cfg.Volume = v
	p.mu.Unlock()
}

// SetEnabled mutes or unmutes the player
func (p *Player) SetEnabled(on bool) {
	p.mu.Lock()
	p.cfg.Enabled = on
	p.mu.Unlock()
}

// Close stops all cues and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.active.Store(0)

	speaker.Close()
	p.initialized = false
}
