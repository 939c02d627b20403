package audio

import (
	"testing"
	"time"
)

// pump pulls samples from the player's mixer until no cue is sounding
func pump(t *testing.T, p *Player) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 1000; i++ {
		if p.Active() == 0 {
			return total
		}
		p.mixer.Stream(buf)
		total += len(buf)
	}
	t.Fatal("cues never finished")
	return 0
}

// TestDefaultConfig verifies defaults come from parameter
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if !cfg.Enabled || cfg.SampleRate != 44100 || cfg.MaxVoices != 4 || cfg.Volume != 0.5 {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

// TestPlayerGracefulDegradation verifies cues are ignored before Init
func TestPlayerGracefulDegradation(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("uninitialized player panicked: %v", r)
		}
	}()

	p := NewPlayer(DefaultConfig())
	for c := Cue(0); c < cueCount; c++ {
		if p.Play(c) {
			t.Errorf("%v queued without a speaker", c)
		}
	}
	p.Close()
}

// TestPlayerDisabled verifies a disabled player never opens the speaker
func TestPlayerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	p := NewPlayer(cfg)

	if err := p.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if p.initialized {
		t.Error("disabled player initialized the speaker")
	}
	if p.Play(CueFire) {
		t.Error("disabled player queued a cue")
	}
}

// TestPlayerQueuesCue verifies a cue plays to completion through the mixer
func TestPlayerQueuesCue(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.attach()

	if !p.Play(CueFire) {
		t.Fatal("cue not queued")
	}
	if p.Active() != 1 {
		t.Errorf("active: got %d, want 1", p.Active())
	}

	streamed := pump(t, p)
	if want := testRate.N(120 * time.Millisecond); streamed < want {
		t.Errorf("cue finished after %d samples, want at least %d", streamed, want)
	}
}

// TestPlayerVoiceLimit verifies cues beyond MaxVoices are dropped
func TestPlayerVoiceLimit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxVoices = 2
	p := NewPlayer(cfg)
	p.attach()

	got := []bool{p.Play(CueImpact), p.Play(CueHit), p.Play(CueFire)}
	if !got[0] || !got[1] || got[2] {
		t.Errorf("queued: %v, want [true true false]", got)
	}

	pump(t, p)
	if !p.Play(CueFire) {
		t.Error("voice not released after cue finished")
	}
}

// TestPlayerMuteToggle verifies SetEnabled gates Play
func TestPlayerMuteToggle(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.attach()

	p.SetEnabled(false)
	if p.Play(CueHit) {
		t.Error("muted player queued a cue")
	}
	p.SetEnabled(true)
	if !p.Play(CueHit) {
		t.Error("unmuted player dropped a cue")
	}
}

// TestPlayerUnknownCue verifies invalid cues are rejected without using a voice
func TestPlayerUnknownCue(t *testing.T) {
	p := NewPlayer(DefaultConfig())
	p.attach()

	if p.Play(Cue(42)) {
		t.Error("unknown cue queued")
	}
	if p.Active() != 0 {
		t.Errorf("active: got %d", p.Active())
	}
}

// TestCueCache verifies cues render once and keep their length
func TestCueCache(t *testing.T) {
	c := newCueCache(testRate)
	a := c.get(CueHit)
	if a == nil || a != c.get(CueHit) {
		t.Fatal("cache did not return a stable buffer")
	}
	if want := testRate.N(200 * time.Millisecond); a.Len() != want {
		t.Errorf("hit length: got %d, want %d", a.Len(), want)
	}
	if c.get(Cue(-1)) != nil || c.get(cueCount) != nil {
		t.Error("out of range cue returned a buffer")
	}
}

// TestCueString verifies cue names
func TestCueString(t *testing.T) {
	tests := map[Cue]string{
		CueFire:       "fire",
		CueImpact:     "impact",
		CueHit:        "hit",
		CueEliminated: "eliminated",
		Cue(17):       "unknown",
	}
	for c, want := range tests {
		if got := c.String(); got != want {
			t.Errorf("Cue(%d): got %q, want %q", int(c), got, want)
		}
	}
}
