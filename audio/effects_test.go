package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to exhaustion and returns all samples
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not drain")
	return nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// TestOscillatorSine verifies sine samples stay in range
func TestOscillatorSine(t *testing.T) {
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, testRate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Stream: n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 || samples[i][0] != samples[i][1] {
			t.Errorf("sample %d: %v", i, samples[i])
		}
	}
	if samples[0][0] != 0 {
		t.Errorf("sine should start at 0, got %f", samples[0][0])
	}
	if osc.Err() != nil {
		t.Errorf("Err: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square samples are only +1 or -1
func TestOscillatorSquare(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	for i, s := range drain(t, osc) {
		if s[0] != 1 && s[0] != -1 {
			t.Fatalf("sample %d: %f", i, s[0])
		}
	}
}

// TestOscillatorSaw verifies the saw ramps from -1 towards 1
func TestOscillatorSaw(t *testing.T) {
	osc := NewOscillator(100, 10*time.Millisecond, WaveSaw, testRate)
	samples := drain(t, osc)
	if samples[0][0] != -1 {
		t.Errorf("saw should start at -1, got %f", samples[0][0])
	}
	if samples[1][0] <= samples[0][0] {
		t.Error("saw should rise")
	}
}

// TestOscillatorNoiseRepeatable verifies noise is in range and seeded per shape
func TestOscillatorNoiseRepeatable(t *testing.T) {
	a := drain(t, NewOscillator(0, 20*time.Millisecond, WaveNoise, testRate))
	b := drain(t, NewOscillator(0, 20*time.Millisecond, WaveNoise, testRate))
	var varied bool
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical oscillators", i)
		}
		if a[i][0] < -1 || a[i][0] > 1 {
			t.Fatalf("sample %d out of range: %f", i, a[i][0])
		}
		if i > 0 && a[i][0] != a[i-1][0] {
			varied = true
		}
	}
	if !varied {
		t.Error("noise is constant")
	}
}

// TestOscillatorDuration verifies the stream length matches the duration
func TestOscillatorDuration(t *testing.T) {
	tests := []time.Duration{10 * time.Millisecond, 100 * time.Millisecond, 250 * time.Millisecond}
	for _, d := range tests {
		got := len(drain(t, NewOscillator(440, d, WaveSine, testRate)))
		if want := testRate.N(d); got != want {
			t.Errorf("%v: got %d samples, want %d", d, got, want)
		}
	}
}

// TestEnvelopeShape verifies the attack starts silent and the tail fades out
func TestEnvelopeShape(t *testing.T) {
	osc := NewOscillator(100, 100*time.Millisecond, WaveSquare, testRate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, testRate)
	samples := drain(t, env)

	if len(samples) != testRate.N(100*time.Millisecond) {
		t.Fatalf("length: got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample: got %f, want 0", samples[0][0])
	}
	att := testRate.N(10 * time.Millisecond)
	if abs(samples[att/2][0]) > 0.51 {
		t.Errorf("mid attack too loud: %f", samples[att/2][0])
	}
	mid := len(samples) / 2
	if abs(samples[mid][0]) != 1 {
		t.Errorf("sustain: got %f, want full scale", samples[mid][0])
	}
	if last := abs(samples[len(samples)-1][0]); last > 0.01 {
		t.Errorf("release did not fade: %f", last)
	}
}

// TestEnvelopeTruncates verifies the envelope stops at its own duration
func TestEnvelopeTruncates(t *testing.T) {
	osc := NewOscillator(100, 100*time.Millisecond, WaveSine, testRate)
	env := NewEnvelope(osc, 50*time.Millisecond, 0, 0, testRate)
	if got, want := len(drain(t, env)), testRate.N(50*time.Millisecond); got != want {
		t.Errorf("got %d samples, want %d", got, want)
	}
}

// TestNewVolumeZero verifies zero gain silences the stream
func TestNewVolumeZero(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate)
	for i, s := range drain(t, newVolume(osc, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d not silent: %v", i, s)
		}
	}
}

// TestNewVolumeHalf verifies linear gain scaling
func TestNewVolumeHalf(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSquare, testRate)
	for i, s := range drain(t, newVolume(osc, 0.5)) {
		if abs(abs(s[0])-0.5) > 1e-9 {
			t.Fatalf("sample %d: got %f, want ±0.5", i, s[0])
		}
	}
}

// TestCueStreamers verifies every cue renders a bounded, non-silent stream
func TestCueStreamers(t *testing.T) {
	tests := []struct {
		cue     Cue
		maxLen  time.Duration
		exactly bool
	}{
		{CueFire, 120 * time.Millisecond, true},
		{CueImpact, 400 * time.Millisecond, false},
		{CueHit, 200 * time.Millisecond, true},
		{CueEliminated, 750 * time.Millisecond, true},
	}
	for _, tt := range tests {
		t.Run(tt.cue.String(), func(t *testing.T) {
			s := newCueStreamer(tt.cue, testRate)
			if s == nil {
				t.Fatal("nil streamer")
			}
			samples := drain(t, s)
			want := testRate.N(tt.maxLen)
			if len(samples) == 0 || len(samples) > want || (tt.exactly && len(samples) != want) {
				t.Errorf("length: got %d, want %d", len(samples), want)
			}

			var peak float64
			for _, v := range samples {
				peak = max(peak, abs(v[0]))
			}
			if peak == 0 || peak > 1 {
				t.Errorf("peak: %f", peak)
			}
		})
	}
}

// TestCueStreamerInvalid verifies unknown cues yield nil
func TestCueStreamerInvalid(t *testing.T) {
	if newCueStreamer(Cue(99), testRate) != nil {
		t.Error("expected nil for unknown cue")
	}
}
