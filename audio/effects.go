package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/sx3/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave of fixed length
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a streamer of the given wave lasting duration.
// Noise ignores freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope ramps s up over attack and down over the final release of duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s by a linear gain; log2(0) is -Inf so 0 is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// createFireSound is a short saw bark
func createFireSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.FireFreq, parameter.FireDuration, WaveSaw, rate)
	return NewEnvelope(osc, parameter.FireDuration, parameter.FireAttack, parameter.FireRelease, rate)
}

// createImpactSound mixes a noise burst with a low rumble
func createImpactSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, parameter.ImpactDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, parameter.ImpactDuration, parameter.ImpactAttack, parameter.ImpactRelease, rate)

	rumble := NewOscillator(parameter.ImpactFreq, parameter.ImpactDuration, WaveSine, rate)
	rumbleShaped := NewEnvelope(rumble, parameter.ImpactDuration, parameter.ImpactAttack, parameter.ImpactDuration/2, rate)

	return beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
}

// createHitSound is a two-tone square ping, the second note an octave up
func createHitSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.HitDuration / 2
	n1 := NewOscillator(parameter.HitFreq, half, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, half, parameter.HitAttack, half/2, rate)

	n2 := NewOscillator(parameter.HitFreq*2, half, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, half, parameter.HitAttack, parameter.HitRelease/2, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// createEliminatedSound is a falling three-note saw phrase
func createEliminatedSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.EliminatedNoteDuration
	notes := make([]beep.Streamer, 0, 3)
	for _, ratio := range []float64{1, 0.75, 0.5} {
		osc := NewOscillator(parameter.EliminatedFreq*ratio, d, WaveSaw, rate)
		notes = append(notes, NewEnvelope(osc, d, parameter.EliminatedAttack, parameter.EliminatedRelease, rate))
	}
	return newVolume(beep.Seq(notes...), 0.7)
}

// newCueStreamer returns a fresh unity-gain streamer for c, nil if unknown
func newCueStreamer(c Cue, rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueFire:
		return createFireSound(rate)
	case CueImpact:
		return createImpactSound(rate)
	case CueHit:
		return createHitSound(rate)
	case CueEliminated:
		return createEliminatedSound(rate)
	default:
		return nil
	}
}
