package parameter

import "time"

// Audio output settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration is the speaker buffer length
	AudioBufferDuration = 100 * time.Millisecond

	// AudioMaxVoices is how many cues may sound at once; further cues are dropped
	AudioMaxVoices = 4

	// AudioVolume is the linear master gain in [0, 1]
	AudioVolume = 0.5
)

// Cue shapes
const (
	FireFreq     = 220.0
	FireDuration = 120 * time.Millisecond
	FireAttack   = 5 * time.Millisecond
	FireRelease  = 80 * time.Millisecond

	ImpactFreq     = 55.0
	ImpactDuration = 400 * time.Millisecond
	ImpactAttack   = 2 * time.Millisecond
	ImpactRelease  = 300 * time.Millisecond

	HitFreq     = 660.0
	HitDuration = 200 * time.Millisecond
	HitAttack   = 5 * time.Millisecond
	HitRelease  = 120 * time.Millisecond

	EliminatedFreq         = 330.0
	EliminatedNoteDuration = 250 * time.Millisecond
	EliminatedAttack       = 10 * time.Millisecond
	EliminatedRelease      = 150 * time.Millisecond
)
