package audio

// Cue identifies a sound effect
type Cue int

const (
	CueFire       Cue = iota // A tank fires
	CueImpact                // A projectile hits the ground
	CueHit                   // A tank takes damage
	CueEliminated            // A tank runs out of energy
	cueCount
)

var cueNames = [cueCount]string{"fire", "impact", "hit", "eliminated"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}
