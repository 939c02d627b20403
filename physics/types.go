// Package physics integrates projectile motion under gravity, propulsion and
// air resistance, and locates the instant a projectile meets the terrain.
package physics

import "github.com/lixenwraith/sx3/vmath"

// State is the lifecycle stage of an Object
type State int

const (
	// StateProjectile is free flight; propulsion may still be active
	StateProjectile State = iota
	// StateProjectileFinal marks an object whose impact instant has been located
	// and which is finishing its last partial step
	StateProjectileFinal
	// StateRolling and StateRollingFinal are reserved; Advance leaves them untouched
	StateRolling
	StateRollingFinal
	// StateImpacted is terminal
	StateImpacted

	numStates
)

var stateNames = [numStates]string{
	"projectile",
	"projectile_final",
	"rolling",
	"rolling_final",
	"impacted",
}

func (s State) String() string {
	if s < 0 || s >= numStates {
		return "unknown"
	}
	return stateNames[s]
}

// PhysicalProperties describes a body. Angular positions are kept in [0, 2π)
// on the first three lanes.
type PhysicalProperties struct {
	Mass        float32 // kg, must be > 0
	Radius      float32 // m
	SurfaceArea float32 // m^2

	Position        vmath.Vector // m
	Velocity        vmath.Vector // m/s
	AngularPosition vmath.Vector // rad
	AngularVelocity vmath.Vector // rad/s

	MomentCoefficient   float32
	FrictionCoefficient float32
	BounceCoefficient   float32
	CanRoll             bool

	// GrowthDirection is +1 or -1, used by explosions
	GrowthDirection int
}

// Object is a simulated body with optional thrust
type Object struct {
	Props           PhysicalProperties
	PropellingForce vmath.Vector // N
	PropellingTime  float32      // s of thrust remaining
	State           State
}

// World holds the environment read on every force computation
type World struct {
	Gravity      float32 // m/s^2, negative is down
	AirDensity   float32
	AirViscosity float32
	WindX        float32 // m/s
	WindZ        float32 // m/s
}

// HeightFunc returns the terrain height at (x, z)
type HeightFunc func(x, z float32) float32

// ZeroHeight is flat terrain at y = 0
func ZeroHeight(x, z float32) float32 {
	return 0
}
