package parameter

// Damage applied once per tank per volley
const (
	// DamageExplosion is dealt by an explosion sphere touching a tank
	DamageExplosion = 20.0

	// DamageDirectHit is dealt by a projectile touching a tank in flight
	DamageDirectHit = 40.0
)

// Explosion peak radii in meters, indexed by explosion type
var ExplosionRadii = [...]float32{
	0.0,  // none
	10.0, // boom I
	20.0, // boom II
	30.0, // boom III
	40.0, // boom IV
}

// ExplosionGrowthRate is the radius change in m/s while an explosion grows or shrinks
const ExplosionGrowthRate = 20.0
