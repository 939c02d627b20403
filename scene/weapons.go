package scene

import (
	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/physics"
)

// ProjectileType selects the weapon fired
type ProjectileType int

const (
	MissileI ProjectileType = iota
	MissileII
	MissileIII
	MissileIV

	numProjectileTypes
)

// ExplosionType selects an explosion's peak radius
type ExplosionType int

const (
	NoExplosion ExplosionType = iota
	BoomI
	BoomII
	BoomIII
	BoomIV
)

// weaponExplosions maps each projectile type to the explosion it produces
var weaponExplosions = [numProjectileTypes]ExplosionType{
	BoomI,   // MissileI
	BoomII,  // MissileII
	BoomIII, // MissileIII
	BoomIV,  // MissileIV
}

// Radius returns the peak radius of t in meters
func (t ExplosionType) Radius() float32 {
	if t < 0 || int(t) >= len(parameter.ExplosionRadii) {
		return 0
	}
	return parameter.ExplosionRadii[t]
}

// Explosion returns the explosion a projectile of type t produces
func (t ProjectileType) Explosion() ExplosionType {
	if t < 0 || t >= numProjectileTypes {
		return NoExplosion
	}
	return weaponExplosions[t]
}

// Projectile is a shell in flight
type Projectile struct {
	Type    ProjectileType
	Elapsed float32 // s
	physics.Object
}

// Explosion is a sphere that grows to its type radius, then shrinks away
type Explosion struct {
	Type    ExplosionType
	Elapsed float32 // s
	Props   physics.PhysicalProperties
}

// newExplosion places an explosion where p stopped
func newExplosion(p *Projectile) Explosion {
	return Explosion{
		Type: p.Type.Explosion(),
		Props: physics.PhysicalProperties{
			Position:        p.Props.Position,
			AngularPosition: p.Props.AngularPosition,
			GrowthDirection: 1,
		},
	}
}

// update grows or shrinks e by dt seconds at rate m/s and reports whether
// the explosion has completed
func (e *Explosion) update(dt, rate float32) bool {
	e.Elapsed += dt
	peak := e.Type.Radius()
	e.Props.Radius += float32(e.Props.GrowthDirection) * rate * dt
	if e.Props.Radius > peak {
		e.Props.GrowthDirection = -1
		e.Props.Radius = peak
	}
	return e.Props.GrowthDirection < 0 && e.Props.Radius <= 0
}
