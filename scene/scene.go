// Package scene animates a volley: projectiles fired by tanks, the
// explosions they leave on impact and the damage dealt to tanks.
package scene

import (
	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/physics"
	"github.com/lixenwraith/sx3/vmath"
)

// muzzleClearance separates a new projectile from its tank's hit sphere
const muzzleClearance = 0.5

var (
	ErrNoTank     = errors.New("no such tank")
	ErrTankKilled = errors.New("tank has been eliminated")
)

// Tank is a stationary gun. Angles are in degrees: TurretAngle is the heading
// with 0 facing +Z and 90 facing +X, WeaponAngle the elevation.
type Tank struct {
	Name string
	physics.Object

	Power       float32 // muzzle speed, m/s
	TurretAngle float32
	WeaponAngle float32

	Energy float32
	// Damage is collected during a volley and applied by Settle
	Damage float32
}

// Alive reports whether the tank still has energy
func (t *Tank) Alive() bool { return t.Energy > 0 }

// Scene holds the tanks and the items of the volley in progress.
// It is not safe for concurrent use.
type Scene struct {
	engine *physics.Engine

	Tanks       []*Tank
	Projectiles []Projectile
	Explosions  []Explosion

	// Current is the index of the tank whose turn it is
	Current int

	// GrowthRate is the explosion radius change in m/s
	GrowthRate float32

	OnFire       func(t *Tank, p *Projectile)
	OnImpact     func(p *Projectile, e *Explosion)
	OnHit        func(t *Tank, damage float32)
	OnEliminated func(t *Tank)
}

// New returns an empty scene simulated by engine
func New(engine *physics.Engine) *Scene {
	return &Scene{
		engine:     engine,
		GrowthRate: parameter.ExplosionGrowthRate,
	}
}

// Engine returns the physics engine driving the scene
func (s *Scene) Engine() *physics.Engine { return s.engine }

// AddTank places a tank with default settings on the terrain at (x, z)
func (s *Scene) AddTank(name string, x, z float32) *Tank {
	t := &Tank{
		Name: name,
		Object: physics.Object{
			Props: physics.PhysicalProperties{
				Mass:   parameter.TankMass,
				Radius: parameter.TankRadius,
			},
			State: physics.StateImpacted,
		},
		Power:       parameter.TankPower,
		TurretAngle: parameter.TankTurretAngle,
		WeaponAngle: parameter.TankWeaponAngle,
		Energy:      parameter.TankEnergy,
	}
	t.Props.Position = vmath.Vec(x, 0, z, 0)
	s.Ground(t)
	s.Tanks = append(s.Tanks, t)
	return t
}

// Ground rests t on the terrain below it
func (s *Scene) Ground(t *Tank) {
	p := &t.Props.Position
	p[1] = s.engine.TerrainHeight(p[0], p[2]) + t.Props.Radius
}

// Direction is the unit firing direction for the tank's angles
func (t *Tank) Direction() vmath.Vector {
	turret := vmath.Deg2Rad(t.TurretAngle)
	weapon := vmath.Deg2Rad(t.WeaponAngle)
	m := vmath.RotateY(turret).Mul4(vmath.RotateX(-weapon))
	return vmath.Normalize(vmath.MulMatrix(vmath.Vec(0, 0, 1, 0), m))
}

// Fire launches a projectile from tank i along its firing direction at its
// power, clamped to [0, parameter.TankPowerMax]
func (s *Scene) Fire(i int) (*Projectile, error) {
	if i < 0 || i >= len(s.Tanks) {
		return nil, errors.Wrapf(ErrNoTank, "fire %d", i)
	}
	t := s.Tanks[i]
	if !t.Alive() {
		return nil, errors.Wrapf(ErrTankKilled, "fire %s", t.Name)
	}

	dir := t.Direction()
	power := vmath.Clamp(t.Power, 0, parameter.TankPowerMax)
	offset := t.Props.Radius + parameter.ProjectileRadius + muzzleClearance

	s.Projectiles = append(s.Projectiles, Projectile{
		Type: MissileI,
		Object: physics.Object{
			Props: physics.PhysicalProperties{
				Mass:        parameter.ProjectileMass,
				Radius:      parameter.ProjectileRadius,
				SurfaceArea: parameter.ProjectileSurfaceArea,
				Position:    vmath.Add(t.Props.Position, vmath.Scale(dir, offset)),
				Velocity:    vmath.Scale(dir, power),
			},
			State: physics.StateProjectile,
		},
	})
	p := &s.Projectiles[len(s.Projectiles)-1]

	log.Info("fire", "tank", t.Name, "power", power, "turret", t.TurretAngle, "weapon", t.WeaponAngle)
	if s.OnFire != nil {
		s.OnFire(t, p)
	}
	return p, nil
}

// Step advances the volley by dt seconds and returns the number of items
// still animating. Explosions grow and shrink, projectiles fly, and an
// impacting projectile spawns an explosion that consumes the rest of dt.
// Each tank takes damage at most once per volley.
func (s *Scene) Step(dt float32) int {
	s.Explosions = s.updateExplosions(s.Explosions, dt)

	inFlight := 0
	for j := range s.Projectiles {
		p := &s.Projectiles[j]
		if p.State == physics.StateImpacted {
			continue
		}

		t := s.engine.Advance(&p.Object, dt)
		p.Elapsed += t
		if p.State != physics.StateImpacted {
			inFlight++
			continue
		}

		pos := p.Props.Position
		log.Info("projectile impacted", "index", j, "x", pos[0], "y", pos[1], "z", pos[2], "time", p.Elapsed)

		e := newExplosion(p)
		if !e.update(dt-t, s.GrowthRate) {
			s.Explosions = append(s.Explosions, e)
		}
		if s.OnImpact != nil {
			s.OnImpact(p, &e)
		}
	}

	for j := range s.Explosions {
		e := &s.Explosions[j]
		s.hitTanks(e.Props.Position, e.Props.Radius, parameter.DamageExplosion, "explosion", j)
	}
	for j := range s.Projectiles {
		p := &s.Projectiles[j]
		if p.State == physics.StateImpacted {
			continue
		}
		s.hitTanks(p.Props.Position, p.Props.Radius, parameter.DamageDirectHit, "projectile", j)
	}

	return len(s.Explosions) + inFlight
}

func (s *Scene) updateExplosions(list []Explosion, dt float32) []Explosion {
	kept := list[:0]
	for _, e := range list {
		if !e.update(dt, s.GrowthRate) {
			kept = append(kept, e)
		}
	}
	return kept
}

// hitTanks damages every undamaged living tank whose sphere overlaps the
// sphere at pos
func (s *Scene) hitTanks(pos vmath.Vector, radius, damage float32, by string, index int) {
	for _, t := range s.Tanks {
		if t.Damage != 0 || !t.Alive() {
			continue
		}
		d := vmath.Mag(vmath.Sub(t.Props.Position, pos))
		if d >= t.Props.Radius+radius {
			continue
		}
		t.Damage = damage
		log.Info("tank hit", "tank", t.Name, "by", by, "index", index, "damage", damage)
		if s.OnHit != nil {
			s.OnHit(t, damage)
		}
	}
}

// Animating reports whether the volley still has items in motion
func (s *Scene) Animating() bool {
	if len(s.Explosions) > 0 {
		return true
	}
	for j := range s.Projectiles {
		if s.Projectiles[j].State != physics.StateImpacted {
			return true
		}
	}
	return false
}

// Settle ends a volley: damage is subtracted from energy, spent projectiles
// are dropped and the turn passes to the next living tank. It returns the
// tanks eliminated by this volley.
func (s *Scene) Settle() []*Tank {
	var eliminated []*Tank
	for _, t := range s.Tanks {
		if t.Damage == 0 {
			continue
		}
		wasAlive := t.Alive()
		t.Energy -= t.Damage
		t.Damage = 0
		log.Info("damage applied", "tank", t.Name, "energy", t.Energy)
		if wasAlive && !t.Alive() {
			eliminated = append(eliminated, t)
			log.Info("tank eliminated", "tank", t.Name)
			if s.OnEliminated != nil {
				s.OnEliminated(t)
			}
		}
	}

	live := s.Projectiles[:0]
	for _, p := range s.Projectiles {
		if p.State != physics.StateImpacted {
			live = append(live, p)
		}
	}
	s.Projectiles = live

	if n := len(s.Tanks); n > 0 {
		for k := 1; k <= n; k++ {
			next := (s.Current + k) % n
			if s.Tanks[next].Alive() {
				s.Current = next
				break
			}
		}
	}
	return eliminated
}
