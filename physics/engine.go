package physics

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/rootfind"
	"github.com/lixenwraith/sx3/vmath"
)

// minAirSpeed below which a velocity lane receives no air resistance
const minAirSpeed = 0.000001

// Engine advances objects within one World against one terrain height function.
// Advance may be called concurrently for distinct objects. The World is read
// without synchronization; callers that mutate it must not do so during Advance.
type Engine struct {
	world  *World
	height atomic.Pointer[HeightFunc]
}

// NewEngine returns an engine reading world on every step, starting on flat terrain
func NewEngine(world *World) *Engine {
	e := &Engine{world: world}
	h := HeightFunc(ZeroHeight)
	e.height.Store(&h)
	return e
}

// World returns the environment the engine reads
func (e *Engine) World() *World {
	return e.world
}

// SetTerrainHeightFunc replaces the terrain height function. A nil f is ignored.
func (e *Engine) SetTerrainHeightFunc(f HeightFunc) {
	if f == nil {
		return
	}
	e.height.Store(&f)
}

// TerrainHeight evaluates the current terrain height function
func (e *Engine) TerrainHeight(x, z float32) float32 {
	return (*e.height.Load())(x, z)
}

// Advance integrates o over t seconds and returns the time actually elapsed.
//
// Projectiles that cross the terrain during the step are rewound to the
// crossing instant, left in StateImpacted, and the returned time is the time
// of impact. Objects in any other state are not touched and t is returned.
// Zero mass is not checked: the result propagates NaN and Inf.
func (e *Engine) Advance(o *Object, t float32) float32 {
	switch o.State {
	case StateProjectile, StateProjectileFinal:
	default:
		return t
	}
	assertMass(o)

	p := &o.Props
	var unpropelled float32

	// Thrust running out mid-step splits the step in two
	if o.PropellingTime > 0 && t > o.PropellingTime {
		unpropelled = t - o.PropellingTime
		t = o.PropellingTime
	}

	// v = v0 + a*t, x = x0 + (v0 + a*t/2)*t
	accel := vmath.DivScalar(e.NetForce(o, t), p.Mass)
	at := vmath.Scale(accel, t)
	velocity := vmath.Add(p.Velocity, at)
	mid := vmath.Add(vmath.Scale(at, 0.5), p.Velocity)
	position := vmath.Add(vmath.Scale(mid, t), p.Position)

	height := e.height.Load()
	if o.State == StateProjectile && position[1] < (*height)(position[0], position[2]) {
		o.State = StateProjectileFinal
		base := *o
		delta := func(tau float32) float32 {
			s := base
			e.Advance(&s, tau)
			return s.Props.Position[1] - (*height)(s.Props.Position[0], s.Props.Position[2])
		}
		hit, err := rootfind.Zeroin(0, t, delta, 0)
		if err != nil {
			log.Debug("impact search did not converge", "t", t, "estimate", hit, "err", err)
		}
		t = e.Advance(o, hit)
		o.State = StateImpacted
		return t
	}

	p.Position = position
	p.Velocity = velocity

	p.AngularPosition = vmath.Add(p.AngularPosition, vmath.Scale(p.AngularVelocity, t))
	for i := 0; i < 3; i++ {
		p.AngularPosition[i] = vmath.WrapAngle(p.AngularPosition[i])
	}

	if unpropelled != 0 {
		o.PropellingTime = 0
		t += e.Advance(o, unpropelled)
	} else {
		o.PropellingTime -= t
	}
	return t
}

// NetForce is the total force acting on o over a step of t seconds:
// gravity and propulsion, plus air resistance derived from both.
func (e *Engine) NetForce(o *Object, t float32) vmath.Vector {
	total := vmath.Add(e.gravityForce(o), propulsionForce(o))
	return vmath.Add(total, e.airResistanceForce(total, o, t))
}

func (e *Engine) gravityForce(o *Object) vmath.Vector {
	return vmath.Vec(0, e.world.Gravity*o.Props.Mass, 0, 0)
}

func propulsionForce(o *Object) vmath.Vector {
	if o.PropellingTime <= 0 {
		return vmath.Vector{}
	}
	return o.PropellingForce
}

// airResistanceForce decays the wind-relative velocity exponentially:
// -c*v0*e^(k*t) with c = viscosity*density and k = F0/(m*v0) - c/m per lane.
// Lanes without relative motion get no force.
func (e *Engine) airResistanceForce(f0 vmath.Vector, o *Object, t float32) vmath.Vector {
	c := -(e.world.AirViscosity * e.world.AirDensity)
	v0 := vmath.Sub(o.Props.Velocity, vmath.Vec(e.world.WindX, 0, e.world.WindZ, 0))

	k := vmath.DivScalar(vmath.AddScalar(vmath.Div(f0, v0), c), o.Props.Mass)
	r := vmath.Scale(vmath.Mul(vmath.Exp(vmath.Scale(k, t)), v0), c)

	for i := 0; i < 3; i++ {
		if math.Abs(float64(v0[i])) < minAirSpeed {
			r[i] = 0
		}
	}
	r[3] = 0
	return r
}

// DefaultWorld is the environment of the process-wide engine
var DefaultWorld = World{
	Gravity:      parameter.Gravity,
	AirDensity:   parameter.AirDensity,
	AirViscosity: parameter.AirViscosity,
	WindX:        parameter.WindX,
	WindZ:        parameter.WindZ,
}

var defaultEngine = NewEngine(&DefaultWorld)

// Default returns the process-wide engine bound to DefaultWorld
func Default() *Engine {
	return defaultEngine
}

// SetTerrainHeightFunc replaces the height function of the process-wide engine
func SetTerrainHeightFunc(f HeightFunc) {
	defaultEngine.SetTerrainHeightFunc(f)
}

// Advance steps o with the process-wide engine
func Advance(o *Object, t float32) float32 {
	return defaultEngine.Advance(o, t)
}
