package main

import (
	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/physics"
	"github.com/lixenwraith/sx3/registry"
)

// settings holds the driver's tunables; registerVars exposes them by name
type settings struct {
	Power       float32
	TurretAngle float32
	WeaponAngle float32

	Step    float32
	MaxTime float32

	Sound  bool
	Volume float64

	TerrainSize      int
	TerrainSpacing   float32
	TerrainAmplitude float32
	TerrainSeed      int
	TerrainFile      string
}

const terrainFileSize = 256

func defaultSettings() settings {
	return settings{
		Power:            parameter.TankPower,
		TurretAngle:      parameter.TankTurretAngle,
		WeaponAngle:      parameter.TankWeaponAngle,
		Step:             parameter.SimStep,
		MaxTime:          parameter.SimMaxTime,
		Volume:           parameter.AudioVolume,
		TerrainSize:      parameter.TerrainSize,
		TerrainSpacing:   parameter.TerrainSpacing,
		TerrainAmplitude: parameter.TerrainAmplitude,
	}
}

type varDef struct {
	name     string
	ref      registry.Ref
	readOnly bool
	onUpdate func()
}

// registerVars binds the world and the driver settings into reg. onSound
// runs whenever sound.enabled or sound.volume changes.
func registerVars(reg *registry.Registry, w *physics.World, s *settings, onSound func()) error {
	defs := []varDef{
		{"world.gravity", registry.Float(&w.Gravity), false, nil},
		{"world.air_density", registry.Float(&w.AirDensity), false, nil},
		{"world.air_viscosity", registry.Float(&w.AirViscosity), false, nil},
		{"world.wind_x", registry.Float(&w.WindX), false, nil},
		{"world.wind_z", registry.Float(&w.WindZ), false, nil},

		{"tank.power", registry.Float(&s.Power), false, nil},
		{"tank.turret_angle", registry.Float(&s.TurretAngle), false, nil},
		{"tank.weapon_angle", registry.Float(&s.WeaponAngle), false, nil},

		{"sim.dt", registry.Float(&s.Step), false, nil},
		{"sim.max_time", registry.Float(&s.MaxTime), false, nil},

		{"sound.enabled", registry.Bool(&s.Sound), false, onSound},
		{"sound.volume", registry.Double(&s.Volume), false, onSound},

		// Read once at startup, before the map is built
		{"terrain.size", registry.Int(&s.TerrainSize), false, nil},
		{"terrain.spacing", registry.Float(&s.TerrainSpacing), false, nil},
		{"terrain.amplitude", registry.Float(&s.TerrainAmplitude), false, nil},
		{"terrain.seed", registry.Int(&s.TerrainSeed), false, nil},
		{"terrain.file", registry.String(&s.TerrainFile, terrainFileSize), false, nil},
	}

	for _, d := range defs {
		if err := reg.AddVar(d.name, d.ref, d.readOnly, d.onUpdate); err != nil {
			return errors.Wrapf(err, "register %s", d.name)
		}
	}
	return nil
}
