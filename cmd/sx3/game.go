package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/audio"
	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/physics"
	"github.com/lixenwraith/sx3/registry"
	"github.com/lixenwraith/sx3/scene"
	"github.com/lixenwraith/sx3/terrain"
)

// game owns the simulation state shared by the batch and console front ends
type game struct {
	reg    *registry.Registry
	world  physics.World
	engine *physics.Engine
	scene  *scene.Scene
	ground *terrain.HeightMap
	player *audio.Player
	set    settings

	// elapsed is the simulated time of the volley in progress
	elapsed float32
}

// newGame registers the game's variables in reg. build must run before the
// scene is used.
func newGame(reg *registry.Registry, player *audio.Player) (*game, error) {
	g := &game{
		reg:    reg,
		player: player,
		set:    defaultSettings(),
		world: physics.World{
			Gravity:      parameter.Gravity,
			AirDensity:   parameter.AirDensity,
			AirViscosity: parameter.AirViscosity,
			WindX:        parameter.WindX,
			WindZ:        parameter.WindZ,
		},
	}
	g.engine = physics.NewEngine(&g.world)
	if err := registerVars(reg, &g.world, &g.set, g.applySound); err != nil {
		return nil, err
	}
	return g, nil
}

// applySound pushes sound.* into the player
func (g *game) applySound() {
	if g.player == nil {
		return
	}
	g.player.SetEnabled(g.set.Sound)
	g.player.SetVolume(g.set.Volume)
	if g.set.Sound {
		// Opens the speaker on first enable
		if err := g.player.Init(); err != nil {
			log.Warn("audio unavailable", "err", err)
		}
	}
}

// build creates the terrain and places two tanks facing each other across
// the middle of the map
func (g *game) build() error {
	var err error
	if g.set.TerrainFile != "" {
		g.ground, err = terrain.Load(g.set.TerrainFile, g.set.TerrainSpacing, g.set.TerrainAmplitude)
	} else {
		g.ground, err = terrain.Generate(terrain.Config{
			Width:     g.set.TerrainSize,
			Depth:     g.set.TerrainSize,
			Spacing:   g.set.TerrainSpacing,
			Amplitude: g.set.TerrainAmplitude,
			Seed:      int64(g.set.TerrainSeed),
		})
	}
	if err != nil {
		return errors.Wrap(err, "build terrain")
	}
	g.engine.SetTerrainHeightFunc(g.ground.Height)

	g.scene = scene.New(g.engine)
	g.scene.OnFire = func(*scene.Tank, *scene.Projectile) { g.play(audio.CueFire) }
	g.scene.OnImpact = func(*scene.Projectile, *scene.Explosion) { g.play(audio.CueImpact) }
	g.scene.OnHit = func(*scene.Tank, float32) { g.play(audio.CueHit) }
	g.scene.OnEliminated = func(*scene.Tank) { g.play(audio.CueEliminated) }

	ex, ez := g.ground.Extent()
	half := float32(parameter.TankSeparation) / 2
	g.scene.AddTank("alpha", ex/2, ez/2-half)
	beta := g.scene.AddTank("beta", ex/2, ez/2+half)
	beta.TurretAngle = 180

	lo, hi := g.ground.Bounds()
	log.Info("terrain ready", "width", g.ground.Width, "depth", g.ground.Depth, "low", lo, "high", hi)

	g.loadAim()
	return nil
}

func (g *game) play(c audio.Cue) {
	if g.player != nil {
		g.player.Play(c)
	}
}

// loadAim copies the current tank's aim into tank.*
func (g *game) loadAim() {
	t := g.scene.Tanks[g.scene.Current]
	g.set.Power = t.Power
	g.set.TurretAngle = t.TurretAngle
	g.set.WeaponAngle = t.WeaponAngle
}

// current returns the tank whose turn it is
func (g *game) current() *scene.Tank {
	return g.scene.Tanks[g.scene.Current]
}

// fire aims the current tank from tank.* and launches its weapon
func (g *game) fire() (*scene.Projectile, error) {
	if g.scene.Animating() {
		return nil, errors.New("volley in progress")
	}
	t := g.current()
	t.Power = g.set.Power
	t.TurretAngle = g.set.TurretAngle
	t.WeaponAngle = g.set.WeaponAngle

	g.elapsed = 0
	return g.scene.Fire(g.scene.Current)
}

// step advances the volley by one sim.dt and reports whether it is still
// animating
func (g *game) step() bool {
	dt := g.set.Step
	if dt <= 0 {
		dt = parameter.SimStep
	}
	g.elapsed += dt
	return g.scene.Step(dt) > 0
}

// settle closes the volley, writes a summary to w and hands the turn over
func (g *game) settle(w io.Writer) {
	eliminated := g.scene.Settle()
	for _, t := range eliminated {
		fmt.Fprintf(w, "%s eliminated\n", t.Name)
	}
	for _, t := range g.scene.Tanks {
		fmt.Fprintf(w, "%s energy %.1f\n", t.Name, t.Energy)
	}
	if g.over() {
		fmt.Fprintln(w, "game over")
		return
	}
	g.loadAim()
	fmt.Fprintf(w, "%s to fire\n", g.current().Name)
}

// over reports whether fewer than two tanks remain
func (g *game) over() bool {
	alive := 0
	for _, t := range g.scene.Tanks {
		if t.Alive() {
			alive++
		}
	}
	return alive < 2
}

// runBatch fires the current tank and prints every projectile position each
// step until the volley settles or sim.max_time elapses
func (g *game) runBatch(w io.Writer) error {
	if _, err := g.fire(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%s fires: power %.1f turret %.1f weapon %.1f\n",
		g.current().Name, g.set.Power, g.set.TurretAngle, g.set.WeaponAngle)

	onImpact := g.scene.OnImpact
	defer func() { g.scene.OnImpact = onImpact }()
	g.scene.OnImpact = func(p *scene.Projectile, e *scene.Explosion) {
		pos := p.Props.Position
		fmt.Fprintf(w, "impact x=%.3f y=%.3f z=%.3f radius %.0f\n", pos[0], pos[1], pos[2], e.Type.Radius())
		if onImpact != nil {
			onImpact(p, e)
		}
	}

	for g.step() {
		for _, p := range g.scene.Projectiles {
			if p.State == physics.StateImpacted {
				continue
			}
			pos := p.Props.Position
			fmt.Fprintf(w, "t=%.2f x=%.3f y=%.3f z=%.3f %s\n", g.elapsed, pos[0], pos[1], pos[2], p.State)
		}
		if g.elapsed >= g.set.MaxTime {
			fmt.Fprintf(w, "max time %.1fs reached\n", g.set.MaxTime)
			break
		}
	}
	g.settle(w)
	return nil
}
