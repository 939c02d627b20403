// Command sx3 fires tank volleys over generated terrain. By default it runs
// one volley and prints the trajectory; -console opens the interactive
// terminal front end.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sx3/audio"
	"github.com/lixenwraith/sx3/console"
	"github.com/lixenwraith/sx3/registry"
)

var (
	configFlag  = flag.String("config", "", "INI file with [Global] variable values")
	debugFlag   = flag.Bool("debug", false, "Write a debug log to logs/sx3.log")
	consoleFlag = flag.Bool("console", false, "Run the interactive console")
	dtFlag      = flag.Float64("dt", 0, "Simulation step in seconds (overrides sim.dt)")
	maxTimeFlag = flag.Float64("max-time", 0, "Volley time limit in seconds (overrides sim.max_time)")
	seedFlag    = flag.Int("seed", 0, "Terrain seed (overrides terrain.seed, 0 = random)")
	soundFlag   = flag.Bool("sound", false, "Play sound cues")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sx3: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	reg := registry.Default()

	g, err := newGame(reg, nil)
	if err != nil {
		return err
	}

	if *configFlag != "" {
		if err := reg.ReadConfigFile(*configFlag); err != nil {
			log.Warn("config not loaded, using defaults", "err", err)
		}
	}
	applyFlags(g)

	cfg := audio.DefaultConfig()
	cfg.Enabled = g.set.Sound
	cfg.Volume = g.set.Volume
	g.player = audio.NewPlayer(cfg)
	if err := g.player.Init(); err != nil {
		log.Warn("audio unavailable, continuing without sound", "err", err)
	}
	defer g.player.Close()

	if err := g.build(); err != nil {
		return err
	}

	if !*consoleFlag {
		return g.runBatch(os.Stdout)
	}
	return runConsole(g)
}

// applyFlags lets explicitly given flags override the config file
func applyFlags(g *game) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "dt":
			g.set.Step = float32(*dtFlag)
		case "max-time":
			g.set.MaxTime = float32(*maxTimeFlag)
		case "seed":
			g.set.TerrainSeed = *seedFlag
		case "sound":
			g.set.Sound = *soundFlag
		}
	})
}

func runConsole(g *game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}

	// Restore the terminal even if the simulation panics
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSX3 CRASHED: %v\nStack Trace:\n%s\n", r, debug.Stack())
			os.Exit(1)
		}
		screen.Fini()
	}()

	con, err := console.New(g.reg)
	if err != nil {
		return err
	}
	con.SetActive(true)
	con.Print(fmt.Sprintf("%s to fire. Type 'help' for commands, 'fire' to shoot.", g.current().Name))

	newFront(g, con, screen).run()
	return nil
}
