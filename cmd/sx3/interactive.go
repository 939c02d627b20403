package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/console"
	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/physics"
)

// consoleWriter prints settle summaries into the console
type consoleWriter struct{ c *console.Console }

func (w consoleWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		w.c.Print(line)
	}
	return len(p), nil
}

// front is the interactive terminal front end: a side view of the map along
// the firing axis with the console over its bottom rows
type front struct {
	g       *game
	con     *console.Console
	view    *console.View
	screen  tcell.Screen
	running bool

	groundStyle     tcell.Style
	tankStyle       tcell.Style
	projectileStyle tcell.Style
	explosionStyle  tcell.Style
	statusStyle     tcell.Style
}

func newFront(g *game, con *console.Console, screen tcell.Screen) *front {
	f := &front{
		g:               g,
		con:             con,
		view:            console.NewView(con, screen),
		screen:          screen,
		groundStyle:     tcell.StyleDefault.Foreground(tcell.ColorOlive),
		tankStyle:       tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true),
		projectileStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		explosionStyle:  tcell.StyleDefault.Foreground(tcell.ColorOrangeRed),
		statusStyle:     tcell.StyleDefault.Foreground(tcell.ColorSilver),
	}

	con.Register(console.Command{
		Name:        "fire",
		Shortcut:    "f",
		Description: "Fire the current tank's weapon",
		Run: func(c *console.Console, _, _ string) {
			if err := f.fire(); err != nil {
				c.Print(fmt.Sprintf("Cannot fire: %v", err))
			}
		},
	})
	return f
}

func (f *front) fire() error {
	if f.g.over() {
		return errors.New("game over")
	}
	if _, err := f.g.fire(); err != nil {
		return err
	}
	f.running = true
	return nil
}

// tick advances a running volley by one step and settles it once it stops
func (f *front) tick() {
	if !f.running {
		return
	}
	if f.g.step() && f.g.elapsed < f.g.set.MaxTime {
		return
	}
	f.running = false
	f.g.settle(consoleWriter{f.con})
}

// handleEvent reports false when the program should exit
func (f *front) handleEvent(ev tcell.Event) bool {
	if f.view.HandleEvent(ev) {
		return !f.con.QuitRequested()
	}

	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}
	s := &f.g.set
	switch key.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		s.TurretAngle -= 5
	case tcell.KeyRight:
		s.TurretAngle += 5
	case tcell.KeyUp:
		s.WeaponAngle = min(s.WeaponAngle+1, 90)
	case tcell.KeyDown:
		s.WeaponAngle = max(s.WeaponAngle-1, 0)
	case tcell.KeyRune:
		switch key.Rune() {
		case ' ':
			f.fire()
		case '+', '=':
			s.Power = min(s.Power+1, parameter.TankPowerMax)
		case '-':
			s.Power = max(s.Power-1, 0)
		case 'q':
			return false
		}
	}
	return true
}

// draw renders the side view: world z runs left to right, height bottom to top
func (f *front) draw() {
	f.screen.Clear()
	w, h := f.screen.Size()
	rows := h - f.view.Rows() - 1
	if w <= 0 || rows <= 0 {
		f.view.Draw()
		f.screen.Show()
		return
	}

	_, depth := f.g.ground.Extent()
	lo, hi := f.g.ground.Bounds()
	top := hi + float32(parameter.TankSeparation)/2
	col := func(z float32) int { return int(z / depth * float32(w)) }
	row := func(y float32) int {
		if top <= lo {
			return rows - 1
		}
		return rows - 1 - int((y-lo)/(top-lo)*float32(rows-1))
	}
	put := func(x, y int, r rune, style tcell.Style) {
		if x >= 0 && x < w && y >= 1 && y < rows+1 {
			f.screen.SetContent(x, y, r, nil, style)
		}
	}

	axis := f.g.current().Props.Position[0]
	for x := 0; x < w; x++ {
		z := (float32(x) + 0.5) / float32(w) * depth
		for y := row(f.g.engine.TerrainHeight(axis, z)); y <= rows; y++ {
			put(x, y+1, '█', f.groundStyle)
		}
	}

	for _, e := range f.g.scene.Explosions {
		p := e.Props.Position
		r := e.Props.Radius
		for z := p[2] - r; z <= p[2]+r; z += depth / float32(w) {
			put(col(z), row(p[1])+1, '*', f.explosionStyle)
		}
	}
	for _, p := range f.g.scene.Projectiles {
		if p.State != physics.StateImpacted {
			put(col(p.Props.Position[2]), row(p.Props.Position[1])+1, 'o', f.projectileStyle)
		}
	}
	for i, t := range f.g.scene.Tanks {
		if !t.Alive() {
			continue
		}
		put(col(t.Props.Position[2]), row(t.Props.Position[1])+1, rune('A'+i), f.tankStyle)
	}

	s := f.g.set
	status := fmt.Sprintf(" %s  power %.0f  turret %.0f  weapon %.0f  t=%.1f",
		f.g.current().Name, s.Power, s.TurretAngle, s.WeaponAngle, f.g.elapsed)
	for x, r := range status {
		if x >= w {
			break
		}
		f.screen.SetContent(x, 0, r, nil, f.statusStyle)
	}

	f.view.Draw()
	f.screen.Show()
}

// run polls terminal events on a goroutine and drives the simulation from a
// frame ticker until the user quits
func (f *front) run() {
	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	f.draw()
	for {
		select {
		case ev := <-eventChan:
			if !f.handleEvent(ev) {
				return
			}
			f.draw()

		case <-ticker.C:
			f.tick()
			f.draw()
		}
	}
}
