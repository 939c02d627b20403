package console

import (
	"github.com/gdamore/tcell/v2"
)

// View draws a console onto a tcell screen and feeds it key events.
// The console occupies the bottom lines_per_page+1 rows while active.
type View struct {
	console *Console
	screen  tcell.Screen

	textStyle   tcell.Style
	promptStyle tcell.Style
	cursorStyle tcell.Style
}

func NewView(c *Console, screen tcell.Screen) *View {
	return &View{
		console:     c,
		screen:      screen,
		textStyle:   tcell.StyleDefault.Foreground(tcell.ColorSilver),
		promptStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		cursorStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Reverse(true),
	}
}

// Rows returns the number of screen rows the console covers, 0 when hidden
func (v *View) Rows() int {
	if !v.console.Active() {
		return 0
	}
	_, h := v.screen.Size()
	return min(v.console.linesPerPage+1, h)
}

// Draw renders the console without clearing or showing the screen
func (v *View) Draw() {
	rows := v.Rows()
	if rows == 0 {
		return
	}
	w, h := v.screen.Size()
	top := h - rows

	for y := top; y < h; y++ {
		for x := 0; x < w; x++ {
			v.screen.SetContent(x, y, ' ', nil, v.textStyle)
		}
	}

	// Output lines fill upward from the row above the prompt
	lines := v.console.Lines()
	end := len(lines) - v.console.Scrollback()
	for y := h - 2; y >= top && end > 0; y-- {
		end--
		v.drawText(0, y, w, lines[end], v.textStyle)
	}

	x := v.drawText(0, h-1, w, v.console.Prompt(), v.promptStyle)
	x = v.drawText(x, h-1, w, v.console.Input(), v.textStyle)
	if x < w {
		v.screen.SetContent(x, h-1, ' ', nil, v.cursorStyle)
	}
}

func (v *View) drawText(x, y, w int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= w {
			break
		}
		v.screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}

// HandleEvent passes terminal key events to the console. It returns true
// when the console consumed the event.
func (v *View) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := translateKey(ev.Key())
		if !ok {
			return false
		}
		return v.console.HandleKey(k, ev.Rune())
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return false
}

func translateKey(k tcell.Key) (Key, bool) {
	switch k {
	case tcell.KeyRune:
		return KeyRune, true
	case tcell.KeyEnter:
		return KeyEnter, true
	case tcell.KeyTab:
		return KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace, true
	case tcell.KeyEscape:
		return KeyEscape, true
	case tcell.KeyUp:
		return KeyUp, true
	case tcell.KeyDown:
		return KeyDown, true
	case tcell.KeyPgUp:
		return KeyPgUp, true
	case tcell.KeyPgDn:
		return KeyPgDn, true
	}
	return 0, false
}
