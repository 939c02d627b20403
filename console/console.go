// Package console is the developer command line bound to the variable
// registry: get/set of variables, tab completion of names, command history
// and a scroll-back buffer.
package console

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/lixenwraith/sx3/parameter"
	"github.com/lixenwraith/sx3/registry"
)

// MaxLineLength bounds input and output lines, terminator included
const MaxLineLength = 160

// Registry names of the console tunables
const (
	VarActive       = "console.active"
	VarLinesPerPage = "console.lines_per_page"
	VarPrompt       = "console.prompt"
	VarActivateKey  = "keymap.activate_console"
)

// ErrLineOverflow is returned by Print for lines of MaxLineLength bytes or more
var ErrLineOverflow = errors.New("Console line overflow")

// Key is an input key after translation from the terminal
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyPgUp
	KeyPgDn
)

// Console holds the input line, the output buffer and the command history.
// It is not safe for concurrent use.
type Console struct {
	reg      *registry.Registry
	commands []Command

	// Registry-bound state
	active       bool
	linesPerPage int
	prompt       string
	activateKey  byte

	input      string
	output     []string
	history    []string
	histPos    int
	scrollback int
	paging     *registry.Search
	quit       bool
}

// New creates a console and registers its variables in reg
func New(reg *registry.Registry) (*Console, error) {
	c := &Console{
		reg:          reg,
		linesPerPage: parameter.ConsoleLinesPerPage,
		prompt:       parameter.ConsolePrompt,
		activateKey:  parameter.ConsoleActivateKey,
	}
	c.commands = builtinCommands()

	vars := []struct {
		name string
		ref  registry.Ref
	}{
		{VarActivateKey, registry.Char(&c.activateKey)},
		{VarActive, registry.Bool(&c.active)},
		{VarLinesPerPage, registry.Int(&c.linesPerPage)},
		{VarPrompt, registry.String(&c.prompt, parameter.ConsolePromptSize)},
	}
	for _, v := range vars {
		if err := reg.AddVar(v.name, v.ref, false, nil); err != nil {
			return nil, errors.Wrapf(err, "register %s", v.name)
		}
	}
	return c, nil
}

// Registry returns the registry the console operates on
func (c *Console) Registry() *registry.Registry { return c.reg }

func (c *Console) Active() bool   { return c.active }
func (c *Console) Prompt() string { return c.prompt }
func (c *Console) Input() string  { return c.input }

// Scrollback is how many lines the output view is scrolled up
func (c *Console) Scrollback() int { return c.scrollback }

// Paging reports whether a completion listing waits for a key
func (c *Console) Paging() bool { return c.paging != nil }

// QuitRequested reports whether the quit command ran
func (c *Console) QuitRequested() bool { return c.quit }

// Lines returns the output buffer, oldest first
func (c *Console) Lines() []string { return c.output }

// Print appends a line to the output buffer, dropping the oldest line when
// the buffer is full
func (c *Console) Print(line string) error {
	if len(line) >= MaxLineLength {
		return ErrLineOverflow
	}
	c.output = append(c.output, line)
	if n := len(c.output) - parameter.ConsoleMaxLines; n > 0 {
		c.output = c.output[n:]
	}
	return nil
}

// printTrunc prints line, truncated to fit
func (c *Console) printTrunc(line string) {
	if len(line) >= MaxLineLength {
		line = line[:MaxLineLength-1]
	}
	c.Print(line)
}

// SetActive shows or hides the console through the registry
func (c *Console) SetActive(on bool) {
	c.reg.ForceSetBool(VarActive, on)
}

// HandleKey processes one key. r is only read for KeyRune. It returns false
// when the key was not used, which happens while the console is hidden.
func (c *Console) HandleKey(k Key, r rune) bool {
	if k == KeyRune && r == rune(c.activateKey) {
		c.SetActive(!c.active)
		return true
	}
	if !c.active {
		return false
	}

	switch k {
	case KeyPgUp:
		c.scroll(c.linesPerPage)
		return true
	case KeyPgDn:
		c.scroll(-c.linesPerPage)
		return true
	}
	c.scrollback = 0

	if c.paging != nil {
		c.continuePaging(k == KeyRune && r == 'q')
		return true
	}

	switch k {
	case KeyEscape:
		c.input = ""
		c.histPos = len(c.history)
	case KeyUp:
		c.historyBack()
	case KeyDown:
		c.historyForward()
	case KeyTab:
		c.Complete()
	case KeyEnter:
		line := c.input
		c.Execute(line)
	case KeyBackspace:
		if n := len(c.input); n > 0 {
			c.input = c.input[:n-1]
		}
	case KeyRune:
		if r < 0x20 || r > 0x7e {
			return true
		}
		if len(c.input)+1 < MaxLineLength {
			c.input += string(r)
		}
	}
	return true
}

// SetInput replaces the input line
func (c *Console) SetInput(s string) {
	if len(s) >= MaxLineLength {
		s = s[:MaxLineLength-1]
	}
	c.input = s
}

func (c *Console) scroll(n int) {
	limit := max(len(c.output)-1, 0)
	c.scrollback = min(max(c.scrollback+n, 0), limit)
}

func (c *Console) historyBack() {
	if c.histPos > 0 {
		c.histPos--
	} else {
		c.histPos = len(c.history)
	}
	c.loadHistory()
}

func (c *Console) historyForward() {
	c.histPos = (c.histPos + 1) % (len(c.history) + 1)
	c.loadHistory()
}

func (c *Console) loadHistory() {
	if c.histPos < len(c.history) {
		c.input = c.history[c.histPos]
	} else {
		c.input = ""
	}
}

// Execute echoes line to the output, records it in the command history and
// runs it. The line is split into a command, a first argument and the rest.
func (c *Console) Execute(line string) {
	c.printTrunc(c.prompt + line)
	if strings.TrimSpace(line) != "" {
		c.history = append(c.history, line)
		if n := len(c.history) - parameter.ConsoleMaxHistory; n > 0 {
			c.history = c.history[n:]
		}
	}
	c.histPos = len(c.history)
	c.input = ""

	name, p1, p2 := splitLine(line)
	if name == "" {
		return
	}
	cmd, ok := c.lookup(name)
	if !ok {
		c.Print("Invalid command.")
		return
	}
	cmd.Run(c, p1, p2)
}

// splitLine returns the first two words of line and the trimmed remainder
func splitLine(line string) (cmd, p1, rest string) {
	cmd, rest = nextWord(line)
	p1, rest = nextWord(rest)
	return cmd, p1, strings.TrimSpace(rest)
}

func nextWord(s string) (word, rest string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// Complete performs tab completion of the variable name of a get or set line.
// A single match replaces the name on the input line; several matches are
// listed one page at a time.
func (c *Console) Complete() bool {
	cmd, search, value := splitLine(c.input)
	switch strings.ToLower(cmd) {
	case "set", "get", "s", "g":
	default:
		return false
	}

	s := c.reg.Search(search)
	first, ok := s.Next()
	if !ok {
		return true
	}
	other, ok := s.Next()
	if !ok {
		if strings.HasSuffix(first, ".") {
			c.SetInput(cmd + " " + first + value)
		} else {
			c.SetInput(cmd + " " + first + " " + value)
		}
		return true
	}

	c.printTrunc(c.input)
	c.printTrunc("   " + first)
	lines := 2
	for ok {
		c.printTrunc("   " + other)
		if lines++; lines >= c.linesPerPage {
			c.Print("Hit any key to continue ('q' to cancel)")
			c.paging = s
			return true
		}
		other, ok = s.Next()
	}
	return true
}

func (c *Console) continuePaging(cancel bool) {
	if cancel {
		c.paging = nil
		c.Print("<CANCELED>")
		return
	}

	lines := 0
	for name, ok := c.paging.Next(); ok; name, ok = c.paging.Next() {
		c.printTrunc("   " + name)
		if lines++; lines >= c.linesPerPage {
			c.Print("Hit any key to continue ('q' to cancel)")
			return
		}
	}
	c.paging = nil
}
