package console

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/sx3/registry"
)

// Command is a console command. Run receives the first argument and the
// remainder of the line.
type Command struct {
	Name        string
	Shortcut    string
	Description string
	Run         func(c *Console, p1, p2 string)
}

func builtinCommands() []Command {
	return []Command{
		{"set", "s", "Changes the value of a variable", cmdSet},
		{"get", "g", "Returns the value of a variable", cmdGet},
		{"list_vars", "listv", "Displays a list of the state variables accessible using 'get' and 'set'", cmdListVars},
		{"help", "h", "Obtain help on a command", cmdHelp},
		{"quit", "exit", "Exit the program", cmdQuit},
	}
}

// Register adds a command, replacing any command with the same name
func (c *Console) Register(cmd Command) {
	for i := range c.commands {
		if strings.EqualFold(c.commands[i].Name, cmd.Name) {
			c.commands[i] = cmd
			return
		}
	}
	c.commands = append(c.commands, cmd)
}

// Commands returns the registered commands in registration order
func (c *Console) Commands() []Command { return c.commands }

func (c *Console) lookup(name string) (Command, bool) {
	for _, cmd := range c.commands {
		if strings.EqualFold(cmd.Name, name) || (cmd.Shortcut != "" && strings.EqualFold(cmd.Shortcut, name)) {
			return cmd, true
		}
	}
	return Command{}, false
}

func cmdSet(c *Console, p1, p2 string) {
	if p1 == "" || p2 == "" {
		c.Print("USAGE: set <var name> <var value>")
		return
	}

	err := c.reg.SetValue(p1, p2)
	switch registry.CodeOf(err) {
	case registry.Success:
		c.printTrunc(fmt.Sprintf("%s set successfully.", p1))
	case registry.NotFound:
		c.printTrunc(fmt.Sprintf("%s does not exist.", p1))
	case registry.ReadOnly:
		c.printTrunc(fmt.Sprintf("%s is read-only.", p1))
	case registry.StringTooShort:
		c.printTrunc(fmt.Sprintf("The '%s' string is too short to accept the new value.", p1))
	default:
		c.printTrunc(fmt.Sprintf("Cannot set %s: %v", p1, err))
	}
}

func cmdGet(c *Console, p1, p2 string) {
	if p1 == "" || p2 != "" {
		c.Print("USAGE: get <var name>")
		return
	}

	found := false
	s := c.reg.Search(p1)
	for name, ok := s.Next(); ok; name, ok = s.Next() {
		found = true
		value, err := c.reg.Print(name, MaxLineLength)
		switch registry.CodeOf(err) {
		case registry.Success:
			c.printTrunc(fmt.Sprintf("%s = %s", name, value))
		case registry.NotFound:
			c.printTrunc(fmt.Sprintf("%s (...)", name))
		case registry.BufferTooSmall:
			c.printTrunc(fmt.Sprintf("%s = (console line too small to print value)", name))
		default:
			c.printTrunc(fmt.Sprintf("%s = (%v)", name, err))
		}
	}
	if !found {
		c.Print("No matching variables.")
	}
}

func cmdListVars(c *Console, p1, _ string) {
	c.Print("State variables:")
	s := c.reg.Search(p1)
	for name, ok := s.Next(); ok; name, ok = s.Next() {
		c.printTrunc("  " + name)
	}
}

func cmdHelp(c *Console, p1, _ string) {
	if p1 == "" {
		c.Print("Console commands available:")
		for _, cmd := range c.commands {
			c.printTrunc(fmt.Sprintf("  %s [%s]: %s", cmd.Name, cmd.Shortcut, cmd.Description))
		}
		return
	}

	cmd, ok := c.lookup(p1)
	if !ok {
		c.Print("Command does not exist.")
		return
	}
	c.printTrunc(cmd.Description)
}

func cmdQuit(c *Console, _, _ string) {
	c.quit = true
}
