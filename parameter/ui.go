package parameter

// Console defaults
const (
	// ConsoleLinesPerPage is how many completion matches are listed before paging
	ConsoleLinesPerPage = 10

	// ConsoleMaxLines bounds the scroll-back buffer
	ConsoleMaxLines = 500

	// ConsoleMaxHistory bounds the command history
	ConsoleMaxHistory = 64

	// ConsolePrompt is the default prompt
	ConsolePrompt = "> "

	// ConsolePromptSize is the string capacity of console.prompt, terminator included
	ConsolePromptSize = 16

	// ConsoleActivateKey toggles the console
	ConsoleActivateKey = '`'
)

// MaxSearchLength bounds registry search prefixes, terminator included
const MaxSearchLength = 80
