package ini

import "fmt"

// MaxLineLength is the longest accepted line, excluding the line terminator
const MaxLineLength = 1023

type lexState int

const (
	stateLineStart lexState = iota
	stateAfterKey
	stateLineEnd
)

// Lexer splits INI input into line-oriented tokens
type Lexer struct {
	input []byte
	pos   int
	line  int
	state lexState
}

func NewLexer(input []byte) *Lexer {
	return &Lexer{
		input: input,
		line:  1,
	}
}

// NextToken returns the next token in the stream
func (l *Lexer) NextToken() Token {
	if l.pos >= len(l.input) {
		return l.newToken(TokenEOF, "")
	}

	if l.input[l.pos] == '\n' {
		l.pos++
		tok := l.newToken(TokenNewline, "\n")
		l.line++
		l.state = stateLineStart
		return tok
	}

	switch l.state {
	case stateAfterKey:
		return l.readValue()
	case stateLineEnd:
		// Whatever trails a section header is ignored
		l.skipLine()
		return l.NextToken()
	}

	if n := l.lineLength(); n > MaxLineLength {
		l.skipLine()
		return l.newToken(TokenError, fmt.Sprintf("line longer than %d bytes", MaxLineLength))
	}

	switch l.input[l.pos] {
	case '#', ';':
		return l.readComment()
	case '[':
		return l.readSection()
	}
	return l.readKey()
}

func (l *Lexer) newToken(typ TokenType, literal string) Token {
	return Token{Type: typ, Literal: literal, Line: l.line}
}

// lineLength counts bytes up to the next newline, ignoring a trailing \r
func (l *Lexer) lineLength() int {
	end := l.pos
	for end < len(l.input) && l.input[end] != '\n' {
		end++
	}
	if end > l.pos && l.input[end-1] == '\r' {
		end--
	}
	return end - l.pos
}

func (l *Lexer) skipLine() {
	for l.pos < len(l.input) && l.input[l.pos] != '\n' {
		l.pos++
	}
}

func (l *Lexer) readComment() Token {
	l.pos++ // consume marker
	start := l.pos
	l.skipLine()
	l.state = stateLineEnd
	return l.newToken(TokenComment, trimCR(string(l.input[start:l.pos])))
}

func (l *Lexer) readSection() Token {
	l.pos++ // consume '['
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == ']' || ch == '\r' || ch == '\n' {
			break
		}
		l.pos++
	}
	l.state = stateLineEnd
	return l.newToken(TokenSection, string(l.input[start:l.pos]))
}

func (l *Lexer) readKey() Token {
	start := l.pos
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch == '=' || ch == ' ' || ch == '\t' || ch == '\n' {
			break
		}
		l.pos++
	}
	l.state = stateAfterKey
	return l.newToken(TokenKey, trimCR(string(l.input[start:l.pos])))
}

func (l *Lexer) readValue() Token {
	for l.pos < len(l.input) {
		ch := l.input[l.pos]
		if ch != '=' && ch != ' ' && ch != '\t' {
			break
		}
		l.pos++
	}
	start := l.pos
	l.skipLine()
	l.state = stateLineEnd
	return l.newToken(TokenValue, trimCR(string(l.input[start:l.pos])))
}

func trimCR(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\r' {
		return s[:n-1]
	}
	return s
}
