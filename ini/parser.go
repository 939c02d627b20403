package ini

import "fmt"

// Parser builds a File from lexer tokens
type Parser struct {
	lexer     *Lexer
	curToken  Token
	peekToken Token
	file      *File
	current   int // index of the open section, -1 before the first
}

func NewParser(input []byte) *Parser {
	p := &Parser{
		lexer:   NewLexer(input),
		file:    &File{},
		current: -1,
	}
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lexer.NextToken()

	// Comments carry nothing the parser needs
	for p.peekToken.Type == TokenComment {
		p.peekToken = p.lexer.NextToken()
	}
}

func (p *Parser) Parse() (*File, error) {
	for p.curToken.Type != TokenEOF {
		switch p.curToken.Type {
		case TokenNewline:
			p.nextToken()
		case TokenSection:
			p.file.Sections = append(p.file.Sections, Section{Name: p.curToken.Literal})
			p.current = len(p.file.Sections) - 1
			p.nextToken()
		case TokenKey:
			p.parseEntry()
		case TokenError:
			return nil, fmt.Errorf("line %d: %s", p.curToken.Line, p.curToken.Literal)
		default:
			return nil, fmt.Errorf("unexpected token line %d: %s", p.curToken.Line, p.curToken.String())
		}
	}
	return p.file, nil
}

// parseEntry handles "key = value", "key value" and a bare "key".
// Entries before the first section and entries without a key are dropped.
func (p *Parser) parseEntry() {
	key := p.curToken.Literal
	p.nextToken()

	var value string
	if p.curToken.Type == TokenValue {
		value = p.curToken.Literal
		p.nextToken()
	}

	if p.current < 0 || key == "" {
		return
	}
	sec := &p.file.Sections[p.current]
	sec.Entries = append(sec.Entries, Entry{Key: key, Value: value})
}
