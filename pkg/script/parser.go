package script

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser parses command scripts.
type Parser struct {
	parser *participle.Parser[Script]
}

// NewParser creates a new script parser instance
func NewParser() (*Parser, error) {
	parser, err := participle.Build[Script](
		participle.Lexer(ScriptLexer),
		participle.Elide("Comment", "Whitespace"),
		participle.CaseInsensitive("Ident"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse parses a script from a reader
func (p *Parser) Parse(r io.Reader) (*Script, error) {
	return p.parse("", r)
}

// ParseString parses a script from a string
func (p *Parser) ParseString(input string) (*Script, error) {
	s, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return s, nil
}

// ParseFile parses a script file; positions in errors carry the file name.
func (p *Parser) ParseFile(filename string) (*Script, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return p.parse(filename, file)
}

func (p *Parser) parse(filename string, r io.Reader) (*Script, error) {
	s, err := p.parser.Parse(filename, r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return s, nil
}
