package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ScriptLexer defines the tokens of the command language. Keywords are
// plain identifiers matched case-insensitively by the grammar, so objects
// may be named after them.
var ScriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	{Name: "LParen", Pattern: `\(`},
	{Name: "RParen", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},

	{Name: "Number", Pattern: `[-+]?(?:\d+\.?\d*|\.\d+)(?:[eE][-+]?\d+)?`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
})
