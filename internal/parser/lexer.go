package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer maps the raw string tokens out for our AST definitions.
// Basic whitespace elision is enough for our grammar.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
	{Name: "DiceMacro", Pattern: `\d*[dD]\d+(?:[kK][hHlL]\d+|[aAdD])?(?:[+-]\d+)?\b`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][\w-]*`},
	{Name: "Punct", Pattern: `[:]`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates our parser based on the struct tags in `ast.go`
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
		participle.CaseInsensitive("Ident"),
	)
}

var commandParser = Build()

// Parse reads one command line. Failures come back as usage guidance.
func Parse(input string) (*Command, error) {
	cmd, err := commandParser.ParseString("", input)
	if err != nil {
		return nil, MapError(input, err)
	}
	return cmd, nil
}
