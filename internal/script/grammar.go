// Package script parses and executes session scripts: plain-text
// sequences of placements, stage transitions and moves.
//
//	grid 5 5
//	place hunter at 0 0
//	place treasure 5 at 0 1
//	end setup
//	move right
//	end play
package script

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Script is the top-level AST node.
type Script struct {
	Grid     *GridDecl  `@@?`
	Commands []*Command `@@*`
}

// GridDecl: grid ROWS COLS
type GridDecl struct {
	Pos  lexer.Position
	Rows int `"grid" @Int`
	Cols int `@Int`
}

// Command is a single script line.
type Command struct {
	Pos lexer.Position

	Place *Place  `  @@`
	End   *string `| "end" @("setup" | "play")`
	Move  *string `| "move" @Ident`
}

// Place: place OBJECT at ROW COL
type Place struct {
	Object *Object `"place" @@`
	Row    int     `"at" @Int`
	Col    int     `@Int`
}

// Object: hunter | obstacle | treasure VALUE
type Object struct {
	Hunter   bool `  @"hunter"`
	Obstacle bool `| @"obstacle"`
	Treasure *int `| "treasure" @Int`
}

// String renders the command back in script syntax.
func (c *Command) String() string {
	switch {
	case c.Place != nil:
		return fmt.Sprintf("place %s at %d %d", c.Place.Object, c.Place.Row, c.Place.Col)
	case c.End != nil:
		return "end " + *c.End
	case c.Move != nil:
		return "move " + *c.Move
	}
	return ""
}

// String renders the object in script syntax.
func (o *Object) String() string {
	switch {
	case o.Hunter:
		return "hunter"
	case o.Obstacle:
		return "obstacle"
	case o.Treasure != nil:
		return fmt.Sprintf("treasure %d", *o.Treasure)
	}
	return ""
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Int", Pattern: `-?[0-9]+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_-]*`},
})

// Parser is the session script parser.
var Parser = participle.MustBuild[Script](
	participle.Lexer(scriptLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(2),
)

// Parse parses script source.
func Parse(source string) (*Script, error) {
	return Parser.ParseString("", source)
}

// ParseFile reads and parses a script file.
func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading script %s: %w", path, err)
	}
	return Parser.ParseBytes(path, data)
}
