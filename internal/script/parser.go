// Package script parses and replays input scripts that drive a text field.
//
// A script is a list of commands, one per line or separated by ';'.
// '#' starts a comment.
//
//	focus on
//	type "hello world"
//	key shift+home
//	key ctrl+x
//	paste "bye"
//	click 12 6
//	drag 40 6
//	select 0 3
//	char "!"
//	hover off
//	expect "bye!"
//	focus off
package script

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Comment", Pattern: `#[^\n]*`},
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "Number", Pattern: `-?(?:\d+\.\d+|\d+)`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
		{Name: "Symbol", Pattern: `[+;]`},
	})

	scriptParser = participle.MustBuild[Script](
		participle.Lexer(scriptLexer),
		participle.Elide("Whitespace", "Comment"),
	)
)

// Script is the root AST node of an input script.
type Script struct {
	Commands []*Command `parser:"( ';' | Newline )* ( @@ ( ';' | Newline )* )*"`
}

// Command is a single script instruction. Exactly one field is set.
type Command struct {
	Pos lexer.Position `parser:""`

	Type   *StringLiteral `parser:"  'type' @String"`
	Char   *StringLiteral `parser:"| 'char' @String"`
	Paste  *StringLiteral `parser:"| 'paste' @String"`
	Expect *StringLiteral `parser:"| 'expect' @String"`
	Key    *Chord         `parser:"| 'key' @@"`
	Click  *Coords        `parser:"| 'click' @@"`
	Drag   *Coords        `parser:"| 'drag' @@"`
	Select *Range         `parser:"| 'select' @@"`
	Focus  *Toggle        `parser:"| 'focus' @@"`
	Hover  *Toggle        `parser:"| 'hover' @@"`
}

// Kind returns the command keyword.
func (c *Command) Kind() string {
	switch {
	case c == nil:
		return "unknown"
	case c.Type != nil:
		return "type"
	case c.Char != nil:
		return "char"
	case c.Paste != nil:
		return "paste"
	case c.Expect != nil:
		return "expect"
	case c.Key != nil:
		return "key"
	case c.Click != nil:
		return "click"
	case c.Drag != nil:
		return "drag"
	case c.Select != nil:
		return "select"
	case c.Focus != nil:
		return "focus"
	case c.Hover != nil:
		return "hover"
	default:
		return "unknown"
	}
}

// Chord is a key name preceded by optional modifiers, e.g. ctrl+shift+left.
type Chord struct {
	Parts []string `parser:"@Ident ( '+' @Ident )*"`
}

// Coords is a point in layout-local coordinates.
type Coords struct {
	X float64 `parser:"@Number"`
	Y float64 `parser:"@Number"`
}

// Range is an anchor and caret pair.
type Range struct {
	Anchor int `parser:"@Number"`
	Caret  int `parser:"@Number"`
}

// Toggle is "on" or "off".
type Toggle struct {
	On bool `parser:"( @'on' | 'off' )"`
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a script from r. name is used in error positions.
func Parse(name string, r io.Reader) (*Script, error) {
	s, err := scriptParser.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}

// ParseString parses a script held in a string.
func ParseString(input string) (*Script, error) {
	s, err := scriptParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return s, nil
}
