package patternlang

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Class", Pattern: `\[(\\.|[^\]\\])*\]`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Keyword", Pattern: `[a-z]+`},
	{Name: "Punct", Pattern: `[{}|:;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var patternParser = participle.MustBuild[Program](
	participle.Lexer(patternLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Program is the root of a parsed pattern.
type Program struct {
	Pos        lexer.Position
	Statements []*Statement `( @@ ";"? )*`
}

// Statement is one combinator. Exactly one field is set.
type Statement struct {
	Pos lexer.Position

	One        *Class     `  "one" @@`
	Exactly    *Counted   `| "exactly" @@`
	AtLeast    *Counted   `| "atleast" @@`
	ZeroOrMore *Class     `| "zeroormore" @@`
	OneOrMore  *Class     `| "oneormore" @@`
	Range      *RangeStmt `| "range" @@`
	Not        *Class     `| "not" @@`
	Accept     bool       `| @"accept"`
	Invert     bool       `| @"invert"`
	Split      *SplitStmt `| "split" @@`
	Loop       *LoopStmt  `| "loop" @@`
	DontLoop   *LoopStmt  `| "dontloop" @@`
}

// Counted is "N C".
type Counted struct {
	N     int    `@Int`
	Class *Class `@@`
}

// RangeStmt is "N M C".
type RangeStmt struct {
	Min   int    `@Int`
	Max   int    `@Int`
	Class *Class `@@`
}

// SplitStmt is "{ C: prog | ... }".
type SplitStmt struct {
	Branches []*BranchStmt `"{" ( @@ ( "|" @@ )* )? "}"`
}

// BranchStmt is one "C: prog" arm of a split.
type BranchStmt struct {
	Class *Class       `@@ ":"`
	Body  []*Statement `( @@ ";"? )*`
}

// LoopStmt is "C { prog }".
type LoopStmt struct {
	Class *Class       `@@`
	Body  []*Statement `"{" ( @@ ";"? )* "}"`
}

// Class is a bracketed symbol class, kept raw until decoded.
type Class struct {
	Pos lexer.Position
	Raw string `@Class`
}

// Parse parses src into a Program.
func Parse(src string) (*Program, error) {
	return patternParser.ParseString("", src)
}
