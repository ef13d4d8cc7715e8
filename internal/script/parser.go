// Package script runs batch files that compile regular expressions and check
// words against them:
//
//	// comments run to the end of the line
//	regex "(a|b)*abb";
//	accept "abb", "aababb";
//	reject "ab", "";
//	check "babb";
//	show table;
//	validate;
package script

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

type Script struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Regex    *RegexStmt  `parser:"  @@ ';'"`
	Expect   *ExpectStmt `parser:"| @@ ';'"`
	Check    *CheckStmt  `parser:"| @@ ';'"`
	Show     *ShowStmt   `parser:"| @@ ';'"`
	Validate bool        `parser:"| @'validate' ';'"`
}

type RegexStmt struct {
	Pattern string `parser:"'regex' @String"`
}

type ExpectStmt struct {
	Verdict string   `parser:"@('accept' | 'reject')"`
	Words   []string `parser:"@String (',' @String)*"`
}

type CheckStmt struct {
	Words []string `parser:"'check' @String (',' @String)*"`
}

type ShowStmt struct {
	What string `parser:"'show' @('postfix' | 'tree' | 'table' | 'nfa' | 'dfa')"`
}

var parser = participle.MustBuild[Script](participle.Unquote("String"))

func Parse(data string) (*Script, error) {
	return parser.ParseString("script", data)
}

func ParseFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := parser.ParseBytes(path, data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return s, nil
}
