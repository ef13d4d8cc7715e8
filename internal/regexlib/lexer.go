package regexlib

import (
	"errors"

	"github.com/alecthomas/participle/v2/lexer"
)

// Epsilon labels spontaneous NFA transitions. It is never part of an alphabet.
const Epsilon rune = 0

// Operator characters of the explicit (dot-separated) form.
const (
	opConcat = '.'
	opUnion  = '|'
	opStar   = '*'
	lParen   = '('
	rParen   = ')'
)

type tokenType int

const (
	tEOF    tokenType = iota
	tSymbol           // literal letter or digit
	tConcat           // .
	tUnion            // |
	tStar             // *
	tLParen           // (
	tRParen           // )
)

type token struct {
	typ tokenType
	ch  rune
	pos int
}

// Every rule matches exactly one byte, so token offsets equal string offsets.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Symbol", Pattern: `[A-Za-z0-9]`},
	{Name: "Operator", Pattern: `[.|*()]`},
})

// IsSymbol reports whether r belongs to the literal alphabet.
func IsSymbol(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9'
}

// tokenize splits a regex into tokens, rejecting anything that is neither a
// literal nor one of . | * ( ).
func tokenize(regex string) ([]token, error) {
	lex, err := regexLexer.LexString("", regex)
	if err != nil {
		return nil, syntaxErr(-1, "cannot start lexer: %v", err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		pos := -1
		var lerr *lexer.Error
		if errors.As(err, &lerr) {
			pos = lerr.Pos.Offset
		}
		if pos >= 0 && pos < len(regex) {
			return nil, syntaxErr(pos, "unexpected character %q", regex[pos])
		}
		return nil, &Error{Kind: SyntaxError, Msg: "invalid input", Pos: pos, Err: err}
	}

	out := make([]token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		ch := rune(t.Value[0])
		out = append(out, token{typ: classify(ch), ch: ch, pos: t.Pos.Offset})
	}
	return out, nil
}

func classify(ch rune) tokenType {
	switch ch {
	case opConcat:
		return tConcat
	case opUnion:
		return tUnion
	case opStar:
		return tStar
	case lParen:
		return tLParen
	case rParen:
		return tRParen
	}
	if IsSymbol(ch) {
		return tSymbol
	}
	return tEOF
}

// Tokenize checks that regex only uses the literal alphabet and operators.
func Tokenize(regex string) error {
	_, err := tokenize(regex)
	return err
}
