package regexlib

import "fmt"

// ErrorKind classifies construction failures.
type ErrorKind uint8

const (
	// SyntaxError covers characters outside the accepted set and
	// unbalanced grouping.
	SyntaxError ErrorKind = iota + 1

	// MalformedExpression means an operator found too few operands, or the
	// expression did not reduce to exactly one value.
	MalformedExpression

	// StateLimitExceeded means determinisation produced more DFA states than
	// the configured limit.
	StateLimitExceeded
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "SyntaxError"
	case MalformedExpression:
		return "MalformedExpressionError"
	case StateLimitExceeded:
		return "StateLimitExceeded"
	default:
		return fmt.Sprintf("UnknownErrorKind(%d)", k)
	}
}

// Sentinels for errors.Is; they match any *Error of the same kind.
var (
	ErrSyntax     = &Error{Kind: SyntaxError, Msg: "syntax error", Pos: -1}
	ErrMalformed  = &Error{Kind: MalformedExpression, Msg: "malformed expression", Pos: -1}
	ErrStateLimit = &Error{Kind: StateLimitExceeded, Msg: "DFA state limit exceeded", Pos: -1}
)

// Error is returned by every construction stage.
type Error struct {
	Kind ErrorKind
	Msg  string
	Pos  int   // byte offset into the stage input, -1 if unknown
	Err  error // optional cause
}

func (e *Error) Error() string {
	s := e.Kind.String() + ": " + e.Msg
	if e.Pos >= 0 {
		s += fmt.Sprintf(" at offset %d", e.Pos)
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func syntaxErr(pos int, format string, args ...any) *Error {
	return &Error{Kind: SyntaxError, Msg: fmt.Sprintf(format, args...), Pos: pos}
}

func malformedErr(pos int, format string, args ...any) *Error {
	return &Error{Kind: MalformedExpression, Msg: fmt.Sprintf(format, args...), Pos: pos}
}
