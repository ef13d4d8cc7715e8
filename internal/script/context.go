package script

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/alecthomas/participle/v2/lexer"

	"regex2dfa/internal/regexlib"
)

// Context stores the environment, output and results of a run.
type Context struct {
	Env    *Environment
	Out    io.Writer
	Log    *slog.Logger
	Opts   []regexlib.Option
	Report *Report
}

// Failure is one expectation that did not hold.
type Failure struct {
	Pos     lexer.Position
	Pattern string
	Word    string
	Want    bool
	Detail  string // set for validation failures
}

func (f Failure) String() string {
	if f.Detail != "" {
		return fmt.Sprintf("%s: %q: %s", f.Pos, f.Pattern, f.Detail)
	}
	verdict := "reject"
	if f.Want {
		verdict = "accept"
	}
	return fmt.Sprintf("%s: %q should %s %q", f.Pos, f.Pattern, verdict, f.Word)
}

type Report struct {
	Passed   int
	Failures []Failure
}

func (r *Report) Failed() int { return len(r.Failures) }
func (r *Report) OK() bool    { return len(r.Failures) == 0 }
