package script

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"regex2dfa/internal/regexlib"
	"regex2dfa/internal/render"
)

// ErrNoRegex is returned when a statement needs a pattern before any regex
// statement ran.
var ErrNoRegex = errors.New("no regex compiled yet")

// Options configures Run.
type Options struct {
	Out io.Writer
	// Logger for script events. If nil, slog.Default() is used.
	Logger *slog.Logger
	// MaxStates is passed to every compilation; 0 means no limit.
	MaxStates int
}

// Run executes s and reports which expectations held. The error is non-nil
// only when the script itself cannot continue.
func Run(s *Script, opts Options) (*Report, error) {
	if opts.Out == nil {
		opts.Out = io.Discard
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	ctx := &Context{
		Env:    NewEnvironment(),
		Out:    opts.Out,
		Log:    opts.Logger,
		Report: &Report{},
	}
	if opts.MaxStates > 0 {
		ctx.Opts = append(ctx.Opts, regexlib.WithMaxStates(opts.MaxStates))
	}
	err := s.Exec(ctx)
	return ctx.Report, err
}

func (s *Script) Exec(ctx *Context) error {
	for _, stmt := range s.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	if s.Regex != nil {
		return s.Regex.exec(ctx)
	}
	re := ctx.Env.Current()
	if re == nil {
		return ErrNoRegex
	}

	switch {
	case s.Expect != nil:
		want := s.Expect.Verdict == "accept"
		for _, w := range s.Expect.Words {
			if re.MatchString(w) == want {
				ctx.Report.Passed++
				continue
			}
			f := Failure{Pos: s.Pos, Pattern: re.Pattern(), Word: w, Want: want}
			ctx.Report.Failures = append(ctx.Report.Failures, f)
			ctx.Log.Warn("expectation failed", "pos", s.Pos.String(), "pattern", re.Pattern(), "word", w, "want", s.Expect.Verdict)
		}
	case s.Check != nil:
		for _, w := range s.Check.Words {
			verdict := "REJECTED"
			if re.MatchString(w) {
				verdict = "ACCEPTED"
			}
			fmt.Fprintf(ctx.Out, "%q => %s\n", w, verdict)
		}
	case s.Show != nil:
		return show(ctx.Out, re, s.Show.What)
	case s.Validate:
		if err := re.DFA().Validate(); err != nil {
			ctx.Report.Failures = append(ctx.Report.Failures,
				Failure{Pos: s.Pos, Pattern: re.Pattern(), Detail: err.Error()})
			fmt.Fprintf(ctx.Out, "validation failed: %v\n", err)
			return nil
		}
		ctx.Report.Passed++
		fmt.Fprintln(ctx.Out, "automaton is valid")
	}
	return nil
}

func (r *RegexStmt) exec(ctx *Context) error {
	if re, ok := ctx.Env.Get(r.Pattern); ok {
		ctx.Env.Set(re)
		return nil
	}
	re, err := regexlib.Compile(r.Pattern, ctx.Opts...)
	if err != nil {
		return fmt.Errorf("compile %q: %w", r.Pattern, err)
	}
	ctx.Log.Debug("compiled",
		"pattern", r.Pattern,
		"postfix", re.Postfix(),
		"nfa_states", re.NFA().NumStates(),
		"dfa_states", re.DFA().NumStates(),
	)
	ctx.Env.Set(re)
	return nil
}

func show(w io.Writer, re *regexlib.Regex, what string) error {
	switch what {
	case "postfix":
		_, err := fmt.Fprintln(w, re.Postfix())
		return err
	case "tree":
		return render.WriteTree(w, re.Tree())
	case "table":
		return render.WriteTable(w, re.DFA())
	case "nfa":
		return render.ExportDOT(w, re.NFA())
	case "dfa":
		return render.ExportDOT(w, re.DFA())
	}
	return fmt.Errorf("cannot show %q", what)
}
