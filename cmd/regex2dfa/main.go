// Command regex2dfa reads a regular expression from a file, builds its DFA and
// either opens the interactive menu or runs a check script against it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"regex2dfa/internal/config"
	"regex2dfa/internal/console"
	"regex2dfa/internal/regexlib"
	"regex2dfa/internal/script"
)

var errEmptyInput = errors.New("input file is empty")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("regex2dfa", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "YAML config file")
	input := fs.String("input", "", "file holding the regular expression (default regex.txt)")
	output := fs.String("output", "", "file the transition table is saved to (default automaton_output.txt)")
	scriptPath := fs.String("script", "", "run a check script instead of the menu")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	// flags win over file and environment, but only when given
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "output":
			cfg.Output = *output
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.NewLogger(stderr)
	slog.SetDefault(logger)

	pattern, err := readPattern(cfg.Input)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Regular expression read: %s\n", pattern)

	re, err := regexlib.Compile(pattern, regexlib.WithMaxStates(cfg.MaxStates))
	if err != nil {
		return fmt.Errorf("build automaton: %w", err)
	}
	if err := re.DFA().Validate(); err != nil {
		return fmt.Errorf("build automaton: %w", err)
	}
	logger.Info("automaton built",
		"pattern", pattern,
		"nfa_states", re.NFA().NumStates(),
		"dfa_states", re.DFA().NumStates(),
	)
	fmt.Fprintln(stdout, "[Validation OK] The automaton was generated successfully.")

	if *scriptPath == "" {
		return console.Run(stdin, stdout, re, console.Options{Output: cfg.Output, Logger: logger})
	}

	s, err := script.ParseFile(*scriptPath)
	if err != nil {
		return err
	}
	// the pattern from the input file is the current one until the script
	// compiles another
	s.Statements = append([]*script.Statement{{Regex: &script.RegexStmt{Pattern: pattern}}}, s.Statements...)
	rep, err := script.Run(s, script.Options{Out: stdout, Logger: logger, MaxStates: cfg.MaxStates})
	if err != nil {
		return err
	}
	for _, f := range rep.Failures {
		fmt.Fprintln(stdout, "FAIL", f)
	}
	fmt.Fprintf(stdout, "%d passed, %d failed\n", rep.Passed, rep.Failed())
	if !rep.OK() {
		return fmt.Errorf("%d expectation(s) failed", rep.Failed())
	}
	return nil
}

func readPattern(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	pattern := strings.TrimSpace(string(data))
	if pattern == "" {
		return "", fmt.Errorf("%s: %w", path, errEmptyInput)
	}
	return pattern, nil
}
