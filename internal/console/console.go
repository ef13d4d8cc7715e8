// Package console implements the interactive menu over a compiled pattern.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"regex2dfa/internal/regexlib"
	"regex2dfa/internal/render"
)

// DoneWord ends the word checking loop (case-insensitive).
const DoneWord = "done"

type Options struct {
	// Output is where choice 3 saves the table. Empty skips the file.
	Output string
	Logger *slog.Logger
}

const menu = `
--- Menu ---
1. Show postfix form
2. Show syntax tree
3. Show automaton (console and file)
4. Check words
5. Show automaton as DOT
0. Exit
Choice: `

// Run reads menu choices from in until "0" or end of input. Failures of a
// single choice are reported on out and the menu continues; only write
// errors on out are returned.
func Run(in io.Reader, out io.Writer, re *regexlib.Regex, opts Options) error {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	sc := bufio.NewScanner(in)
	w := &errWriter{w: out}

	for {
		w.printf("%s", menu)
		if !sc.Scan() {
			w.printf("\n")
			break
		}
		choice := strings.TrimSpace(sc.Text())
		opts.Logger.Debug("menu choice", "choice", choice)

		switch choice {
		case "1":
			w.printf("Postfix: %s\n", re.Postfix())
		case "2":
			w.printf("\n--- Syntax tree ---\n")
			if w.err == nil {
				w.err = render.WriteTree(out, re.Tree())
			}
		case "3":
			showTable(w, out, re, opts)
		case "4":
			checkWords(sc, w, re)
		case "5":
			if w.err == nil {
				w.err = render.ExportDOT(out, re.DFA())
			}
		case "0":
			return w.err
		default:
			w.printf("Invalid choice. Please try again.\n")
		}
		if w.err != nil {
			return w.err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return w.err
}

func showTable(w *errWriter, out io.Writer, re *regexlib.Regex, opts Options) {
	w.printf("\n--- Automaton ---\n")
	if w.err == nil {
		w.err = render.WriteTable(out, re.DFA())
	}
	w.printf("-----------------\n")
	if opts.Output == "" {
		return
	}
	if err := render.WriteTableFile(opts.Output, re.DFA()); err != nil {
		opts.Logger.Error("write table", "path", opts.Output, "err", err)
		w.printf("Error writing file: %v\n", err)
		return
	}
	w.printf("Automaton also saved to %q\n", opts.Output)
}

// checkWords runs until DoneWord or end of input. An empty line checks the
// empty word.
func checkWords(sc *bufio.Scanner, w *errWriter, re *regexlib.Regex) {
	w.printf("Enter words to check (type %q to return to the menu):\n", DoneWord)
	for w.err == nil {
		w.printf("Word: ")
		if !sc.Scan() {
			w.printf("\n")
			return
		}
		word := strings.TrimRight(sc.Text(), "\r")
		if strings.EqualFold(word, DoneWord) {
			return
		}
		if re.MatchString(word) {
			w.printf("=> ACCEPTED\n")
		} else {
			w.printf("=> REJECTED\n")
		}
	}
}

// errWriter keeps the first write error so the menu code can print freely.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
