// Package render turns automata and syntax trees into text: the transition
// table, an indented tree and Graphviz DOT.
package render

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"regex2dfa/internal/automaton"
)

// Table is the read-only view WriteTable needs. *automaton.DFA satisfies it.
type Table interface {
	States() []automaton.State
	Alphabet() []rune
	Start() automaton.State
	IsAccept(automaton.State) bool
	Next(automaton.State, rune) (automaton.State, bool)
}

// WriteTable prints the transition function. The header row is δ followed by
// the sorted alphabet; each row is a state, marked "->" when it is the start
// and "*" when it accepts, then the destination per symbol or "-". Every cell
// is followed by a tab.
func WriteTable(w io.Writer, t Table) error {
	bw := bufio.NewWriter(w)
	alpha := t.Alphabet()

	bw.WriteString("δ\t")
	for _, sym := range alpha {
		fmt.Fprintf(bw, "%c\t", sym)
	}
	bw.WriteByte('\n')

	start := t.Start()
	for _, s := range t.States() {
		prefix := ""
		if s == start {
			prefix += "->"
		}
		if t.IsAccept(s) {
			prefix += "*"
		}
		fmt.Fprintf(bw, "%s%s\t", prefix, s)
		for _, sym := range alpha {
			if to, ok := t.Next(s, sym); ok {
				fmt.Fprintf(bw, "%s\t", to)
			} else {
				bw.WriteString("-\t")
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteTableFile writes the table to path, replacing any existing file.
func WriteTableFile(path string, t Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, t); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
