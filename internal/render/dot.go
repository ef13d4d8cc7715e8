package render

import (
	"bufio"
	"fmt"
	"io"

	"regex2dfa/internal/automaton"
	"regex2dfa/internal/regexlib"
)

// ExportDOT writes a Graphviz digraph of a *automaton.DFA or *regexlib.NFA.
func ExportDOT(w io.Writer, g interface{}) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")

	switch t := g.(type) {

	//------------------------------------------------------------------ DFA
	case *automaton.DFA:
		for _, s := range t.States() {
			fmt.Fprintf(bw, "    %s [shape=%s];\n", s, shape(t.IsAccept(s)))
		}
		for _, s := range t.States() {
			for _, sym := range t.Alphabet() {
				if to, ok := t.Next(s, sym); ok {
					fmt.Fprintf(bw, "    %s -> %s [label=\"%c\"];\n", s, to, sym)
				}
			}
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s;\n", t.Start())

	//------------------------------------------------------------------ NFA
	case *regexlib.NFA:
		for _, s := range t.States() {
			fmt.Fprintf(bw, "    q%d [shape=%s];\n", s, shape(s == t.Accept()))
		}
		for _, s := range t.States() {
			for _, e := range t.Edges(s) {
				label := "ε"
				if e.Symbol != regexlib.Epsilon {
					label = string(e.Symbol)
				}
				fmt.Fprintf(bw, "    q%d -> q%d [label=\"%s\"];\n", s, e.To, label)
			}
		}
		fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", t.Start())

	default:
		return fmt.Errorf("render: cannot export %T as DOT", g)
	}

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func shape(accept bool) string {
	if accept {
		return "doublecircle"
	}
	return "circle"
}
