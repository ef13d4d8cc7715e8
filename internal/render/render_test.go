package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"regex2dfa/internal/automaton"
	"regex2dfa/internal/regexlib"
)

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, regexlib.MustCompile("ab").DFA()); err != nil {
		t.Fatal(err)
	}
	want := "δ\ta\tb\t\n" +
		"->Q0\tQ1\t-\t\n" +
		"Q1\t-\tQ2\t\n" +
		"*Q2\t-\t-\t\n"
	if buf.String() != want {
		t.Fatalf("table:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteTableStartAccepting(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, regexlib.MustCompile("a*").DFA()); err != nil {
		t.Fatal(err)
	}
	want := "δ\ta\t\n" +
		"->*Q0\tQ1\t\n" +
		"*Q1\tQ1\t\n"
	if buf.String() != want {
		t.Fatalf("table:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWriteTableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "automaton_output.txt")
	d := regexlib.MustCompile("(a|b)*abb").DFA()
	if err := WriteTableFile(path, d); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("want header + 5 rows, got %d lines:\n%s", len(lines), data)
	}
	if lines[5] != "*Q4\tQ1\tQ2\t" {
		t.Fatalf("last row %q", lines[5])
	}
}

func TestWriteTree(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTree(&buf, regexlib.MustCompile("a|b*").Tree()); err != nil {
		t.Fatal(err)
	}
	want := "└── |\n" +
		"    ├── a\n" +
		"    └── *\n" +
		"        └── b\n"
	if buf.String() != want {
		t.Fatalf("tree:\n%s\nwant:\n%s", buf.String(), want)
	}

	buf.Reset()
	if err := WriteTree(&buf, nil); err != nil || buf.Len() != 0 {
		t.Fatalf("nil tree wrote %q, %v", buf.String(), err)
	}
}

func TestExportDOT(t *testing.T) {
	re := regexlib.MustCompile("a")

	var buf bytes.Buffer
	if err := ExportDOT(&buf, re.DFA()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"digraph G {",
		"Q1 [shape=doublecircle];",
		"Q0 -> Q1 [label=\"a\"];",
		"_start -> Q0;",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("DFA dot missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := ExportDOT(&buf, regexlib.MustCompile("a*").NFA()); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "q2 -> q3 [label=\"ε\"];") || !strings.Contains(out, "_start -> q2;") {
		t.Errorf("NFA dot:\n%s", out)
	}

	if err := ExportDOT(&buf, automaton.Definition{}); err == nil {
		t.Fatal("expected an error for an unsupported type")
	}
}
