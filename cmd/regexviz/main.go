// Command regexviz writes the Thompson NFA or the DFA of a pattern as Graphviz
// DOT, optionally rendering a PNG through the dot tool.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"regex2dfa/internal/regexlib"
	"regex2dfa/internal/render"
)

func main() {
	pattern := flag.String("re", "", "pattern")
	file := flag.String("file", "", "read the pattern from a file instead of -re")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA instead of the DFA")
	outFile := flag.String("o", "graph.dot", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	if *file != "" {
		data, err := os.ReadFile(*file)
		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		*pattern = strings.TrimSpace(string(data))
	}
	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: regexviz (-re <pattern> | -file <path>) [-nfa] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	re, err := regexlib.Compile(*pattern)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	var buf bytes.Buffer
	if *nfaFlag {
		err = render.ExportDOT(&buf, re.NFA())
	} else {
		err = render.ExportDOT(&buf, re.DFA())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}

	msg, err := emit(buf.Bytes(), *outFile, *pngFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	if msg != "" {
		fmt.Println(msg)
	}
}

// emit writes the DOT source to out, or pipes it through dot when png is set.
// The returned message is empty when out is stdout.
func emit(src []byte, out string, png bool) (string, error) {
	if png {
		cmd := exec.Command("dot", "-Tpng", "-o", out)
		cmd.Stdin = bytes.NewReader(src)
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			return "", fmt.Errorf("dot failed: %w", err)
		}
		return "PNG written to " + out, nil
	}
	if out == "-" {
		_, err := os.Stdout.Write(src)
		return "", err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return "", err
	}
	return "DOT written to " + out, nil
}
