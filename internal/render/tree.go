package render

import (
	"bufio"
	"io"

	"regex2dfa/internal/regexlib"
)

// WriteTree prints a syntax tree, one node per line, children indented under
// their parent with the left child first.
func WriteTree(w io.Writer, root *regexlib.Node) error {
	bw := bufio.NewWriter(w)
	if root != nil {
		writeNode(bw, root, "", true)
	}
	return bw.Flush()
}

func writeNode(w *bufio.Writer, n *regexlib.Node, indent string, last bool) {
	w.WriteString(indent)
	if last {
		w.WriteString("└── ")
		indent += "    "
	} else {
		w.WriteString("├── ")
		indent += "│   "
	}
	w.WriteString(n.Label())
	w.WriteByte('\n')

	children := n.Children()
	for i, c := range children {
		writeNode(w, c, indent, i == len(children)-1)
	}
}
