package regexlib

type NodeKind int

const (
	Operand NodeKind = iota // literal symbol
	Unary                   // '*' with one child in Left
	Binary                  // '.' or '|' with Left and Right
)

func (k NodeKind) String() string {
	switch k {
	case Operand:
		return "Operand"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	}
	return "Unknown"
}

// Node is a syntax tree node.
type Node struct {
	Kind   NodeKind
	Symbol rune // Operand only
	Op     rune // Unary and Binary only
	Left   *Node
	Right  *Node
}

// Label is the text a tree printer shows for the node.
func (n *Node) Label() string {
	if n.Kind == Operand {
		return string(n.Symbol)
	}
	return string(n.Op)
}

// Children returns the non-nil children, left first.
func (n *Node) Children() []*Node {
	var out []*Node
	if n.Left != nil {
		out = append(out, n.Left)
	}
	if n.Right != nil {
		out = append(out, n.Right)
	}
	return out
}

// Postfix writes the subtree back in Reverse Polish form.
func (n *Node) Postfix() string {
	switch n.Kind {
	case Operand:
		return string(n.Symbol)
	case Unary:
		return n.Left.Postfix() + string(n.Op)
	default:
		return n.Left.Postfix() + n.Right.Postfix() + string(n.Op)
	}
}

func operandNode(c rune) *Node { return &Node{Kind: Operand, Symbol: c} }

// BuildTree evaluates postfix the same way Builder.Build does, producing a
// syntax tree instead of an NFA.
func BuildTree(postfix string) (*Node, error) {
	var stack []*Node
	pop := func() *Node {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for i := 0; i < len(postfix); i++ {
		c := rune(postfix[i])
		switch {
		case IsSymbol(c):
			stack = append(stack, operandNode(c))
		case c == opStar:
			if len(stack) < 1 {
				return nil, malformedErr(i, "operator '*' needs one operand")
			}
			stack = append(stack, &Node{Kind: Unary, Op: c, Left: pop()})
		case c == opConcat || c == opUnion:
			if len(stack) < 2 {
				return nil, malformedErr(i, "operator %q needs two operands, found %d", c, len(stack))
			}
			right := pop()
			left := pop()
			stack = append(stack, &Node{Kind: Binary, Op: c, Left: left, Right: right})
		default:
			return nil, syntaxErr(i, "unexpected character %q in postfix", postfix[i])
		}
	}

	if len(stack) != 1 {
		return nil, malformedErr(len(postfix), "expression reduces to %d trees, want 1", len(stack))
	}
	return stack[0], nil
}
