package regexlib

import "strings"

// precedence of binary and postfix operators; '(' has none and therefore
// stops every pop.
func precedence(op rune) int {
	switch op {
	case opUnion:
		return 1
	case opConcat:
		return 2 // explicit form of adjacency
	case opStar:
		return 3
	default:
		return 0
	}
}

// Postfix converts a surface regex to Reverse Polish form.
func Postfix(regex string) (string, error) {
	if err := Tokenize(regex); err != nil {
		return "", err
	}
	return ToPostfix(InsertConcatenation(regex))
}

// InsertConcatenation makes adjacency explicit: a '.' goes between a literal,
// '*' or ')' and a following literal or '('.
func InsertConcatenation(regex string) string {
	var b strings.Builder
	b.Grow(2 * len(regex))
	for i := 0; i < len(regex); i++ {
		cur := rune(regex[i])
		b.WriteRune(cur)
		if i+1 >= len(regex) {
			break
		}
		next := rune(regex[i+1])
		if (IsSymbol(cur) || cur == opStar || cur == rParen) && (IsSymbol(next) || next == lParen) {
			b.WriteRune(opConcat)
		}
	}
	return b.String()
}

type stackedOp struct {
	op  rune
	pos int
}

// ToPostfix runs the shunting-yard pass over an explicit regex. All operators
// are left-associative; '*' is unary postfix.
func ToPostfix(explicit string) (string, error) {
	var out strings.Builder
	out.Grow(len(explicit))
	var stack []stackedOp

	for i := 0; i < len(explicit); i++ {
		c := rune(explicit[i])
		switch {
		case IsSymbol(c):
			out.WriteRune(c)
		case c == lParen:
			stack = append(stack, stackedOp{c, i})
		case c == rParen:
			for len(stack) > 0 && stack[len(stack)-1].op != lParen {
				out.WriteRune(stack[len(stack)-1].op)
				stack = stack[:len(stack)-1]
			}
			if len(stack) == 0 {
				return "", syntaxErr(i, "unmatched ')'")
			}
			stack = stack[:len(stack)-1] // drop '('
		case c == opUnion || c == opConcat || c == opStar:
			p := precedence(c)
			for len(stack) > 0 && precedence(stack[len(stack)-1].op) >= p {
				out.WriteRune(stack[len(stack)-1].op)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, stackedOp{c, i})
		default:
			return "", syntaxErr(i, "unexpected character %q", explicit[i])
		}
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.op == lParen {
			return "", syntaxErr(top.pos, "unmatched '('")
		}
		out.WriteRune(top.op)
		stack = stack[:len(stack)-1]
	}
	return out.String(), nil
}
