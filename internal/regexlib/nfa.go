package regexlib

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// StateID identifies an NFA state. IDs are unique only within the Builder
// that allocated them.
type StateID int

// Edge is one outgoing NFA transition.
type Edge struct {
	Symbol rune // Epsilon for spontaneous moves
	To     StateID
}

// NFA is a Thompson fragment with exactly one start and one accept state.
// The fragment produced last by Builder.Build is the automaton itself.
type NFA struct {
	states   map[StateID]struct{}
	alphabet map[rune]struct{}
	edges    map[StateID][]Edge
	start    StateID
	accept   StateID
}

func newFragment(start, accept StateID) *NFA {
	return &NFA{
		states:   map[StateID]struct{}{start: {}, accept: {}},
		alphabet: map[rune]struct{}{},
		edges:    map[StateID][]Edge{},
		start:    start,
		accept:   accept,
	}
}

func (n *NFA) Start() StateID  { return n.start }
func (n *NFA) Accept() StateID { return n.accept }
func (n *NFA) NumStates() int  { return len(n.states) }

func (n *NFA) HasState(s StateID) bool {
	_, ok := n.states[s]
	return ok
}

// States returns the state ids in ascending order.
func (n *NFA) States() []StateID {
	ids := maps.Keys(n.states)
	slices.Sort(ids)
	return ids
}

// Alphabet returns the symbols in use, sorted. Epsilon is never included.
func (n *NFA) Alphabet() []rune {
	syms := maps.Keys(n.alphabet)
	slices.Sort(syms)
	return syms
}

// Edges returns the outgoing transitions of s. The slice must not be modified.
func (n *NFA) Edges(s StateID) []Edge { return n.edges[s] }

// NumEdges counts every transition, epsilon ones included.
func (n *NFA) NumEdges() int {
	total := 0
	for _, es := range n.edges {
		total += len(es)
	}
	return total
}

func (n *NFA) addEdge(from StateID, sym rune, to StateID) {
	n.edges[from] = append(n.edges[from], Edge{Symbol: sym, To: to})
}

// absorb moves every state, symbol and edge of other into n.
func (n *NFA) absorb(other *NFA) {
	for s := range other.states {
		n.states[s] = struct{}{}
	}
	for r := range other.alphabet {
		n.alphabet[r] = struct{}{}
	}
	for from, es := range other.edges {
		n.edges[from] = append(n.edges[from], es...)
	}
}

// Validate checks that start, accept and every edge endpoint are states of n
// and that every labelled edge uses a symbol of the alphabet.
func (n *NFA) Validate() error {
	if !n.HasState(n.start) {
		return fmt.Errorf("start state %d is not a state of the NFA", n.start)
	}
	if !n.HasState(n.accept) {
		return fmt.Errorf("accept state %d is not a state of the NFA", n.accept)
	}
	for from, es := range n.edges {
		if !n.HasState(from) {
			return fmt.Errorf("edge source %d is not a state of the NFA", from)
		}
		for _, e := range es {
			if !n.HasState(e.To) {
				return fmt.Errorf("edge %d -> %d targets a state outside the NFA", from, e.To)
			}
			if _, ok := n.alphabet[e.Symbol]; e.Symbol != Epsilon && !ok {
				return fmt.Errorf("edge %d -> %d uses symbol %q outside the alphabet", from, e.To, e.Symbol)
			}
		}
	}
	return nil
}

// Builder allocates NFA states. Use one Builder per conversion; it is not
// safe for concurrent use.
type Builder struct {
	next StateID
}

func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) newState() StateID {
	b.next++
	return b.next - 1
}

// Symbol returns the fragment start --c--> accept.
func (b *Builder) Symbol(c rune) *NFA {
	f := newFragment(b.newState(), b.newState())
	f.alphabet[c] = struct{}{}
	f.addEdge(f.start, c, f.accept)
	return f
}

// Concat identifies y's start with x's accept. Both arguments are consumed.
func (b *Builder) Concat(x, y *NFA) *NFA {
	for _, es := range y.edges {
		for i := range es {
			if es[i].To == y.start {
				es[i].To = x.accept
			}
		}
	}
	moved := y.edges[y.start]
	delete(y.edges, y.start)
	delete(y.states, y.start)

	x.absorb(y)
	if len(moved) > 0 {
		x.edges[x.accept] = append(x.edges[x.accept], moved...)
	}
	x.accept = y.accept
	return x
}

// Alternate wraps x and y between a fresh start and accept. Both arguments are
// consumed.
func (b *Builder) Alternate(x, y *NFA) *NFA {
	start, accept := b.newState(), b.newState()
	x.absorb(y)
	x.states[start] = struct{}{}
	x.states[accept] = struct{}{}
	x.addEdge(start, Epsilon, x.start)
	x.addEdge(start, Epsilon, y.start)
	x.addEdge(x.accept, Epsilon, accept)
	x.addEdge(y.accept, Epsilon, accept)
	x.start, x.accept = start, accept
	return x
}

// Star builds the Kleene closure of x, consuming it.
func (b *Builder) Star(x *NFA) *NFA {
	start, accept := b.newState(), b.newState()
	x.states[start] = struct{}{}
	x.states[accept] = struct{}{}
	x.addEdge(start, Epsilon, x.start)
	x.addEdge(start, Epsilon, accept)
	x.addEdge(x.accept, Epsilon, x.start)
	x.addEdge(x.accept, Epsilon, accept)
	x.start, x.accept = start, accept
	return x
}

// Build evaluates a postfix expression with a stack of fragments.
func (b *Builder) Build(postfix string) (*NFA, error) {
	var stack []*NFA
	pop := func() *NFA {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return top
	}

	for i := 0; i < len(postfix); i++ {
		c := rune(postfix[i])
		switch {
		case IsSymbol(c):
			stack = append(stack, b.Symbol(c))
		case c == opConcat || c == opUnion:
			if len(stack) < 2 {
				return nil, malformedErr(i, "operator %q needs two operands, found %d", c, len(stack))
			}
			y := pop()
			x := pop()
			if c == opConcat {
				stack = append(stack, b.Concat(x, y))
			} else {
				stack = append(stack, b.Alternate(x, y))
			}
		case c == opStar:
			if len(stack) < 1 {
				return nil, malformedErr(i, "operator '*' needs one operand")
			}
			stack = append(stack, b.Star(pop()))
		default:
			return nil, syntaxErr(i, "unexpected character %q in postfix", postfix[i])
		}
	}

	if len(stack) != 1 {
		return nil, malformedErr(len(postfix), "expression reduces to %d fragments, want 1", len(stack))
	}
	return stack[0], nil
}
