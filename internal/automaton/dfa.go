// Package automaton holds the deterministic finite automaton produced by the
// regex pipeline: its validation and word-membership simulation.
//
// A DFA is immutable once built and may be shared between goroutines.
package automaton

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// State labels a DFA state, e.g. "Q0".
type State string

func (s State) String() string { return string(s) }

// Transition is the domain of the transition function.
type Transition struct {
	From   State
	Symbol rune
}

// Definition is the raw description of an automaton. It may be inconsistent;
// Validate on the resulting DFA reports the first inconsistency.
type Definition struct {
	States      []State
	Alphabet    []rune
	Transitions map[Transition]State
	Start       State
	Accept      []State
}

// DFA is a partial deterministic automaton: a missing transition rejects.
type DFA struct {
	states   map[State]struct{}
	alphabet map[rune]struct{}
	delta    map[Transition]State
	start    State
	accept   map[State]struct{}
}

// New copies def into a DFA.
func New(def Definition) *DFA {
	d := &DFA{
		states:   make(map[State]struct{}, len(def.States)),
		alphabet: make(map[rune]struct{}, len(def.Alphabet)),
		delta:    make(map[Transition]State, len(def.Transitions)),
		start:    def.Start,
		accept:   make(map[State]struct{}, len(def.Accept)),
	}
	for _, s := range def.States {
		d.states[s] = struct{}{}
	}
	for _, r := range def.Alphabet {
		d.alphabet[r] = struct{}{}
	}
	for k, v := range def.Transitions {
		d.delta[k] = v
	}
	for _, s := range def.Accept {
		d.accept[s] = struct{}{}
	}
	return d
}

func (d *DFA) Start() State { return d.start }

func (d *DFA) HasState(s State) bool {
	_, ok := d.states[s]
	return ok
}

func (d *DFA) IsAccept(s State) bool {
	_, ok := d.accept[s]
	return ok
}

func (d *DFA) InAlphabet(r rune) bool {
	_, ok := d.alphabet[r]
	return ok
}

// Next looks up δ(s, sym).
func (d *DFA) Next(s State, sym rune) (State, bool) {
	to, ok := d.delta[Transition{From: s, Symbol: sym}]
	return to, ok
}

func (d *DFA) NumStates() int      { return len(d.states) }
func (d *DFA) NumTransitions() int { return len(d.delta) }

// States returns every state ordered by label length, then label, so that
// Q2 sorts before Q10.
func (d *DFA) States() []State {
	out := maps.Keys(d.states)
	sortStates(out)
	return out
}

// AcceptStates returns the accepting states in States order.
func (d *DFA) AcceptStates() []State {
	out := maps.Keys(d.accept)
	sortStates(out)
	return out
}

func (d *DFA) Alphabet() []rune {
	out := maps.Keys(d.alphabet)
	slices.Sort(out)
	return out
}

// Definition returns a copy of the automaton's description.
func (d *DFA) Definition() Definition {
	return Definition{
		States:      d.States(),
		Alphabet:    d.Alphabet(),
		Transitions: maps.Clone(d.delta),
		Start:       d.start,
		Accept:      d.AcceptStates(),
	}
}

// CheckWord runs word through the automaton. Unknown symbols and undefined
// transitions reject; CheckWord never fails.
func (d *DFA) CheckWord(word string) bool {
	cur := d.start
	for _, r := range word {
		if !d.InAlphabet(r) {
			return false
		}
		next, ok := d.delta[Transition{From: cur, Symbol: r}]
		if !ok {
			return false
		}
		cur = next
	}
	return d.IsAccept(cur)
}

func lessState(a, b State) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

func sortStates(s []State) { slices.SortFunc(s, lessState) }
