package regexlib

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"regex2dfa/internal/automaton"
)

// StateSet is a sorted, duplicate-free set of NFA states. Two sets with the
// same members have the same Key regardless of insertion order.
type StateSet []StateID

func NewStateSet(ids ...StateID) StateSet {
	s := slices.Clone(ids)
	slices.Sort(s)
	return slices.Compact(s)
}

func (s StateSet) Contains(id StateID) bool { return slices.Contains(s, id) }

func (s StateSet) Equal(o StateSet) bool { return slices.Equal(s, o) }

// Key is the canonical map key of the set.
func (s StateSet) Key() string {
	buf := make([]byte, 0, 4*len(s))
	for i, id := range s {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(id), 10)
	}
	return string(buf)
}

// EpsilonClosure returns the smallest superset of set closed under epsilon
// edges.
func EpsilonClosure(n *NFA, set StateSet) StateSet {
	seen := make(map[StateID]struct{}, len(set))
	queue := make([]StateID, 0, len(set))
	for _, s := range set {
		if _, ok := seen[s]; !ok {
			seen[s] = struct{}{}
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, e := range n.edges[s] {
			if e.Symbol != Epsilon {
				continue
			}
			if _, ok := seen[e.To]; !ok {
				seen[e.To] = struct{}{}
				queue = append(queue, e.To)
			}
		}
	}
	return NewStateSet(maps.Keys(seen)...)
}

// Move returns the states reachable from set by one edge labelled sym.
func Move(n *NFA, set StateSet, sym rune) StateSet {
	var out []StateID
	for _, s := range set {
		for _, e := range n.edges[s] {
			if e.Symbol == sym {
				out = append(out, e.To)
			}
		}
	}
	return NewStateSet(out...)
}

// Config bounds determinisation.
type Config struct {
	// MaxStates caps the number of DFA states. Zero means no limit.
	MaxStates int
}

func DefaultConfig() Config { return Config{} }

func dfaLabel(i int) automaton.State { return automaton.State("Q" + strconv.Itoa(i)) }

// Determinize runs the subset construction. DFA states are labelled Q0, Q1, …
// in discovery order; symbols are tried in ascending order, so labelling is
// reproducible.
func Determinize(n *NFA, cfg Config) (*automaton.DFA, error) {
	alphabet := n.Alphabet()
	def := automaton.Definition{
		Alphabet:    alphabet,
		Transitions: map[automaton.Transition]automaton.State{},
		Start:       dfaLabel(0),
	}

	index := map[string]automaton.State{}
	var sets []StateSet
	add := func(set StateSet) automaton.State {
		label := dfaLabel(len(sets))
		index[set.Key()] = label
		sets = append(sets, set)
		def.States = append(def.States, label)
		if set.Contains(n.accept) {
			def.Accept = append(def.Accept, label)
		}
		return label
	}
	add(EpsilonClosure(n, NewStateSet(n.start)))

	// sets[i:] is the worklist.
	for i := 0; i < len(sets); i++ {
		from := dfaLabel(i)
		for _, sym := range alphabet {
			target := EpsilonClosure(n, Move(n, sets[i], sym))
			if len(target) == 0 {
				continue
			}
			to, ok := index[target.Key()]
			if !ok {
				if cfg.MaxStates > 0 && len(sets) >= cfg.MaxStates {
					return nil, &Error{
						Kind: StateLimitExceeded,
						Msg:  fmt.Sprintf("more than %d DFA states", cfg.MaxStates),
						Pos:  -1,
					}
				}
				to = add(target)
			}
			def.Transitions[automaton.Transition{From: from, Symbol: sym}] = to
		}
	}
	return automaton.New(def), nil
}
