package automaton

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Violation names the invariant a ValidationError reports.
type Violation uint8

const (
	StartNotInStates Violation = iota + 1
	AcceptNotInStates
	SourceNotInStates
	SymbolNotInAlphabet
	TargetNotInStates
)

func (v Violation) String() string {
	switch v {
	case StartNotInStates:
		return "StartNotInStates"
	case AcceptNotInStates:
		return "AcceptNotInStates"
	case SourceNotInStates:
		return "SourceNotInStates"
	case SymbolNotInAlphabet:
		return "SymbolNotInAlphabet"
	case TargetNotInStates:
		return "TargetNotInStates"
	default:
		return fmt.Sprintf("UnknownViolation(%d)", v)
	}
}

// ValidationError describes an inconsistent automaton. It is advisory: the
// caller decides whether to keep using the DFA.
type ValidationError struct {
	Violation  Violation
	State      State      // offending state, if any
	Transition Transition // offending transition, for transition violations
}

func (e *ValidationError) Error() string {
	switch e.Violation {
	case StartNotInStates:
		return fmt.Sprintf("start state %q is not in the state set", e.State)
	case AcceptNotInStates:
		return fmt.Sprintf("accept state %q is not in the state set", e.State)
	case SourceNotInStates:
		return fmt.Sprintf("transition source %q is not in the state set", e.State)
	case SymbolNotInAlphabet:
		return fmt.Sprintf("transition (%s, %q) uses a symbol outside the alphabet", e.Transition.From, e.Transition.Symbol)
	case TargetNotInStates:
		return fmt.Sprintf("transition (%s, %q) targets %q which is not in the state set",
			e.Transition.From, e.Transition.Symbol, e.State)
	default:
		return "invalid automaton: " + e.Violation.String()
	}
}

// Validate checks the start state, the accept states and every transition
// against the declared states and alphabet. It returns nil for a consistent
// automaton and otherwise the first violation found.
func (d *DFA) Validate() error {
	if !d.HasState(d.start) {
		return &ValidationError{Violation: StartNotInStates, State: d.start}
	}
	for _, s := range d.AcceptStates() {
		if !d.HasState(s) {
			return &ValidationError{Violation: AcceptNotInStates, State: s}
		}
	}

	keys := maps.Keys(d.delta)
	slices.SortFunc(keys, func(a, b Transition) bool {
		if a.From != b.From {
			return lessState(a.From, b.From)
		}
		return a.Symbol < b.Symbol
	})
	for _, t := range keys {
		to := d.delta[t]
		if !d.HasState(t.From) {
			return &ValidationError{Violation: SourceNotInStates, State: t.From, Transition: t}
		}
		if !d.InAlphabet(t.Symbol) {
			return &ValidationError{Violation: SymbolNotInAlphabet, Transition: t}
		}
		if !d.HasState(to) {
			return &ValidationError{Violation: TargetNotInStates, State: to, Transition: t}
		}
	}
	return nil
}
