package regexlib

import (
	"errors"
	"testing"

	"regex2dfa/internal/automaton"
)

func TestStateSetCanonical(t *testing.T) {
	a := NewStateSet(3, 1, 2, 1)
	b := NewStateSet(1, 2, 3)
	if !a.Equal(b) || a.Key() != b.Key() {
		t.Fatalf("%v and %v should be the same set", a, b)
	}
	if a.Key() != "1,2,3" {
		t.Fatalf("key %q", a.Key())
	}
	if NewStateSet(12, 3).Key() == NewStateSet(1, 23).Key() {
		t.Fatal("keys collide")
	}
	if !a.Contains(2) || a.Contains(4) {
		t.Fatal("Contains is wrong")
	}
}

func TestEpsilonClosureStar(t *testing.T) {
	// a:0->1, star: 2 (start), 3 (accept)
	n := build(t, "a*")
	got := EpsilonClosure(n, NewStateSet(n.Start()))
	if want := NewStateSet(0, 2, 3); !got.Equal(want) {
		t.Fatalf("closure %v want %v", got, want)
	}
	if got := EpsilonClosure(n, nil); len(got) != 0 {
		t.Fatalf("closure of empty set %v", got)
	}
}

func TestEpsilonClosureIdempotent(t *testing.T) {
	for _, pf := range []string{"a", "ab.", "ab|", "a*", "a**", "ab|*a.b.b.", "ab.c|*d.ef|*.g."} {
		n := build(t, pf)
		states := n.States()
		sets := []StateSet{nil, NewStateSet(states...)}
		for i, s := range states {
			sets = append(sets, NewStateSet(s))
			if i+1 < len(states) {
				sets = append(sets, NewStateSet(s, states[i+1]))
			}
		}
		for _, s := range sets {
			once := EpsilonClosure(n, s)
			twice := EpsilonClosure(n, once)
			if !once.Equal(twice) {
				t.Fatalf("%q: closure of %v not idempotent: %v vs %v", pf, s, once, twice)
			}
			for _, id := range s {
				if !once.Contains(id) {
					t.Fatalf("%q: closure %v lost %d", pf, once, id)
				}
			}
		}
	}
}

func TestMove(t *testing.T) {
	n := build(t, "ab|")
	start := EpsilonClosure(n, NewStateSet(n.Start()))
	if got := Move(n, start, 'a'); !got.Equal(NewStateSet(1)) {
		t.Fatalf("move a: %v", got)
	}
	if got := Move(n, start, 'b'); !got.Equal(NewStateSet(3)) {
		t.Fatalf("move b: %v", got)
	}
	if got := Move(n, start, 'c'); len(got) != 0 {
		t.Fatalf("move c: %v", got)
	}
}

func TestDeterminizeClassic(t *testing.T) {
	d, err := Determinize(build(t, "ab|*a.b.b."), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	want := map[automaton.Transition]automaton.State{
		{From: "Q0", Symbol: 'a'}: "Q1", {From: "Q0", Symbol: 'b'}: "Q2",
		{From: "Q1", Symbol: 'a'}: "Q1", {From: "Q1", Symbol: 'b'}: "Q3",
		{From: "Q2", Symbol: 'a'}: "Q1", {From: "Q2", Symbol: 'b'}: "Q2",
		{From: "Q3", Symbol: 'a'}: "Q1", {From: "Q3", Symbol: 'b'}: "Q4",
		{From: "Q4", Symbol: 'a'}: "Q1", {From: "Q4", Symbol: 'b'}: "Q2",
	}
	if d.NumStates() != 5 || d.NumTransitions() != len(want) {
		t.Fatalf("want 5 states/%d transitions got %d/%d", len(want), d.NumStates(), d.NumTransitions())
	}
	for tr, to := range want {
		if got, ok := d.Next(tr.From, tr.Symbol); !ok || got != to {
			t.Errorf("δ(%s,%c) = %s,%v want %s", tr.From, tr.Symbol, got, ok, to)
		}
	}
	if acc := d.AcceptStates(); len(acc) != 1 || acc[0] != "Q4" {
		t.Fatalf("accept states %v", acc)
	}
	if d.Start() != "Q0" {
		t.Fatalf("start %s", d.Start())
	}
}

func TestDeterminizePartial(t *testing.T) {
	d, err := Determinize(build(t, "ab."), DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// Q0 -a-> Q1 -b-> Q2, nothing else
	if d.NumStates() != 3 || d.NumTransitions() != 2 {
		t.Fatalf("want 3 states/2 transitions got %d/%d", d.NumStates(), d.NumTransitions())
	}
	if _, ok := d.Next("Q0", 'b'); ok {
		t.Fatal("unexpected transition on b from Q0")
	}
}

func TestDeterminism(t *testing.T) {
	for _, pat := range []string{"a", "a|b", "(a|b)*abb", "(a|ab)(c|bcd)(d*)", "((a|b)*c)*"} {
		d := MustCompile(pat).DFA()
		defined := 0
		for _, s := range d.States() {
			for _, sym := range d.Alphabet() {
				if _, ok := d.Next(s, sym); ok {
					defined++
				}
			}
		}
		if defined != d.NumTransitions() {
			t.Fatalf("%q: %d reachable pairs but %d transitions", pat, defined, d.NumTransitions())
		}
	}
}

func TestDeterminizeStateLimit(t *testing.T) {
	_, err := Compile("(a|b)*abb", WithMaxStates(3))
	if !errors.Is(err, ErrStateLimit) {
		t.Fatalf("want state limit error got %v", err)
	}
	if _, err := Compile("(a|b)*abb", WithMaxStates(5)); err != nil {
		t.Fatalf("limit equal to the state count must pass: %v", err)
	}
}
