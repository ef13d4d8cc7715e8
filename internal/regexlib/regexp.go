// Package regexlib compiles regular expressions over letters and digits into
// deterministic finite automata.
//
// The pipeline is: surface regex -> explicit concatenation -> postfix ->
// Thompson NFA -> subset construction -> automaton.DFA. Supported operators
// are concatenation (adjacency or '.'), alternation '|', Kleene star '*' and
// grouping with parentheses.
package regexlib

import (
	"errors"

	"regex2dfa/internal/automaton"
)

/* ----------- Compilation ----------- */

type Regex struct {
	pattern string
	postfix string
	tree    *Node
	nfa     *NFA
	dfa     *automaton.DFA
}

// Option tunes Compile.
type Option func(*Config)

// WithMaxStates caps the number of DFA states; see Config.MaxStates.
func WithMaxStates(n int) Option {
	return func(c *Config) { c.MaxStates = n }
}

// Compile runs the whole pipeline. Each call owns its state allocator, so
// concurrent calls never share state ids.
func Compile(pattern string, opts ...Option) (*Regex, error) {
	cfg := DefaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if pattern == "" {
		return nil, &Error{Kind: MalformedExpression, Msg: "empty pattern", Pos: -1}
	}

	/* 1) postfix ---------------------------------------------------------- */
	postfix, err := Postfix(pattern)
	if err != nil {
		return nil, err
	}

	/* 2) syntax tree ------------------------------------------------------ */
	tree, err := BuildTree(postfix)
	if err != nil {
		return nil, err
	}

	/* 3) Thompson NFA ----------------------------------------------------- */
	nfa, err := NewBuilder().Build(postfix)
	if err != nil {
		return nil, err
	}

	/* 4) NFA -> DFA ------------------------------------------------------- */
	dfa, err := Determinize(nfa, cfg)
	if err != nil {
		return nil, err
	}

	return &Regex{
		pattern: pattern,
		postfix: postfix,
		tree:    tree,
		nfa:     nfa,
		dfa:     dfa,
	}, nil
}

func MustCompile(p string) *Regex {
	r, err := Compile(p)
	if err != nil {
		panic(err)
	}
	return r
}

// MatchString reports whether the whole of word is in the language.
func (r *Regex) MatchString(word string) bool { return r.dfa.CheckWord(word) }

/* ----------- Accessors ----------------------------------------------- */

func (r *Regex) Pattern() string     { return r.pattern }
func (r *Regex) Postfix() string     { return r.postfix }
func (r *Regex) Tree() *Node         { return r.tree }
func (r *Regex) NFA() *NFA           { return r.nfa }
func (r *Regex) DFA() *automaton.DFA { return r.dfa }
func (r *Regex) String() string      { return r.pattern }

// IsSyntaxError and IsMalformed classify errors returned by Compile.
func IsSyntaxError(err error) bool { return errors.Is(err, ErrSyntax) }
func IsMalformed(err error) bool   { return errors.Is(err, ErrMalformed) }
