package script

import "regex2dfa/internal/regexlib"

// Environment holds the compiled patterns of a run and the one statements
// currently apply to.
type Environment struct {
	compiled map[string]*regexlib.Regex
	current  *regexlib.Regex
}

func NewEnvironment() *Environment {
	return &Environment{compiled: make(map[string]*regexlib.Regex)}
}

func (e *Environment) Get(pattern string) (*regexlib.Regex, bool) {
	re, ok := e.compiled[pattern]
	return re, ok
}

func (e *Environment) Set(re *regexlib.Regex) {
	e.compiled[re.Pattern()] = re
	e.current = re
}

// Current returns the most recently selected pattern, or nil.
func (e *Environment) Current() *regexlib.Regex { return e.current }
