package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"regex2dfa/internal/regexlib"
)

type fixture struct {
	dir    string
	stdout bytes.Buffer
	stderr bytes.Buffer
}

func newFixture(t *testing.T, pattern string) *fixture {
	t.Helper()
	f := &fixture{dir: t.TempDir()}
	f.write(t, "regex.txt", pattern)
	return f
}

func (f *fixture) write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func (f *fixture) run(stdin string, args ...string) error {
	args = append([]string{
		"-input", filepath.Join(f.dir, "regex.txt"),
		"-output", filepath.Join(f.dir, "automaton_output.txt"),
	}, args...)
	return run(args, strings.NewReader(stdin), &f.stdout, &f.stderr)
}

func TestMenuSession(t *testing.T) {
	f := newFixture(t, "(a|b)*abb\n")
	require.NoError(t, f.run("1\n3\n4\nabb\nba\ndone\n0\n"))

	out := f.stdout.String()
	assert.Contains(t, out, "Regular expression read: (a|b)*abb\n")
	assert.Contains(t, out, "[Validation OK]")
	assert.Contains(t, out, "Postfix: ab|*a.b.b.")
	assert.Contains(t, out, "=> ACCEPTED\n")
	assert.Contains(t, out, "=> REJECTED\n")

	data, err := os.ReadFile(filepath.Join(f.dir, "automaton_output.txt"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(data), "*Q4\tQ1\tQ2\t\n"))
	assert.Contains(t, f.stderr.String(), "automaton built")
}

func TestScriptMode(t *testing.T) {
	f := newFixture(t, "a(b|c)*d")
	path := f.write(t, "checks.rx", `
accept "ad", "abcbd";
reject "abc";
check "acd";
regex "a*";
accept "";
`)
	require.NoError(t, f.run("", "-script", path))
	out := f.stdout.String()
	assert.Contains(t, out, "\"acd\" => ACCEPTED\n")
	assert.Contains(t, out, "4 passed, 0 failed\n")
}

func TestScriptFailures(t *testing.T) {
	f := newFixture(t, "ab")
	path := f.write(t, "checks.rx", `accept "ba";`)
	err := f.run("", "-script", path)
	assert.EqualError(t, err, "1 expectation(s) failed")
	assert.Contains(t, f.stdout.String(), "FAIL")
}

func TestEmptyInput(t *testing.T) {
	f := newFixture(t, "  \n")
	err := f.run("")
	assert.ErrorIs(t, err, errEmptyInput)
}

func TestMissingInput(t *testing.T) {
	err := run([]string{"-input", filepath.Join(t.TempDir(), "none.txt")}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestInvalidPattern(t *testing.T) {
	f := newFixture(t, "a+b")
	err := f.run("")
	require.Error(t, err)
	assert.True(t, regexlib.IsSyntaxError(err))
}

func TestConfigFile(t *testing.T) {
	f := newFixture(t, "(a|b)*abb")
	cfg := f.write(t, "regex2dfa.yaml", "maxStates: 3\nlogFormat: json\n")
	err := f.run("", "-config", cfg)
	assert.ErrorIs(t, err, regexlib.ErrStateLimit)
}

func TestFlagsOverrideEnv(t *testing.T) {
	f := newFixture(t, "a")
	t.Setenv("REGEX2DFA_INPUT", filepath.Join(f.dir, "elsewhere.txt"))
	require.NoError(t, f.run("0\n"))
}

func TestBadFlag(t *testing.T) {
	err := run([]string{"-nope"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	assert.Error(t, err)
}
