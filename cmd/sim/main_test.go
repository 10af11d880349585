package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/geange/fsa"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nfaText = `3
2
0
2
0 0 0
0 1 0
0 1 1
1 0 2
1 1 0
`

func writeNFA(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nfa.txt")
	require.NoError(t, os.WriteFile(path, []byte(nfaText), 0o644))
	return path
}

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newSimCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSim(t *testing.T) {
	path := writeNFA(t)

	tests := []struct {
		input string
		want  string
	}{
		{"", "false\n"},
		{"10", "true\n"},
		{"110", "true\n"},
		{"111", "false\n"},
	}
	for _, flags := range [][]string{nil, {"--determinize"}, {"--minimize"}} {
		for _, tt := range tests {
			args := append(append([]string(nil), flags...), path, tt.input)
			out, err := execute(args...)
			require.NoError(t, err, args)
			assert.Equal(t, tt.want, out, args)
		}
	}
}

func TestSimUsage(t *testing.T) {
	out, err := execute(writeNFA(t))
	assert.Error(t, err)
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "sim <automaton_file> <input_string>")

	_, err = execute("a", "b", "c")
	assert.Error(t, err)
}

func TestSimErrors(t *testing.T) {
	out, err := execute(filepath.Join(t.TempDir(), "missing.txt"), "0")
	assert.Error(t, err)
	assert.NotContains(t, out, "Usage:")

	_, err = execute(writeNFA(t), "1x")
	assert.ErrorIs(t, err, fsa.ErrMalformedInput)
}

func TestSimOut(t *testing.T) {
	out := filepath.Join(t.TempDir(), "min.txt")
	_, err := execute("--minimize", "--out", out, writeNFA(t), "10")
	require.NoError(t, err)

	a, err := fsa.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, a.IsDeterministic())
	assert.Equal(t, 3, a.StatesSize())

	ok, err := a.AcceptsString("0110")
	require.NoError(t, err)
	assert.True(t, ok)
}
