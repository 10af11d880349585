package fsa

import (
	"strconv"

	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
)

// Accepts reports whether the automaton accepts input. The live state set
// starts at the start states and is advanced with Move for every symbol; once
// it is empty no later symbol can revive it, so Accepts returns false right
// away. The empty input is accepted iff a start state is an accept state.
func (a *Automaton) Accepts(input []int) bool {
	if a.subsets != nil {
		return a.subsets.accepts(input)
	}

	current := a.start.Clone()
	for _, symbol := range input {
		current = a.Move(current, symbol)
		if current.IsEmpty() {
			return false
		}
	}
	return current.Intersects(a.accept)
}

// AcceptsString treats every character of s as one decimal symbol. A
// character that is not a digit yields ErrMalformedInput and no result.
func (a *Automaton) AcceptsString(s string) (bool, error) {
	input, err := ParseSymbols(s)
	if err != nil {
		return false, err
	}
	return a.Accepts(input), nil
}

// ParseSymbols converts every character of s to an integer symbol.
func ParseSymbols(s string) ([]int, error) {
	input := make([]int, 0, len(s))
	for i, r := range s {
		symbol, err := strconv.Atoi(string(r))
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedInput, "character %q at offset %d", r, i)
		}
		input = append(input, symbol)
	}
	return input, nil
}

// RunAutomaton is a deterministic automaton compiled into a dense transition
// table, for callers that run many inputs against the same automaton.
type RunAutomaton struct {
	alphabetSize int
	size         int
	initial      int
	accept       *bitset.BitSet
	// Destination of state*alphabetSize+symbol, or -1.
	transitions []int
}

// NewRunAutomaton compiles a normalized deterministic automaton.
func NewRunAutomaton(a *Automaton) (*RunAutomaton, error) {
	if a.subsets != nil {
		return nil, errors.Wrap(ErrNotNormalized, "compile run automaton")
	}
	if !a.deterministic {
		return nil, errors.WithHint(
			errors.Wrap(ErrNondeterministic, "compile run automaton"),
			"call Determinize and Normalize first")
	}
	if a.start.Size() > 1 {
		return nil, errors.Wrapf(ErrMultipleStart, "start states %s", a.start)
	}

	size := a.states().Max() + 1
	r := &RunAutomaton{
		alphabetSize: a.alphabetSize,
		size:         size,
		initial:      a.start.Min(),
		accept:       bitset.New(uint(size)),
		transitions:  make([]int, size*a.alphabetSize),
	}
	for i := range r.transitions {
		r.transitions[i] = -1
	}
	for s := range a.accept.All() {
		r.accept.Set(uint(s))
	}
	for t := range a.Transitions() {
		if t.Symbol < 0 || t.Symbol >= a.alphabetSize {
			return nil, errors.Wrapf(ErrOutOfRange, "symbol %d not in [0, %d)", t.Symbol, a.alphabetSize)
		}
		r.transitions[t.Source*a.alphabetSize+t.Symbol] = t.Dest
	}
	return r, nil
}

// Size returns the number of table rows.
func (r *RunAutomaton) Size() int {
	return r.size
}

func (r *RunAutomaton) IsAccept(state int) bool {
	return state >= 0 && r.accept.Test(uint(state))
}

// Step returns the destination of state on symbol, or -1.
func (r *RunAutomaton) Step(state, symbol int) int {
	if state < 0 || state >= r.size || symbol < 0 || symbol >= r.alphabetSize {
		return -1
	}
	return r.transitions[state*r.alphabetSize+symbol]
}

// Run returns true if the input is accepted.
func (r *RunAutomaton) Run(input []int) bool {
	p := r.initial
	if p == -1 {
		return false
	}
	for _, symbol := range input {
		p = r.Step(p, symbol)
		if p == -1 {
			return false
		}
	}
	return r.IsAccept(p)
}

// RunString is Run over the decimal characters of s.
func (r *RunAutomaton) RunString(s string) (bool, error) {
	input, err := ParseSymbols(s)
	if err != nil {
		return false, err
	}
	return r.Run(input), nil
}
