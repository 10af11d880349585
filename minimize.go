package fsa

import (
	"github.com/cockroachdb/errors"
)

// Minimize replaces the automaton with its minimal equivalent using the
// table-filling (Myhill-Nerode) algorithm.
//
// The automaton must be normalized, deterministic and complete: every
// reachable state needs exactly one destination for every symbol. A missing
// destination yields ErrIncomplete (see Totalize) and a second destination
// yields ErrNondeterministic. Unreachable states are removed first. An
// automaton with no reachable state becomes empty.
func (a *Automaton) Minimize() error {
	if a.subsets != nil {
		return errors.WithHint(errors.Wrap(ErrNotNormalized, "minimize"), "call Normalize first")
	}

	a.RemoveUnreachable()
	states := a.Reachable().GetArray()
	n := len(states)
	if n == 0 {
		a.replace(0, NewStateSet(), NewStateSet(), make(map[int]map[int]*StateSet))
		return nil
	}

	pos := make(map[int]int, n)
	for i, s := range states {
		pos[s] = i
	}

	next := make([][]int, n)
	accepting := make([]bool, n)
	for i, s := range states {
		accepting[i] = a.accept.Contains(s)
		next[i] = make([]int, a.alphabetSize)
		for symbol := 0; symbol < a.alphabetSize; symbol++ {
			dests, ok := a.delta[s][symbol]
			switch {
			case !ok || dests.IsEmpty():
				return errors.WithHint(
					errors.Wrapf(ErrIncomplete, "state %d has no transition on symbol %d", s, symbol),
					"call Totalize before Minimize")
			case dests.Size() > 1:
				return errors.WithHint(
					errors.Wrapf(ErrNondeterministic, "state %d has %d destinations on symbol %d", s, dests.Size(), symbol),
					"call Determinize and Normalize before Minimize")
			}
			next[i][symbol] = pos[dests.Min()]
		}
	}

	table := fillTable(next, accepting)
	class, count := table.classes(identityOrder(n))

	start := NewStateSet()
	for s := range a.start.All() {
		start.Add(class[pos[s]])
	}

	accept := NewStateSet()
	delta := make(map[int]map[int]*StateSet, count)
	for i := range states {
		c := class[i]
		if _, done := delta[c]; done {
			continue
		}
		// i is the first member of its class.
		if accepting[i] {
			accept.Add(c)
		}
		row := make(map[int]*StateSet, a.alphabetSize)
		for symbol, j := range next[i] {
			row[symbol] = NewStateSet(class[j])
		}
		delta[c] = row
	}

	a.replace(count, start, accept, delta)
	return nil
}

const (
	undetermined = -2
	byAcceptance = -1
)

// distinguishTable holds, for every pair of states, undetermined or the
// witness that tells them apart: byAcceptance, or the symbol whose successors
// are already distinguished.
type distinguishTable struct {
	n     int
	cells []int
}

func newDistinguishTable(n int) *distinguishTable {
	t := &distinguishTable{n: n, cells: make([]int, n*n)}
	for i := range t.cells {
		t.cells[i] = undetermined
	}
	return t
}

func (t *distinguishTable) mark(i, j, witness int) {
	t.cells[i*t.n+j] = witness
	t.cells[j*t.n+i] = witness
}

func (t *distinguishTable) marked(i, j int) bool {
	return t.cells[i*t.n+j] != undetermined
}

// witness returns what distinguishes i and j, or undetermined.
func (t *distinguishTable) witness(i, j int) int {
	return t.cells[i*t.n+j]
}

// fillTable marks every pair whose acceptance differs, then repeatedly marks
// pairs whose successors on some symbol are marked, until a full scan
// changes nothing. next[i][symbol] is the successor index of state i.
func fillTable(next [][]int, accepting []bool) *distinguishTable {
	n := len(next)
	t := newDistinguishTable(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if accepting[i] != accepting[j] {
				t.mark(i, j, byAcceptance)
			}
		}
	}

	for changed := true; changed; {
		changed = false
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if t.marked(i, j) {
					continue
				}
				for symbol := range next[i] {
					if t.marked(next[i][symbol], next[j][symbol]) {
						t.mark(i, j, symbol)
						changed = true
						break
					}
				}
			}
		}
	}
	return t
}

// classes scans states in the given order. The first unassigned state opens a
// new class and every later state it is not distinguished from joins it.
// Returns the class of every state and the number of classes.
func (t *distinguishTable) classes(order []int) ([]int, int) {
	class := make([]int, t.n)
	for i := range class {
		class[i] = -1
	}

	count := 0
	for p, i := range order {
		if class[i] != -1 {
			continue
		}
		class[i] = count
		for _, j := range order[p+1:] {
			if class[j] == -1 && !t.marked(i, j) {
				class[j] = count
			}
		}
		count++
	}
	return class, count
}

func identityOrder(n int) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	return order
}
