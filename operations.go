package fsa

import (
	"github.com/cockroachdb/errors"
)

// Reachable returns every primitive state reachable from a start state by
// following zero or more transitions on any symbol. Each state is visited
// once. In composite form the result is empty: every composite recorded by
// Determinize is reachable by construction.
func (a *Automaton) Reachable() *StateSet {
	reachable := NewStateSet()
	stack := a.start.GetArray()

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !reachable.Add(state) {
			continue
		}
		for _, dests := range a.delta[state] {
			for next := range dests.All() {
				if !reachable.Contains(next) {
					stack = append(stack, next)
				}
			}
		}
	}
	return reachable
}

// IsEmpty returns true if the automaton accepts no input at all.
func (a *Automaton) IsEmpty() bool {
	if a.subsets != nil {
		return a.subsets.start == nil || a.subsets.accept.Size() == 0
	}
	if a.accept.IsEmpty() || a.start.IsEmpty() {
		// Common case: nothing to reach
		return true
	}
	return !a.Reachable().Intersects(a.accept)
}

// RemoveUnreachable drops every state that no start state reaches: their
// transitions, and their start and accept marks. Unreachable states cannot
// change the accepted language.
func (a *Automaton) RemoveUnreachable() {
	if a.subsets != nil {
		return
	}
	reachable := a.Reachable()
	for from := range a.delta {
		if !reachable.Contains(from) {
			delete(a.delta, from)
		}
	}
	a.start.Intersect(reachable)
	a.accept.Intersect(reachable)
}

// Totalize completes the transition function: every state the automaton
// uses that lacks a destination for some symbol gets a transition to a single
// new non-accepting sink state, which loops to itself on every symbol. The
// sink takes the first id above every used state, and statesSize grows only
// if the sink falls outside it. Nothing is added if the function is already
// total. The automaton must be normalized and deterministic.
func (a *Automaton) Totalize() error {
	if a.subsets != nil {
		return errors.Wrap(ErrNotNormalized, "totalize")
	}
	if !a.deterministic {
		return errors.Wrap(ErrNondeterministic, "totalize")
	}

	states := a.states()
	sink := states.Max() + 1

	added := false
	for state := range states.All() {
		for symbol := 0; symbol < a.alphabetSize; symbol++ {
			if dests, ok := a.delta[state][symbol]; ok && !dests.IsEmpty() {
				continue
			}
			a.AddTransition(state, symbol, sink)
			added = true
		}
	}
	if !added {
		return nil
	}

	for symbol := 0; symbol < a.alphabetSize; symbol++ {
		a.AddTransition(sink, symbol, sink)
	}
	if sink >= a.statesSize {
		a.statesSize = sink + 1
	}
	return nil
}
