package fsa

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// Automaton represents a finite automaton over the alphabet 0..alphabetSize-1.
// States are non-negative integers. A state may have any number of
// destinations per symbol, so the same type holds both NFAs and DFAs.
//
// Determinize, Normalize and Minimize transform the automaton in place. After
// Determinize and before Normalize the automaton is in composite form: its
// states are Composite values held by Subsets, and the primitive accessors
// (StartStates, AcceptStates, Transitions, Move) see an empty automaton.
// Accepts works in both forms.
//
// An Automaton is not safe for concurrent mutation.
type Automaton struct {
	// Declared upper bound on the state count. Informational only.
	statesSize int

	alphabetSize int

	start  *StateSet
	accept *StateSet

	// Destination sets keyed by source, then symbol.
	delta map[int]map[int]*StateSet

	// True if no (state, symbol) pair has more than one destination.
	deterministic bool

	// Composite form recorded by Determinize, consumed by Normalize.
	subsets *SubsetForm

	normalized bool
}

// Transition is a single (source, symbol, destination) triple.
type Transition struct {
	Source int
	Symbol int
	Dest   int
}

type options struct {
	start       []int
	accept      []int
	transitions []Transition
}

// Option configures an automaton built by New.
type Option func(*options)

// WithStartStates sets the start states.
func WithStartStates(states ...int) Option {
	return func(o *options) {
		o.start = append(o.start, states...)
	}
}

// WithAcceptStates sets the accept states.
func WithAcceptStates(states ...int) Option {
	return func(o *options) {
		o.accept = append(o.accept, states...)
	}
}

// WithTransitions adds the given transitions.
func WithTransitions(transitions ...Transition) Option {
	return func(o *options) {
		o.transitions = append(o.transitions, transitions...)
	}
}

// New returns an automaton with the given bounds. Negative sizes are rejected
// with ErrInvalidSize. Every state must lie in [0, statesSize) and every
// symbol in [0, alphabetSize), otherwise New returns ErrOutOfRange (see
// Validate).
func New(statesSize, alphabetSize int, opts ...Option) (*Automaton, error) {
	if statesSize < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "states size %d", statesSize)
	}
	if alphabetSize < 0 {
		return nil, errors.Wrapf(ErrInvalidSize, "alphabet size %d", alphabetSize)
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	a := &Automaton{
		statesSize:    statesSize,
		alphabetSize:  alphabetSize,
		start:         NewStateSet(),
		accept:        NewStateSet(),
		delta:         make(map[int]map[int]*StateSet),
		deterministic: true,
		normalized:    true,
	}
	for _, s := range o.start {
		if s < 0 {
			return nil, errors.Wrapf(ErrOutOfRange, "start state %d", s)
		}
		a.start.Add(s)
	}
	for _, s := range o.accept {
		if s < 0 {
			return nil, errors.Wrapf(ErrOutOfRange, "accept state %d", s)
		}
		a.accept.Add(s)
	}
	for _, t := range o.transitions {
		if t.Source < 0 || t.Dest < 0 {
			return nil, errors.Wrapf(ErrOutOfRange, "transition %d %d %d", t.Source, t.Symbol, t.Dest)
		}
		a.AddTransition(t.Source, t.Symbol, t.Dest)
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *Automaton) StatesSize() int {
	return a.statesSize
}

func (a *Automaton) AlphabetSize() int {
	return a.alphabetSize
}

// StartStates returns a copy of the primitive start states.
func (a *Automaton) StartStates() *StateSet {
	return a.start.Clone()
}

// AcceptStates returns a copy of the primitive accept states.
func (a *Automaton) AcceptStates() *StateSet {
	return a.accept.Clone()
}

// IsAccept returns true if this primitive state is an accept state.
func (a *Automaton) IsAccept(state int) bool {
	return a.accept.Contains(state)
}

// SetAccept sets or clears state as an accept state.
func (a *Automaton) SetAccept(state int, accept bool) {
	if accept {
		a.accept.Add(state)
	} else {
		a.accept.Remove(state)
	}
}

// IsDeterministic returns true if no state has two destinations for the same
// symbol.
func (a *Automaton) IsDeterministic() bool {
	return a.deterministic
}

// IsNormalized returns true if the automaton uses primitive state ids.
func (a *Automaton) IsNormalized() bool {
	return a.normalized
}

// Subsets returns the composite form recorded by Determinize, or nil if the
// automaton is normalized.
func (a *Automaton) Subsets() *SubsetForm {
	return a.subsets
}

// AddTransition adds to to the destination set of (from, symbol). Adding an
// existing transition is a no-op. State ids must be non-negative.
func (a *Automaton) AddTransition(from, symbol, to int) {
	row, ok := a.delta[from]
	if !ok {
		row = make(map[int]*StateSet)
		a.delta[from] = row
	}
	dests, ok := row[symbol]
	if !ok {
		dests = NewStateSet()
		row[symbol] = dests
	}
	if dests.Add(to) && dests.Size() > 1 {
		a.deterministic = false
	}
}

// Destinations returns a copy of the destination set of (from, symbol).
func (a *Automaton) Destinations(from, symbol int) *StateSet {
	if dests, ok := a.delta[from][symbol]; ok {
		return dests.Clone()
	}
	return NewStateSet()
}

// Move returns the union of the destination sets of every state in states
// for symbol.
func (a *Automaton) Move(states *StateSet, symbol int) *StateSet {
	next := NewStateSet()
	for state := range states.All() {
		if dests, ok := a.delta[state][symbol]; ok {
			next.Union(dests)
		}
	}
	return next
}

// NumTransitions returns how many transition triples the automaton holds.
func (a *Automaton) NumTransitions() int {
	n := 0
	for _, row := range a.delta {
		for _, dests := range row {
			n += dests.Size()
		}
	}
	return n
}

// Transitions yields every triple ordered by source, then symbol, then
// destination.
func (a *Automaton) Transitions() iter.Seq[Transition] {
	return func(yield func(Transition) bool) {
		for _, from := range slices.Sorted(maps.Keys(a.delta)) {
			row := a.delta[from]
			for _, symbol := range slices.Sorted(maps.Keys(row)) {
				for to := range row[symbol].All() {
					if !yield(Transition{Source: from, Symbol: symbol, Dest: to}) {
						return
					}
				}
			}
		}
	}
}

// states returns every primitive state the automaton mentions: start and
// accept states and every transition endpoint. The declared statesSize is
// only a bound and is never enumerated.
func (a *Automaton) states() *StateSet {
	all := NewStateSet()
	all.Union(a.start)
	all.Union(a.accept)
	for from, row := range a.delta {
		all.Add(from)
		for _, dests := range row {
			all.Union(dests)
		}
	}
	return all
}

// Validate checks that every state lies in [0, statesSize) and every symbol
// in [0, alphabetSize). Composite automata are valid by construction.
func (a *Automaton) Validate() error {
	if a.subsets != nil {
		return nil
	}
	checkState := func(kind string, s int) error {
		if s >= a.statesSize {
			return errors.Wrapf(ErrOutOfRange, "%s state %d not in [0, %d)", kind, s, a.statesSize)
		}
		return nil
	}
	for s := range a.start.All() {
		if err := checkState("start", s); err != nil {
			return err
		}
	}
	for s := range a.accept.All() {
		if err := checkState("accept", s); err != nil {
			return err
		}
	}
	for t := range a.Transitions() {
		if err := checkState("source", t.Source); err != nil {
			return err
		}
		if err := checkState("destination", t.Dest); err != nil {
			return err
		}
		if t.Symbol < 0 || t.Symbol >= a.alphabetSize {
			return errors.Wrapf(ErrOutOfRange, "symbol %d not in [0, %d)", t.Symbol, a.alphabetSize)
		}
	}
	return nil
}

// Clone returns a deep copy. The composite form is shared because
// transformations replace it rather than modify it.
func (a *Automaton) Clone() *Automaton {
	b := &Automaton{
		statesSize:    a.statesSize,
		alphabetSize:  a.alphabetSize,
		start:         a.start.Clone(),
		accept:        a.accept.Clone(),
		delta:         make(map[int]map[int]*StateSet, len(a.delta)),
		deterministic: a.deterministic,
		subsets:       a.subsets,
		normalized:    a.normalized,
	}
	for from, row := range a.delta {
		newRow := make(map[int]*StateSet, len(row))
		for symbol, dests := range row {
			newRow[symbol] = dests.Clone()
		}
		b.delta[from] = newRow
	}
	return b
}

// replace overwrites the primitive fields, leaving composite form.
func (a *Automaton) replace(statesSize int, start, accept *StateSet, delta map[int]map[int]*StateSet) {
	a.statesSize = statesSize
	a.start = start
	a.accept = accept
	a.delta = delta
	a.subsets = nil
	a.normalized = true
	a.deterministic = true
	for _, row := range delta {
		for _, dests := range row {
			if dests.Size() > 1 {
				a.deterministic = false
			}
		}
	}
}

func (a *Automaton) String() string {
	if a.subsets != nil {
		return a.subsets.String()
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "automaton states=%d alphabet=%d start=%s accept=%s\n",
		a.statesSize, a.alphabetSize, a.start, a.accept)
	for t := range a.Transitions() {
		fmt.Fprintf(&sb, "  %d --%d--> %d\n", t.Source, t.Symbol, t.Dest)
	}
	return sb.String()
}
