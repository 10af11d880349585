package fsa

import (
	"github.com/cockroachdb/errors"
)

// Automata builds small deterministic automata over the alphabet
// 0..alphabetSize-1.
type Automata struct {
}

var defaultAutomata = &Automata{}

// Factory returns the shared Automata.
func Factory() *Automata {
	return defaultAutomata
}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty(alphabetSize int) (*Automaton, error) {
	return New(0, alphabetSize)
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabetSize int) (*Automaton, error) {
	return New(1, alphabetSize, WithStartStates(0), WithAcceptStates(0))
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings.
func (*Automata) MakeAnyString(alphabetSize int) (*Automaton, error) {
	a, err := New(1, alphabetSize, WithStartStates(0), WithAcceptStates(0))
	if err != nil {
		return nil, err
	}
	for symbol := 0; symbol < alphabetSize; symbol++ {
		a.AddTransition(0, symbol, 0)
	}
	return a, nil
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly the given
// symbol sequence. State i is reached after reading i symbols.
func (*Automata) MakeString(alphabetSize int, symbols ...int) (*Automaton, error) {
	a, err := New(len(symbols)+1, alphabetSize, WithStartStates(0), WithAcceptStates(len(symbols)))
	if err != nil {
		return nil, err
	}
	for i, symbol := range symbols {
		if symbol < 0 || symbol >= alphabetSize {
			return nil, errors.Wrapf(ErrOutOfRange, "symbol %d not in [0, %d)", symbol, alphabetSize)
		}
		a.AddTransition(i, symbol, i+1)
	}
	return a, nil
}
