package fsa

import "github.com/cockroachdb/errors"

// Construction and input errors.
var (
	// ErrInvalidSize is returned when a state count or alphabet size is negative.
	ErrInvalidSize = errors.New("invalid automaton size")

	// ErrMalformedInput is returned when an input token is not an integer symbol.
	ErrMalformedInput = errors.New("malformed input symbol")

	// ErrSyntax is returned by Read for text that does not follow the format.
	ErrSyntax = errors.New("automaton syntax error")

	// ErrOutOfRange is returned when a state or symbol lies outside the
	// automaton's declared bounds.
	ErrOutOfRange = errors.New("value out of range")
)

// Precondition violations. Transformations must run in order: Determinize,
// then Normalize, then Minimize.
var (
	// ErrNotNormalized is returned by operations that need primitive state ids
	// while the automaton still holds composite states.
	ErrNotNormalized = errors.New("automaton holds composite states")

	// ErrNoVisitOrder is returned by Normalize when no determinization order
	// has been recorded.
	ErrNoVisitOrder = errors.New("no recorded determinization order")

	// ErrIncomplete is returned by Minimize when some reachable state has no
	// transition on some symbol.
	ErrIncomplete = errors.New("transition function is not total")

	// ErrNondeterministic is returned when a state has more than one
	// destination for a symbol.
	ErrNondeterministic = errors.New("automaton is not deterministic")

	// ErrMultipleStart is returned by NewRunAutomaton for more than one start state.
	ErrMultipleStart = errors.New("automaton has more than one start state")
)
