package fsa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	a := newGuessNFA(t)
	require.NoError(t, a.Determinize())
	require.NoError(t, a.Normalize())

	assert.True(t, a.IsNormalized())
	assert.Nil(t, a.Subsets())
	assert.True(t, a.IsDeterministic())
	assert.Equal(t, 3, a.StatesSize())
	assert.Equal(t, []int{0}, a.StartStates().GetArray())
	assert.Equal(t, []int{2}, a.AcceptStates().GetArray())

	// Ids follow the order composites were processed: {0}, {0,1}, {0,2}.
	want := []Transition{
		{0, 0, 1},
		{0, 1, 0},
		{1, 0, 1},
		{1, 1, 2},
		{2, 0, 1},
		{2, 1, 0},
	}
	assert.Equal(t, want, slices.Collect(a.Transitions()))
	assert.NoError(t, a.Validate())

	for input, accepted := range map[string]bool{
		"01":    true,
		"01101": true,
		"00":    false,
		"010":   false,
	} {
		got, err := a.AcceptsString(input)
		require.NoError(t, err)
		assert.Equal(t, accepted, got, input)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	a := newLectureNFA(t)
	require.NoError(t, a.Determinize())
	require.NoError(t, a.Normalize())

	once := a.String()
	require.NoError(t, a.Normalize())
	assert.True(t, a.IsNormalized())
	assert.Equal(t, once, a.String())
}

func TestNormalizeFresh(t *testing.T) {
	a := newLectureNFA(t)
	before := a.String()
	require.NoError(t, a.Normalize())
	assert.Equal(t, before, a.String())
	assert.False(t, a.IsDeterministic())
}

func TestNormalizeWithoutOrder(t *testing.T) {
	var a Automaton
	err := a.Normalize()
	assert.ErrorIs(t, err, ErrNoVisitOrder)
}

func TestNormalizeDenseIDs(t *testing.T) {
	// The dead composite {1} is dropped, so ids stay dense.
	a, err := New(3, 2,
		WithStartStates(0),
		WithAcceptStates(2),
		WithTransitions(
			Transition{0, 0, 1},
			Transition{0, 1, 2},
			Transition{2, 1, 2},
		))
	require.NoError(t, err)
	require.NoError(t, a.Determinize())
	require.NoError(t, a.Normalize())

	assert.Equal(t, 2, a.StatesSize())
	assert.Equal(t, []Transition{{0, 1, 1}, {1, 1, 1}}, slices.Collect(a.Transitions()))
	assert.Equal(t, []int{1}, a.AcceptStates().GetArray())
	assert.NoError(t, a.Validate())
}

func TestNormalizeEmptyStart(t *testing.T) {
	a, err := New(2, 1, WithAcceptStates(0))
	require.NoError(t, err)
	require.NoError(t, a.Determinize())
	require.NoError(t, a.Normalize())

	assert.Equal(t, 0, a.StatesSize())
	assert.True(t, a.StartStates().IsEmpty())
	assert.True(t, a.AcceptStates().IsEmpty())
	assert.False(t, a.Accepts(nil))
}
