package fsa

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMergeableDFA(t *testing.T) *Automaton {
	t.Helper()
	a, err := New(3, 2,
		WithStartStates(0),
		WithAcceptStates(1, 2),
		WithTransitions(
			Transition{0, 0, 2},
			Transition{0, 1, 1},
			Transition{1, 0, 1},
			Transition{1, 1, 2},
			Transition{2, 0, 2},
			Transition{2, 1, 2},
		))
	require.NoError(t, err)
	return a
}

func TestMinimize(t *testing.T) {
	a := newMergeableDFA(t)
	require.NoError(t, a.Minimize())

	assert.Equal(t, 2, a.StatesSize())
	assert.Equal(t, []int{0}, a.StartStates().GetArray())
	assert.Equal(t, []int{1}, a.AcceptStates().GetArray())
	want := []Transition{
		{0, 0, 1},
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 1},
	}
	if diff := cmp.Diff(want, slices.Collect(a.Transitions())); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
	assert.True(t, a.IsDeterministic())
	assert.NoError(t, a.Validate())
}

func TestMinimizePreconditions(t *testing.T) {
	t.Run("Incomplete", func(t *testing.T) {
		a, err := New(2, 2, WithStartStates(0), WithAcceptStates(1), WithTransitions(Transition{0, 1, 1}))
		require.NoError(t, err)
		assert.ErrorIs(t, a.Minimize(), ErrIncomplete)

		require.NoError(t, a.Totalize())
		require.NoError(t, a.Minimize())
		assert.Equal(t, 3, a.StatesSize())
		assert.True(t, a.Accepts([]int{1}))
		assert.False(t, a.Accepts([]int{1, 1}))
	})

	t.Run("Nondeterministic", func(t *testing.T) {
		a := newLectureNFA(t)
		assert.ErrorIs(t, a.Minimize(), ErrNondeterministic)
	})

	t.Run("CompositeForm", func(t *testing.T) {
		a := newLectureNFA(t)
		require.NoError(t, a.Determinize())
		assert.ErrorIs(t, a.Minimize(), ErrNotNormalized)
	})

	t.Run("NoReachableStates", func(t *testing.T) {
		a, err := New(2, 1, WithAcceptStates(1), WithTransitions(Transition{0, 0, 1}))
		require.NoError(t, err)
		require.NoError(t, a.Minimize())
		assert.Equal(t, 0, a.StatesSize())
		assert.Equal(t, 0, a.NumTransitions())
		assert.True(t, a.IsEmpty())
	})
}

func TestMinimizeDropsUnreachable(t *testing.T) {
	a, err := New(4, 1,
		WithStartStates(0),
		WithAcceptStates(1, 3),
		WithTransitions(
			Transition{0, 0, 1},
			Transition{1, 0, 0},
			// 2 and 3 are unreachable and incomplete.
			Transition{2, 0, 3},
		))
	require.NoError(t, err)
	require.NoError(t, a.Minimize())
	assert.Equal(t, 2, a.StatesSize())
	assert.True(t, a.Accepts([]int{0, 0, 0}))
	assert.False(t, a.Accepts([]int{0, 0}))
}

func TestMinimizeAfterDeterminize(t *testing.T) {
	// Two copies of "ends in 01" side by side.
	a, err := New(6, 2,
		WithStartStates(0, 3),
		WithAcceptStates(2, 5),
		WithTransitions(
			Transition{0, 0, 0}, Transition{0, 0, 1}, Transition{0, 1, 0}, Transition{1, 1, 2},
			Transition{3, 0, 3}, Transition{3, 0, 4}, Transition{3, 1, 3}, Transition{4, 1, 5},
		))
	require.NoError(t, err)

	require.NoError(t, a.Determinize())
	require.NoError(t, a.Normalize())
	require.NoError(t, a.Totalize())
	require.NoError(t, a.Minimize())

	assert.Equal(t, 3, a.StatesSize())
	for input, want := range map[string]bool{
		"01":   true,
		"1101": true,
		"10":   false,
		"":     false,
		"011":  false,
	} {
		got, err := a.AcceptsString(input)
		require.NoError(t, err)
		assert.Equal(t, want, got, input)
	}
}

func TestFillTable(t *testing.T) {
	// 0 -0-> 2, 0 -1-> 1; 1 and 2 loop to 2 / 1 and are both accepting.
	next := [][]int{
		{2, 1},
		{1, 2},
		{2, 2},
	}
	table := fillTable(next, []bool{false, true, true})

	assert.True(t, table.marked(0, 1))
	assert.True(t, table.marked(2, 0))
	assert.False(t, table.marked(1, 2))
	assert.Equal(t, byAcceptance, table.witness(0, 1))
	assert.Equal(t, undetermined, table.witness(1, 2))

	t.Run("WitnessSymbol", func(t *testing.T) {
		// Only 2 accepts; 0 and 1 are told apart by symbol 1.
		next := [][]int{
			{0, 0},
			{0, 2},
			{2, 2},
		}
		table := fillTable(next, []bool{false, false, true})
		assert.Equal(t, 1, table.witness(0, 1))
		assert.Equal(t, byAcceptance, table.witness(1, 2))
	})
}

func TestClasses(t *testing.T) {
	// 1, 2 and 4 are equivalent, as are 0 and 3.
	next := [][]int{
		{1, 3},
		{2, 4},
		{4, 1},
		{2, 0},
		{1, 2},
	}
	table := fillTable(next, []bool{false, true, true, false, true})

	class, count := table.classes(identityOrder(5))
	assert.Equal(t, 2, count)
	if diff := cmp.Diff([]int{0, 1, 1, 0, 1}, class); diff != "" {
		t.Errorf("classes mismatch (-want +got):\n%s", diff)
	}

	class, count = table.classes([]int{4, 3, 2, 1, 0})
	assert.Equal(t, 2, count)
	if diff := cmp.Diff([]int{1, 0, 0, 1, 0}, class); diff != "" {
		t.Errorf("reversed classes mismatch (-want +got):\n%s", diff)
	}
}
