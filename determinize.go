package fsa

import (
	"github.com/cockroachdb/errors"
)

// Determinize converts the automaton in place with the subset construction.
// Worst case complexity: exponential in the number of states.
//
// Composite states are discovered lazily from the reachable start states, so
// only composites reachable from the start are ever built. The worklist is
// FIFO, and the order in which composites are marked processed is recorded
// for Normalize.
//
// A composite is dead when it is not accepting and has no outgoing
// transitions. Dead composites are dropped along with the transitions into
// them; this does not change the accepted language. Accepting composites are
// always kept.
//
// Afterwards the automaton is in composite form (see Subsets) and
// IsNormalized returns false.
func (a *Automaton) Determinize() error {
	if a.subsets != nil {
		return errors.WithHint(errors.Wrap(ErrNotNormalized, "determinize"),
			"call Normalize before determinizing again")
	}

	reachable := a.Reachable()
	initialSet := a.start.Clone()
	initialSet.Intersect(reachable)
	initial := initialSet.Freeze()

	// Roughly one composite per reachable state.
	hint := WithCapacity(reachable.Size())

	// Every composite seen so far; GetKey returns its canonical pointer.
	seen := NewHashMap[struct{}](hint)
	processed := NewHashMap[struct{}](hint)
	delta := NewHashMap[map[int]*Composite](hint)
	accept := NewHashMap[struct{}]()
	var order []*Composite

	worklist := []*Composite{initial}
	seen.Set(initial, struct{}{})

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]

		if processed.Contains(current) {
			continue
		}
		processed.Set(current, struct{}{})
		order = append(order, current)

		if current.Intersects(a.accept) {
			accept.Set(current, struct{}{})
		}

		members := current.States()
		row := make(map[int]*Composite)
		for symbol := 0; symbol < a.alphabetSize; symbol++ {
			next := a.Move(members, symbol)
			if next.IsEmpty() {
				continue
			}

			dest := next.Freeze()
			if canonical, ok := seen.GetKey(dest); ok {
				dest = canonical.(*Composite)
			} else {
				seen.Set(dest, struct{}{})
				worklist = append(worklist, dest)
			}
			row[symbol] = dest
		}
		delta.Set(current, row)
	}

	isDead := func(c *Composite) bool {
		row, _ := delta.Get(c)
		return len(row) == 0 && !accept.Contains(c)
	}

	live := make([]*Composite, 0, len(order))
	for _, c := range order {
		if isDead(c) {
			delta.Delete(c)
			continue
		}
		live = append(live, c)
	}
	for _, c := range live {
		row, _ := delta.Get(c)
		for symbol, dest := range row {
			if !delta.Contains(dest) {
				delete(row, symbol)
			}
		}
	}

	form := &SubsetForm{
		accept: accept,
		delta:  delta,
		order:  live,
	}
	if delta.Contains(initial) {
		form.start = initial
	}

	a.start = NewStateSet()
	a.accept = NewStateSet()
	a.delta = make(map[int]map[int]*StateSet)
	a.deterministic = true
	a.subsets = form
	a.normalized = false
	return nil
}
