package fsa

import (
	"github.com/cockroachdb/errors"
)

// Normalize renumbers the composite states recorded by Determinize to their
// index in the visitation order, turning the automaton back into primitive
// form with states 0..n-1. The declared state count becomes n.
//
// Normalize is a no-op on an automaton that is already normalized. An
// automaton that is not normalized but has no recorded order (a zero value
// Automaton) yields ErrNoVisitOrder.
func (a *Automaton) Normalize() error {
	if a.normalized {
		return nil
	}
	form := a.subsets
	if form == nil {
		return errors.WithHint(ErrNoVisitOrder, "construct automata with New and call Determinize first")
	}

	ids := NewHashMap[int](WithCapacity(len(form.order)))
	for i, c := range form.order {
		ids.Set(c, i)
	}
	renumber := func(c *Composite) (int, error) {
		id, ok := ids.Get(c)
		if !ok {
			return 0, errors.AssertionFailedf("composite %v missing from visitation order", c)
		}
		return id, nil
	}

	start := NewStateSet()
	if form.start != nil {
		id, err := renumber(form.start)
		if err != nil {
			return err
		}
		start.Add(id)
	}

	accept := NewStateSet()
	delta := make(map[int]map[int]*StateSet, len(form.order))
	for id, c := range form.order {
		if form.IsAccept(c) {
			accept.Add(id)
		}
		row, _ := form.delta.Get(c)
		if len(row) == 0 {
			continue
		}
		newRow := make(map[int]*StateSet, len(row))
		for symbol, dest := range row {
			destID, err := renumber(dest)
			if err != nil {
				return err
			}
			newRow[symbol] = NewStateSet(destID)
		}
		delta[id] = newRow
	}

	a.replace(len(form.order), start, accept, delta)
	return nil
}
