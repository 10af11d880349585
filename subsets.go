package fsa

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// SubsetForm is the composite representation of a determinized automaton.
// Every composite it holds is live, and order lists them in the order the
// subset construction marked them processed. Normalize numbers composites by
// their position in order.
type SubsetForm struct {
	start  *Composite
	accept *HashMap[struct{}]
	delta  *HashMap[map[int]*Composite]
	order  []*Composite
}

// Start returns the start composite, or nil if the automaton has no live
// start state.
func (f *SubsetForm) Start() *Composite {
	return f.start
}

func (f *SubsetForm) IsAccept(c *Composite) bool {
	return f.accept.Contains(c)
}

// Accept returns the accept composites in visitation order.
func (f *SubsetForm) Accept() []*Composite {
	var accept []*Composite
	for _, c := range f.order {
		if f.IsAccept(c) {
			accept = append(accept, c)
		}
	}
	return accept
}

// Step returns the destination of c on symbol, or nil if there is none.
func (f *SubsetForm) Step(c *Composite, symbol int) *Composite {
	row, ok := f.delta.Get(c)
	if !ok {
		return nil
	}
	return row[symbol]
}

// Order returns the live composites in visitation order.
func (f *SubsetForm) Order() []*Composite {
	return append([]*Composite(nil), f.order...)
}

func (f *SubsetForm) Len() int {
	return len(f.order)
}

func (f *SubsetForm) accepts(input []int) bool {
	current := f.start
	if current == nil {
		return false
	}
	for _, symbol := range input {
		current = f.Step(current, symbol)
		if current == nil {
			return false
		}
	}
	return f.IsAccept(current)
}

func (f *SubsetForm) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "subsets states=%d start=%v\n", len(f.order), f.start)
	for _, c := range f.order {
		mark := ""
		if f.IsAccept(c) {
			mark = " (accept)"
		}
		fmt.Fprintf(&sb, "state %v%s\n", c, mark)
		row, _ := f.delta.Get(c)
		for _, symbol := range slices.Sorted(maps.Keys(row)) {
			fmt.Fprintf(&sb, "  --%d--> %v\n", symbol, row[symbol])
		}
	}
	return sb.String()
}
