package fsa

import (
	"iter"

	"github.com/bits-and-blooms/bitset"
)

var _ IntSet = &Composite{}

// Composite is an immutable set of primitive states that acts as a single
// state of a determinized automaton. Two composites holding the same members
// hash and compare equal no matter how they were built.
type Composite struct {
	bits     *bitset.BitSet
	size     int
	hashCode uint64
}

// NewComposite freezes the given primitive states into a composite.
func NewComposite(states ...int) *Composite {
	return NewStateSet(states...).Freeze()
}

func (c *Composite) Hash() uint64 {
	return c.hashCode
}

func (c *Composite) Equals(other Hashable) bool {
	if c == nil {
		switch o := other.(type) {
		case *Composite:
			return o == nil
		case *StateSet:
			return o == nil
		default:
			return false
		}
	}

	switch o := other.(type) {
	case *Composite:
		if o == nil || o.hashCode != c.hashCode || o.size != c.size {
			return false
		}
		return c.bits.SymmetricDifferenceCardinality(o.bits) == 0
	case *StateSet:
		return o != nil && o.Equals(c)
	}
	return false
}

func (c *Composite) GetArray() []int {
	values := make([]int, 0, c.size)
	for state := range c.All() {
		values = append(values, state)
	}
	return values
}

func (c *Composite) Size() int {
	return c.size
}

func (c *Composite) Contains(state int) bool {
	return state >= 0 && c.bits.Test(uint(state))
}

// Intersects reports whether c shares a member with the primitive set s.
func (c *Composite) Intersects(s *StateSet) bool {
	return c.bits.IntersectionCardinality(s.bits) > 0
}

// States returns the members as a fresh mutable set.
func (c *Composite) States() *StateSet {
	return newStateSetFromBits(c.bits.Clone())
}

func (c *Composite) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := c.bits.NextSet(0); ok; i, ok = c.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// String formats the composite as "{0,2}".
func (c *Composite) String() string {
	return formatStates(c.All(), ",")
}
