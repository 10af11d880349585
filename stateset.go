package fsa

import (
	"iter"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// IntSet is a set of primitive state ids that can be used as a HashMap key.
type IntSet interface {
	Hashable

	// GetArray returns the members in ascending order.
	GetArray() []int

	Size() int

	Contains(state int) bool
}

var _ IntSet = &StateSet{}

// StateSet is a mutable set of primitive state ids backed by a bitset, so
// union, intersection and membership are word operations. State ids must be
// non-negative.
type StateSet struct {
	bits        *bitset.BitSet
	hashUpdated bool
	hashCode    uint64
}

// NewStateSet returns a set holding the given states.
func NewStateSet(states ...int) *StateSet {
	s := &StateSet{bits: bitset.New(0)}
	for _, state := range states {
		s.Add(state)
	}
	return s
}

func newStateSetFromBits(bits *bitset.BitSet) *StateSet {
	return &StateSet{bits: bits}
}

func (s *StateSet) keyChanged() {
	s.hashUpdated = false
	s.hashCode = 0
}

// Add inserts state and reports whether it was not already present.
// Panics if state is negative.
func (s *StateSet) Add(state int) bool {
	if state < 0 {
		panic("fsa: negative state id " + strconv.Itoa(state))
	}
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	s.keyChanged()
	return true
}

// Remove deletes state from the set.
func (s *StateSet) Remove(state int) {
	if state < 0 || !s.bits.Test(uint(state)) {
		return
	}
	s.bits.Clear(uint(state))
	s.keyChanged()
}

func (s *StateSet) Contains(state int) bool {
	return state >= 0 && s.bits.Test(uint(state))
}

func (s *StateSet) Size() int {
	return int(s.bits.Count())
}

func (s *StateSet) IsEmpty() bool {
	return s.bits.None()
}

// Union adds every member of other to s.
func (s *StateSet) Union(other *StateSet) {
	if other.IsEmpty() {
		return
	}
	s.bits.InPlaceUnion(other.bits)
	s.keyChanged()
}

// Intersect removes every member of s that is not in other.
func (s *StateSet) Intersect(other *StateSet) {
	s.bits.InPlaceIntersection(other.bits)
	s.keyChanged()
}

// Intersects reports whether s and other share at least one member.
func (s *StateSet) Intersects(other *StateSet) bool {
	return s.bits.IntersectionCardinality(other.bits) > 0
}

// Equal reports whether s and other hold the same members. Unlike
// bitset.Equal it ignores the capacity of the underlying bitsets.
func (s *StateSet) Equal(other *StateSet) bool {
	return s.bits.SymmetricDifferenceCardinality(other.bits) == 0
}

func (s *StateSet) Clone() *StateSet {
	return &StateSet{
		bits:        s.bits.Clone(),
		hashUpdated: s.hashUpdated,
		hashCode:    s.hashCode,
	}
}

// All iterates the members in ascending order.
func (s *StateSet) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
			if !yield(int(i)) {
				return
			}
		}
	}
}

// Min returns the smallest member, or -1 for the empty set.
func (s *StateSet) Min() int {
	if i, ok := s.bits.NextSet(0); ok {
		return int(i)
	}
	return -1
}

// Max returns the largest member, or -1 for the empty set.
func (s *StateSet) Max() int {
	last := -1
	for state := range s.All() {
		last = state
	}
	return last
}

func (s *StateSet) GetArray() []int {
	keys := make([]int, 0, s.Size())
	for state := range s.All() {
		keys = append(keys, state)
	}
	return keys
}

func (s *StateSet) Hash() uint64 {
	if s.hashUpdated {
		return s.hashCode
	}
	s.hashCode = hashStates(s.Size(), s.All())
	s.hashUpdated = true
	return s.hashCode
}

func (s *StateSet) Equals(other Hashable) bool {
	switch o := other.(type) {
	case *StateSet:
		return o != nil && s.Equal(o)
	case *Composite:
		return o != nil && s.bits.SymmetricDifferenceCardinality(o.bits) == 0
	}
	return false
}

// Freeze returns an immutable snapshot of the set that can be used as a
// composite state.
func (s *StateSet) Freeze() *Composite {
	return &Composite{
		bits:     s.bits.Clone(),
		size:     s.Size(),
		hashCode: s.Hash(),
	}
}

// String formats the set as "{0 1 2}".
func (s *StateSet) String() string {
	return formatStates(s.All(), " ")
}

func formatStates(states iter.Seq[int], sep string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for state := range states {
		if !first {
			sb.WriteString(sep)
		}
		first = false
		sb.WriteString(strconv.Itoa(state))
	}
	sb.WriteByte('}')
	return sb.String()
}
