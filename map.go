package fsa

// Hashable is implemented by keys of a HashMap.
type Hashable interface {
	Hash() uint64
	Equals(other Hashable) bool
}

// HashMap is a chained hash table keyed by Hashable values. The determinizer
// uses it to index composite states, which are not comparable Go values.
// It is not safe for concurrent use.
type HashMap[T any] struct {
	buckets []*Entry[T]
	size    int
	mask    uint64
}

// Entry is one key/value pair of a bucket chain.
type Entry[T any] struct {
	key   Hashable
	value T
	next  *Entry[T]
}

// Initial bucket counts are capped here; larger tables come from growth.
const maxInitialBuckets = 1 << 16

type optionsHashMap struct {
	capacity int
}

type OptionsHashMap func(hashMap *optionsHashMap)

// WithCapacity hints how many keys the map will hold. The bucket count is
// rounded up to a power of two, at most maxInitialBuckets.
func WithCapacity(capacity int) OptionsHashMap {
	return func(hashMap *optionsHashMap) {
		hashMap.capacity = capacity
	}
}

func NewHashMap[T any](options ...OptionsHashMap) *HashMap[T] {
	opt := &optionsHashMap{capacity: 1}
	for _, o := range options {
		o(opt)
	}

	n := 1
	for n < opt.capacity && n < maxInitialBuckets {
		n <<= 1
	}
	return &HashMap[T]{
		buckets: make([]*Entry[T], n),
		mask:    uint64(n - 1),
	}
}

func (m *HashMap[T]) find(key Hashable) *Entry[T] {
	for e := m.buckets[key.Hash()&m.mask]; e != nil; e = e.next {
		if e.key.Equals(key) {
			return e
		}
	}
	return nil
}

// Set inserts or replaces the value stored under key. The table doubles once
// it is more than three quarters full.
func (m *HashMap[T]) Set(key Hashable, value T) {
	if e := m.find(key); e != nil {
		e.value = value
		return
	}

	index := key.Hash() & m.mask
	m.buckets[index] = &Entry[T]{key: key, value: value, next: m.buckets[index]}
	m.size++

	if 4*m.size > 3*len(m.buckets) {
		m.grow()
	}
}

func (m *HashMap[T]) Get(key Hashable) (T, bool) {
	if e := m.find(key); e != nil {
		return e.value, true
	}
	var zero T
	return zero, false
}

// GetKey returns the stored key equal to key. The determinizer uses it to
// hand out one canonical pointer per composite.
func (m *HashMap[T]) GetKey(key Hashable) (Hashable, bool) {
	if e := m.find(key); e != nil {
		return e.key, true
	}
	return nil, false
}

func (m *HashMap[T]) Contains(key Hashable) bool {
	return m.find(key) != nil
}

func (m *HashMap[T]) Delete(key Hashable) {
	link := &m.buckets[key.Hash()&m.mask]
	for e := *link; e != nil; link, e = &e.next, e.next {
		if e.key.Equals(key) {
			*link = e.next
			m.size--
			return
		}
	}
}

// grow doubles the bucket count and relinks every entry.
func (m *HashMap[T]) grow() {
	buckets := make([]*Entry[T], 2*len(m.buckets))
	mask := uint64(len(buckets) - 1)
	for _, head := range m.buckets {
		for e := head; e != nil; {
			next := e.next
			index := e.key.Hash() & mask
			e.next = buckets[index]
			buckets[index] = e
			e = next
		}
	}
	m.buckets = buckets
	m.mask = mask
}

func (m *HashMap[T]) Size() int {
	return m.size
}
