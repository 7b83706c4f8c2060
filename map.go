package chainmap

import (
	"iter"
)

// Map is a hash map with separate chaining. Each bucket is a chain of
// entries, and the bucket array doubles or halves as the load factor
// leaves the band configured by Policy.
//
// A Map is meant to be owned by a single goroutine. It does no locking;
// callers sharing one must synchronize on their own.
//
// The zero value is not usable: create maps with New, Collect or FromPairs.
type Map[K comparable, V any] struct {
	table[K, V]
}

type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Returns a new empty map at the minimum capacity.
// It panics if the configured Policy is invalid.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// Collect builds a map out of a sequence. Later duplicates of a key are
// ignored, like with Insert.
func Collect[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(opts...)
	for k, v := range seq {
		m.put(k, v)
	}

	return m
}

func FromPairs[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(opts...)
	for _, p := range pairs {
		m.put(p.Key, p.Value)
	}

	return m
}

// Clone returns a deep copy sharing the hash function, equality, policy and
// logger. The copy starts from the minimum capacity and grows on its own.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := New(m.options()...)
	for k, v := range m.All() {
		c.put(k, v)
	}

	return c
}

// CopyFrom replaces the contents and the configuration of m with a copy
// of other.
func (m *Map[K, V]) CopyFrom(other *Map[K, V]) {
	if m == other {
		return
	}

	m.policy = other.policy
	m.hashFunc = other.hashFunc
	m.equalFunc = other.equalFunc
	m.logger = other.logger
	m.Reset()

	for k, v := range other.All() {
		m.put(k, v)
	}
}

func (m *Map[K, V]) options() []Option[K, V] {
	return []Option[K, V]{
		WithPolicy[K, V](m.policy),
		WithHashFunc[K, V](m.hashFunc),
		WithEqualFunc[K, V](m.equalFunc),
		WithLogger[K, V](m.logger),
	}
}

func (m *Map[K, V]) Len() int {
	return m.size
}

func (m *Map[K, V]) Empty() bool {
	return m.size == 0
}

// Capacity returns the current number of buckets.
func (m *Map[K, V]) Capacity() int {
	return m.capacity()
}

func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor()
}

func (m *Map[K, V]) HashFunction() HashFunc[K] {
	return m.hashFunc
}

func (m *Map[K, V]) Policy() Policy {
	return m.policy
}

// Find returns a cursor at key, or the end cursor if it's absent.
func (m *Map[K, V]) Find(key K) Cursor[K, V] {
	return m.cursorAt(m.find(key))
}

func (m *Map[K, V]) Contains(key K) bool {
	_, idx := m.find(key)
	return idx != nilIndex
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.get(key)
}

// At returns the value stored under key, or an error wrapping
// ErrKeyNotFound.
func (m *Map[K, V]) At(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, m.keyNotFound(key)
	}

	return v, nil
}

// AtPtr is At returning a pointer to the stored value.
func (m *Map[K, V]) AtPtr(key K) (*V, error) {
	_, idx := m.find(key)
	if idx == nilIndex {
		return nil, m.keyNotFound(key)
	}

	return &m.entries.at(idx).value, nil
}

// Insert adds key with value and returns a cursor at the new entry.
// If key is already present nothing changes and the end cursor is returned.
// Inserting may grow the table, which invalidates every other cursor.
func (m *Map[K, V]) Insert(key K, value V) Cursor[K, V] {
	b, idx, ok := m.put(key, value)
	if !ok {
		return m.end()
	}

	return m.cursorAt(b, idx)
}

// Upsert stores value under key, overwriting any previous value.
// Returns whether the key is new.
func (m *Map[K, V]) Upsert(key K, value V) bool {
	return m.set(key, value)
}

// Erase removes key and reports whether it was present.
//
// The table may shrink afterwards, but never when the erase leaves it
// empty: an emptied map keeps its capacity until Clear.
func (m *Map[K, V]) Erase(key K) bool {
	return m.delete(key)
}

// Index returns a pointer to the value stored under key, inserting the zero
// value first if the key is absent. Like Insert, this can grow the table.
//
// The pointer survives rehashes and stays valid until the key is erased or
// the map is cleared.
func (m *Map[K, V]) Index(key K) *V {
	b, idx := m.find(key)
	if idx == nilIndex {
		var zero V
		_, idx = m.putAt(b, key, zero)
	}

	return &m.entries.at(idx).value
}

// Clear removes every entry and resets the capacity to the minimum.
func (m *Map[K, V]) Clear() {
	m.Reset()
}

func (m *Map[K, V]) Begin() Cursor[K, V] {
	return m.begin()
}

func (m *Map[K, V]) End() Cursor[K, V] {
	return m.end()
}

// All iterates over every entry in bucket order. The loop body may erase
// the key it was just given. Any mutation that resizes the table, or that
// erases the entry coming up next, panics with ErrCursorInvalidated on the
// next step.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c := m.begin()
		for !c.IsEnd() {
			e := c.entry()
			k, v := e.key, e.value

			// Step before yielding, so erasing k doesn't strand the cursor.
			c.Next()

			if !yield(k, v) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}
