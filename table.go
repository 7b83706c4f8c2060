package chainmap

import (
	"fmt"
	"hash/maphash"

	"go.uber.org/zap"
)

type table[K comparable, V any] struct {
	entries arena[K, V]

	// The bucket array: heads[b] is the first entry of bucket b.
	heads []int32
	// Chain links, indexed by arena slot.
	next []int32

	size int

	// Bumped on every rehash and reset. Cursors compare against it.
	epoch uint32

	policy    Policy
	hashFunc  HashFunc[K]
	equalFunc EqualFunc[K]
	logger    *zap.Logger

	grows   int
	shrinks int
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	t.policy = DefaultPolicy()

	for _, opt := range opts {
		opt(t)
	}

	if err := t.policy.Validate(); err != nil {
		panic(err)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.equalFunc == nil {
		t.equalFunc = defaultEqual[K]
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}

	t.heads = makeHeads(t.policy.floor())
}

func makeHeads(capacity int) []int32 {
	heads := make([]int32, capacity)
	for i := range heads {
		heads[i] = nilIndex
	}

	return heads
}

func (t *table[K, V]) capacity() int {
	return len(t.heads)
}

func (t *table[K, V]) bucketOf(key K) int {
	return bucketIndex(t.hashFunc(key), len(t.heads))
}

func (t *table[K, V]) find(key K) (int, int32) {
	b := t.bucketOf(key)
	_, idx := t.lookup(b, key)

	return b, idx
}

func (t *table[K, V]) get(key K) (V, bool) {
	if _, idx := t.find(key); idx != nilIndex {
		return t.entries.at(idx).value, true
	}

	var zero V
	return zero, false
}

// put inserts a new entry. It returns the bucket and the entry index, or
// ok == false if the key is already there, in which case nothing changes.
func (t *table[K, V]) put(key K, value V) (b int, idx int32, ok bool) {
	b, idx = t.find(key)
	if idx != nilIndex {
		return 0, nilIndex, false
	}

	b, idx = t.putAt(b, key, value)

	return b, idx, true
}

// putAt places a key known to be absent. b is its bucket at the current
// capacity.
func (t *table[K, V]) putAt(b int, key K, value V) (int, int32) {
	// The count goes up first so the new entry is placed into the
	// already grown table.
	t.size++
	if capacity := t.growTarget(); capacity != t.capacity() {
		t.rehash(capacity)
		b = t.bucketOf(key)
	}

	idx := t.entries.alloc(key, value)
	t.pushFront(b, idx)

	return b, idx
}

// growTarget doubles the capacity until the load factor is back under the
// upscale threshold. A small floor with a low threshold can need more than
// one doubling.
func (t *table[K, V]) growTarget() int {
	capacity := t.capacity()
	for t.policy.shouldGrow(t.size, capacity) {
		capacity *= 2
	}

	return capacity
}

// set inserts or overwrites, reporting whether the key is new.
func (t *table[K, V]) set(key K, value V) bool {
	b, idx := t.find(key)
	if idx != nilIndex {
		t.entries.at(idx).value = value
		return false
	}

	t.putAt(b, key, value)

	return true
}

func (t *table[K, V]) delete(key K) bool {
	b := t.bucketOf(key)

	prev, idx := t.lookup(b, key)
	if idx == nilIndex {
		return false
	}

	t.unlink(b, prev, idx)
	t.entries.release(idx)
	t.size--

	if t.policy.shouldShrink(t.size, t.capacity()) {
		t.rehash(max(t.capacity()/2, t.policy.floor()))
	}

	return true
}

// rehash redistributes every entry over a fresh bucket array of the given
// capacity. Entries stay where they are in the arena, only the links are
// rebuilt, and the new links are swapped in as the very last step.
func (t *table[K, V]) rehash(capacity int) {
	var (
		from  = t.capacity()
		heads = makeHeads(capacity)
		next  = make([]int32, len(t.next))
	)

	for _, head := range t.heads {
		for idx := head; idx != nilIndex; idx = t.next[idx] {
			b := bucketIndex(t.hashFunc(t.entries.at(idx).key), capacity)
			next[idx] = heads[b]
			heads[b] = idx
		}
	}

	t.heads, t.next = heads, next
	t.epoch++

	direction := "grow"
	if capacity < from {
		direction = "shrink"
		t.shrinks++
	} else {
		t.grows++
	}

	t.logger.Debug("rehashed table",
		zap.String("direction", direction),
		zap.Int("from", from),
		zap.Int("to", capacity),
		zap.Int("size", t.size),
	)
}

// Reset drops every entry and brings the capacity back to the floor.
func (t *table[K, V]) Reset() {
	dropped := t.size

	t.entries = arena[K, V]{}
	t.heads = makeHeads(t.policy.floor())
	t.next = nil
	t.size = 0
	t.epoch++

	t.logger.Debug("cleared table", zap.Int("dropped", dropped), zap.Int("capacity", t.capacity()))
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.size) / float64(t.capacity())
}

func (t *table[K, V]) keyNotFound(key K) error {
	return fmt.Errorf("%w: %v", ErrKeyNotFound, key)
}
