package chainmap

import "fmt"

type cursorState uint8

const (
	cursorEnd cursorState = iota
	cursorEntry
)

// Cursor is a forward-only position in a Map: either at a live entry or at
// the end. It holds indexes into the table rather than references, and it
// remembers the table epoch it was taken at.
//
// Any rehash (an Insert that grows the table, an Erase that shrinks it)
// and Clear invalidate every outstanding cursor, and erasing the entry a
// cursor points at invalidates that cursor. Using an invalidated cursor
// panics with ErrCursorInvalidated; Valid reports it without panicking.
// Inserts and erases that don't resize the table leave other cursors alone.
type Cursor[K comparable, V any] struct {
	t      *table[K, V]
	state  cursorState
	bucket int
	idx    int32
	gen    uint32
	epoch  uint32
}

func (t *table[K, V]) cursorAt(b int, idx int32) Cursor[K, V] {
	if idx == nilIndex {
		return t.end()
	}

	return Cursor[K, V]{
		t:      t,
		state:  cursorEntry,
		bucket: b,
		idx:    idx,
		gen:    t.entries.at(idx).gen,
		epoch:  t.epoch,
	}
}

func (t *table[K, V]) begin() Cursor[K, V] {
	if t.size == 0 {
		return t.end()
	}

	return t.cursorAt(t.firstFrom(0))
}

func (t *table[K, V]) end() Cursor[K, V] {
	return Cursor[K, V]{t: t, state: cursorEnd, idx: nilIndex, epoch: t.epoch}
}

func (c Cursor[K, V]) IsEnd() bool {
	return c.state == cursorEnd
}

// Valid reports whether the cursor can still be used.
func (c Cursor[K, V]) Valid() bool {
	return c.t != nil && c.t.epoch == c.epoch && (c.state == cursorEnd || c.live())
}

func (c Cursor[K, V]) live() bool {
	e := c.t.entries.at(c.idx)
	return e.live && e.gen == c.gen
}

func (c Cursor[K, V]) check() {
	if c.t == nil {
		panic(fmt.Errorf("%w: zero cursor", ErrCursorInvalidated))
	}

	if c.t.epoch != c.epoch {
		panic(fmt.Errorf("%w: table was rehashed or cleared", ErrCursorInvalidated))
	}

	if c.state == cursorEntry && !c.live() {
		panic(fmt.Errorf("%w: entry was erased", ErrCursorInvalidated))
	}
}

func (c Cursor[K, V]) entry() *entry[K, V] {
	c.check()

	if c.state == cursorEnd {
		panic(fmt.Errorf("%w: dereferenced", ErrCursorAtEnd))
	}

	return c.t.entries.at(c.idx)
}

func (c Cursor[K, V]) Key() K {
	return c.entry().key
}

func (c Cursor[K, V]) Value() V {
	return c.entry().value
}

// ValuePtr returns a pointer to the value, which stays usable until the
// entry is erased or the map is cleared.
func (c Cursor[K, V]) ValuePtr() *V {
	return &c.entry().value
}

func (c Cursor[K, V]) SetValue(v V) {
	c.entry().value = v
}

// Next moves to the following entry of the chain, then to the head of the
// next non-empty bucket, then to the end.
func (c *Cursor[K, V]) Next() {
	c.check()

	if c.state == cursorEnd {
		panic(fmt.Errorf("%w: advanced past end", ErrCursorAtEnd))
	}

	if nxt := c.t.next[c.idx]; nxt != nilIndex {
		c.idx = nxt
		c.gen = c.t.entries.at(nxt).gen
		return
	}

	b, idx := c.t.firstFrom(c.bucket + 1)
	if idx == nilIndex {
		c.state = cursorEnd
		c.bucket = 0
		c.idx = nilIndex
		c.gen = 0
		return
	}

	c.bucket = b
	c.idx = idx
	c.gen = c.t.entries.at(idx).gen
}

// Equal reports whether both cursors are at the same position of the same
// map. Cursors of different maps are never equal, end cursors included.
func (c Cursor[K, V]) Equal(other Cursor[K, V]) bool {
	if c.t != other.t || c.state != other.state {
		return false
	}

	return c.state == cursorEnd || (c.idx == other.idx && c.gen == other.gen)
}

// ConstCursor is the read-only flavour of Cursor handed out by View.
type ConstCursor[K comparable, V any] struct {
	c Cursor[K, V]
}

func (c ConstCursor[K, V]) IsEnd() bool { return c.c.IsEnd() }

func (c ConstCursor[K, V]) Valid() bool { return c.c.Valid() }

func (c ConstCursor[K, V]) Key() K { return c.c.Key() }

func (c ConstCursor[K, V]) Value() V { return c.c.Value() }

func (c *ConstCursor[K, V]) Next() { c.c.Next() }

func (c ConstCursor[K, V]) Equal(other ConstCursor[K, V]) bool {
	return c.c.Equal(other.c)
}
