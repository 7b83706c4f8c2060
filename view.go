package chainmap

import "iter"

// View is a read-only handle to a Map. It reflects later changes to the
// map, and its cursors are invalidated the same way.
type View[K comparable, V any] struct {
	m *Map[K, V]
}

func (m *Map[K, V]) View() View[K, V] {
	return View[K, V]{m: m}
}

func (v View[K, V]) Len() int { return v.m.Len() }

func (v View[K, V]) Empty() bool { return v.m.Empty() }

func (v View[K, V]) Contains(key K) bool { return v.m.Contains(key) }

func (v View[K, V]) Get(key K) (V, bool) { return v.m.Get(key) }

func (v View[K, V]) At(key K) (V, error) { return v.m.At(key) }

func (v View[K, V]) HashFunction() HashFunc[K] { return v.m.HashFunction() }

func (v View[K, V]) Find(key K) ConstCursor[K, V] {
	return ConstCursor[K, V]{c: v.m.Find(key)}
}

func (v View[K, V]) Begin() ConstCursor[K, V] {
	return ConstCursor[K, V]{c: v.m.Begin()}
}

func (v View[K, V]) End() ConstCursor[K, V] {
	return ConstCursor[K, V]{c: v.m.End()}
}

func (v View[K, V]) All() iter.Seq2[K, V] { return v.m.All() }
