/*
Package chainmap provides a generic hash map with separate chaining and
dynamic resizing.

Entries sharing a bucket are kept in a chain, and the bucket array doubles
when the load factor goes above 0.75 and halves when an erase takes it
below 0.25. Both thresholds and the starting capacity are configurable
through Policy.

Basic usage:

	m := chainmap.New[string, int]()

	m.Insert("a", 1)
	*m.Index("b") += 2

	if _, err := m.At("c"); errors.Is(err, chainmap.ErrKeyNotFound) {
		// ...
	}

	for c := m.Begin(); !c.IsEnd(); c.Next() {
		fmt.Println(c.Key(), c.Value())
	}

Cursors are positions, not references. A rehash or Clear invalidates them,
and using an invalidated cursor panics with ErrCursorInvalidated.

A Map is not safe for concurrent use.
*/
package chainmap
