package chainmap

const (
	chunkShift = 6
	chunkSize  = 1 << chunkShift
	chunkMask  = chunkSize - 1
)

type entry[K comparable, V any] struct {
	key   K
	value V

	// Bumped every time the slot is released, so a cursor taken before
	// the release can tell the entry it pointed at is gone.
	gen  uint32
	live bool
}

// arena owns every entry of a table. Entries live in fixed-size chunks
// which are never reallocated, so the address of a value doesn't change
// while its entry is alive, rehashes included.
type arena[K comparable, V any] struct {
	chunks [][]entry[K, V]
	used   int32
	free   []int32
}

func (a *arena[K, V]) alloc(key K, value V) int32 {
	var idx int32

	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		idx = a.used
		if int(idx>>chunkShift) == len(a.chunks) {
			a.chunks = append(a.chunks, make([]entry[K, V], chunkSize))
		}

		a.used++
	}

	e := a.at(idx)
	e.key = key
	e.value = value
	e.live = true

	return idx
}

func (a *arena[K, V]) at(idx int32) *entry[K, V] {
	return &a.chunks[idx>>chunkShift][idx&chunkMask]
}

func (a *arena[K, V]) release(idx int32) {
	var (
		e     = a.at(idx)
		zeroK K
		zeroV V
	)

	e.key = zeroK
	e.value = zeroV
	e.live = false
	e.gen++

	a.free = append(a.free, idx)
}

// slots returns the high-water mark of allocated slots.
func (a *arena[K, V]) slots() int {
	return int(a.used)
}
