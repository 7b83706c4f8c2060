package chainmap

// nilIndex terminates a chain and marks an empty bucket.
const nilIndex int32 = -1

// A bucket is the chain starting at heads[b] and following next[] links.
// Entries are pushed at the front, so a chain lists its entries
// most-recent-first until a rehash reshuffles it.

func (t *table[K, V]) pushFront(b int, idx int32) {
	for int(idx) >= len(t.next) {
		t.next = append(t.next, nilIndex)
	}

	t.next[idx] = t.heads[b]
	t.heads[b] = idx
}

// lookup scans bucket b for key and returns the entry index together with
// the index of its predecessor in the chain (nilIndex for the head).
func (t *table[K, V]) lookup(b int, key K) (prev, idx int32) {
	prev = nilIndex
	for idx = t.heads[b]; idx != nilIndex; idx = t.next[idx] {
		if t.equalFunc(t.entries.at(idx).key, key) {
			return prev, idx
		}

		prev = idx
	}

	return nilIndex, nilIndex
}

func (t *table[K, V]) unlink(b int, prev, idx int32) {
	if prev == nilIndex {
		t.heads[b] = t.next[idx]
	} else {
		t.next[prev] = t.next[idx]
	}

	t.next[idx] = nilIndex
}

func (t *table[K, V]) chainLen(b int) int {
	n := 0
	for idx := t.heads[b]; idx != nilIndex; idx = t.next[idx] {
		n++
	}

	return n
}

// firstFrom returns the first non-empty bucket at or after b and its head.
// When there is none, it returns (len(heads), nilIndex).
func (t *table[K, V]) firstFrom(b int) (int, int32) {
	for ; b < len(t.heads); b++ {
		if t.heads[b] != nilIndex {
			return b, t.heads[b]
		}
	}

	return len(t.heads), nilIndex
}
