package chainmap

type Stats struct {
	Size         int
	Capacity     int
	LoadFactor   float64
	EmptyBuckets int
	LongestChain int
	Grows        int
	Shrinks      int
}

// Stats walks the whole bucket array, so it's O(capacity + size).
func (m *Map[K, V]) Stats() Stats {
	s := Stats{
		Size:       m.size,
		Capacity:   m.capacity(),
		LoadFactor: m.loadFactor(),
		Grows:      m.grows,
		Shrinks:    m.shrinks,
	}

	for b := range m.heads {
		n := m.chainLen(b)
		if n == 0 {
			s.EmptyBuckets++
		}

		s.LongestChain = max(s.LongestChain, n)
	}

	return s
}
