package chainmap

import (
	"strconv"
	"testing"
)

var sizes = []int{
	// 1 << 10,
	1 << 16,
	1 << 20,
}

func BenchmarkMapFind_Miss(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapFindMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapFindMiss[uint64], genKeys[uint64]))
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkChainMapFindMiss[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkChainMapFindMiss[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapFind_Hit(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkStdMapFindHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapFindHit[uint64], genKeys[uint64]))
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		b.Run("K=string", benchSimulateLoad(benchmarkChainMapFindHit[string], genKeys[string]))
		b.Run("K=uint64", benchSimulateLoad(benchmarkChainMapFindHit[uint64], genKeys[uint64]))
	})
}

func BenchmarkMapInsertErase(b *testing.B) {
	b.Run("variant=stdMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkStdMapInsertErase[uint64], genKeys[uint64]))
	})

	b.Run("variant=chainMap", func(b *testing.B) {
		b.Run("K=uint64", benchSimulateLoad(benchmarkChainMapInsertErase[uint64], genKeys[uint64]))
	})
}

func benchmarkStdMapFindMiss[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int)
	keys := genKeys(0, size)
	misses := genKeys(-size, 0)

	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[misses[i%len(misses)]]
	}
}

func benchmarkChainMapFindMiss[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := New[K, int]()
	keys := genKeys(0, size)
	misses := genKeys(-size, 0)

	for i, k := range keys {
		m.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Contains(misses[i%len(misses)])
	}
}

func benchmarkStdMapFindHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := make(map[K]int)
	keys := genKeys(0, size)
	for i, k := range keys {
		m[k] = i
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m[keys[i%len(keys)]]
	}
}

func benchmarkChainMapFindHit[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	m := New[K, int]()
	keys := genKeys(0, size)
	for i, k := range keys {
		m.Insert(k, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = m.Get(keys[i%len(keys)])
	}
}

func benchmarkStdMapInsertErase[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, size)
	m := make(map[K]int)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		m[k] = i
		delete(m, k)
	}
}

func benchmarkChainMapInsertErase[K comparable](
	b *testing.B,
	size int,
	genKeys func(start, end int) []K,
) {
	keys := genKeys(0, size)
	m := New[K, int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		k := keys[i%len(keys)]
		m.Insert(k, i)
		m.Erase(k)
	}
}

func genKeys[K comparable](start, end int) []K {
	var k K
	switch any(k).(type) {
	case uint64:
		keys := make([]uint64, end-start)
		for i := range keys {
			keys[i] = uint64(start + i)
		}
		return unsafeConvertSlice[K](keys)
	case string:
		keys := make([]string, end-start)
		for i := range keys {
			keys[i] = strconv.Itoa(start + i)
		}
		return unsafeConvertSlice[K](keys)
	default:
		panic("not reached")
	}
}

func benchSimulateLoad[K comparable](
	benchFunc func(b *testing.B, size int, keysFunc func(start, end int) []K),
	keysFunc func(start, end int) []K,
) func(b *testing.B) {
	return func(b *testing.B) {
		for _, size := range sizes {
			b.Run("size="+strconv.Itoa(size), func(b *testing.B) {
				benchFunc(b, size, keysFunc)
			})
		}
	}
}
