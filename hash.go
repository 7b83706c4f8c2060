package chainmap

import (
	"encoding/binary"
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// EqualFunc reports whether two keys are the same key. A custom EqualFunc
// must agree with the HashFunc in use: equal keys must hash equally.
type EqualFunc[K comparable] func(a, b K) bool

func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// XXHashString hashes string-like keys with xxhash. Unlike the default
// hash function it's unseeded, so bucket placement is reproducible
// between processes.
func XXHashString[K ~string]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(string(k))
	}
}

// XXHashInteger hashes the little-endian representation of an integer key
// with xxhash.
func XXHashInteger[K ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64]() HashFunc[K] {
	return func(k K) uint64 {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(k))

		return xxhash.Sum64(buf[:])
	}
}

func defaultEqual[K comparable](a, b K) bool {
	return a == b
}
