package chainmap

import (
	"encoding/binary"
	"hash/maphash"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestMakeDefaultHash(t *testing.T) {
	v := "foo"
	s := maphash.MakeSeed()

	h1 := MakeDefaultHashFunc[string](s)(v)
	h2 := maphash.Comparable(s, v)

	require.Equal(t, h2, h1)
}

func TestXXHashString(t *testing.T) {
	type name string

	h := XXHashString[name]()

	require.Equal(t, xxhash.Sum64String("foo"), h("foo"))
	require.Equal(t, h("bar"), h("bar"))
	require.NotEqual(t, h("foo"), h("bar"))
}

func TestXXHashInteger(t *testing.T) {
	h := XXHashInteger[int64]()

	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], 42)

	require.Equal(t, xxhash.Sum64(buf[:]), h(42))
	require.NotEqual(t, h(1), h(2))

	// Negative keys hash their two's complement bytes.
	binary.LittleEndian.PutUint64(buf[:], ^uint64(0))
	require.Equal(t, xxhash.Sum64(buf[:]), h(-1))
}

func TestDefaultEqual(t *testing.T) {
	require.True(t, defaultEqual(1, 1))
	require.False(t, defaultEqual("a", "b"))
}
