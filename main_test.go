package chainmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

//go:nocheckptr
func unsafeConvertSlice[Dest any, Src any](s []Src) []Dest {
	return unsafe.Slice((*Dest)(unsafe.Pointer(unsafe.SliceData(s))), len(s))
}

// requirePanicsIs runs f and requires it to panic with an error matching target.
func requirePanicsIs(t *testing.T, target error, f func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")

		err, ok := r.(error)
		require.Truef(t, ok, "panic value %v is not an error", r)
		require.ErrorIs(t, err, target)
	}()

	f()
}

// requireBalanced checks the load factor band. Maps emptied by Erase keep
// their capacity, so the lower bound is skipped for them.
func requireBalanced[K comparable, V any](t *testing.T, m *Map[K, V], drained bool) {
	t.Helper()

	var (
		policy   = m.Policy()
		capacity = m.Capacity()
		load     = m.LoadFactor()
	)

	require.LessOrEqual(t, load, policy.UpscaleThreshold, "size=%d capacity=%d", m.Len(), capacity)

	if m.Len() == 0 || capacity == policy.floor() || drained {
		return
	}

	require.GreaterOrEqual(t, load, policy.DownscaleThreshold, "size=%d capacity=%d", m.Len(), capacity)
}
