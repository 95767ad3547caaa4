package wm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testWindows(ids ...uint64) []Window {
	windows := make([]Window, 0, len(ids))
	for _, id := range ids {
		windows = append(windows, Window{ID: id, App: "term", Title: "shell"})
	}
	return windows
}

func fill(r *Registry, ids ...uint64) {
	for _, w := range testWindows(ids...) {
		r.Add(w)
	}
}

func order(t *testing.T, r *Registry) []uint64 {
	t.Helper()
	ids := make([]uint64, 0, r.Count())
	for i := 0; i < r.Count(); i++ {
		id, err := r.IDAt(i)
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return ids
}

func TestRegistryAddRemoveCount(t *testing.T) {
	r := NewRegistry()
	require.Equal(t, 0, r.Count())

	fill(r, 1, 2, 3)
	require.Equal(t, 3, r.Count())

	require.True(t, r.Remove(2))
	require.Equal(t, 2, r.Count())
	require.Equal(t, []uint64{1, 3}, order(t, r))

	require.False(t, r.Remove(2))
	require.Equal(t, 2, r.Count())
}

func TestRegistryAddReplacesInPlace(t *testing.T) {
	r := NewRegistry()
	fill(r, 1, 2, 3)

	require.True(t, r.Add(Window{ID: 2, App: "editor", Title: "main.go"}))
	require.Equal(t, 3, r.Count())
	require.Equal(t, 1, r.IndexOf(2))

	w, ok := r.Window(2)
	require.True(t, ok)
	require.Equal(t, "editor", w.App)
}

func TestRegistryDuplicatePolicyReject(t *testing.T) {
	r := NewRegistry(WithDuplicatePolicy(Reject))
	fill(r, 1, 2)

	require.False(t, r.Add(Window{ID: 1, App: "editor"}))
	require.Equal(t, 2, r.Count())

	w, _ := r.Window(1)
	require.Equal(t, "term", w.App)
}

func TestRegistryDuplicatePolicyMoveToEnd(t *testing.T) {
	r := NewRegistry(WithDuplicatePolicy(MoveToEnd))
	fill(r, 1, 2, 3)

	require.True(t, r.Add(Window{ID: 1, App: "editor"}))
	require.Equal(t, []uint64{2, 3, 1}, order(t, r))
}

func TestRegistryIndexRoundTrip(t *testing.T) {
	r := NewRegistry()
	fill(r, 10, 20, 30, 40)

	for i := 0; i < r.Count(); i++ {
		id, err := r.IDAt(i)
		require.NoError(t, err)
		require.Equal(t, i, r.IndexOf(id))
	}

	_, err := r.IDAt(4)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = r.IDAt(-1)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.Equal(t, -1, r.IndexOf(99))
}

func TestRegistrySwap(t *testing.T) {
	r := NewRegistry()
	fill(r, 1, 2, 3)

	require.NoError(t, r.Swap(0, 2))
	require.Equal(t, []uint64{3, 2, 1}, order(t, r))

	// Swapping again restores the original order.
	require.NoError(t, r.Swap(0, 2))
	require.Equal(t, []uint64{1, 2, 3}, order(t, r))

	require.NoError(t, r.Swap(1, 1))
	require.Equal(t, []uint64{1, 2, 3}, order(t, r))

	require.ErrorIs(t, r.Swap(0, 3), ErrOutOfRange)
	require.ErrorIs(t, r.Swap(-1, 0), ErrOutOfRange)
}

func TestRegistryMoveToFront(t *testing.T) {
	r := NewRegistry()
	fill(r, 1, 2, 3, 4)

	require.True(t, r.MoveToFront(3))
	require.Equal(t, []uint64{3, 1, 2, 4}, order(t, r))
	require.Equal(t, 0, r.IndexOf(3))

	// Already at front.
	require.True(t, r.MoveToFront(3))
	require.Equal(t, []uint64{3, 1, 2, 4}, order(t, r))

	require.False(t, r.MoveToFront(99))
}

func TestRegistryTilingIDsSkipsFloating(t *testing.T) {
	r := NewRegistry()
	fill(r, 1, 2, 3)
	require.True(t, r.SetFloating(2, true))

	require.Equal(t, []uint64{1, 3}, r.TilingIDs())

	require.True(t, r.SetFloating(2, false))
	require.Equal(t, []uint64{1, 2, 3}, r.TilingIDs())
}

func TestRegistryWindowsIsACopy(t *testing.T) {
	r := NewRegistry()
	fill(r, 1, 2)

	snapshot := r.Windows()
	snapshot[0].ID = 99

	id, err := r.IDAt(0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)
}

func TestRegistryDump(t *testing.T) {
	r := NewRegistry()
	fill(r, 1)

	dump := r.Dump()
	require.Contains(t, dump, "term")
	require.Equal(t, dump, DumpWindows(r.Windows()))
}
