package reconcile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type row struct {
	ID   int64
	Name string
}

func rowKey(r row) int64 { return r.ID }

func TestList_ReplaceAndItems(t *testing.T) {
	l := NewList(rowKey)

	epoch := l.Begin()
	require.True(t, l.Replace(epoch, []row{{1, "a"}, {2, "b"}}))
	require.Equal(t, 2, l.Len())
	require.Equal(t, []row{{1, "a"}, {2, "b"}}, l.Items())
}

// A response from an older fetch must not overwrite the result of a newer
// one.
func TestList_StaleReplaceDropped(t *testing.T) {
	l := NewList(rowKey)

	stale := l.Begin()
	fresh := l.Begin()
	require.True(t, l.Replace(fresh, []row{{2, "fresh"}}))
	require.False(t, l.Replace(stale, []row{{1, "stale"}}))
	require.Equal(t, []row{{2, "fresh"}}, l.Items())
}

func TestList_InvalidateDropsInFlight(t *testing.T) {
	l := NewList(rowKey)
	epoch := l.Begin()
	require.True(t, l.Replace(epoch, []row{{1, "a"}}))

	epoch = l.Begin()
	l.Invalidate() // screen unmounted
	require.False(t, l.Replace(epoch, []row{{9, "late"}}))
	require.Equal(t, []row{{1, "a"}}, l.Items())
}

func TestList_RemoveIsIdempotent(t *testing.T) {
	l := NewList(rowKey)
	require.True(t, l.Replace(l.Begin(), []row{{1, "a"}, {42, "b"}, {3, "c"}}))

	require.True(t, l.Remove(42))
	require.Equal(t, 2, l.Len())
	require.False(t, l.Contains(42))

	// second removal of the same id changes nothing
	require.False(t, l.Remove(42))
	require.Equal(t, 2, l.Len())
	require.Equal(t, []row{{1, "a"}, {3, "c"}}, l.Items())
}

func TestList_FilterDoesNotMutate(t *testing.T) {
	l := NewList(rowKey)
	require.True(t, l.Replace(l.Begin(), []row{{1, "a"}, {2, "b"}, {3, "a"}}))

	got := l.Filter(func(r row) bool { return r.Name == "a" })
	require.Equal(t, []row{{1, "a"}, {3, "a"}}, got)
	require.Equal(t, 3, l.Len())

	// a different filter over the same snapshot, no refetch in between
	got = l.Filter(func(r row) bool { return r.Name == "b" })
	require.Equal(t, []row{{2, "b"}}, got)
}

func TestList_ItemsReturnsCopy(t *testing.T) {
	l := NewList(rowKey)
	require.True(t, l.Replace(l.Begin(), []row{{1, "a"}}))

	items := l.Items()
	items[0].Name = "mutated"
	require.Equal(t, "a", l.Items()[0].Name)
}
