// Package reconcile keeps locally-held list views consistent with server
// state. Every list-shaped screen (history, submissions, reports) follows
// the same cycle: fetch a collection, optionally join it with per-item
// lookups, then apply local mutations (remove, filter) without refetching.
// One generic implementation replaces the per-screen copies of that cycle.
package reconcile

import "sync"

// List is the reconciled local view of one server-fetched collection.
// Replace is guarded by an epoch ticket so a response that arrives after the
// view moved on (newer fetch started, screen left) is dropped instead of
// clobbering fresher state.
type List[T any] struct {
	keyOf func(T) int64

	mu    sync.Mutex
	epoch uint64
	items []T
}

// NewList builds an empty list. keyOf extracts the server id used by Remove
// and Contains.
func NewList[T any](keyOf func(T) int64) *List[T] {
	return &List[T]{keyOf: keyOf}
}

// Begin starts a fetch cycle and returns its ticket. Only a Replace carrying
// the most recent ticket is applied.
func (l *List[T]) Begin() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.epoch++
	return l.epoch
}

// Replace installs a fetched collection. It reports false, leaving the list
// untouched, when a newer cycle has started since epoch was issued.
func (l *List[T]) Replace(epoch uint64, items []T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if epoch != l.epoch {
		return false
	}
	l.items = items
	return true
}

// Invalidate discards any in-flight fetch. Used when the screen unmounts.
func (l *List[T]) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.epoch++
}

// Remove drops the item with the given key and reports whether it was
// present. Removing an absent key is a no-op, so a repeated optimistic
// removal cannot disturb the list.
func (l *List[T]) Remove(key int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, item := range l.items {
		if l.keyOf(item) == key {
			l.items = append(l.items[:i], l.items[i+1:]...)
			return true
		}
	}
	return false
}

func (l *List[T]) Contains(key int64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, item := range l.items {
		if l.keyOf(item) == key {
			return true
		}
	}
	return false
}

// Items returns a copy of the current view.
func (l *List[T]) Items() []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Filter returns the items satisfying keep, without refetching or mutating
// the underlying view. Tab switches use this.
func (l *List[T]) Filter(keep func(T) bool) []T {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.items)
}
