package reconcile

import (
	"context"
	"sync"

	"github.com/dznutri/dznutri/internal/logging"
)

// Join resolves secondary data for a fetched collection: one lookup per
// distinct key, issued concurrently. A zero key is skipped. A failed lookup
// is logged and swallowed; its key is simply absent from the result, and the
// caller renders the item without the joined data.
func Join[T any, K comparable, V any](
	ctx context.Context,
	items []T,
	keyOf func(T) K,
	lookup func(ctx context.Context, key K) (V, error),
	logger logging.Logger,
) map[K]V {
	var zero K
	keys := make(map[K]struct{}, len(items))
	for _, item := range items {
		if k := keyOf(item); k != zero {
			keys[k] = struct{}{}
		}
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[K]V, len(keys))
	)
	for k := range keys {
		wg.Add(1)
		go func(k K) {
			defer wg.Done()
			v, err := lookup(ctx, k)
			if err != nil {
				logger.Warn(ctx, "join lookup failed", "key", k, "error", err)
				return
			}
			mu.Lock()
			results[k] = v
			mu.Unlock()
		}(k)
	}
	wg.Wait()
	return results
}
