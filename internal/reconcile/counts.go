package reconcile

import (
	"context"
	"sync"

	"github.com/dznutri/dznutri/internal/logging"
)

// Counts fetches one count per status, in parallel. Each fetch fails
// independently: a failed status is logged and left out of the result so
// the dashboard keeps showing the counts that did load.
func Counts(
	ctx context.Context,
	statuses []string,
	count func(ctx context.Context, status string) (int, error),
	logger logging.Logger,
) map[string]int {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[string]int, len(statuses))
	)
	for _, status := range statuses {
		wg.Add(1)
		go func(status string) {
			defer wg.Done()
			n, err := count(ctx, status)
			if err != nil {
				logger.Warn(ctx, "count fetch failed", "status", status, "error", err)
				return
			}
			mu.Lock()
			results[status] = n
			mu.Unlock()
		}(status)
	}
	wg.Wait()
	return results
}
