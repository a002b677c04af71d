package services

import (
	"context"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/reconcile"
)

// History is the scan-history screen's state. The local view is
// authoritative between fetches: deletes update it immediately instead of
// refetching the whole list.
type History struct {
	client api.Client
	logger logging.Logger
	list   *reconcile.List[models.HistoryEntry]
}

func NewHistory(client api.Client, logger logging.Logger) *History {
	return &History{
		client: client,
		logger: logger,
		list:   reconcile.NewList(func(e models.HistoryEntry) int64 { return e.ID }),
	}
}

// Refresh fetches the full history. A stale response (a newer Refresh
// started meanwhile) is dropped and the fresher view is returned instead.
func (h *History) Refresh(ctx context.Context) ([]models.HistoryEntry, error) {
	epoch := h.list.Begin()
	entries, err := h.client.History(ctx)
	if err != nil {
		return nil, err
	}
	h.list.Replace(epoch, entries)
	return h.list.Items(), nil
}

// Entries returns the current local view without a network call.
func (h *History) Entries() []models.HistoryEntry {
	return h.list.Items()
}

// Invalidate discards any in-flight Refresh. Called when the screen goes
// away.
func (h *History) Invalidate() {
	h.list.Invalidate()
}

// Delete removes entries by id: each server delete that succeeds drops the
// entry from the local view, with no refetch. An id already absent from the
// view is skipped without a network call. The first server failure stops
// the batch and is returned; the failed entry and the ones after it stay
// visible.
func (h *History) Delete(ctx context.Context, ids ...int64) error {
	for _, id := range ids {
		if !h.list.Contains(id) {
			continue
		}
		if err := h.client.DeleteHistory(ctx, id); err != nil {
			return err
		}
		h.list.Remove(id)
	}
	return nil
}

// Stats fetches the scan-count and score summary. Independent of Refresh;
// either may fail without affecting the other.
func (h *History) Stats(ctx context.Context) (*models.HistoryStats, error) {
	return h.client.HistoryStats(ctx)
}
