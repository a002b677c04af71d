package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dznutri/dznutri/internal/models"
)

func (c *HTTPClient) History(ctx context.Context) ([]models.HistoryEntry, error) {
	var entries []models.HistoryEntry
	if err := c.getJSON(ctx, "/api/history", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SaveHistory records a scan of the given product. The entry id is assigned
// server-side and picked up on the next History fetch.
func (c *HTTPClient) SaveHistory(ctx context.Context, productID int64) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/history/"+strconv.FormatInt(productID, 10), nil, nil)
}

func (c *HTTPClient) DeleteHistory(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/history/product/"+strconv.FormatInt(id, 10), "", nil, nil)
}

func (c *HTTPClient) HistoryStats(ctx context.Context) (*models.HistoryStats, error) {
	var stats models.HistoryStats
	if err := c.getJSON(ctx, "/api/history/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
