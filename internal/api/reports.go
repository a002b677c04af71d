package api

import (
	"context"
	"net/http"

	"github.com/dznutri/dznutri/internal/models"
)

func (c *HTTPClient) Reports(ctx context.Context) ([]models.Report, error) {
	var reports []models.Report
	if err := c.getJSON(ctx, "/api/admin/reports", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *HTTPClient) CreateReport(ctx context.Context, report *models.ReportCreate) error {
	return c.sendJSON(ctx, http.MethodPost, "/api/reports", report, nil)
}
