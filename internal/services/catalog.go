package services

import (
	"context"
	"fmt"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

// Catalog resolves barcodes and files user feedback about products.
type Catalog struct {
	client api.Client
	logger logging.Logger
}

func NewCatalog(client api.Client, logger logging.Logger) *Catalog {
	return &Catalog{client: client, logger: logger}
}

// Scan resolves a barcode and records the scan in the user's history. The
// history write is best-effort: its failure is logged and the product is
// still returned, because the user is looking at the score, not the history
// list.
func (c *Catalog) Scan(ctx context.Context, barcode string) (*models.ProductResult, error) {
	res, err := c.client.Product(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if res.Product != nil && res.Product.ID != 0 {
		if err := c.client.SaveHistory(ctx, res.Product.ID); err != nil {
			c.logger.Warn(ctx, "failed to record scan in history", "barcode", barcode, "error", err)
		}
	}
	return res, nil
}

// Report files a user report against a product.
func (c *Catalog) Report(ctx context.Context, report *models.ReportCreate) error {
	if !report.Type.Valid() {
		return fmt.Errorf("unknown report type %q", report.Type)
	}
	return c.client.CreateReport(ctx, report)
}

// Submit uploads a new-product proposal.
func (c *Catalog) Submit(ctx context.Context, form *payload.SubmissionForm) error {
	if form.Barcode == "" {
		return fmt.Errorf("submission requires a barcode")
	}
	return c.client.CreateSubmission(ctx, form)
}
