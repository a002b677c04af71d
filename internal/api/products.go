package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
)

// Product resolves a barcode. A product unknown to both the local database
// and the upstream food database comes back as ErrNotFound.
func (c *HTTPClient) Product(ctx context.Context, barcode string) (*models.ProductResult, error) {
	var res models.ProductResult
	if err := c.getJSON(ctx, "/api/product/"+url.PathEscape(barcode), &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProduct submits an admin edit. The backend rescored copy is not
// returned; callers refetch.
func (c *HTTPClient) UpdateProduct(ctx context.Context, barcode string, edit *payload.ProductEdit) error {
	return c.sendJSON(ctx, http.MethodPut, "/api/admin/product/"+url.PathEscape(barcode), edit, nil)
}

// CreateSubmission uploads a new-product proposal as multipart form data.
func (c *HTTPClient) CreateSubmission(ctx context.Context, form *payload.SubmissionForm) error {
	body, contentType, err := form.Build()
	if err != nil {
		return fmt.Errorf("failed to build submission form: %w", err)
	}
	return c.do(ctx, http.MethodPost, "/api/submission", contentType, body, nil)
}
