package services

import (
	"context"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/logging"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/reconcile"
)

// ReportView is a report joined with its product, when the product lookup
// succeeded. Product stays nil for reports whose barcode could not be
// resolved; the triage screen renders those without product details.
type ReportView struct {
	models.Report
	Product *models.Product
}

// Reports drives the admin report-triage screen: one fetch joins each
// distinct barcode to its product, then the type tabs filter the joined
// view locally.
type Reports struct {
	client api.Client
	logger logging.Logger
	list   *reconcile.List[ReportView]
}

func NewReports(client api.Client, logger logging.Logger) *Reports {
	return &Reports{
		client: client,
		logger: logger,
		list:   reconcile.NewList(func(v ReportView) int64 { return v.ID }),
	}
}

// Refresh fetches the report list and resolves product data for every
// distinct barcode in it, one concurrent lookup per barcode. A failed
// lookup leaves that report's Product nil; the list itself still loads.
func (r *Reports) Refresh(ctx context.Context) ([]ReportView, error) {
	epoch := r.list.Begin()
	reports, err := r.client.Reports(ctx)
	if err != nil {
		return nil, err
	}

	products := reconcile.Join(ctx, reports,
		func(rep models.Report) string { return rep.Barcode },
		func(ctx context.Context, barcode string) (*models.Product, error) {
			res, err := r.client.Product(ctx, barcode)
			if err != nil {
				return nil, err
			}
			return res.Product, nil
		},
		r.logger)

	views := make([]ReportView, len(reports))
	for i, rep := range reports {
		views[i] = ReportView{Report: rep, Product: products[rep.Barcode]}
	}
	r.list.Replace(epoch, views)
	return r.list.Items(), nil
}

// Tab returns the reports of one type from the already-loaded view. No
// network call: switching tabs re-filters the same snapshot.
func (r *Reports) Tab(t models.ReportType) []ReportView {
	return r.list.Filter(func(v ReportView) bool { return v.Type == t })
}

// All returns the unfiltered loaded view.
func (r *Reports) All() []ReportView {
	return r.list.Items()
}

func (r *Reports) Invalidate() {
	r.list.Invalidate()
}

// SaveProduct submits a product correction made during triage. On success
// the joined view is stale by definition (the backend rescored the
// product), so the loaded list is refetched before returning.
func (r *Reports) SaveProduct(ctx context.Context, barcode string, edit *payload.ProductEdit) error {
	if err := r.client.UpdateProduct(ctx, barcode, edit); err != nil {
		return err
	}
	if _, err := r.Refresh(ctx); err != nil {
		// the edit itself succeeded; the stale view is the refetch's problem
		r.logger.Warn(ctx, "failed to refresh reports after product edit", "barcode", barcode, "error", err)
	}
	return nil
}
