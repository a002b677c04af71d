package adminapp

import (
	"context"
	"fmt"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/services"
)

var reportTabs = map[string]models.ReportType{
	"auto":    models.ReportAuto,
	"user":    models.ReportUser,
	"scoring": models.ReportScoring,
}

// ListReports loads the full report list with product data joined in.
func (a *App) ListReports(ctx context.Context) error {
	views, err := a.reports.Refresh(ctx)
	if err != nil {
		return err
	}
	if len(views) == 0 {
		fmt.Fprintln(a.out, "No open reports.")
		return nil
	}
	a.printReports(views)
	return nil
}

// FilterReports shows one tab of the already-loaded list. No refetch.
func (a *App) FilterReports(args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: tab <auto|user|scoring>")
		return nil
	}
	t, ok := reportTabs[args[0]]
	if !ok {
		return fmt.Errorf("unknown tab %q", args[0])
	}

	views := a.reports.Tab(t)
	if len(views) == 0 {
		fmt.Fprintf(a.out, "No %s reports loaded. Run 'reports' first.\n", args[0])
		return nil
	}
	a.printReports(views)
	return nil
}

func (a *App) printReports(views []services.ReportView) {
	for _, v := range views {
		name := "(product unavailable)"
		if v.Product != nil {
			name = v.Product.ProductName
		}
		fmt.Fprintf(a.out, "%4d  %-18s %-15s %-25s %s\n", v.ID, v.Type, v.Barcode, name, v.Description)
	}
}

// EditProduct corrects a product referenced by a loaded report and triggers
// backend rescoring. The form is prefilled from the joined product data.
func (a *App) EditProduct(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: editproduct <barcode>")
		return nil
	}
	barcode := args[0]

	edit := a.prefillEdit(barcode)

	name, err := getSimpleText(a.reader, fmt.Sprintf("Product name [%s] (leave empty to keep)", edit.ProductName), a.out)
	if err != nil {
		return err
	}
	if name != "" {
		edit.ProductName = name
	}

	ingredients, err := getSimpleText(a.reader, "Ingredients text (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if ingredients != "" {
		edit.IngredientsText = ingredients
	}

	additives, err := getSimpleText(a.reader, "Additives, comma separated (leave empty to keep)", a.out)
	if err != nil {
		return err
	}
	if additives != "" {
		edit.AdditivesTags = payload.SplitTags(additives)
	}

	for _, key := range payload.NutrimentKeys {
		raw, err := getSimpleText(a.reader, fmt.Sprintf("%s [%g] (leave empty to keep)", key, edit.Nutriments[key]), a.out)
		if err != nil {
			return err
		}
		if raw == "" {
			continue
		}
		// blank or garbage input falls back to zero rather than aborting
		// the whole form
		v, ok := payload.ParseNutrient(raw)
		if !ok {
			fmt.Fprintf(a.out, "Could not read %q, storing 0.\n", raw)
		}
		edit.Nutriments[key] = v
	}

	if err := a.reports.SaveProduct(ctx, barcode, edit); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Product saved and rescored.")
	return nil
}

// prefillEdit builds the edit form from the joined product of a loaded
// report, or an empty form when the barcode is not in the loaded view.
func (a *App) prefillEdit(barcode string) *payload.ProductEdit {
	for _, v := range a.reports.All() {
		if v.Barcode == barcode && v.Product != nil {
			return payload.EditFromProduct(v.Product)
		}
	}
	return &payload.ProductEdit{Nutriments: make(map[string]float64, len(payload.NutrimentKeys))}
}
