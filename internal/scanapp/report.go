package scanapp

import (
	"context"
	"fmt"

	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/termio"
)

var getMultiline = termio.GetMultiline

// FileReport files a user report against a product, with an optional image
// URL (photos uploaded from the app land on the CDN first).
func (a *App) FileReport(ctx context.Context) error {
	barcode, err := getSimpleText(a.reader, "Enter the product barcode", a.out)
	if err != nil {
		return err
	}

	description, err := getMultiline(a.reader, "Describe the problem", a.out)
	if err != nil {
		return err
	}

	imageURL, err := getSimpleText(a.reader, "Image URL (optional)", a.out)
	if err != nil {
		return err
	}

	report := &models.ReportCreate{
		Barcode:     barcode,
		Type:        models.ReportUser,
		Description: description,
		ImageURL:    imageURL,
	}
	if err := a.catalog.Report(ctx, report); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Report sent. Thank you!")
	return nil
}
