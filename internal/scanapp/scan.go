package scanapp

import (
	"context"
	"errors"
	"fmt"

	"github.com/dznutri/dznutri/internal/api"
	"github.com/dznutri/dznutri/internal/models"
	"github.com/dznutri/dznutri/internal/payload"
	"github.com/dznutri/dznutri/internal/score"
)

// Scan resolves a barcode (given as an argument or prompted) and prints the
// product with its score category. An unknown barcode is not an error from
// the user's point of view; they are pointed at the submit flow instead.
func (a *App) Scan(ctx context.Context, args []string) error {
	barcode, err := a.barcodeArg(args)
	if err != nil {
		return err
	}

	res, err := a.catalog.Scan(ctx, barcode)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintf(a.out, "Product %s is not in the database yet. Use 'submit' to propose it.\n", barcode)
			return nil
		}
		return err
	}

	a.printProduct(res.Product)
	return nil
}

func (a *App) barcodeArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	return getSimpleText(a.reader, "Enter barcode", a.out)
}

func (a *App) printProduct(p *models.Product) {
	if p == nil {
		return
	}
	cat := score.Categorize(p.CustomScore)
	fmt.Fprintf(a.out, "%s (%s)\n", p.ProductName, p.Brand)
	fmt.Fprintf(a.out, "  Score: %.0f/100  %s\n", p.CustomScore, cat.Label)
	if p.NutriScore != "" {
		fmt.Fprintf(a.out, "  Nutri-score: %s  NOVA: %d\n", p.NutriScore, p.NovaGroup)
	}
	if len(p.AdditivesTags) > 0 {
		fmt.Fprintf(a.out, "  Additives: %s\n", payload.JoinTags(p.AdditivesTags))
	}
	if p.IsVerified {
		fmt.Fprintln(a.out, "  Verified by a moderator")
	}
}
