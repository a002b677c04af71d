package scanapp

import (
	"context"
	"fmt"
	"os"

	"github.com/dznutri/dznutri/internal/payload"
)

// openImage is a test seam around os.Open.
var openImage = func(path string) (*os.File, error) { return os.Open(path) }

// SubmitProduct collects the fields and photos for a new-product proposal
// and uploads them in one multipart request. Any of the three photos may be
// skipped; only the provided ones become parts of the upload.
func (a *App) SubmitProduct(ctx context.Context) error {
	form := &payload.SubmissionForm{}

	var err error
	if form.Barcode, err = getSimpleText(a.reader, "Barcode", a.out); err != nil {
		return err
	}
	if form.ProductName, err = getSimpleText(a.reader, "Product name", a.out); err != nil {
		return err
	}
	if form.Brand, err = getSimpleText(a.reader, "Brand", a.out); err != nil {
		return err
	}
	if form.TypeProduct, err = getSimpleText(a.reader, "Product type", a.out); err != nil {
		return err
	}

	var closers []*os.File
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	prompts := []struct {
		label string
		dst   **payload.ImageFile
	}{
		{"Front photo path (optional)", &form.FrontImage},
		{"Ingredients photo path (optional)", &form.IngredientsImage},
		{"Nutrition table photo path (optional)", &form.NutritionImage},
	}
	for _, p := range prompts {
		path, err := getSimpleText(a.reader, p.label, a.out)
		if err != nil {
			return err
		}
		if path == "" {
			continue
		}
		f, err := openImage(path)
		if err != nil {
			return fmt.Errorf("cannot open %s: %w", path, err)
		}
		closers = append(closers, f)
		*p.dst = &payload.ImageFile{Name: f.Name(), Reader: f}
	}

	if err := a.catalog.Submit(ctx, form); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Submission uploaded. It will appear once a moderator approves it.")
	return nil
}
