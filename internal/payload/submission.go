package payload

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
)

// ImageFile is one photo attached to a submission.
type ImageFile struct {
	Name   string
	Reader io.Reader
}

// SubmissionForm carries the fields of a new-product submission. The three
// image slots map to the named multipart parts the backend's OCR pipeline
// expects; nil slots produce no part at all.
type SubmissionForm struct {
	Barcode     string
	TypeProduct string
	ProductName string
	Brand       string

	FrontImage       *ImageFile
	IngredientsImage *ImageFile
	NutritionImage   *ImageFile
}

// Build renders the form as a multipart/form-data body and returns it with
// its content type (which embeds the boundary).
func (f *SubmissionForm) Build() (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	fields := map[string]string{
		"barcode":     f.Barcode,
		"typeProduct": f.TypeProduct,
		"productName": f.ProductName,
		"brand":       f.Brand,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, "", fmt.Errorf("failed to write field %s: %w", name, err)
		}
	}

	images := []struct {
		part string
		file *ImageFile
	}{
		{"image_front", f.FrontImage},
		{"image_ingredients", f.IngredientsImage},
		{"image_nutrition", f.NutritionImage},
	}
	for _, img := range images {
		if img.file == nil {
			continue
		}
		part, err := w.CreateFormFile(img.part, img.file.Name)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create part %s: %w", img.part, err)
		}
		if _, err := io.Copy(part, img.file.Reader); err != nil {
			return nil, "", fmt.Errorf("failed to copy image %s: %w", img.part, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}
