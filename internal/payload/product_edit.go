package payload

import "github.com/dznutri/dznutri/internal/models"

// NutrimentKeys are the fixed nutriment fields exposed by the edit and
// approval forms, matching the backend's scoring inputs.
var NutrimentKeys = []string{
	"energy-kcal_100g",
	"sugars_100g",
	"salt_100g",
	"saturated-fat_100g",
	"proteins_100g",
	"fiber_100g",
	"fruits-vegetables-nuts-estimate-from-ingredients_100g",
}

// ProductEdit is the JSON body of PUT /api/admin/product/{barcode} and of
// the submission approval endpoint. Saving it triggers a rescore on the
// backend, which is why callers must discard any cached product data
// afterwards.
type ProductEdit struct {
	ProductName     string             `json:"product_name"`
	Brand           string             `json:"brand"`
	IngredientsText string             `json:"ingredients_text"`
	NutriScore      string             `json:"nutriscore_grade"`
	NovaGroup       int                `json:"nova_group"`
	AdditivesTags   []string           `json:"additives_tags"`
	Nutriments      map[string]float64 `json:"nutriments"`
}

// EditFromProduct seeds an edit form from a fetched product: list fields
// become editable strings elsewhere, and only the fixed nutriment keys are
// carried over so stray upstream keys do not round-trip.
func EditFromProduct(p *models.Product) *ProductEdit {
	edit := &ProductEdit{
		ProductName:     p.ProductName,
		Brand:           p.Brand,
		IngredientsText: p.IngredientsText,
		NutriScore:      p.NutriScore,
		NovaGroup:       p.NovaGroup,
		AdditivesTags:   append([]string(nil), p.AdditivesTags...),
		Nutriments:      make(map[string]float64, len(NutrimentKeys)),
	}
	for _, k := range NutrimentKeys {
		edit.Nutriments[k] = p.Nutriments[k]
	}
	return edit
}
