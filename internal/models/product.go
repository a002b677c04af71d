package models

// Product is a scored product record. custom_score is the backend-computed
// 0-100 quality score; nutri-score and NOVA are passed through from the
// upstream food database and never computed client-side.
type Product struct {
	ID              int64              `json:"id"`
	Barcode         string             `json:"barcode"`
	ProductName     string             `json:"product_name"`
	Brand           string             `json:"brand"`
	ImageURL        string             `json:"image_url"`
	IngredientsText string             `json:"ingredients_text"`
	Nutriments      map[string]float64 `json:"nutriments"`
	NutriScore      string             `json:"nutriscore_grade"`
	NovaGroup       int                `json:"nova_group"`
	EcoScoreGrade   string             `json:"ecoscore_grade"`
	AdditivesTags   []string           `json:"additives_tags"`
	CustomScore     float64            `json:"custom_score"`
	IsVerified      bool               `json:"is_verified"`
}

// ProductResult is the wrapper returned by GET /api/product/{barcode}.
// Source reports where the backend found the product ("local_db" or
// "openfoodfacts_saved").
type ProductResult struct {
	Source  string   `json:"source"`
	Product *Product `json:"product"`
}
