package models

// Submission statuses. A submission starts pending and moves to exactly one
// of approved or rejected; neither terminal state transitions further.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Submission is a crowd-proposed new product awaiting moderation.
// The OCR and parsed fields are filled in by the backend pipeline after the
// image upload; the client never writes them.
type Submission struct {
	ID                  int64              `json:"id"`
	Barcode             string             `json:"barcode"`
	ProductName         string             `json:"productName"`
	Brand               string             `json:"brand"`
	TypeProduct         string             `json:"typeProduct"`
	Status              string             `json:"status"`
	ImageFrontURL       string             `json:"image_front_url"`
	ImageIngredientsURL string             `json:"image_ingredients_url"`
	ImageNutritionURL   string             `json:"image_nutrition_url"`
	OCRIngredientsText  string             `json:"ocr_ingredients_text"`
	ParsedNutriments    map[string]float64 `json:"parsed_nutriments"`
	FoundAdditives      []string           `json:"found_additives"`
	SubmittedAt         string             `json:"submitted_at"`
}

// SubmissionList is the wrapper returned by GET /api/admin/submissions.
type SubmissionList struct {
	Submissions []Submission `json:"submissions"`
	Count       int          `json:"count"`
}
