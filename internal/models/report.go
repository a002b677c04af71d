package models

// ReportType discriminates the heterogeneous report collection returned by
// the backend. The wire values are fixed by the backend enum.
type ReportType string

const (
	// ReportAuto is raised by the backend pipeline itself (failed OCR etc).
	ReportAuto ReportType = "automatiqueReport"
	// ReportUser is filed by a user from the app.
	ReportUser ReportType = "userreportapp"
	// ReportScoring flags a problem with the computed score.
	ReportScoring ReportType = "scoringReport"
)

// Valid reports whether t is one of the known wire values.
func (t ReportType) Valid() bool {
	switch t {
	case ReportAuto, ReportUser, ReportScoring:
		return true
	}
	return false
}

// Report is a flagged issue against an existing product.
type Report struct {
	ID          int64      `json:"id"`
	Type        ReportType `json:"type"`
	Barcode     string     `json:"barcode"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url"`
	Status      string     `json:"status"`
	CreatedAt   string     `json:"created_at"`
}

// ReportCreate is the body of POST /api/reports.
type ReportCreate struct {
	Barcode     string     `json:"barcode"`
	Type        ReportType `json:"type"`
	Description string     `json:"description"`
	ImageURL    string     `json:"image_url,omitempty"`
}
