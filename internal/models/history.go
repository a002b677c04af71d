package models

// HistoryEntry is one scanned product in the per-user history list.
type HistoryEntry struct {
	ID          int64   `json:"id"`
	ProductName string  `json:"product_name"`
	Brand       string  `json:"brand"`
	ImageURL    string  `json:"image_url"`
	CustomScore float64 `json:"custom_score"`
	NutriScore  string  `json:"nutrition_grades"`
	ScannedAt   string  `json:"scanned_at"`
}

// ScoreDistribution buckets history scores by presentation category.
type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Bon       int `json:"bon"`
	Mediocre  int `json:"mediocre"`
	Mauvais   int `json:"mauvais"`
}

// HistoryStats is the summary returned by GET /api/history/stats.
type HistoryStats struct {
	TotalScans   int               `json:"total_scans"`
	AverageScore float64           `json:"average_score"`
	Distribution ScoreDistribution `json:"distribution"`
}
