package models

// HealthProfile is the per-user physical/dietary profile. DailyCalories and
// DailyProteins are computed by the server from the other fields; the client
// sends them as zero and replaces its copy wholesale with the server's
// response on every save.
type HealthProfile struct {
	Height              float64  `json:"height,omitempty"`
	Weight              float64  `json:"weight,omitempty"`
	BirthDate           string   `json:"birth_date,omitempty"`
	Gender              string   `json:"gender,omitempty"`
	ActivityLevel       string   `json:"activity_level,omitempty"`
	Allergies           []string `json:"allergies"`
	MedicalConditions   []string `json:"medical_conditions"`
	DietType            string   `json:"diet_type,omitempty"`
	DislikedIngredients []string `json:"disliked_ingredients"`
	DailyCalories       int      `json:"daily_calories,omitempty"`
	DailyProteins       int      `json:"daily_proteins,omitempty"`
}
