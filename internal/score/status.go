package score

import "github.com/dznutri/dznutri/internal/models"

// StatusBadge maps a moderation status to its display label and color, as
// shown on the dashboard cards.
func StatusBadge(status string) Category {
	switch status {
	case models.StatusPending:
		return Category{Label: "En attente", Color: "#EAB308"}
	case models.StatusApproved:
		return Category{Label: "Approuvé", Color: "#22C55E"}
	case models.StatusRejected:
		return Category{Label: "Rejeté", Color: "#EF4444"}
	default:
		return Category{Label: status, Color: "#6B7280"}
	}
}

// NutriScoreColor maps a nutri-score grade letter to its badge color.
// Unknown grades fall back to gray.
func NutriScoreColor(grade string) string {
	switch grade {
	case "a", "A":
		return "#22C55E"
	case "b", "B":
		return "#84CC16"
	case "c", "C":
		return "#F97316"
	case "d", "D", "e", "E":
		return "#EF4444"
	default:
		return "#6B7280"
	}
}
