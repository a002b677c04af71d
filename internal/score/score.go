// Package score maps backend-computed values to display categories. Every
// function here is pure: the same inputs always yield the same label and
// color, with no I/O, so list rendering, detail views and gauges stay
// consistent.
package score

// Category is a display bucket for the 0-100 custom score.
type Category struct {
	Label string
	Color string
}

// Categorize is total over the real line, partitioned at 75/50/25. A
// boundary value belongs to the higher category: Categorize(75) is
// "Excellent".
func Categorize(score float64) Category {
	switch {
	case score >= 75:
		return Category{Label: "Excellent", Color: "#22C55E"}
	case score >= 50:
		return Category{Label: "Bon", Color: "#84CC16"}
	case score >= 25:
		return Category{Label: "Médiocre", Color: "#F97316"}
	default:
		return Category{Label: "Mauvais", Color: "#EF4444"}
	}
}
