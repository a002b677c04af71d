package payload

import (
	"strconv"
	"strings"
)

// ParseNutrient converts free-form numeric input into a nutrient value.
// Blank or unparseable input yields 0 rather than an error; existing stored
// data relies on this lenient behavior, so callers that want to warn the
// user should check the ok result instead of tightening the parse.
// A decimal comma is accepted.
func ParseNutrient(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
