package payload

import "strings"

// SplitTags converts a comma-delimited tag string as edited in a form into
// a list: tokens are trimmed and empty tokens dropped. The inverse of
// JoinTags for any string of non-empty trimmed tokens.
func SplitTags(s string) []string {
	parts := strings.Split(s, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// JoinTags renders a tag list back into the single editable string,
// separated by ", ".
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}
