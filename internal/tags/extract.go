// Package tags extracts #tag tokens from task text.
package tags

import (
	"regexp"
)

// tagPattern matches a '#' immediately followed by one or more ASCII
// letters, digits, or underscores. A bare '#' or one followed by
// punctuation is not a tag.
var tagPattern = regexp.MustCompile(`#([A-Za-z0-9_]+)`)

// Extract returns the distinct tags embedded in text, stripped of the
// leading '#', in first-seen order. It never returns nil.
func Extract(text string) []string {
	matches := tagPattern.FindAllStringSubmatch(text, -1)
	result := make([]string, 0, len(matches))
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		tag := m[1]
		if seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
