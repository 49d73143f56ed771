package report

import "strings"

// extractValue finds the first "Label: value" occurrence for any of the given
// labels and returns the value trimmed, capturing up to end of line. Labels
// are matched case-insensitively and tried in order, so an earlier synonym
// wins over a later one regardless of position in the text. Returns Missing
// when no label matches.
func extractValue(text string, labels ...string) string {
	lines := strings.Split(text, "\n")
	for _, label := range labels {
		needle := strings.ToLower(strings.TrimSpace(label)) + ":"
		for _, line := range lines {
			if i := indexFold(line, needle); i >= 0 {
				return strings.TrimSpace(line[i+len(needle):])
			}
		}
	}
	return Missing
}

// indexFold is a case-insensitive strings.Index. It folds equal-length
// windows of s against needle in place, so the returned offset is always
// valid in s regardless of runes whose case forms differ in byte length.
func indexFold(s, needle string) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}
