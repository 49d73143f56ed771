package report

import (
	"strings"
	"unicode"
)

// Section headers as emitted by the vision engines, compared after
// lowercasing and stripping all whitespace so "###  1.  Vehicle
// Identification" still matches.
const (
	vehicleHeader = "###1.vehicleidentification"
	damageHeader  = "###2.damageassessment"
)

func normalizeHeader(line string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(line) {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// section returns the block of lines between the header matching want and the
// next line starting with "###", or end of text when no further header
// exists. The second result reports whether the header was present.
func section(text, want string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if normalizeHeader(line) != want {
			continue
		}
		j := i + 1
		for j < len(lines) && !strings.HasPrefix(lines[j], "###") {
			j++
		}
		return strings.Join(lines[i+1:j], "\n"), true
	}
	return "", false
}

func vehicleSection(text string) (string, bool) {
	return section(text, vehicleHeader)
}

func damageSection(text string) (string, bool) {
	return section(text, damageHeader)
}
