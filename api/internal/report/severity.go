package report

import "strings"

var severityLabels = map[string]string{
	"minor":          SeverityMinor,
	"moderate":       SeverityModerate,
	"severe":         SeveritySevere,
	SeverityMinor:    SeverityMinor,
	SeverityModerate: SeverityModerate,
	SeveritySevere:   SeveritySevere,
}

// NormalizeSeverity maps an English or Persian severity token to the
// canonical Persian label. Unknown tokens come back unchanged so that an
// off-template report still renders something.
func NormalizeSeverity(token string) string {
	if label, ok := severityLabels[strings.ToLower(token)]; ok {
		return label
	}
	return token
}

var costBands = map[string]string{
	"minor":    "1-2 میلیون تومان",
	"moderate": "3-5 میلیون تومان",
	"severe":   "6-10 میلیون تومان",
}

// EstimateCost returns the fixed cost band for a severity token. Only the
// English tokens are keyed; Persian tokens are not translated back first, so
// a damage line written with a Persian severity gets Missing. Callers that
// want a band must pass the English token.
func EstimateCost(token string) string {
	if band, ok := costBands[strings.ToLower(token)]; ok {
		return band
	}
	return Missing
}
