package report

import "strings"

// severityVocab is the closed set of tokens accepted at the end of a damage
// line, lowercase English plus Persian.
var severityVocab = map[string]bool{
	"minor":          true,
	"moderate":       true,
	"severe":         true,
	SeverityMinor:    true,
	SeverityModerate: true,
	SeveritySevere:   true,
}

// parseDamageLines scans a damage-assessment block for lines shaped
// "- <part> (<type>) - <severity>" and builds one record per match, in order
// of appearance. Lines of any other shape are skipped; the parser is strictly
// template driven.
func parseDamageLines(block string) []Damage {
	damages := []Damage{}
	for _, line := range strings.Split(block, "\n") {
		if d, ok := parseDamageLine(strings.TrimRight(line, "\r")); ok {
			damages = append(damages, d)
		}
	}
	return damages
}

func parseDamageLine(line string) (Damage, bool) {
	body, ok := strings.CutPrefix(line, "- ")
	if !ok {
		return Damage{}, false
	}
	part, rest, ok := strings.Cut(body, " (")
	if !ok {
		return Damage{}, false
	}
	damageType, rest, ok := strings.Cut(rest, ")")
	if !ok {
		return Damage{}, false
	}
	token, ok := strings.CutPrefix(rest, " - ")
	if !ok {
		return Damage{}, false
	}
	token = strings.TrimSpace(token)
	if !severityVocab[strings.ToLower(token)] {
		return Damage{}, false
	}
	return Damage{
		Part:     strings.TrimSpace(part),
		Type:     strings.TrimSpace(damageType),
		Severity: NormalizeSeverity(token),
		Action:   deriveAction(token),
		Cost:     EstimateCost(token),
	}, true
}

// deriveAction keys on the raw token, not the normalized label, so both
// "severe" and "شدید" map to replacement.
func deriveAction(token string) string {
	switch strings.ToLower(token) {
	case "severe", SeveritySevere:
		return ActionReplace
	}
	return ActionRepair
}
