package report

import "strings"

// Parse converts a free-text damage report into a structured Report. It is
// total: anything that cannot be located degrades to Missing, an empty
// vehicle map or an empty damage list, and the raw text is always retained.
func Parse(raw string) Report {
	r := Report{
		Vehicle: map[string]string{},
		Damages: []Damage{},
		RawText: raw,
	}

	if block, ok := vehicleSection(raw); ok {
		r.Vehicle["make"] = extractValue(block, "make", "manufacturer")
		r.Vehicle["model"] = extractValue(block, "model")
		r.Vehicle["year"] = extractValue(block, "year")
		r.Vehicle["plate"] = extractValue(block, "license plate", "plate")
	}

	if block, ok := damageSection(raw); ok {
		r.Damages = parseDamageLines(block)
	}

	r.TotalCost = extractValue(raw, "total estimated repair cost", "total cost")
	r.RepairTime = extractValue(raw, "estimated repair timeline", "repair time")
	r.SafetyStatus = safetyStatus(raw)
	return r
}

// safetyStatus is a binary verdict: an affirmative phrase anywhere in the
// text means safe, anything else (including silence) means unsafe.
func safetyStatus(text string) string {
	lower := strings.ToLower(text)
	if strings.Contains(lower, "safe to drive: yes") || strings.Contains(lower, "safe: yes") {
		return StatusSafe
	}
	return StatusUnsafe
}
