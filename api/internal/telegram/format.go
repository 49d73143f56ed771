package telegram

import (
	"fmt"
	"strings"

	"car-damage-analyzer/api/internal/report"
)

// FormatReport renders a parsed report as a plain-text chat reply. When the
// report carries no structure at all, the raw engine text is sent as is.
func FormatReport(r report.Report) string {
	if len(r.Vehicle) == 0 && len(r.Damages) == 0 {
		return r.RawText
	}

	var b strings.Builder

	if len(r.Vehicle) > 0 {
		b.WriteString("Vehicle\n")
		for _, key := range []string{"make", "model", "year", "plate"} {
			if v, ok := r.Vehicle[key]; ok {
				fmt.Fprintf(&b, "  %s: %s\n", key, v)
			}
		}
	}

	if len(r.Damages) > 0 {
		b.WriteString("Damages\n")
		for _, d := range r.Damages {
			fmt.Fprintf(&b, "  - %s (%s): %s, %s, %s\n", d.Part, d.Type, d.Severity, d.Action, d.Cost)
		}
	}

	fmt.Fprintf(&b, "Total cost: %s\n", r.TotalCost)
	fmt.Fprintf(&b, "Repair time: %s\n", r.RepairTime)
	fmt.Fprintf(&b, "Safety: %s", r.SafetyStatus)

	return b.String()
}
