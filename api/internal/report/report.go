package report

// Missing is the placeholder returned when a field cannot be located in the
// report text.
const Missing = "---"

// Canonical severity labels as they appear in the final report.
const (
	SeverityMinor    = "جزئی"
	SeverityModerate = "متوسط"
	SeveritySevere   = "شدید"
)

// Repair actions derived from severity.
const (
	ActionRepair  = "تعمیر"
	ActionReplace = "تعویض"
)

// Safety verdicts.
const (
	StatusSafe   = "ایمن"
	StatusUnsafe = "غیر ایمن"
)

// Damage is a single damaged-part record from the damage assessment section.
type Damage struct {
	Part     string `json:"part"`
	Type     string `json:"type"`
	Severity string `json:"severity"`
	Action   string `json:"action"`
	Cost     string `json:"cost"`
}

// Report is the structured form of a model-generated damage report. Fields
// that could not be located hold Missing; RawText always carries the original
// text.
type Report struct {
	Vehicle      map[string]string `json:"vehicle"`
	Damages      []Damage          `json:"damages"`
	TotalCost    string            `json:"total_cost"`
	RepairTime   string            `json:"repair_time"`
	SafetyStatus string            `json:"safety_status"`
	RawText      string            `json:"content"`
}
