package vision

import "strings"

// The assessor prompts pin the report template the parser expects: numbered
// "###" sections, "Label: value" fields and "- part (type) - severity"
// damage lines.
const (
	promptEnglish = `As a certified automotive damage assessor, analyze the attached vehicle photo and provide a detailed report with these numbered sections:
### 1. Vehicle Identification
Make: ..., Model: ..., Year: ..., License Plate: ... (one field per line, "---" when unreadable)
### 2. Damage Assessment
One line per damaged part, formatted exactly as "- <part> (<damage type>) - <severity>" where severity is one of: minor, moderate, severe.
### 3. Repair Recommendations
### 4. Cost Estimation
Total Estimated Repair Cost: ...
Estimated Repair Timeline: ...
### 5. Safety Analysis
Finish with the line "Safe to drive: yes" or "Safe to drive: no". Use professional terminology.`

	promptPersian = `As a certified automotive damage assessor, analyze the attached vehicle photo and provide a detailed report in Persian, keeping the section headers and field labels in English exactly as shown:
### 1. Vehicle Identification
Make: ..., Model: ..., Year: ..., License Plate: ... (one field per line, "---" when unreadable)
### 2. Damage Assessment
One line per damaged part, formatted exactly as "- <part> (<damage type>) - <severity>" where severity is one of: جزئی, متوسط, شدید.
### 3. Repair Recommendations
### 4. Cost Estimation
Total Estimated Repair Cost: ...
Estimated Repair Timeline: ...
### 5. Safety Analysis
Finish with the line "Safe to drive: yes" or "Safe to drive: no". Write the prose in Persian, use professional terminology.`
)

// Prompt returns the assessor prompt for the requested report language.
// Anything other than "persian" selects the English variant.
func Prompt(language string) string {
	if strings.EqualFold(strings.TrimSpace(language), "persian") {
		return promptPersian
	}
	return promptEnglish
}
