package report

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleReport = "### 1. Vehicle Identification\n" +
	"Make: Toyota\n" +
	"Model: Camry\n" +
	"Year: 2019\n" +
	"License Plate: ABC123\n" +
	"### 2. Damage Assessment\n" +
	"- Front Bumper (Cracked) - severe\n" +
	"- Hood (Dented) - minor\n" +
	"Total Estimated Repair Cost: 5000\n" +
	"Estimated Repair Timeline: 3 days\n" +
	"Safe to drive: yes"

func TestParseFullReport(t *testing.T) {
	r := Parse(sampleReport)

	require.Equal(t, map[string]string{
		"make":  "Toyota",
		"model": "Camry",
		"year":  "2019",
		"plate": "ABC123",
	}, r.Vehicle)

	require.Equal(t, []Damage{
		{Part: "Front Bumper", Type: "Cracked", Severity: SeveritySevere, Action: ActionReplace, Cost: "6-10 میلیون تومان"},
		{Part: "Hood", Type: "Dented", Severity: SeverityMinor, Action: ActionRepair, Cost: "1-2 میلیون تومان"},
	}, r.Damages)

	require.Equal(t, "5000", r.TotalCost)
	require.Equal(t, "3 days", r.RepairTime)
	require.Equal(t, StatusSafe, r.SafetyStatus)
	require.Equal(t, sampleReport, r.RawText)
}

func TestParsePlainProse(t *testing.T) {
	prose := "The photo is too blurry to tell anything about the car."
	r := Parse(prose)

	require.Empty(t, r.Vehicle)
	require.Empty(t, r.Damages)
	require.Equal(t, Missing, r.TotalCost)
	require.Equal(t, Missing, r.RepairTime)
	require.Equal(t, StatusUnsafe, r.SafetyStatus)
	require.Equal(t, prose, r.RawText)
}

func TestParseFailureNotice(t *testing.T) {
	r := Parse("Analysis failed. Please try again.")

	require.Empty(t, r.Vehicle)
	require.Empty(t, r.Damages)
	require.Equal(t, Missing, r.TotalCost)
	require.Equal(t, StatusUnsafe, r.SafetyStatus)
}

func TestParseMissingVehicleSection(t *testing.T) {
	r := Parse("### 2. Damage Assessment\n- Hood (Dented) - minor\nSafe: yes")

	require.Empty(t, r.Vehicle)
	require.Len(t, r.Damages, 1)
	require.Equal(t, StatusSafe, r.SafetyStatus)
}

func TestParseVehicleSectionWithMissingFields(t *testing.T) {
	r := Parse("### 1. Vehicle Identification\nManufacturer: Kia\nPlate: 22X997")

	require.Equal(t, map[string]string{
		"make":  "Kia",
		"model": Missing,
		"year":  Missing,
		"plate": "22X997",
	}, r.Vehicle)
}

func TestParseMixedScriptText(t *testing.T) {
	// Mixed-script raw text with case-length-changing runes still extracts
	// cleanly; Parse stays total.
	r := Parse("گزارش İnitial Ⱥssessment\nTotal Cost: 5000\nRepair Time: 3 days")

	require.Equal(t, "5000", r.TotalCost)
	require.Equal(t, "3 days", r.RepairTime)
	require.Equal(t, StatusUnsafe, r.SafetyStatus)

	r = Parse("ȺȺȺȺȺȺ\nİİİİİİ\nSafe to drive: yes")
	require.Equal(t, Missing, r.TotalCost)
	require.Equal(t, StatusSafe, r.SafetyStatus)
}

func TestParseSafetyPhrases(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"drive yes", "Safe to drive: yes", StatusSafe},
		{"short yes", "Overall the car is Safe: yes", StatusSafe},
		{"upper case", "SAFE TO DRIVE: YES", StatusSafe},
		{"explicit no", "Safe to drive: no", StatusUnsafe},
		{"silent", "no verdict here", StatusUnsafe},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Parse(tt.text).SafetyStatus)
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	vehicle := map[string]string{
		"make":  "Nissan",
		"model": "Qashqai",
		"year":  "2021",
		"plate": "77B412",
	}
	damages := []struct {
		part, damageType, severity string
	}{
		{"Rear Bumper", "Scratched", "minor"},
		{"Trunk", "Crushed", "severe"},
		{"Right Mirror", "Broken", "moderate"},
	}

	var b strings.Builder
	b.WriteString("### 1. Vehicle Identification\n")
	fmt.Fprintf(&b, "Make: %s\nModel: %s\nYear: %s\nLicense Plate: %s\n",
		vehicle["make"], vehicle["model"], vehicle["year"], vehicle["plate"])
	b.WriteString("### 2. Damage Assessment\n")
	for _, d := range damages {
		fmt.Fprintf(&b, "- %s (%s) - %s\n", d.part, d.damageType, d.severity)
	}

	r := Parse(b.String())
	require.Equal(t, vehicle, r.Vehicle)
	require.Len(t, r.Damages, len(damages))
	for i, d := range damages {
		require.Equal(t, d.part, r.Damages[i].Part)
		require.Equal(t, d.damageType, r.Damages[i].Type)
		require.Equal(t, NormalizeSeverity(d.severity), r.Damages[i].Severity)
	}
}
