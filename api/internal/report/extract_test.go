package report

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractValue(t *testing.T) {
	text := "Make: Toyota\nModel: Camry\nYear:2019\nLicense Plate:  ABC123  \nRepair Time: 3:30 hours"

	tests := []struct {
		name   string
		labels []string
		want   string
	}{
		{"simple", []string{"make"}, "Toyota"},
		{"case insensitive", []string{"MODEL"}, "Camry"},
		{"no space after colon", []string{"year"}, "2019"},
		{"trims value", []string{"license plate"}, "ABC123"},
		{"colon inside value", []string{"repair time"}, "3:30 hours"},
		{"first synonym wins", []string{"model", "make"}, "Camry"},
		{"falls through to second synonym", []string{"manufacturer", "make"}, "Toyota"},
		{"missing", []string{"vin"}, Missing},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, extractValue(text, tt.labels...))
		})
	}
}

func TestExtractValueEmptyText(t *testing.T) {
	require.Equal(t, Missing, extractValue("", "make"))
}

func TestExtractValueLastLine(t *testing.T) {
	require.Equal(t, "5000", extractValue("Total Cost: 5000", "total cost"))
}

func TestExtractValueNonASCIIText(t *testing.T) {
	// Runes whose lowercase form has a different byte length must not skew
	// the capture.
	require.Equal(t, "X", extractValue("İstanbul Auto Make: X", "make"))
	require.Equal(t, "5000", extractValue("ȺȺȺȺȺȺ\nTotal Cost: 5000", "total cost"))
	require.Equal(t, "پراید", extractValue("گزارش خودرو\nModel: پراید", "model"))
	require.Equal(t, Missing, extractValue("İİİİİİ no labels here", "make"))
}
