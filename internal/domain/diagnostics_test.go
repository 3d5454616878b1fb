package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_Confidence(t *testing.T) {
	tests := []struct {
		name     string
		warnings int
		review   int
		want     Confidence
	}{
		{"clean run", 0, 0, ConfidenceHigh},
		{"one warning", 1, 0, ConfidenceMedium},
		{"two warnings", 2, 0, ConfidenceMedium},
		{"three warnings", 3, 0, ConfidenceLow},
		{"review item wins", 0, 1, ConfidenceLow},
		{"review beats clean warnings", 1, 1, ConfidenceLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Diagnostics
			for i := 0; i < tt.warnings; i++ {
				d.Warnf("warning %d", i)
			}
			for i := 0; i < tt.review; i++ {
				d.Reviewf("review %d", i)
			}
			assert.Equal(t, tt.want, d.Confidence())
		})
	}
}

func TestDiagnostics_RecordFieldMapping(t *testing.T) {
	var d Diagnostics
	d.RecordFieldMapping("appName", "service.name")
	d.RecordFieldMapping("duration", "response_time")
	d.RecordFieldMapping("appName", "service.name")

	assert.Equal(t, []FieldMapping{
		{Source: "appName", Target: "service.name"},
		{Source: "duration", Target: "response_time"},
	}, d.FieldMappings())
}

func TestDiagnostics_ZeroValueAccessors(t *testing.T) {
	var d Diagnostics

	assert.NotNil(t, d.Warnings())
	assert.NotNil(t, d.ManualReview())
	assert.NotNil(t, d.FieldMappings())
	assert.Empty(t, d.Warnings())
	assert.Equal(t, ConfidenceHigh, d.Confidence())
}

func TestDiagnostics_AccessorsCopy(t *testing.T) {
	var d Diagnostics
	d.Warnf("original")

	got := d.Warnings()
	got[0] = "mutated"

	assert.Equal(t, []string{"original"}, d.Warnings())
}
