package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatExpires(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"afternoon expiry", "2025-08-26T18:00:00-04:00", "26/08 02:00 PM"},
		{"shift crosses midnight", "2025-08-26T02:00:00-04:00", "25/08 10:00 PM"},
		{"zulu suffix", "2025-08-26T18:00:00Z", "26/08 02:00 PM"},
		{"date-only input returned as is", "2025-08-26", "2025-08-26"},
		{"long garbage keeps date-sized prefix", "not a timestamp", "not a time"},
		{"short garbage returned as is", "soon", "soon"},
		{"empty", "", "--"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatExpires(tt.raw))
		})
	}
}

func TestPrimaryArea(t *testing.T) {
	tests := []struct {
		name     string
		area     string
		expected string
	}{
		{"first of several", "Arecibo, PR; Utuado, PR; Ciales, PR", "Arecibo, PR"},
		{"single area", "Coastal Waters of Northern PR", "Coastal Waters of Northern PR"},
		{"empty", "", ""},
		{"leading separator", "; Arecibo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Alert{Area: tt.area}
			assert.Equal(t, tt.expected, a.PrimaryArea())
		})
	}
}
