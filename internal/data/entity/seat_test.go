package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatLayout_Exists(t *testing.T) {
	layout := SeatLayout{
		Rows:        []string{"A", "B", "F"},
		Columns:     12,
		Unavailable: []string{"F10"},
	}

	tests := []struct {
		code      string
		exists    bool
		available bool
	}{
		{"A1", true, true},
		{"F12", true, true},
		{"F10", true, false},
		{"F0", false, false},
		{"F13", false, false},
		{"F05", false, false},
		{"F010", false, false},
		{"F+5", false, false},
		{"F-1", false, false},
		{"F 5", false, false},
		{"F", false, false},
		{"Z1", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.exists, layout.Exists(tt.code))
			assert.Equal(t, tt.available, layout.IsAvailable(tt.code))
		})
	}
}
