package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCoordinate(t *testing.T) {
	tests := []struct {
		name       string
		row, col   int
		rows, cols int
		expected   bool
	}{
		// Valid coordinates
		{"top-left corner", 0, 0, 8, 11, true},
		{"top-right corner", 0, 10, 8, 11, true},
		{"bottom-left corner", 7, 0, 8, 11, true},
		{"bottom-right corner", 7, 10, 8, 11, true},
		{"single cell", 0, 0, 1, 1, true},

		// Invalid coordinates
		{"negative row", -1, 5, 8, 11, false},
		{"negative col", 5, -1, 8, 11, false},
		{"row equals rows", 8, 5, 8, 11, false},
		{"col equals cols", 5, 11, 8, 11, false},

		// Zero dimensions
		{"zero rows", 0, 0, 0, 11, false},
		{"zero cols", 0, 0, 8, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidCoordinate(tt.row, tt.col, tt.rows, tt.cols))
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	assert.NoError(t, ValidateDimensions(8, 11))
	assert.NoError(t, ValidateDimensions(1, 1))
	assert.NoError(t, ValidateDimensions(MaxDimension, MaxDimension))
	assert.Error(t, ValidateDimensions(0, 11))
	assert.Error(t, ValidateDimensions(8, -1))
	assert.Error(t, ValidateDimensions(MaxDimension+1, 4))
}

func TestValidateProbability(t *testing.T) {
	assert.NoError(t, ValidateProbability("p", 0))
	assert.NoError(t, ValidateProbability("p", 0.5))
	assert.NoError(t, ValidateProbability("p", 1))
	err := ValidateProbability("ai.fortify_chance", 1.5)
	assert.ErrorContains(t, err, "ai.fortify_chance")
	assert.Error(t, ValidateProbability("p", -0.1))
}
