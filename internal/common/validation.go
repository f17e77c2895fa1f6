package common

import "fmt"

// MaxDimension bounds rows and columns accepted from settings.
const MaxDimension = 32

// IsValidCoordinate checks if the given row and column are within the bounds of the board
func IsValidCoordinate(row, col, rows, cols int) bool {
	return row >= 0 && row < rows && col >= 0 && col < cols
}

// ValidateDimensions checks board dimensions coming from configuration.
func ValidateDimensions(rows, cols int) error {
	if rows < 1 || rows > MaxDimension {
		return fmt.Errorf("rows must be between 1 and %d, got %d", MaxDimension, rows)
	}
	if cols < 1 || cols > MaxDimension {
		return fmt.Errorf("columns must be between 1 and %d, got %d", MaxDimension, cols)
	}
	return nil
}

// ValidateProbability checks that p lies in [0, 1].
func ValidateProbability(name string, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("%s must be between 0 and 1, got %v", name, p)
	}
	return nil
}
