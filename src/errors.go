package pinn

import (
	"fmt"
	"math"
)

// MissingFeatureError - a required column is absent from the input table
type MissingFeatureError struct {
	Column string
}

func (e *MissingFeatureError) Error() string {
	return fmt.Sprintf("pinn: required column %q not found in input table", e.Column)
}

// DataFormatError - a required column holds a non-numeric or malformed value
type DataFormatError struct {
	Row    int
	Column string
	Value  string
}

func (e *DataFormatError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("pinn: row %d has the wrong number of fields", e.Row)
	}
	return fmt.Sprintf("pinn: row %d column %q: cannot parse %q as a number", e.Row, e.Column, e.Value)
}

// InsufficientDataError - too few samples for a non-degenerate split
type InsufficientDataError struct {
	Samples  int
	Fraction float64
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("pinn: %d samples with validation fraction %.2f leaves an empty validation set", e.Samples, e.Fraction)
}

// DegenerateColumnError - a column has zero variance, min == max
type DegenerateColumnError struct {
	Column int
	Value  float64
}

func (e *DegenerateColumnError) Error() string {
	return fmt.Sprintf("pinn: column %d is constant (min == max == %g) - normalization undefined", e.Column, e.Value)
}

// TrainingDivergenceError - loss became NaN or Inf during optimization.
// Terminal: the caller must intervene (e.g. lower the learning rate).
type TrainingDivergenceError struct {
	Epoch int
	Batch int
	Loss  float64
}

func (e *TrainingDivergenceError) Error() string {
	return fmt.Sprintf("pinn: loss diverged to %v at epoch %d batch %d", e.Loss, e.Epoch, e.Batch)
}

// errorf creates a formatted error
func errorf(format string, args ...interface{}) error {
	return fmt.Errorf("pinn: "+format, args...)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
