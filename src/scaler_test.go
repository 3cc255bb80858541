package pinn

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestScalerRoundTrip(t *testing.T) {
	X := mat.NewDense(4, 2, []float64{
		1.0, 100.0,
		2.5, 250.0,
		4.0, 175.0,
		3.0, 400.0,
	})

	s := NewMinMaxScaler()
	normalized, err := s.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	rows, cols := normalized.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := normalized.At(i, j)
			if v < 0 || v > 1 {
				t.Errorf("normalized value %g at (%d,%d) outside [0,1]", v, i, j)
			}
		}
	}

	recovered, err := s.Inverse(normalized)
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if math.Abs(recovered.At(i, j)-X.At(i, j)) > 1e-12 {
				t.Errorf("round trip at (%d,%d): got %g, want %g", i, j, recovered.At(i, j), X.At(i, j))
			}
		}
	}
}

func TestScalerInverseExtrapolates(t *testing.T) {
	X := mat.NewDense(2, 1, []float64{10, 20})
	s := NewMinMaxScaler()
	if _, err := s.FitTransform(X); err != nil {
		t.Fatalf("FitTransform: %v", err)
	}

	// 1.5 is outside the fitted range; the affine inverse still applies
	out, err := s.Inverse(mat.NewDense(1, 1, []float64{1.5}))
	if err != nil {
		t.Fatalf("Inverse: %v", err)
	}
	if got := out.At(0, 0); math.Abs(got-25) > 1e-12 {
		t.Errorf("extrapolated inverse: got %g, want 25", got)
	}
}

func TestScalerDegenerateColumn(t *testing.T) {
	X := mat.NewDense(3, 2, []float64{
		1.0, 7.0,
		2.0, 7.0,
		3.0, 7.0,
	})

	s := NewMinMaxScaler()
	err := s.Fit(X)
	var degenerate *DegenerateColumnError
	if !errors.As(err, &degenerate) {
		t.Fatalf("expected DegenerateColumnError, got %v", err)
	}
	if degenerate.Column != 1 {
		t.Errorf("degenerate column: got %d, want 1", degenerate.Column)
	}
	if degenerate.Value != 7.0 {
		t.Errorf("degenerate value: got %g, want 7", degenerate.Value)
	}
}

func TestScalerRequiresFit(t *testing.T) {
	s := NewMinMaxScaler()
	if _, err := s.Transform(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Transform on unfitted scaler should fail")
	}
	if _, err := s.Inverse(mat.NewDense(1, 1, []float64{1})); err == nil {
		t.Error("Inverse on unfitted scaler should fail")
	}
}

func TestScalerRange(t *testing.T) {
	X := mat.NewDense(3, 1, []float64{5, 1, 9})
	s := NewMinMaxScaler()
	if err := s.Fit(X); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	min, max := s.Range(0)
	if min != 1 || max != 9 {
		t.Errorf("Range: got (%g, %g), want (1, 9)", min, max)
	}
}
