package pinn

import "gonum.org/v1/gonum/mat"

// MinMaxScaler maps each column into [0,1] via (v - min) / (max - min).
// Min/max are frozen at Fit time; Inverse applies the exact algebraic
// inverse, so inverse(transform(x)) == x for any x inside the fitted
// range (values outside extrapolate outside [0,1]).
type MinMaxScaler struct {
	min    []float64
	max    []float64
	fitted bool
}

// NewMinMaxScaler returns an unfitted scaler.
func NewMinMaxScaler() *MinMaxScaler {
	return &MinMaxScaler{}
}

// Fit computes per-column min and max over the full matrix.
// A constant column yields a DegenerateColumnError.
func (s *MinMaxScaler) Fit(X mat.Matrix) error {
	rows, cols := X.Dims()
	if rows == 0 || cols == 0 {
		return errorf("cannot fit scaler on empty matrix")
	}

	min := make([]float64, cols)
	max := make([]float64, cols)
	for j := 0; j < cols; j++ {
		min[j] = X.At(0, j)
		max[j] = X.At(0, j)
		for i := 1; i < rows; i++ {
			v := X.At(i, j)
			if v < min[j] {
				min[j] = v
			}
			if v > max[j] {
				max[j] = v
			}
		}
		if min[j] == max[j] {
			return &DegenerateColumnError{Column: j, Value: min[j]}
		}
	}

	s.min = min
	s.max = max
	s.fitted = true
	return nil
}

// Transform applies the fitted affine map column-wise.
func (s *MinMaxScaler) Transform(X mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, errorf("scaler not fitted - call Fit() first")
	}
	rows, cols := X.Dims()
	if cols != len(s.min) {
		return nil, errorf("scaler fitted on %d columns, got %d", len(s.min), cols)
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, (X.At(i, j)-s.min[j])/(s.max[j]-s.min[j]))
		}
	}
	return out, nil
}

// FitTransform runs Fit then Transform on the same matrix.
func (s *MinMaxScaler) FitTransform(X mat.Matrix) (*mat.Dense, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// Inverse recovers original-scale values from normalized ones.
func (s *MinMaxScaler) Inverse(X mat.Matrix) (*mat.Dense, error) {
	if !s.fitted {
		return nil, errorf("scaler not fitted - call Fit() first")
	}
	rows, cols := X.Dims()
	if cols != len(s.min) {
		return nil, errorf("scaler fitted on %d columns, got %d", len(s.min), cols)
	}

	out := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			out.Set(i, j, X.At(i, j)*(s.max[j]-s.min[j])+s.min[j])
		}
	}
	return out, nil
}

// Range returns the fitted (min, max) of one column.
func (s *MinMaxScaler) Range(col int) (float64, float64) {
	return s.min[col], s.max[col]
}
