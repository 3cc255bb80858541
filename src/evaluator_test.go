package pinn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestEvaluateDenormalizes(t *testing.T) {
	X, y := plantData(30, 7)

	scalerX := NewMinMaxScaler()
	scalerY := NewMinMaxScaler()
	Xn, err := scalerX.FitTransform(X)
	if err != nil {
		t.Fatalf("FitTransform X: %v", err)
	}
	Yn, err := scalerY.FitTransform(y)
	if err != nil {
		t.Fatalf("FitTransform y: %v", err)
	}

	model := NewRegressor(42)
	eval, err := Evaluate(model, Dataset{X: Xn, Y: Yn}, scalerY)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}

	if len(eval.Actual) != 30 || len(eval.Predicted) != 30 {
		t.Fatalf("series lengths: got (%d,%d), want (30,30)", len(eval.Actual), len(eval.Predicted))
	}

	// Actual values must round-trip back to the raw targets.
	for i := 0; i < 30; i++ {
		if math.Abs(eval.Actual[i]-y.At(i, 0)) > 1e-9 {
			t.Fatalf("actual[%d] = %g does not match raw target %g", i, eval.Actual[i], y.At(i, 0))
		}
	}

	// Metrics must agree with the reported series.
	mse := MeanSquaredError()
	mse.update(eval.Predicted, eval.Actual)
	if math.Abs(eval.MSE-mse.result()) > 1e-12 {
		t.Errorf("MSE %g does not match series MSE %g", eval.MSE, mse.result())
	}
	if math.Abs(eval.RMSE-math.Sqrt(eval.MSE)) > 1e-12 {
		t.Errorf("RMSE %g is not sqrt of MSE %g", eval.RMSE, eval.MSE)
	}
}

func TestEvaluateEmptyDataset(t *testing.T) {
	scaler := NewMinMaxScaler()
	if err := scaler.Fit(mat.NewDense(2, 1, []float64{0, 1})); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if _, err := Evaluate(NewRegressor(42), Dataset{}, scaler); err == nil {
		t.Error("empty dataset should be rejected")
	}
}
