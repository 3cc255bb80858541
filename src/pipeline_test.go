package pinn

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// plantData generates raw process measurements in realistic ranges with a
// target that is a known linear combination of outflow and temperature
// plus small noise: y = 3*Q_out + 2*T_avg + eps.
func plantData(n int, seed int64) (*mat.Dense, *mat.Dense) {
	rng := rand.New(rand.NewSource(seed))
	ranges := [NumFeatures][2]float64{
		{50, 150},  // outflow
		{40, 160},  // inflow
		{1, 5},     // ammonia
		{100, 300}, // BOD
		{200, 500}, // COD
		{20, 60},   // total nitrogen
		{5, 25},    // temperature
		{30, 90},   // humidity
		{0, 20},    // rainfall
	}

	X := mat.NewDense(n, NumFeatures, nil)
	Y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < NumFeatures; j++ {
			lo, hi := ranges[j][0], ranges[j][1]
			X.Set(i, j, lo+rng.Float64()*(hi-lo))
		}
		y := 3*X.At(i, colOutflow) + 2*X.At(i, colTemperature) + rng.NormFloat64()*2
		Y.Set(i, 0, y)
	}
	return X, Y
}

func TestEndToEndPipeline(t *testing.T) {
	if testing.Short() {
		t.Skip("full training run")
	}

	X, y := plantData(200, 42)

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

	cfg := DefaultConfig()

	// Express the generating equation y = 3*Q_out + 2*T_avg + eps in the
	// normalized coordinates the loss operates in, so the physics proxy
	// and the data-fit term agree on the same optimum:
	// y_n = (3*rQ/rY)*Q_n + (2*rT/rY)*T_n + (3*minQ + 2*minT - minY)/rY.
	minQ, maxQ := scalerX.Range(colOutflow)
	minT, maxT := scalerX.Range(colTemperature)
	minY, maxY := scalerY.Range(0)
	rQ, rT, rY := maxQ-minQ, maxT-minT, maxY-minY

	cfg.Alpha = 0
	cfg.Beta = 3 * rQ / rY
	cfg.Gamma = 2 * rT / rY
	cfg.TRef = -(3*minQ + 2*minT - minY) / rY / cfg.Gamma

	train, val, err := Split(Dataset{X: Xn, Y: Yn}, cfg.ValidationSplit, cfg.Seed)
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if train.Len() != 150 || val.Len() != 50 {
		t.Fatalf("split sizes: got (%d,%d), want (150,50)", train.Len(), val.Len())
	}

	model := NewRegressor(cfg.Seed)
	trainer, err := NewTrainer(model, cfg)
	if err != nil {
		t.Fatalf("NewTrainer: %v", err)
	}
	history, err := trainer.Fit(train, val, nil)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if len(history.Val) != cfg.Epochs {
		t.Fatalf("val history length: got %d, want %d", len(history.Val), cfg.Epochs)
	}

	// Validation loss must decrease on average over training.
	early := meanOf(history.Val[:150])
	late := meanOf(history.Val[len(history.Val)-150:])
	if late >= early {
		t.Errorf("validation loss did not decrease on average: early %g, late %g", early, late)
	}

	eval, err := Evaluate(model, val, scalerY)
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if eval.R2 <= 0.8 {
		t.Errorf("validation R2: got %g, want > 0.8", eval.R2)
	}
	if eval.RMSE <= 0 || !isFinite(eval.RMSE) {
		t.Errorf("validation RMSE is %g", eval.RMSE)
	}

	// Metrics are reported on the original scale.
	if eval.Actual[0] < 100 {
		t.Errorf("evaluation targets look normalized: %g", eval.Actual[0])
	}
}

func meanOf(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
