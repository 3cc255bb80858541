package pinn

// Evaluation holds regression metrics computed on the original scale,
// plus the denormalized series they were computed from.
type Evaluation struct {
	MSE  float64
	RMSE float64
	R2   float64

	Actual    []float64
	Predicted []float64
}

// Evaluate runs the model in inference mode over a normalized dataset,
// maps predictions and targets back to original units through the target
// scaler, and scores them with MSE, RMSE and R².
func Evaluate(model *Regressor, data Dataset, targetScaler *MinMaxScaler) (*Evaluation, error) {
	if data.Len() == 0 {
		return nil, errorf("no data to evaluate")
	}

	pred := model.Predict(data.X)
	predDenorm, err := targetScaler.Inverse(pred)
	if err != nil {
		return nil, err
	}
	actualDenorm, err := targetScaler.Inverse(data.Y)
	if err != nil {
		return nil, err
	}

	n := data.Len()
	eval := &Evaluation{
		Actual:    make([]float64, n),
		Predicted: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		eval.Actual[i] = actualDenorm.At(i, 0)
		eval.Predicted[i] = predDenorm.At(i, 0)
	}

	for _, m := range []Metric{MeanSquaredError(), RootMeanSquaredError(), RSquared()} {
		m.reset()
		m.update(eval.Predicted, eval.Actual)
		switch m.name() {
		case "mse":
			eval.MSE = m.result()
		case "rmse":
			eval.RMSE = m.result()
		case "r2":
			eval.R2 = m.result()
		}
	}

	return eval, nil
}
