// Package pinn trains a physics-informed regressor that predicts the
// energy consumption of a wastewater treatment process from nine
// process-state measurements.
//
// The pipeline is explicit and single-threaded: every hyperparameter
// lives in a Config, every stage returns its state to the caller.
//
//	X, y, err := pinn.ReadCSV(f)
//
//	scalerX := pinn.NewMinMaxScaler()
//	scalerY := pinn.NewMinMaxScaler()
//	Xn, err := scalerX.FitTransform(X)
//	Yn, err := scalerY.FitTransform(y)
//
//	cfg := pinn.DefaultConfig()
//	train, val, err := pinn.Split(pinn.Dataset{X: Xn, Y: Yn}, cfg.ValidationSplit, cfg.Seed)
//
//	model := pinn.NewRegressor(cfg.Seed)
//	trainer, err := pinn.NewTrainer(model, cfg)
//	history, err := trainer.Fit(train, val, []pinn.Callback{
//		pinn.Progress(pinn.ProgressConfig{Every: 50}),
//	})
//
//	eval, err := pinn.Evaluate(model, val, scalerY)
package pinn

// Version of the pinn library
const Version = "1.0.0"
