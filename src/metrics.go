package pinn

import "math"

// Metric accumulates a regression score over prediction/actual pairs
type Metric interface {
	reset()
	update(pred, actual []float64)
	result() float64
	name() string
}

// MeanSquaredErrorMetric
type MeanSquaredErrorMetric struct {
	sum   float64
	count int
}

func MeanSquaredError() Metric {
	return &MeanSquaredErrorMetric{}
}

func (m *MeanSquaredErrorMetric) reset() {
	m.sum = 0
	m.count = 0
}

func (m *MeanSquaredErrorMetric) update(pred, actual []float64) {
	for i := range pred {
		diff := actual[i] - pred[i]
		m.sum += diff * diff
		m.count++
	}
}

func (m *MeanSquaredErrorMetric) result() float64 {
	if m.count == 0 {
		return 0
	}
	return m.sum / float64(m.count)
}

func (m *MeanSquaredErrorMetric) name() string { return "mse" }

// RootMeanSquaredErrorMetric
type RootMeanSquaredErrorMetric struct {
	mse MeanSquaredErrorMetric
}

func RootMeanSquaredError() Metric {
	return &RootMeanSquaredErrorMetric{}
}

func (r *RootMeanSquaredErrorMetric) reset() {
	r.mse.reset()
}

func (r *RootMeanSquaredErrorMetric) update(pred, actual []float64) {
	r.mse.update(pred, actual)
}

func (r *RootMeanSquaredErrorMetric) result() float64 {
	return math.Sqrt(r.mse.result())
}

func (r *RootMeanSquaredErrorMetric) name() string { return "rmse" }

// RSquaredMetric - coefficient of determination, 1 - SS_res/SS_tot
type RSquaredMetric struct {
	ssRes     float64
	sumActual float64
	sumSq     float64
	count     int
}

func RSquared() Metric {
	return &RSquaredMetric{}
}

func (r *RSquaredMetric) reset() {
	r.ssRes = 0
	r.sumActual = 0
	r.sumSq = 0
	r.count = 0
}

func (r *RSquaredMetric) update(pred, actual []float64) {
	for i := range pred {
		diff := actual[i] - pred[i]
		r.ssRes += diff * diff
		r.sumActual += actual[i]
		r.sumSq += actual[i] * actual[i]
		r.count++
	}
}

func (r *RSquaredMetric) result() float64 {
	if r.count == 0 {
		return 0
	}
	mean := r.sumActual / float64(r.count)
	ssTot := r.sumSq - mean*r.sumActual
	if ssTot == 0 {
		return 0
	}
	return 1 - r.ssRes/ssTot
}

func (r *RSquaredMetric) name() string { return "r2" }
