package pinn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Optimizer updates model parameters from accumulated gradients
type Optimizer interface {
	step(params []*mat.Dense, grads []*mat.Dense)
	name() string
}

// AdamOptimizer - Adaptive Moment Estimation
type AdamOptimizer struct {
	LR          float64
	Beta1       float64
	Beta2       float64
	Epsilon     float64
	m           []*mat.Dense
	v           []*mat.Dense
	t           int
	initialized bool
}

type AdamConfig struct {
	LR      float64
	Beta1   float64
	Beta2   float64
	Epsilon float64
}

func Adam(config AdamConfig) Optimizer {
	return &AdamOptimizer{
		LR:      config.LR,
		Beta1:   config.Beta1,
		Beta2:   config.Beta2,
		Epsilon: config.Epsilon,
	}
}

func (a *AdamOptimizer) init(params []*mat.Dense) {
	a.m = make([]*mat.Dense, len(params))
	a.v = make([]*mat.Dense, len(params))
	for i, p := range params {
		r, c := p.Dims()
		a.m[i] = mat.NewDense(r, c, nil)
		a.v[i] = mat.NewDense(r, c, nil)
	}
	a.t = 0
	a.initialized = true
}

func (a *AdamOptimizer) step(params []*mat.Dense, grads []*mat.Dense) {
	if !a.initialized {
		a.init(params)
	}
	a.t++
	bc1 := 1 - math.Pow(a.Beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.Beta2, float64(a.t))

	for i, p := range params {
		pd := p.RawMatrix().Data
		gd := grads[i].RawMatrix().Data
		md := a.m[i].RawMatrix().Data
		vd := a.v[i].RawMatrix().Data

		for j := range pd {
			grad := gd[j]
			md[j] = a.Beta1*md[j] + (1-a.Beta1)*grad
			vd[j] = a.Beta2*vd[j] + (1-a.Beta2)*grad*grad

			mHat := md[j] / bc1
			vHat := vd[j] / bc2

			pd[j] -= a.LR * mHat / (math.Sqrt(vHat) + a.Epsilon)
		}
	}
}

func (a *AdamOptimizer) name() string { return "adam" }
