package pinn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Activation represents an activation function
type Activation interface {
	forward(x *mat.Dense, out *mat.Dense)
	backward(x *mat.Dense, gradOut *mat.Dense, gradIn *mat.Dense)
	name() string
}

// SigmoidActivation
type SigmoidActivation struct{}

func Sigmoid() Activation { return &SigmoidActivation{} }

func (s *SigmoidActivation) forward(x *mat.Dense, out *mat.Dense) {
	xd := x.RawMatrix().Data
	od := out.RawMatrix().Data
	for i, v := range xd {
		// exp(-v) overflows for very negative v; use the stable form there
		if v >= 0 {
			od[i] = 1.0 / (1.0 + math.Exp(-v))
		} else {
			expV := math.Exp(v)
			od[i] = expV / (1.0 + expV)
		}
	}
}

func (s *SigmoidActivation) backward(x *mat.Dense, gradOut *mat.Dense, gradIn *mat.Dense) {
	xd := x.RawMatrix().Data
	god := gradOut.RawMatrix().Data
	gid := gradIn.RawMatrix().Data
	for i, v := range xd {
		var sig float64
		if v >= 0 {
			sig = 1.0 / (1.0 + math.Exp(-v))
		} else {
			expV := math.Exp(v)
			sig = expV / (1.0 + expV)
		}
		gid[i] = god[i] * sig * (1 - sig)
	}
}

func (s *SigmoidActivation) name() string { return "sigmoid" }

// LinearActivation - identity, for the unconstrained regression output
type LinearActivation struct{}

func Linear() Activation { return &LinearActivation{} }

func (l *LinearActivation) forward(x *mat.Dense, out *mat.Dense) {
	copy(out.RawMatrix().Data, x.RawMatrix().Data)
}

func (l *LinearActivation) backward(x *mat.Dense, gradOut *mat.Dense, gradIn *mat.Dense) {
	copy(gradIn.RawMatrix().Data, gradOut.RawMatrix().Data)
}

func (l *LinearActivation) name() string { return "linear" }
