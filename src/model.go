package pinn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

const hiddenUnits = 12

// Regressor is the fixed-topology feed-forward model: 9 inputs, two
// sigmoid hidden layers of width 12, one linear output. Parameters are
// initialized to small seeded-random values and mutated only by the
// Trainer; Predict never modifies them.
type Regressor struct {
	layers []*denseLayer
}

// NewRegressor builds the fixed architecture with seeded initialization.
func NewRegressor(seed int64) *Regressor {
	rng := rand.New(rand.NewSource(seed))
	return &Regressor{
		layers: []*denseLayer{
			newDense(NumFeatures, hiddenUnits, Sigmoid(), LeCunUniform(1.0), Zeros(), rng),
			newDense(hiddenUnits, hiddenUnits, Sigmoid(), LeCunUniform(1.0), Zeros(), rng),
			newDense(hiddenUnits, 1, Linear(), LeCunUniform(1.0), Zeros(), rng),
		},
	}
}

// Predict runs inference on a batch of normalized inputs, returning one
// unconstrained real output per row. Pure: no state is touched.
func (r *Regressor) Predict(X *mat.Dense) *mat.Dense {
	return r.forward(X, false)
}

func (r *Regressor) forward(X *mat.Dense, training bool) *mat.Dense {
	out := X
	for _, layer := range r.layers {
		out = layer.forward(out, training)
	}
	return out
}

// backward propagates dL/dprediction through all layers, filling each
// layer's parameter gradients. Requires a preceding forward(x, true).
func (r *Regressor) backward(gradOutput *mat.Dense) {
	grad := gradOutput
	for i := len(r.layers) - 1; i >= 0; i-- {
		grad = r.layers[i].backward(grad)
	}
}

func (r *Regressor) parameters() []*mat.Dense {
	var params []*mat.Dense
	for _, layer := range r.layers {
		params = append(params, layer.parameters()...)
	}
	return params
}

func (r *Regressor) gradients() []*mat.Dense {
	var grads []*mat.Dense
	for _, layer := range r.layers {
		grads = append(grads, layer.gradients()...)
	}
	return grads
}
