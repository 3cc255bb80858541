package pinn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// denseLayer - fully connected affine transform followed by an activation.
// Forward caches input and pre-activation when training so that backward
// can produce exact reverse-mode gradients.
type denseLayer struct {
	units      int
	activation Activation
	weights    *mat.Dense // fanIn x units
	bias       *mat.Dense // 1 x units
	gradW      *mat.Dense
	gradB      *mat.Dense
	input      *mat.Dense
	preAct     *mat.Dense
}

func newDense(fanIn, units int, act Activation, weightInit, biasInit Initializer, rng *rand.Rand) *denseLayer {
	d := &denseLayer{
		units:      units,
		activation: act,
		weights:    mat.NewDense(fanIn, units, nil),
		bias:       mat.NewDense(1, units, nil),
		gradW:      mat.NewDense(fanIn, units, nil),
		gradB:      mat.NewDense(1, units, nil),
	}
	weightInit.initialize(d.weights, fanIn, units, rng)
	biasInit.initialize(d.bias, fanIn, units, rng)
	return d
}

func (d *denseLayer) forward(input *mat.Dense, training bool) *mat.Dense {
	batch, _ := input.Dims()

	// Y = X @ W + b
	pre := mat.NewDense(batch, d.units, nil)
	pre.Mul(input, d.weights)
	bias := d.bias.RawRowView(0)
	for i := 0; i < batch; i++ {
		row := pre.RawRowView(i)
		for j := range row {
			row[j] += bias[j]
		}
	}

	out := mat.NewDense(batch, d.units, nil)
	d.activation.forward(pre, out)

	if training {
		d.input = input
		d.preAct = pre
	}
	return out
}

// backward consumes dL/dY and returns dL/dX, accumulating dL/dW and dL/db.
// The 1/batch factor lives in the loss gradient, not here.
func (d *denseLayer) backward(gradOutput *mat.Dense) *mat.Dense {
	// Gradient through activation
	gradPre := mat.NewDense(gradOutput.RawMatrix().Rows, d.units, nil)
	d.activation.backward(d.preAct, gradOutput, gradPre)

	// dL/dW = X^T @ dL/dY
	d.gradW.Mul(d.input.T(), gradPre)

	// dL/db = sum(dL/dY, axis=0)
	batch, _ := gradPre.Dims()
	gb := d.gradB.RawRowView(0)
	for j := range gb {
		gb[j] = 0
	}
	for i := 0; i < batch; i++ {
		row := gradPre.RawRowView(i)
		for j := range row {
			gb[j] += row[j]
		}
	}

	// dL/dX = dL/dY @ W^T
	fanIn, _ := d.weights.Dims()
	gradInput := mat.NewDense(batch, fanIn, nil)
	gradInput.Mul(gradPre, d.weights.T())
	return gradInput
}

func (d *denseLayer) parameters() []*mat.Dense {
	return []*mat.Dense{d.weights, d.bias}
}

func (d *denseLayer) gradients() []*mat.Dense {
	return []*mat.Dense{d.gradW, d.gradB}
}
