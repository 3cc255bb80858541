package pinn

import "gonum.org/v1/gonum/mat"

// CombinedLoss is the training objective: mean squared data-fit error
// plus a physics residual from a simplified steady-state energy balance,
// weighted 1:1. Both terms are computed on the normalized scale; the
// physics coefficients keep their raw-scale values, matching the
// reference formulation.
type CombinedLoss struct {
	Alpha float64
	Beta  float64
	Gamma float64
	TRef  float64
}

// Expected evaluates the energy-balance proxy for one input row:
//
//	alpha*Q_in*(COD + BOD - NH3) + beta*Q_out + gamma*(T_avg - T_ref)
//
// Q_in and Q_out bind by column name: Q_in is Average Inflow and Q_out
// is Average Outflow. Pipelines that unpack the feature vector
// positionally bind the two flows the other way around, so their loss
// values differ numerically from this one.
func (c *CombinedLoss) Expected(inputs *mat.Dense, row int) float64 {
	r := inputs.RawRowView(row)
	oxygenDemand := r[colCOD] + r[colBOD] - r[colAmmonia]
	return c.Alpha*r[colInflow]*oxygenDemand + c.Beta*r[colOutflow] + c.Gamma*(r[colTemperature]-c.TRef)
}

// PhysicsResidual returns the mean squared residual between predictions
// and the energy-balance proxy. Independent of the ground-truth labels.
func (c *CombinedLoss) PhysicsResidual(inputs, pred *mat.Dense) float64 {
	n, _ := pred.Dims()
	sum := 0.0
	for i := 0; i < n; i++ {
		r := pred.At(i, 0) - c.Expected(inputs, i)
		sum += r * r
	}
	return sum / float64(n)
}

// Compute returns the combined scalar loss for a batch.
func (c *CombinedLoss) Compute(inputs, pred, target *mat.Dense) float64 {
	n, _ := pred.Dims()
	sum := 0.0
	for i := 0; i < n; i++ {
		d := pred.At(i, 0) - target.At(i, 0)
		sum += d * d
	}
	return sum/float64(n) + c.PhysicsResidual(inputs, pred)
}

// Gradient fills gradOut with dLoss/dprediction for each batch row.
func (c *CombinedLoss) Gradient(inputs, pred, target, gradOut *mat.Dense) {
	n, _ := pred.Dims()
	scale := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		p := pred.At(i, 0)
		g := scale * (p - target.At(i, 0))
		g += scale * (p - c.Expected(inputs, i))
		gradOut.Set(i, 0, g)
	}
}
