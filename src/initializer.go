package pinn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Initializer sets up initial weights for layers
type Initializer interface {
	initialize(t *mat.Dense, fanIn, fanOut int, rng *rand.Rand)
	name() string
}

// LeCunUniformInit - small uniform values scaled by fan-in
type LeCunUniformInit struct {
	Gain float64
}

func LeCunUniform(gain float64) Initializer {
	return &LeCunUniformInit{Gain: gain}
}

func (l *LeCunUniformInit) initialize(t *mat.Dense, fanIn, fanOut int, rng *rand.Rand) {
	limit := l.Gain * math.Sqrt(3.0/float64(fanIn))
	d := t.RawMatrix().Data
	for i := range d {
		d[i] = rng.Float64()*2*limit - limit
	}
}

func (l *LeCunUniformInit) name() string { return "lecun_uniform" }

// ZerosInit - initialize with zeros
type ZerosInit struct{}

func Zeros() Initializer { return &ZerosInit{} }

func (z *ZerosInit) initialize(t *mat.Dense, fanIn, fanOut int, rng *rand.Rand) {
	d := t.RawMatrix().Data
	for i := range d {
		d[i] = 0
	}
}

func (z *ZerosInit) name() string { return "zeros" }
