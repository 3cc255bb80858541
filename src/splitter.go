package pinn

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// Split partitions a dataset into disjoint train and validation subsets.
// Membership is a pseudo-random permutation controlled entirely by seed:
// the same seed and sample count always produce the same partition.
// The training side gets ceil(n * (1 - fraction)) rows.
func Split(data Dataset, fraction float64, seed int64) (train, val Dataset, err error) {
	n := data.Len()
	if fraction <= 0 || fraction >= 1 {
		return Dataset{}, Dataset{}, errorf("split fraction must be in (0, 1), got %f", fraction)
	}

	trainN := int(math.Ceil(float64(n) * (1 - fraction)))
	valN := n - trainN
	if n == 0 || valN < 1 {
		return Dataset{}, Dataset{}, &InsufficientDataError{Samples: n, Fraction: fraction}
	}

	perm := rand.New(rand.NewSource(seed)).Perm(n)
	train = gather(data, perm[:trainN])
	val = gather(data, perm[trainN:])
	return train, val, nil
}

// gather copies the selected rows into a new dataset.
func gather(data Dataset, idx []int) Dataset {
	_, xCols := data.X.Dims()
	X := mat.NewDense(len(idx), xCols, nil)
	Y := mat.NewDense(len(idx), 1, nil)
	for i, src := range idx {
		X.SetRow(i, data.X.RawRowView(src))
		Y.Set(i, 0, data.Y.At(src, 0))
	}
	return Dataset{X: X, Y: Y}
}
