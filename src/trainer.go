package pinn

import (
	"math/rand"

	"gonum.org/v1/gonum/mat"
)

// History holds per-epoch average losses, appended once per completed
// epoch and never mutated in place.
type History struct {
	Train []float64
	Val   []float64
}

// Trainer runs the mini-batch optimization loop. It exclusively owns the
// model's parameters for the duration of Fit.
type Trainer struct {
	model     *Regressor
	loss      *CombinedLoss
	optimizer Optimizer
	config    Config
	rng       *rand.Rand
}

// NewTrainer validates the configuration and wires the combined loss and
// Adam optimizer from it.
func NewTrainer(model *Regressor, config Config) (*Trainer, error) {
	if model == nil {
		return nil, errorf("trainer requires a model")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Trainer{
		model: model,
		loss: &CombinedLoss{
			Alpha: config.Alpha,
			Beta:  config.Beta,
			Gamma: config.Gamma,
			TRef:  config.TRef,
		},
		optimizer: Adam(AdamConfig{
			LR:      config.LearningRate,
			Beta1:   0.9,
			Beta2:   0.999,
			Epsilon: 1e-8,
		}),
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}, nil
}

// Fit runs the fixed number of epochs: shuffled training batches with
// parameter updates, then validation batches without updates. There is
// no early stopping and no convergence check. A non-finite loss stops
// the loop with a TrainingDivergenceError; the history of fully
// completed epochs (train and val entries in lockstep) is returned
// alongside it.
func (t *Trainer) Fit(train, val Dataset, callbacks []Callback) (*History, error) {
	if train.Len() == 0 {
		return nil, errorf("no training data provided")
	}
	if val.Len() == 0 {
		return nil, errorf("no validation data provided")
	}

	history := &History{}
	params := t.model.parameters()
	grads := t.model.gradients()

	for _, cb := range callbacks {
		cb.onTrainBegin(t.config)
	}

	for epoch := 0; epoch < t.config.Epochs; epoch++ {
		trainLoss, err := t.trainEpoch(train, epoch, params, grads)
		if err != nil {
			return history, err
		}

		valLoss, err := t.validate(val, epoch)
		if err != nil {
			return history, err
		}

		// Appended as a pair: the histories stay parallel even when the
		// validation pass diverges mid-epoch.
		history.Train = append(history.Train, trainLoss)
		history.Val = append(history.Val, valLoss)

		for _, cb := range callbacks {
			cb.onEpochEnd(epoch, trainLoss, valLoss)
		}
	}

	for _, cb := range callbacks {
		cb.onTrainEnd(history)
	}
	return history, nil
}

// trainEpoch shuffles the training set, steps the optimizer once per
// batch, and returns the average batch loss.
func (t *Trainer) trainEpoch(train Dataset, epoch int, params, grads []*mat.Dense) (float64, error) {
	n := train.Len()
	perm := t.rng.Perm(n)

	epochLoss := 0.0
	numBatches := 0
	for start := 0; start < n; start += t.config.BatchSize {
		end := start + t.config.BatchSize
		if end > n {
			end = n
		}
		batch := gather(train, perm[start:end])

		pred := t.model.forward(batch.X, true)
		loss := t.loss.Compute(batch.X, pred, batch.Y)
		if !isFinite(loss) {
			return 0, &TrainingDivergenceError{Epoch: epoch, Batch: numBatches, Loss: loss}
		}
		epochLoss += loss
		numBatches++

		rows, _ := pred.Dims()
		gradOut := mat.NewDense(rows, 1, nil)
		t.loss.Gradient(batch.X, pred, batch.Y, gradOut)
		t.model.backward(gradOut)
		t.optimizer.step(params, grads)
	}

	return epochLoss / float64(numBatches), nil
}

// validate averages the combined loss over sequential validation batches
// with no shuffling and no parameter updates.
func (t *Trainer) validate(val Dataset, epoch int) (float64, error) {
	n := val.Len()
	valLoss := 0.0
	numBatches := 0
	for start := 0; start < n; start += t.config.BatchSize {
		end := start + t.config.BatchSize
		if end > n {
			end = n
		}
		idx := make([]int, end-start)
		for i := range idx {
			idx[i] = start + i
		}
		batch := gather(val, idx)

		pred := t.model.Predict(batch.X)
		loss := t.loss.Compute(batch.X, pred, batch.Y)
		if !isFinite(loss) {
			return 0, &TrainingDivergenceError{Epoch: epoch, Batch: numBatches, Loss: loss}
		}
		valLoss += loss
		numBatches++
	}
	return valLoss / float64(numBatches), nil
}
