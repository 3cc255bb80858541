package pinn

import "github.com/sirupsen/logrus"

// Callback is invoked by the Trainer at epoch boundaries
type Callback interface {
	onTrainBegin(config Config)
	onEpochEnd(epoch int, trainLoss, valLoss float64)
	onTrainEnd(history *History)
	name() string
}

// ProgressCallback logs training progress every N epochs
type ProgressCallback struct {
	Logger *logrus.Logger
	Every  int
}

type ProgressConfig struct {
	Logger *logrus.Logger
	Every  int
}

func Progress(config ProgressConfig) Callback {
	logger := config.Logger
	if logger == nil {
		logger = logrus.New()
	}
	every := config.Every
	if every <= 0 {
		every = 50
	}
	return &ProgressCallback{Logger: logger, Every: every}
}

func (p *ProgressCallback) onTrainBegin(config Config) {
	p.Logger.WithFields(logrus.Fields{
		"epochs":        config.Epochs,
		"batch_size":    config.BatchSize,
		"learning_rate": config.LearningRate,
	}).Info("training started")
}

func (p *ProgressCallback) onEpochEnd(epoch int, trainLoss, valLoss float64) {
	if epoch%p.Every != 0 {
		return
	}
	p.Logger.WithFields(logrus.Fields{
		"epoch":      epoch,
		"train_loss": trainLoss,
		"val_loss":   valLoss,
	}).Info("epoch complete")
}

func (p *ProgressCallback) onTrainEnd(history *History) {
	n := len(history.Train)
	if n == 0 {
		p.Logger.Info("training finished with no completed epochs")
		return
	}
	p.Logger.WithFields(logrus.Fields{
		"epochs":           n,
		"final_train_loss": history.Train[n-1],
		"final_val_loss":   history.Val[n-1],
	}).Info("training complete")
}

func (p *ProgressCallback) name() string { return "progress" }
