package pinn

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all pipeline hyperparameters - never mutated during training
type Config struct {
	Alpha float64 // oxygen-demand coefficient in the energy balance
	Beta  float64 // outflow coefficient
	Gamma float64 // temperature coefficient
	TRef  float64 // reference temperature

	LearningRate    float64
	Epochs          int
	BatchSize       int
	ValidationSplit float64
	Seed            int64

	LogEvery int // epochs between progress log lines
}

// DefaultConfig returns the fixed configuration of the reference pipeline
func DefaultConfig() Config {
	return Config{
		Alpha:           0.01,
		Beta:            0.005,
		Gamma:           0.002,
		TRef:            15.0,
		LearningRate:    0.001,
		Epochs:          1500,
		BatchSize:       32,
		ValidationSplit: 0.25,
		Seed:            42,
		LogEvery:        50,
	}
}

// Validate checks all required fields are set
func (c Config) Validate() error {
	if c.Epochs <= 0 {
		return errorf("Epochs must be > 0, got %d", c.Epochs)
	}
	if c.BatchSize <= 0 {
		return errorf("BatchSize must be > 0, got %d", c.BatchSize)
	}
	if c.LearningRate <= 0 {
		return errorf("LearningRate must be > 0, got %f", c.LearningRate)
	}
	if c.ValidationSplit <= 0 || c.ValidationSplit >= 1 {
		return errorf("ValidationSplit must be in (0, 1), got %f", c.ValidationSplit)
	}
	if c.LogEvery < 0 {
		return errorf("LogEvery must be >= 0, got %d", c.LogEvery)
	}
	return nil
}

// ConfigFromEnv returns DefaultConfig overridden by PINN_* environment
// variables. If path is non-empty it is loaded as a dotenv file first.
func ConfigFromEnv(path string) (Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return Config{}, errorf("loading env file %s: %v", path, err)
		}
	}

	cfg := DefaultConfig()
	var err error
	if err = envFloat("PINN_ALPHA", &cfg.Alpha); err != nil {
		return Config{}, err
	}
	if err = envFloat("PINN_BETA", &cfg.Beta); err != nil {
		return Config{}, err
	}
	if err = envFloat("PINN_GAMMA", &cfg.Gamma); err != nil {
		return Config{}, err
	}
	if err = envFloat("PINN_T_REF", &cfg.TRef); err != nil {
		return Config{}, err
	}
	if err = envFloat("PINN_LEARNING_RATE", &cfg.LearningRate); err != nil {
		return Config{}, err
	}
	if err = envInt("PINN_EPOCHS", &cfg.Epochs); err != nil {
		return Config{}, err
	}
	if err = envInt("PINN_BATCH_SIZE", &cfg.BatchSize); err != nil {
		return Config{}, err
	}
	if err = envFloat("PINN_VALIDATION_SPLIT", &cfg.ValidationSplit); err != nil {
		return Config{}, err
	}
	if err = envInt64("PINN_SEED", &cfg.Seed); err != nil {
		return Config{}, err
	}
	if err = envInt("PINN_LOG_EVERY", &cfg.LogEvery); err != nil {
		return Config{}, err
	}

	return cfg, cfg.Validate()
}

func envFloat(key string, dst *float64) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return errorf("%s: cannot parse %q as float", key, s)
	}
	*dst = v
	return nil
}

func envInt(key string, dst *int) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return errorf("%s: cannot parse %q as int", key, s)
	}
	*dst = v
	return nil
}

func envInt64(key string, dst *int64) error {
	s, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errorf("%s: cannot parse %q as int", key, s)
	}
	*dst = v
	return nil
}
