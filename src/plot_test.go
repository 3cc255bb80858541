package pinn

import (
	"os"
	"path/filepath"
	"testing"
)

func TestPlotLossCurves(t *testing.T) {
	history := &History{
		Train: []float64{0.5, 0.3, 0.2, 0.15},
		Val:   []float64{0.6, 0.4, 0.3, 0.25},
	}

	path := filepath.Join(t.TempDir(), "loss.png")
	if err := PlotLossCurves(history, path); err != nil {
		t.Fatalf("PlotLossCurves: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat plot: %v", err)
	}
	if info.Size() == 0 {
		t.Error("plot file is empty")
	}
}

func TestPlotPredictions(t *testing.T) {
	eval := &Evaluation{
		Actual:    []float64{100, 120, 90, 140},
		Predicted: []float64{105, 118, 95, 133},
	}

	path := filepath.Join(t.TempDir(), "scatter.png")
	if err := PlotPredictions(eval, path); err != nil {
		t.Fatalf("PlotPredictions: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat plot: %v", err)
	}
}
