package pinn

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotLossCurves writes a PNG with the train and validation loss per
// epoch. Thin reporting wrapper: consumes History, touches no state.
func PlotLossCurves(history *History, path string) error {
	p := plot.New()
	p.Title.Text = "Training and Validation Loss"
	p.X.Label.Text = "Epoch"
	p.Y.Label.Text = "Loss"
	p.Add(plotter.NewGrid())

	trainLine, err := plotter.NewLine(seriesXY(history.Train))
	if err != nil {
		return err
	}
	trainLine.Color = color.RGBA{R: 20, G: 80, B: 200, A: 255}
	p.Add(trainLine)
	p.Legend.Add("train", trainLine)

	valLine, err := plotter.NewLine(seriesXY(history.Val))
	if err != nil {
		return err
	}
	valLine.Color = color.RGBA{R: 220, G: 120, B: 20, A: 255}
	p.Add(valLine)
	p.Legend.Add("validation", valLine)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

// PlotPredictions writes a PNG scatter of actual (red) and predicted
// (green) values against sample index.
func PlotPredictions(eval *Evaluation, path string) error {
	p := plot.New()
	p.Title.Text = "Actual vs Predicted Energy Consumption"
	p.X.Label.Text = "Sample Index"
	p.Y.Label.Text = "Energy Consumption"
	p.Add(plotter.NewGrid())

	actual, err := plotter.NewScatter(seriesXY(eval.Actual))
	if err != nil {
		return err
	}
	actual.GlyphStyle.Color = color.RGBA{R: 200, G: 30, B: 30, A: 200}
	actual.GlyphStyle.Radius = vg.Points(2.2)
	p.Add(actual)
	p.Legend.Add("actual", actual)

	predicted, err := plotter.NewScatter(seriesXY(eval.Predicted))
	if err != nil {
		return err
	}
	predicted.GlyphStyle.Color = color.RGBA{R: 30, G: 160, B: 30, A: 200}
	predicted.GlyphStyle.Radius = vg.Points(2.2)
	p.Add(predicted)
	p.Legend.Add("predicted", predicted)

	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}

func seriesXY(values []float64) plotter.XYs {
	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i].X = float64(i)
		xys[i].Y = v
	}
	return xys
}
