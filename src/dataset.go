package pinn

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// FeatureColumns names the nine process-state measurements, in the order
// the model consumes them.
var FeatureColumns = []string{
	"Average Outflow",
	"Average Inflow",
	"Ammonia",
	"Biological Oxygen Demand",
	"Chemical Oxygen Demand",
	"Total Nitrogen",
	"Average Temperature",
	"Average humidity",
	"Total rainfall",
}

// TargetColumn names the regression target.
const TargetColumn = "Energy Consumption"

// Channel indices into a feature row, matching FeatureColumns.
const (
	colOutflow = iota
	colInflow
	colAmmonia
	colBOD
	colCOD
	colTotalNitrogen
	colTemperature
	colHumidity
	colRainfall
)

// NumFeatures is the model's fixed input dimension.
const NumFeatures = 9

// Dataset pairs a feature matrix with its aligned target column.
type Dataset struct {
	X *mat.Dense // n x NumFeatures
	Y *mat.Dense // n x 1
}

// Len returns the number of samples.
func (d Dataset) Len() int {
	if d.X == nil {
		return 0
	}
	r, _ := d.X.Dims()
	return r
}

// ReadCSV parses a headered table into feature and target matrices.
// Every FeatureColumns entry and TargetColumn must be present; rows with
// missing or non-numeric values in those columns are rejected.
func ReadCSV(r io.Reader) (*mat.Dense, *mat.Dense, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, nil, errorf("reading CSV header: %v", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	cols := make([]int, 0, NumFeatures+1)
	names := append(append([]string{}, FeatureColumns...), TargetColumn)
	for _, name := range names {
		idx, ok := index[name]
		if !ok {
			return nil, nil, &MissingFeatureError{Column: name}
		}
		cols = append(cols, idx)
	}

	var features []float64
	var targets []float64
	row := 0
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// A record with the wrong field count is invalid data, not
			// an I/O failure.
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, nil, &DataFormatError{Row: row + 1}
			}
			return nil, nil, errorf("reading CSV row %d: %v", row+1, err)
		}
		row++
		for j, idx := range cols {
			raw := strings.TrimSpace(record[idx])
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, nil, &DataFormatError{Row: row, Column: names[j], Value: raw}
			}
			if j < NumFeatures {
				features = append(features, v)
			} else {
				targets = append(targets, v)
			}
		}
	}

	if row == 0 {
		return nil, nil, errorf("input table has no data rows")
	}

	return mat.NewDense(row, NumFeatures, features), mat.NewDense(row, 1, targets), nil
}
