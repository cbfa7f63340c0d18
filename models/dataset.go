package models

import "time"

// FeatureNames are the indicator columns of a Dataset, in matrix order.
var FeatureNames = []string{"sma20", "ema20", "momentum10", "volatility20", "rsi14"}

// Dataset is the feature table built from a price series. Rows are a strict
// suffix of the candles the series was built from: candles without enough
// history for every rolling window are dropped. Labels[i] is 1 when the
// close of row i+1 is above the close of row i, so the last row is unlabeled
// and len(Labels) == len(Times)-1.
type Dataset struct {
	Pair     string
	Times    []time.Time
	Closes   []float64
	Features [][]float64
	Labels   []int
}

func (ds *Dataset) Len() int {
	return len(ds.Times)
}

// LabeledFeatures returns the feature rows that carry a label.
func (ds *Dataset) LabeledFeatures() [][]float64 {
	if ds.Len() == 0 {
		return nil
	}
	return ds.Features[:ds.Len()-1]
}

func (ds *Dataset) LabeledLen() int {
	return len(ds.Labels)
}
