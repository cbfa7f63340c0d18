package signals

import (
	"math"
	"testing"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOQuantbot/indicators"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

// sequenceClassifier replays a fixed prediction per row, in row order.
type sequenceClassifier struct {
	predictions []float64
	calls       int
}

func (sc *sequenceClassifier) Fit(features [][]float64, labels []int) error {
	return nil
}

func (sc *sequenceClassifier) Predict(features []float64) float64 {
	p := sc.predictions[sc.calls]
	sc.calls++
	return p
}

// momentumClassifier predicts "up" whenever the momentum column is positive.
type momentumClassifier struct{}

func (mc momentumClassifier) Fit(features [][]float64, labels []int) error {
	return nil
}

func (mc momentumClassifier) Predict(features []float64) float64 {
	if features[2] > 0 {
		return 1
	}
	return 0
}

func datasetFromCloses(closes []float64) *models.Dataset {
	ds := &models.Dataset{Pair: "BTCEUR"}
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, close := range closes {
		ds.Times = append(ds.Times, start.AddDate(0, 0, i))
		ds.Closes = append(ds.Closes, close)
		ds.Features = append(ds.Features, []float64{0, 0, 0, 0, 50})
	}
	return ds
}

func TestAllUpSignalEntersOnce(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104}
	ds := datasetFromCloses(closes)
	classifier := &sequenceClassifier{predictions: []float64{1, 1, 1, 1, 1}}

	rows := Generate(ds, classifier, Sizer{Capital: 10000, RiskFraction: 0.02})

	entries := 0
	for i, row := range rows {
		assert.Equal(t, 1, row.Signal)
		if row.Position == 1 {
			entries++
			assert.Equal(t, 0, i)
		} else {
			assert.Equal(t, 0, row.Position)
		}
	}
	assert.Equal(t, 1, entries)
}

func TestEntryRowCarriesStopAndSize(t *testing.T) {
	ds := datasetFromCloses([]float64{100, 101, 102})
	classifier := &sequenceClassifier{predictions: []float64{1, 1, 0}}

	rows := Generate(ds, classifier, Sizer{Capital: 10000, RiskFraction: 0.02})

	entry := rows[0]
	assert.Equal(t, 1, entry.Position)
	assert.InDelta(t, 98.0, entry.StopLoss, 1e-9)
	// capital at risk / per-share risk: 10000*0.02 / (100-98)
	assert.InDelta(t, 100.0, entry.PositionSize, 1e-9)
	assert.True(t, entry.PositionSize > 0)
	assert.False(t, math.IsInf(entry.PositionSize, 0))

	exit := rows[2]
	assert.Equal(t, -1, exit.Position)
	assert.Equal(t, 0.0, exit.StopLoss)
	assert.Equal(t, 0.0, exit.PositionSize)
}

func TestSizerGuardsDegenerateStop(t *testing.T) {
	sizer := Sizer{Capital: 10000, RiskFraction: 0.02}

	assert.Equal(t, 0.0, sizer.Shares(100, 100))
	assert.Equal(t, 0.0, sizer.Shares(100, 101))
	assert.Equal(t, 0.0, sizer.Shares(0, 0))
	assert.InDelta(t, 100.0, sizer.Shares(100, 98), 1e-9)
}

func TestUpThenDownSeriesSignalsOneRoundTrip(t *testing.T) {
	// 30 closes: +1 steps up to index 24, then -3 steps down
	closes := make([]float64, 30)
	for i := 0; i <= 24; i++ {
		closes[i] = 100 + float64(i)
	}
	for i := 25; i < 30; i++ {
		closes[i] = 124 - 3*float64(i-24)
	}

	series := techan.NewTimeSeries()
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, close := range closes {
		period := techan.NewTimePeriod(start.AddDate(0, 0, i), 24*time.Hour)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewDecimal(close)
		candle.ClosePrice = big.NewDecimal(close)
		candle.MaxPrice = big.NewDecimal(close + 1)
		candle.MinPrice = big.NewDecimal(close - 1)
		candle.Volume = big.NewDecimal(1000)
		series.AddCandle(candle)
	}

	ds, err := indicators.BuildDataset(series, "BTCEUR")
	assert.Nil(t, err)

	rows := Generate(ds, momentumClassifier{}, Sizer{Capital: 10000, RiskFraction: 0.02})

	entries, exits := 0, 0
	for i, row := range rows {
		switch row.Position {
		case 1:
			entries++
			assert.Equal(t, 0, i)
		case -1:
			exits++
			// momentum flips negative 3 rows after the peak row
			assert.Equal(t, closes[27], row.Close)
		}
	}
	assert.Equal(t, 1, entries)
	assert.Equal(t, 1, exits)
}
