package indicators

import (
	"math"
	"testing"
	"time"

	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
)

func seriesFromCloses(closes []float64) *techan.TimeSeries {
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
	return series
}

func TestBuildDatasetSuffixAlignment(t *testing.T) {
	closes := make([]float64, 50)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	series := seriesFromCloses(closes)

	ds, err := BuildDataset(series, "BTCEUR")
	assert.Nil(t, err)

	assert.Equal(t, 50-(MaxWindow-1), ds.Len())
	assert.Equal(t, series.Candles[MaxWindow-1].Period.Start, ds.Times[0])
	assert.Equal(t, series.Candles[49].Period.Start, ds.Times[ds.Len()-1])
	for i := 1; i < ds.Len(); i++ {
		assert.True(t, ds.Times[i].After(ds.Times[i-1]))
	}
}

func TestBuildDatasetLabels(t *testing.T) {
	closes := []float64{}
	for i := 0; i < 25; i++ {
		closes = append(closes, 100+float64(i))
	}
	// close drops on the last candle
	closes = append(closes, 90)
	series := seriesFromCloses(closes)

	ds, err := BuildDataset(series, "BTCEUR")
	assert.Nil(t, err)

	assert.Equal(t, ds.Len()-1, ds.LabeledLen())
	for i := 0; i < ds.LabeledLen()-1; i++ {
		assert.Equal(t, 1, ds.Labels[i])
	}
	assert.Equal(t, 0, ds.Labels[ds.LabeledLen()-1])
}

func TestRSIStaysBounded(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		// alternating gains and losses around a drifting base
		closes[i] = 100 + float64(i)/2 + 5*math.Sin(float64(i))
	}
	series := seriesFromCloses(closes)

	ds, err := BuildDataset(series, "ETHEUR")
	assert.Nil(t, err)

	for _, row := range ds.Features {
		rsi := row[4]
		assert.GreaterOrEqual(t, rsi, 0.0)
		assert.LessOrEqual(t, rsi, 100.0)
	}
}

func TestBuildDatasetFeatureValues(t *testing.T) {
	closes := make([]float64, 40)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	series := seriesFromCloses(closes)

	ds, err := BuildDataset(series, "BTCEUR")
	assert.Nil(t, err)

	// candle 19: sma over closes 100..119, momentum against candle 9
	assert.InDelta(t, 109.5, ds.Features[0][0], 1e-9)
	assert.InDelta(t, 10.0, ds.Features[0][2], 1e-9)

	// constant +1 steps have a deterministic sample deviation
	expectedStd := 0.0
	mean := 109.5
	for i := 100; i <= 119; i++ {
		expectedStd += (float64(i) - mean) * (float64(i) - mean)
	}
	expectedStd = math.Sqrt(expectedStd / 19)
	assert.InDelta(t, expectedStd, ds.Features[0][3], 1e-9)
}

func TestBuildDatasetNotEnoughCandles(t *testing.T) {
	closes := make([]float64, MaxWindow)
	for i := range closes {
		closes[i] = 100
	}
	series := seriesFromCloses(closes)

	_, err := BuildDataset(series, "BTCEUR")
	assert.NotNil(t, err)
}
