package indicators

import (
	"fmt"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

// Rolling windows of the feature columns. MaxWindow rules how many leading
// candles are dropped: a feature row exists only where every window is full.
const (
	SMAWindow        = 20
	EMAWindow        = 20
	MomentumWindow   = 10
	VolatilityWindow = 20
	RSIWindow        = 14

	MaxWindow = 20
)

// BuildDataset turns a candle series into the feature table the classifiers
// train on. Rows kept = len(candles) - (MaxWindow - 1), original order
// preserved. The label of a row is 1 when the next candle closes higher.
func BuildDataset(series *techan.TimeSeries, pair string) (*models.Dataset, error) {
	n := len(series.Candles)
	if n < MaxWindow+1 {
		return nil, fmt.Errorf("indicators: need at least %d candles to build a dataset, got %d", MaxWindow+1, n)
	}

	closePrices := techan.NewClosePriceIndicator(series)
	sma := techan.NewSimpleMovingAverage(closePrices, SMAWindow)
	ema := techan.NewEMAIndicator(closePrices, EMAWindow)
	momentum := NewMomentumIndicator(closePrices, MomentumWindow)
	volatility := NewWindowedStandardDeviationIndicator(closePrices, VolatilityWindow)
	rsi := techan.NewRelativeStrengthIndexIndicator(closePrices, RSIWindow)

	ds := &models.Dataset{Pair: pair}
	for i := MaxWindow - 1; i < n; i++ {
		candle := series.Candles[i]
		ds.Times = append(ds.Times, candle.Period.Start)
		ds.Closes = append(ds.Closes, candle.ClosePrice.Float())
		ds.Features = append(ds.Features, []float64{
			sma.Calculate(i).Float(),
			ema.Calculate(i).Float(),
			momentum.Calculate(i).Float(),
			volatility.Calculate(i).Float(),
			rsi.Calculate(i).Float(),
		})

		if i < n-1 {
			label := 0
			if series.Candles[i+1].ClosePrice.GT(candle.ClosePrice) {
				label = 1
			}
			ds.Labels = append(ds.Labels, label)
		}
	}

	return ds, nil
}
