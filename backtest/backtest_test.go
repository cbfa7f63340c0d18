package backtest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

func rowsFrom(closes []float64, signalsSeq []int) []models.SignalRow {
	start := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := make([]models.SignalRow, len(closes))
	previous := 0
	for i := range closes {
		position := signalsSeq[i] - previous
		if i == 0 {
			position = signalsSeq[0]
		}
		rows[i] = models.SignalRow{
			Time:     start.AddDate(0, 0, i),
			Close:    closes[i],
			Signal:   signalsSeq[i],
			Position: position,
		}
		previous = signalsSeq[i]
	}
	return rows
}

func TestStrategyUsesLaggedSignal(t *testing.T) {
	// constant +1% up-trend, signal turns on at row 2
	closes := []float64{100, 101, 102.01, 103.0301, 104.060401}
	signalsSeq := []int{0, 0, 1, 1, 1}

	result, err := Run(rowsFrom(closes, signalsSeq), 1000)
	assert.Nil(t, err)

	// the row where the signal first turns on earns nothing
	assert.InDelta(t, 1.0, result.StrategyCurve[2]/result.StrategyCurve[1], 1e-9)
	// the following rows earn the period return
	assert.InDelta(t, 1.01, result.StrategyCurve[3]/result.StrategyCurve[2], 1e-9)
	assert.InDelta(t, 1.01, result.StrategyCurve[4]/result.StrategyCurve[3], 1e-9)
	// buy&hold compounds every period
	assert.InDelta(t, 1000*1.01*1.01*1.01*1.01, result.FinalBuyHold, 1e-6)
}

func TestAlwaysLongTracksBuyAndHold(t *testing.T) {
	closes := []float64{100, 101, 102.01, 103.0301}
	signalsSeq := []int{1, 1, 1, 1}

	result, err := Run(rowsFrom(closes, signalsSeq), 1000)
	assert.Nil(t, err)

	for i := range closes {
		assert.InDelta(t, result.BuyHoldCurve[i], result.StrategyCurve[i], 1e-9)
	}
}

func TestTradeProfitsPairEntriesWithExits(t *testing.T) {
	closes := []float64{100, 110, 121, 110, 100, 105}
	signalsSeq := []int{1, 1, 0, 0, 1, 0}

	result, err := Run(rowsFrom(closes, signalsSeq), 1000)
	assert.Nil(t, err)

	assert.Equal(t, 2, result.Trades)
	assert.Equal(t, 2, len(result.ProfitList))
	assert.InDelta(t, 0.21, result.ProfitList[0], 1e-9)
	assert.InDelta(t, 0.05, result.ProfitList[1], 1e-9)
	assert.InDelta(t, 0.0, result.PositiveNegativeRatio(), 1e-9)
}

func TestOpenTradeClosesAtFinalRow(t *testing.T) {
	closes := []float64{100, 105, 110}
	signalsSeq := []int{1, 1, 1}

	result, err := Run(rowsFrom(closes, signalsSeq), 1000)
	assert.Nil(t, err)

	assert.Equal(t, 1, result.Trades)
	assert.Equal(t, 1, len(result.ProfitList))
	assert.InDelta(t, 0.10, result.ProfitList[0], 1e-9)
}

func TestRunNeedsTwoRows(t *testing.T) {
	_, err := Run([]models.SignalRow{{Close: 100}}, 1000)
	assert.NotNil(t, err)
}
