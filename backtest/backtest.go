package backtest

import (
	"fmt"

	"gitlab.com/aoterocom/AOQuantbot/helpers"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

// Result compares compounding a buy-and-hold position against compounding
// the lagged signal. Curves share the signal rows' date index and start at
// the initial capital.
type Result struct {
	BuyHoldCurve  []float64
	StrategyCurve []float64
	FinalBuyHold  float64
	FinalStrategy float64
	ProfitPct     float64
	Trades        int
	ProfitList    []float64
}

// Run compounds both equity curves over the signal rows. The strategy
// return at row t uses the signal from row t-1: a position opened on
// yesterday's close earns today's move, never its own.
func Run(rows []models.SignalRow, capital float64) (Result, error) {
	if len(rows) < 2 {
		return Result{}, fmt.Errorf("backtest: need at least 2 signal rows, got %d", len(rows))
	}

	result := Result{
		BuyHoldCurve:  make([]float64, len(rows)),
		StrategyCurve: make([]float64, len(rows)),
	}
	result.BuyHoldCurve[0] = capital
	result.StrategyCurve[0] = capital

	for i := 1; i < len(rows); i++ {
		periodReturn := rows[i].Close/rows[i-1].Close - 1
		result.BuyHoldCurve[i] = result.BuyHoldCurve[i-1] * (1 + periodReturn)
		result.StrategyCurve[i] = result.StrategyCurve[i-1] * (1 + float64(rows[i-1].Signal)*periodReturn)
	}

	result.FinalBuyHold = result.BuyHoldCurve[len(rows)-1]
	result.FinalStrategy = result.StrategyCurve[len(rows)-1]
	result.ProfitPct = (result.FinalStrategy/capital - 1) * 100
	result.Trades, result.ProfitList = tradeProfits(rows)

	return result, nil
}

// PositiveNegativeRatio reports winning trades per losing trade.
func (r Result) PositiveNegativeRatio() float64 {
	return helpers.PositiveNegativeRatio(r.ProfitList)
}

// tradeProfits pairs entries with exits and collects per-trade returns.
// A position still open on the last row is closed at the final close.
func tradeProfits(rows []models.SignalRow) (int, []float64) {
	trades := 0
	var profits []float64
	entryClose := 0.0

	for _, row := range rows {
		switch row.Position {
		case 1:
			trades++
			entryClose = row.Close
		case -1:
			if entryClose > 0 {
				profits = append(profits, row.Close/entryClose-1)
				entryClose = 0
			}
		}
	}
	if entryClose > 0 {
		profits = append(profits, rows[len(rows)-1].Close/entryClose-1)
	}

	return trades, profits
}
