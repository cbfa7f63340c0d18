package signals

import (
	"fmt"

	"gitlab.com/aoterocom/AOQuantbot/helpers"
	"gitlab.com/aoterocom/AOQuantbot/interfaces"
	"gitlab.com/aoterocom/AOQuantbot/ml"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

// StopLossPct places the protective stop 2% below the entry close.
const StopLossPct = 0.02

// Sizer turns capital and a per-trade risk fraction into a share count.
type Sizer struct {
	Capital      float64
	RiskFraction float64
}

// Shares returns how many shares to buy so that hitting the stop loses
// Capital*RiskFraction. A stop at or above the close would make the
// per-share risk non-positive; that degenerate entry sizes to zero shares
// with a warning instead of dividing by it.
func (s Sizer) Shares(close float64, stop float64) float64 {
	riskPerShare := close - stop
	if riskPerShare <= 0 {
		helpers.Logger.Warnln(fmt.Sprintf("signals: stop %.8f at or above close %.8f, sizing entry to 0 shares", stop, close))
		return 0
	}
	return s.Capital * s.RiskFraction / riskPerShare
}

// Generate classifies every dataset row with the fitted model and derives
// the trade columns: signal in {0,1}, position as the first difference of
// the signal sequence (the first row enters from flat, so its position is
// the signal itself), and stop/size on entry rows.
func Generate(ds *models.Dataset, classifier interfaces.Classifier, sizer Sizer) []models.SignalRow {
	rows := make([]models.SignalRow, 0, ds.Len())

	previousSignal := 0
	for i := 0; i < ds.Len(); i++ {
		signal := ml.Classify(classifier, ds.Features[i])

		row := models.SignalRow{
			Time:   ds.Times[i],
			Close:  ds.Closes[i],
			Signal: signal,
		}
		if i == 0 {
			row.Position = signal
		} else {
			row.Position = signal - previousSignal
		}

		if row.Position == 1 {
			row.StopLoss = row.Close * (1 - StopLossPct)
			row.PositionSize = sizer.Shares(row.Close, row.StopLoss)
		}

		rows = append(rows, row)
		previousSignal = signal
	}

	return rows
}
