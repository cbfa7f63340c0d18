package trader

import (
	"fmt"
	"time"

	"gitlab.com/aoterocom/AOQuantbot/database"
	"gitlab.com/aoterocom/AOQuantbot/helpers"
	"gitlab.com/aoterocom/AOQuantbot/interfaces"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

// Trader walks the signal rows in date order and mirrors position changes
// onto the exchange as market orders. A failed submission is logged and the
// row skipped; there is no retry and no reconciliation against fill state.
type Trader struct {
	exchangeService interfaces.ExchangeService
	dBService       *database.DBService
	Pair            string
	ModelVariant    string
	Delay           time.Duration
}

func NewTrader(exchangeService interfaces.ExchangeService, dBService *database.DBService,
	pair string, modelVariant string, delay time.Duration) *Trader {
	return &Trader{
		exchangeService: exchangeService,
		dBService:       dBService,
		Pair:            pair,
		ModelVariant:    modelVariant,
		Delay:           delay,
	}
}

// Run submits a buy for every entry row and a sell of the same size for
// every exit row, sleeping the configured delay between rows to throttle
// the exchange API.
func (t *Trader) Run(rows []models.SignalRow) {
	var openSize float64
	var openStop float64
	var openPosition *models.Position

	for _, row := range rows {
		timeNow := time.Now().String()

		switch row.Position {
		case 1:
			if row.PositionSize <= 0 {
				helpers.Logger.Warnln(fmt.Sprintf("%s: %s entry row with zero position size, skipped", timeNow, t.Pair))
				break
			}
			order, err := t.exchangeService.MakeOrder(t.Pair, row.PositionSize, row.Close,
				models.OrderTypeMarket, models.BUY)
			if err != nil {
				helpers.Logger.Errorln(fmt.Sprintf("%s: %s buy order failed: %s", timeNow, t.Pair, err.Error()))
				break
			}
			openSize = row.PositionSize
			openStop = row.StopLoss
			openPosition = models.NewPosition(order)
			helpers.Logger.Infoln(fmt.Sprintf("%s: %s ! Entry signal. Bought %.8f at %.8f, stop %.8f",
				timeNow, t.Pair, row.PositionSize, row.Close, row.StopLoss))

		case -1:
			if openSize <= 0 {
				break
			}
			order, err := t.exchangeService.MakeOrder(t.Pair, openSize, row.Close,
				models.OrderTypeMarket, models.SELL)
			if err != nil {
				helpers.Logger.Errorln(fmt.Sprintf("%s: %s sell order failed: %s", timeNow, t.Pair, err.Error()))
				break
			}
			helpers.Logger.Infoln(fmt.Sprintf("%s: %s ! Exit signal. Sold %.8f at %.8f",
				timeNow, t.Pair, openSize, row.Close))
			if openPosition != nil {
				openPosition.Exit(order)
				if t.dBService != nil {
					t.dBService.AddPosition(*openPosition, t.ModelVariant, openStop, openSize)
				}
			}
			openSize = 0
			openStop = 0
			openPosition = nil
		}

		if t.dBService != nil {
			t.dBService.AddSignal(row, t.Pair)
		}

		time.Sleep(t.Delay)
	}
}
