package interfaces

import (
	"time"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

type ExchangeService interface {
	ConfigureClient()
	GetSeries(pair string, interval string, start time.Time, end time.Time) (techan.TimeSeries, error)
	GetTotalBalance(asset string) (float64, error)
	GetAvailableBalance(asset string) (float64, error)
	MakeOrder(pair string, quantity float64, rate float64, orderType models.OrderType,
		orderSide models.OrderSide) (models.Order, error)
	GetPairInfo(pair string) *models.PairInfo
}
