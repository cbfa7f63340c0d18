package paper

import (
	"fmt"
	"time"

	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

// PaperService is an in-memory ExchangeService: orders fill instantly at the
// requested rate and every submission is recorded. It backs paper mode and
// the package tests.
type PaperService struct {
	timeSeries techan.TimeSeries
	Orders     []models.Order
	balance    float64
}

func NewPaperService() *PaperService {
	return &PaperService{
		balance: 10000.0,
	}
}

func (paperService *PaperService) ConfigureClient() {
}

// SetSeries seeds the series GetSeries will serve.
func (paperService *PaperService) SetSeries(timeSeries techan.TimeSeries) {
	paperService.timeSeries = timeSeries
}

func (paperService *PaperService) GetSeries(pair string, interval string, start time.Time, end time.Time) (techan.TimeSeries, error) {
	return paperService.timeSeries, nil
}

func (paperService *PaperService) GetTotalBalance(asset string) (float64, error) {
	return paperService.balance, nil
}

func (paperService *PaperService) GetAvailableBalance(asset string) (float64, error) {
	return paperService.balance, nil
}

func (paperService *PaperService) MakeOrder(pair string, quantity float64, rate float64,
	orderType models.OrderType, orderSide models.OrderSide) (models.Order, error) {

	quantityString := fmt.Sprintf("%f", quantity)
	rateString := fmt.Sprintf("%f", rate)
	cumulativeQuantityString := fmt.Sprintf("%f", quantity*rate)

	var sideType models.SideType
	if orderSide == models.BUY {
		sideType = models.SideTypeBuy
	} else {
		sideType = models.SideTypeSell
	}

	order := models.NewOrder(pair, int64(len(paperService.Orders)+1), "0", rateString, quantityString,
		quantityString, cumulativeQuantityString, models.OrderStatusTypeFilled, orderType, sideType,
		time.Now().Unix(), time.Now().Unix(), false, false)

	paperService.Orders = append(paperService.Orders, order)
	return order, nil
}

func (paperService *PaperService) GetPairInfo(pair string) *models.PairInfo {
	return models.NewPairInfo(1000000, 0.00001, 0.00001, 8)
}
