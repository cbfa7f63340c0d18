package binance

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/joho/godotenv"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOQuantbot/database"
	"gitlab.com/aoterocom/AOQuantbot/helpers"
	"gitlab.com/aoterocom/AOQuantbot/models"
)

type BinanceService struct {
	binanceClient *binance.Client
	dBService     *database.DBService
	apiKey        string
	apiSecret     string
}

func NewBinanceService() *BinanceService {
	binanceService := BinanceService{}
	binanceService.ConfigureClient()
	return &binanceService
}

func NewBinanceDBService(databaseService *database.DBService) *BinanceService {
	binanceService := BinanceService{
		dBService: databaseService,
	}
	binanceService.ConfigureClient()
	return &binanceService
}

func init() {
	cwd, _ := os.Getwd()
	dir := os.Getenv("CONF_FILE")
	if dir == "" {
		dir = "/conf.env"
	}
	_ = godotenv.Load(cwd + dir)
}

func (binanceService *BinanceService) ConfigureClient() {
	binanceService.apiKey = os.Getenv("binanceAPIKey")
	binanceService.apiSecret = os.Getenv("binanceAPISecret")
	binanceService.binanceClient = binance.NewClient(binanceService.apiKey, binanceService.apiSecret)
}

// GetSeries fetches the klines between start and end and materializes them
// as a techan series, paginating the API's 1000-candle pages.
func (binanceService *BinanceService) GetSeries(pair string, interval string, start time.Time, end time.Time) (techan.TimeSeries, error) {
	timeSeries := techan.TimeSeries{}

	candleDuration, err := str2duration.ParseDuration(interval)
	if err != nil {
		return timeSeries, fmt.Errorf("error parsing interval %q: %w", interval, err)
	}

	var resultKlines []*binance.Kline
	pageStart := start
	for pageStart.Before(end) {
		klines, err := binanceService.binanceClient.NewKlinesService().Symbol(pair).
			Interval(interval).Limit(1000).
			StartTime(pageStart.Unix() * 1000).EndTime(end.Unix() * 1000).Do(context.Background())
		if err != nil {
			return timeSeries, err
		}
		if len(klines) == 0 {
			break
		}

		resultKlines = append(resultKlines, klines...)
		pageStart = time.Unix(klines[len(klines)-1].CloseTime/1000+1, 0)
		if len(klines) < 1000 {
			break
		}
	}

	for _, k := range resultKlines {
		period := techan.NewTimePeriod(time.Unix(k.OpenTime/1000, 0), candleDuration)
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewFromString(k.Open)
		candle.ClosePrice = big.NewFromString(k.Close)
		candle.MaxPrice = big.NewFromString(k.High)
		candle.MinPrice = big.NewFromString(k.Low)
		candle.TradeCount = uint(k.TradeNum)
		candle.Volume = big.NewFromString(k.Volume)
		if binanceService.dBService != nil {
			binanceService.dBService.AddOrUpdateCandle(*candle, pair)
		}
		timeSeries.AddCandle(candle)
	}

	return timeSeries, nil
}

func (binanceService *BinanceService) GetTotalBalance(asset string) (float64, error) {
	res, err := binanceService.binanceClient.NewGetAccountService().Do(context.Background())
	if err != nil {
		return 0, err
	}
	for _, v := range res.Balances {
		if v.Asset == asset {

			free, err := strconv.ParseFloat(v.Free, 64)
			if err != nil {
				return 0, err
			}

			locked, err := strconv.ParseFloat(v.Locked, 64)
			if err != nil {
				return 0, err
			}

			return free + locked, nil
		}
	}

	return -1.0, fmt.Errorf("error: unknown error getting through the balances")
}

func (binanceService *BinanceService) GetAvailableBalance(asset string) (float64, error) {
	res, err := binanceService.binanceClient.NewGetAccountService().Do(context.Background())
	if err != nil {
		return 0, err
	}
	for _, v := range res.Balances {
		if v.Asset == asset {

			free, err := strconv.ParseFloat(v.Free, 64)
			if err != nil {
				return 0, err
			}

			return free, nil
		}
	}

	return -1.0, fmt.Errorf("error: unknown error getting through the balances")
}

// MakeOrder submits an order for quantity base units. The quantity is
// snapped to the pair's lot step before submission.
func (binanceService *BinanceService) MakeOrder(pair string, quantity float64, rate float64,
	orderType models.OrderType, orderSide models.OrderSide) (models.Order, error) {

	// Get pairInfo to correct quantity price deflections
	pairInfo := binanceService.GetPairInfo(pair)
	quantity, err := lotSizeQuantity(quantity, pairInfo)
	if err != nil {
		return models.NewEmptyOrder(), fmt.Errorf("error preparing %s order: %w", pair, err)
	}

	var sideType binance.SideType
	if orderSide == models.BUY {
		sideType = binance.SideTypeBuy
	} else {
		sideType = binance.SideTypeSell
	}

	binanceOrderType := binance.OrderType(orderType)

	formatString := fmt.Sprintf("%%.%df", pairInfo.Precision)
	preparedOrder := binanceService.binanceClient.NewCreateOrderService().Symbol(pair).
		Side(sideType).Type(binanceOrderType).Quantity(fmt.Sprintf(formatString, quantity))

	if binanceOrderType == binance.OrderTypeLimit {
		order, err := preparedOrder.
			TimeInForce(binance.TimeInForceTypeGTC).Price(fmt.Sprintf("%.2f", rate)).Do(context.Background())
		if err != nil {
			return models.NewEmptyOrder(), err
		}
		return binanceService.orderResponseToOrder(*order), nil
	}

	order, err := preparedOrder.Do(context.Background())
	if err != nil {
		return models.NewEmptyOrder(), err
	}
	return binanceService.orderResponseToOrder(*order), nil
}

// lotSizeQuantity snaps quantity to the pair's lot step precision. Without
// pair info there is no step to snap to, so no order should go out.
func lotSizeQuantity(quantity float64, pairInfo *models.PairInfo) (float64, error) {
	if pairInfo == nil {
		return 0, fmt.Errorf("error: no pair info available to size the order")
	}
	stepString := strconv.FormatFloat(pairInfo.StepSize, 'f', -1, 64)
	stepDecLength := len(stepString) - 2
	stepDecLengthFormatString := fmt.Sprintf("%%.%df", stepDecLength)
	quantityString := fmt.Sprintf(stepDecLengthFormatString, quantity)
	return strconv.ParseFloat(quantityString, 64)
}

func (binanceService *BinanceService) GetPairInfo(pair string) *models.PairInfo {
	info, err := binanceService.binanceClient.NewExchangeInfoService().Do(context.Background())
	if err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("error fetching exchange info for %s: %s", pair, err.Error()))
		return nil
	}
	for _, symbol := range info.Symbols {
		if strings.Contains(symbol.Symbol, pair) {

			maxPrice, _ := strconv.ParseFloat(symbol.LotSizeFilter().MaxQuantity, 64)
			minPrice, _ := strconv.ParseFloat(symbol.LotSizeFilter().MinQuantity, 64)
			tickSize, _ := strconv.ParseFloat(symbol.LotSizeFilter().StepSize, 64)
			pairInfo := models.NewPairInfo(maxPrice, minPrice,
				tickSize, symbol.QuotePrecision)

			return pairInfo
		}
	}
	return nil
}

func (binanceService *BinanceService) orderResponseToOrder(o binance.CreateOrderResponse) models.Order {
	return models.NewOrder(o.Symbol, o.OrderID, o.ClientOrderID, o.Price, o.OrigQuantity, o.ExecutedQuantity,
		o.CummulativeQuoteQuantity, models.OrderStatusType(o.Status), models.OrderType(o.Type), models.SideType(o.Side),
		o.TransactTime, 0, false, false)
}
