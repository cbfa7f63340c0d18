package database

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sdcoffey/techan"
	database "gitlab.com/aoterocom/AOQuantbot/database/models"
	"gitlab.com/aoterocom/AOQuantbot/models"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.Position{}, &database.Order{}, &database.Candle{},
		&database.SignalRecord{}, &database.BacktestRun{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

func (dbs *DBService) AddOrUpdateCandle(candle techan.Candle, symbol string) {
	dbCandle := database.Candle{
		Symbol:     symbol,
		Period:     candle.Period.Start.String() + " " + candle.Period.End.String(),
		OpenPrice:  candle.OpenPrice,
		ClosePrice: candle.ClosePrice,
		MaxPrice:   candle.MaxPrice,
		MinPrice:   candle.MinPrice,
		Volume:     candle.Volume,
		TradeCount: candle.TradeCount,
	}

	// Update columns to new value on conflict
	dbs.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "period"}},
		DoUpdates: clause.AssignmentColumns([]string{"symbol", "period", "open_price", "close_price", "max_price", "min_price", "volume", "trade_count"}),
	}).Create(&dbCandle)
}

func (dbs *DBService) AddSignal(row models.SignalRow, symbol string) uint {
	dbSignal := database.SignalRecord{
		Symbol:       symbol,
		Time:         row.Time,
		ClosePrice:   row.Close,
		Signal:       row.Signal,
		Position:     row.Position,
		StopLoss:     row.StopLoss,
		PositionSize: row.PositionSize,
	}
	dbs.DB.Create(&dbSignal)
	return dbSignal.ID
}

func (dbs *DBService) AddBacktestRun(symbol string, modelVariant string, rangeStart time.Time,
	rangeEnd time.Time, accuracy float64, finalBuyHold float64, finalStrategy float64,
	profitPct float64, trades int) uint {
	dbRun := database.BacktestRun{
		Symbol:        symbol,
		ModelVariant:  modelVariant,
		RangeStart:    rangeStart,
		RangeEnd:      rangeEnd,
		Accuracy:      accuracy,
		FinalBuyHold:  finalBuyHold,
		FinalStrategy: finalStrategy,
		ProfitPct:     profitPct,
		Trades:        trades,
	}
	dbs.DB.Create(&dbRun)
	return dbRun.ID
}

func (dbs *DBService) AddPosition(position models.Position, modelVariant string, stopLoss float64,
	positionSize float64) uint {

	dbPosition := database.Position{
		Symbol:       position.EntranceOrder().Symbol,
		ModelVariant: modelVariant,
		EntryTime:    position.EntranceOrder().Time,
		ExitTime:     -1,
		StopLoss:     stopLoss,
		PositionSize: positionSize,
		CostBasis:    position.CostBasis(),
		Orders:       []database.Order{orderToDBOrder(*position.EntranceOrder())},
	}
	if position.IsClosed() {
		dbPosition.ExitTime = position.ExitOrder().Time
		dbPosition.ExitValue = position.ExitValue()
		dbPosition.Profit = position.ProfitPct()
		dbPosition.Orders = append(dbPosition.Orders, orderToDBOrder(*position.ExitOrder()))
	}

	dbs.DB.Create(&dbPosition)
	return dbPosition.ID
}

func orderToDBOrder(order models.Order) database.Order {
	return database.Order{
		OrderID:                 order.OrderID,
		ClientOrderID:           order.ClientOrderID,
		Price:                   order.Price,
		OrigQuantity:            order.OrigQuantity,
		ExecutedQuantity:        order.ExecutedQuantity,
		CumulativeQuoteQuantity: order.CumulativeQuoteQuantity,
		Status:                  database.OrderStatusType(order.Status),
		Type:                    database.OrderType(order.Type),
		Side:                    database.SideType(order.Side),
		StopPrice:               order.StopPrice,
		Time:                    order.Time,
		UpdateTime:              order.UpdateTime,
	}
}
