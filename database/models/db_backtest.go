package database

import (
	"time"

	"gorm.io/gorm"
)

type BacktestRun struct {
	gorm.Model
	Symbol        string `gorm:"index;size:200"`
	ModelVariant  string `gorm:"size:50"`
	RangeStart    time.Time
	RangeEnd      time.Time
	Accuracy      float64
	FinalBuyHold  float64
	FinalStrategy float64
	ProfitPct     float64
	Trades        int
}
