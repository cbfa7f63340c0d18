package database

import (
	"time"

	"gorm.io/gorm"
)

type SignalRecord struct {
	gorm.Model
	Symbol       string `gorm:"index;size:200"`
	Time         time.Time
	ClosePrice   float64
	Signal       int
	Position     int
	StopLoss     float64
	PositionSize float64
}
