package database

import "gorm.io/gorm"

// Position is a pair of two Order objects
type Position struct {
	gorm.Model
	Symbol       string  `json:"symbol"`
	ModelVariant string  `gorm:"size:50"`
	EntryTime    int64   `json:"entryTime"`
	ExitTime     int64   `json:"exitTime"`
	Orders       []Order `gorm:"foreignKey:PositionID"`
	StopLoss     float64
	PositionSize float64
	CostBasis    float64
	ExitValue    float64
	Profit       float64
}
