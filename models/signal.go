package models

import "time"

// SignalRow is one dated row of the generated signal table. Signal is the
// predicted next-period direction (1 up, 0 down/flat). Position is the first
// difference of the signal sequence: +1 entry, -1 exit, 0 hold. On entry
// rows StopLoss carries the protective stop and PositionSize the share
// count; both are zero elsewhere.
type SignalRow struct {
	Time         time.Time
	Close        float64
	Signal       int
	Position     int
	StopLoss     float64
	PositionSize float64
}
