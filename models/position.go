package models

import (
	"strconv"
)

// Position is a pair of two Order objects
type Position struct {
	orders [2]*Order
}

// NewPosition returns a new Position with the passed-in order as the open order
func NewPosition(openOrder Order) (t *Position) {
	t = new(Position)
	t.orders[0] = &openOrder

	return t
}

// Exit sets the exit order to the order passed in
func (p *Position) Exit(order Order) {
	p.orders[1] = &order
}

// IsOpen returns true if there is an entrance order but no exit order
func (p *Position) IsOpen() bool {
	return p.EntranceOrder() != nil && p.ExitOrder() == nil
}

// IsClosed returns true of there are both entrance and exit orders
func (p *Position) IsClosed() bool {
	return p.EntranceOrder() != nil && p.ExitOrder() != nil
}

// EntranceOrder returns the entrance order of this position
func (p *Position) EntranceOrder() *Order {
	return p.orders[0]
}

// ExitOrder returns the exit order of this position
func (p *Position) ExitOrder() *Order {
	return p.orders[1]
}

// CostBasis returns the price to enter this position
func (p *Position) CostBasis() float64 {
	if p.EntranceOrder() != nil {
		cumulativeQuoteQuantity, _ := strconv.ParseFloat(p.EntranceOrder().CumulativeQuoteQuantity, 64)
		return cumulativeQuoteQuantity
	}
	return -1.0
}

// ExitValue returns the value accrued by closing the position
func (p *Position) ExitValue() float64 {
	if p.IsClosed() {
		executedQuantity, _ := strconv.ParseFloat(p.ExitOrder().ExecutedQuantity, 64)
		price, _ := strconv.ParseFloat(p.ExitOrder().Price, 64)
		return executedQuantity * price
	}
	return -1.0
}

// ProfitPct returns the final profit percentage of a closed position
func (p *Position) ProfitPct() float64 {
	if p.IsOpen() {
		return -1.0
	}
	enterCumulativeQuoteQuantity, _ := strconv.ParseFloat(p.EntranceOrder().CumulativeQuoteQuantity, 64)
	exitCumulativeQuoteQuantity, _ := strconv.ParseFloat(p.ExitOrder().CumulativeQuoteQuantity, 64)
	return (exitCumulativeQuoteQuantity/enterCumulativeQuoteQuantity - 1) * 100
}
