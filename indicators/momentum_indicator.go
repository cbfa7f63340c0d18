package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
)

type momentumIndicator struct {
	indicator techan.Indicator
	window    int
}

// NewMomentumIndicator returns the difference between the current value and
// the value window periods ago.
func NewMomentumIndicator(baseIndicator techan.Indicator, window int) techan.Indicator {
	return momentumIndicator{
		indicator: baseIndicator,
		window:    window,
	}
}

func (mi momentumIndicator) Calculate(index int) big.Decimal {
	if index < mi.window {
		return big.NewDecimal(0.0)
	}

	return mi.indicator.Calculate(index).Sub(mi.indicator.Calculate(index - mi.window))
}
