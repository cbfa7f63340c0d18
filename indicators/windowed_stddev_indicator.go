package indicators

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/AOQuantbot/helpers"
)

type windowedStandardDeviationIndicator struct {
	indicator techan.Indicator
	window    int
}

// NewWindowedStandardDeviationIndicator returns the sample standard
// deviation of the last window values of the base indicator.
func NewWindowedStandardDeviationIndicator(baseIndicator techan.Indicator, window int) techan.Indicator {
	return windowedStandardDeviationIndicator{
		indicator: baseIndicator,
		window:    window,
	}
}

func (wsi windowedStandardDeviationIndicator) Calculate(index int) big.Decimal {
	if index < wsi.window-1 {
		return big.NewDecimal(0.0)
	}

	values := make([]float64, 0, wsi.window)
	for i := index - wsi.window + 1; i <= index; i++ {
		values = append(values, wsi.indicator.Calculate(i).Float())
	}

	return big.NewDecimal(helpers.StdDev(values, helpers.Mean(values)))
}
