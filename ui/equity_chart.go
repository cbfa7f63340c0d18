package ui

import (
	"fmt"

	"github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
	"gitlab.com/aoterocom/AOQuantbot/backtest"
	"gitlab.com/aoterocom/AOQuantbot/helpers"
)

type EquityChart struct {
	Pair   string
	Result backtest.Result
}

// Run renders buy-and-hold versus strategy equity until q or Ctrl-C.
func (ec *EquityChart) Run() {
	if err := termui.Init(); err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("failed to initialize termui: %v", err))
		return
	}
	defer termui.Close()

	ec.render()

	uiEvents := termui.PollEvents()
	for {
		e := <-uiEvents
		switch e.ID {
		case "q", "<C-c>":
			helpers.Logger.Infoln("Exited by keyboard interrupt")
			return
		case "<Resize>":
			ec.render()
		}
	}
}

func (ec *EquityChart) render() {
	width, height := termui.TerminalDimensions()

	plot := widgets.NewPlot()
	plot.Block.Title = fmt.Sprintf("Cumulative return %s (1: buy&hold 2: strategy)", ec.Pair)
	plot.Data = [][]float64{ec.Result.BuyHoldCurve, ec.Result.StrategyCurve}
	plot.LineColors = []termui.Color{termui.ColorYellow, termui.ColorGreen}
	plot.AxesColor = termui.ColorWhite
	plot.SetRect(0, 0, width, height-5)

	summary := widgets.NewParagraph()
	summary.Block.Title = "Backtest"
	summary.Text = fmt.Sprintf("Final buy&hold: %.2f\n", ec.Result.FinalBuyHold)
	summary.Text += fmt.Sprintf("Final strategy: %.2f\n", ec.Result.FinalStrategy)
	summary.Text += fmt.Sprintf("Profit: %.2f%%  Trades: %d\n", ec.Result.ProfitPct, ec.Result.Trades)
	summary.SetRect(0, height-5, width, height)

	termui.Render(plot, summary)
}
