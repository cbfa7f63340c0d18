package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/AOQuantbot/bot"
)

func main() {
	quantbot := bot.Bot{}

	pipelineFlags := []cli.Flag{
		&cli.StringFlag{Name: "pair", Usage: "pair to trade, e.g. BTCEUR"},
		&cli.StringFlag{Name: "model", Usage: "classifier variant: forest or network"},
		&cli.StringFlag{Name: "start", Usage: "range start date (2006-01-02)"},
		&cli.StringFlag{Name: "end", Usage: "range end date (2006-01-02)"},
	}

	app := &cli.App{
		Name:  "quantbot",
		Usage: "classifier-driven signal trading bot",
		Commands: []*cli.Command{
			{
				Name:   "backtest",
				Usage:  "train the classifier and compare strategy equity to buy&hold",
				Flags:  append(pipelineFlags, &cli.BoolFlag{Name: "chart", Usage: "render the equity curves"}),
				Action: quantbot.RunBacktest,
			},
			{
				Name:   "trade",
				Usage:  "train the classifier and submit live orders on signal changes",
				Flags:  pipelineFlags,
				Action: quantbot.RunTrade,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalln(err)
	}
}
