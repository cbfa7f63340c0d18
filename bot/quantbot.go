package bot

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	str2duration "github.com/xhit/go-str2duration/v2"
	"gitlab.com/aoterocom/AOQuantbot/backtest"
	"gitlab.com/aoterocom/AOQuantbot/database"
	"gitlab.com/aoterocom/AOQuantbot/helpers"
	"gitlab.com/aoterocom/AOQuantbot/indicators"
	"gitlab.com/aoterocom/AOQuantbot/interfaces"
	"gitlab.com/aoterocom/AOQuantbot/ml"
	binance "gitlab.com/aoterocom/AOQuantbot/providers/binance"
	"gitlab.com/aoterocom/AOQuantbot/signals"
	"gitlab.com/aoterocom/AOQuantbot/trader"
	"gitlab.com/aoterocom/AOQuantbot/ui"
)

const dateLayout = "2006-01-02"

type Bot struct {
}

func init() {
	cwd, _ := os.Getwd()
	_ = godotenv.Load(cwd + "/conf.env")
}

// RunBacktest fetches the series, trains the selected model, generates
// signals and reports strategy versus buy-and-hold equity.
func (qb *Bot) RunBacktest(c *cli.Context) error {
	helpers.Logger.Infoln("🖖🏻 Quantbot backtest started")
	return qb.run(c, false)
}

// RunTrade runs the same pipeline and then drives the live order loop.
func (qb *Bot) RunTrade(c *cli.Context) error {
	helpers.Logger.Infoln("🖖🏻 Quantbot trader started")
	return qb.run(c, true)
}

func (qb *Bot) run(c *cli.Context, live bool) error {
	pair := stringParam(c, "pair")
	if pair == "" {
		return fmt.Errorf("error: couldn't initialize bot. No pair set")
	}
	modelVariant := stringParam(c, "model")
	if modelVariant == "" {
		modelVariant = "forest"
	}
	interval := os.Getenv("interval")
	if interval == "" {
		interval = "1d"
	}

	start, end, err := dateRange(c)
	if err != nil {
		return err
	}

	riskFraction := floatEnv("riskFraction", 0.02)

	var dBService *database.DBService
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled {
		dBService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"),
			os.Getenv("databaseName"), os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
	}

	var exchangeService interfaces.ExchangeService
	if dBService != nil {
		exchangeService = binance.NewBinanceDBService(dBService)
	} else {
		exchangeService = binance.NewBinanceService()
	}

	capital := floatEnv("capital", 10000.0)
	if live {
		capital = resolveCapital(exchangeService, capital)
	}

	series, err := exchangeService.GetSeries(pair, interval, start, end)
	if err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("%s: error fetching series: %s", pair, err.Error()))
		return err
	}
	helpers.Logger.Infoln(fmt.Sprintf("%s: fetched %d candles (%s, %s → %s)", pair,
		len(series.Candles), interval, start.Format(dateLayout), end.Format(dateLayout)))

	ds, err := indicators.BuildDataset(&series, pair)
	if err != nil {
		return err
	}

	classifier, err := qb.buildClassifier(modelVariant, ds.LabeledFeatures(), ds.Labels)
	if err != nil {
		return err
	}

	accuracy, err := ml.EvaluateHoldout(classifier, ds.LabeledFeatures(), ds.Labels)
	if err != nil {
		return err
	}
	helpers.Logger.Infoln(fmt.Sprintf("%s: %s model held-out accuracy %.2f%%", pair, modelVariant, accuracy*100))

	sizer := signals.Sizer{Capital: capital, RiskFraction: riskFraction}
	rows := signals.Generate(ds, classifier, sizer)

	result, err := backtest.Run(rows, capital)
	if err != nil {
		return err
	}
	helpers.Logger.Infoln(fmt.Sprintf("%s: buy&hold final %.2f, strategy final %.2f (%.2f%%), %d trades, win/loss ratio %.2f",
		pair, result.FinalBuyHold, result.FinalStrategy, result.ProfitPct, result.Trades, result.PositiveNegativeRatio()))

	if dBService != nil {
		dBService.AddBacktestRun(pair, modelVariant, start, end, accuracy,
			result.FinalBuyHold, result.FinalStrategy, result.ProfitPct, result.Trades)
	}

	if live {
		delay := 2 * time.Second
		if delayString := os.Getenv("orderDelay"); delayString != "" {
			delay, err = str2duration.ParseDuration(delayString)
			if err != nil {
				return fmt.Errorf("error parsing orderDelay %q: %w", delayString, err)
			}
		}
		if quoteAsset := os.Getenv("quoteAsset"); quoteAsset != "" {
			if total, err := exchangeService.GetTotalBalance(quoteAsset); err == nil && total > 0 {
				helpers.Logger.Infoln(fmt.Sprintf("%s balance: %.8f total, %.8f committed as capital", quoteAsset, total, capital))
			}
		}
		liveTrader := trader.NewTrader(exchangeService, dBService, pair, modelVariant, delay)
		liveTrader.Run(rows)
		return nil
	}

	showChart, _ := strconv.ParseBool(os.Getenv("showChart"))
	if c.Bool("chart") || showChart {
		equityChart := ui.EquityChart{Pair: pair, Result: result}
		equityChart.Run()
	}

	return nil
}

func (qb *Bot) buildClassifier(modelVariant string, features [][]float64, labels []int) (interfaces.Classifier, error) {
	switch modelVariant {
	case "forest":
		// Grid search only sees the chronological training region, the
		// held-out tail stays unseen until evaluation.
		trainX, trainY, _, _ := ml.TrainTestSplit(features, labels, 0.8)
		cfg, cvScore, err := ml.GridSearchForest(trainX, trainY, ml.DefaultForestGrid(), 5)
		if err != nil {
			return nil, err
		}
		helpers.Logger.Infoln(fmt.Sprintf("grid search selected %d trees, depth %d, minSplit %d, minLeaf %d (cv accuracy %.2f%%)",
			cfg.Trees, cfg.MaxDepth, cfg.MinSplit, cfg.MinLeaf, cvScore*100))
		return ml.NewForest(cfg), nil
	case "network":
		return ml.NewNetwork(ml.DefaultNetworkConfig()), nil
	default:
		return nil, fmt.Errorf("error: unknown model variant '%s' (want 'forest' or 'network')", modelVariant)
	}
}

// resolveCapital sizes live trading off the available balance of the quote
// asset. The configured capital backs runs without a quoteAsset and any
// balance lookup failure.
func resolveCapital(exchangeService interfaces.ExchangeService, fallback float64) float64 {
	quoteAsset := os.Getenv("quoteAsset")
	if quoteAsset == "" {
		return fallback
	}
	balance, err := exchangeService.GetAvailableBalance(quoteAsset)
	if err != nil {
		helpers.Logger.Warnln(fmt.Sprintf("error fetching %s balance, using configured capital: %s", quoteAsset, err.Error()))
		return fallback
	}
	if balance <= 0 {
		return fallback
	}
	return balance
}

func stringParam(c *cli.Context, name string) string {
	if v := c.String(name); v != "" {
		return v
	}
	return os.Getenv(name)
}

func floatEnv(name string, fallback float64) float64 {
	if v := os.Getenv(name); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func dateRange(c *cli.Context) (time.Time, time.Time, error) {
	startString := stringParam(c, "start")
	if startString == "" {
		startString = os.Getenv("startDate")
	}
	endString := stringParam(c, "end")
	if endString == "" {
		endString = os.Getenv("endDate")
	}

	end := time.Now()
	var err error
	if endString != "" {
		end, err = time.Parse(dateLayout, endString)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("error parsing end date %q: %w", endString, err)
		}
	}

	start := end.AddDate(-1, 0, 0)
	if startString != "" {
		start, err = time.Parse(dateLayout, startString)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("error parsing start date %q: %w", startString, err)
		}
	}

	if !start.Before(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("error: start date %s is not before end date %s",
			start.Format(dateLayout), end.Format(dateLayout))
	}
	return start, end, nil
}
