package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"

	"TrendCast/internal/di"
	"TrendCast/internal/render"
	"TrendCast/internal/usecase"
	"TrendCast/pkg/config"
	applogger "TrendCast/pkg/logger"
)

// unsetFlag marks a numeric flag the user did not pass, so an explicit zero
// (a valid horizon, an invalid window) still reaches validation untouched.
const unsetFlag = -1

// applyOverrides copies the supplied flag values onto the config. Values
// equal to unsetFlag are left alone; everything else is taken verbatim, even
// when invalid, so cfg.Validate() is the one place that rejects it.
func applyOverrides(cfg *config.Config, window, horizon, history int, data, srcType string) {
	if data != "" {
		cfg.Source.Type = "csv"
		cfg.Source.Path = data
	}
	if srcType != "" {
		cfg.Source.Type = srcType
	}
	if window != unsetFlag {
		cfg.Forecast.Window = window
	}
	if horizon != unsetFlag {
		cfg.Forecast.Horizon = horizon
	}
	if history != unsetFlag {
		cfg.Forecast.HistoryRows = history
	}
}

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	serve := flag.Bool("serve", false, "start the dashboard server instead of printing the report")
	window := flag.Int("window", unsetFlag, "moving-average window override")
	horizon := flag.Int("horizon", unsetFlag, "forecast horizon override")
	history := flag.Int("history", unsetFlag, "history rows override")
	data := flag.String("data", "", "CSV file to forecast from (implies the csv source)")
	srcType := flag.String("source", "", "series source override: synthetic, csv or clickhouse")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if errors.Is(err, os.ErrNotExist) {
		// The demo runs with no config file at all.
		cfg, err = config.Default(), nil
	}
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	applyOverrides(cfg, *window, *horizon, *history, *data, *srcType)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	if *serve {
		app, err := di.InitializeApp(cfg)
		if err != nil {
			log.Fatalf("app initialization failed: %v", err)
		}
		if err := app.Run(); err != nil {
			log.Printf("app error: %v", err)
			os.Exit(1)
		}
		return
	}

	if err := runReport(cfg); err != nil {
		log.Fatalf("forecast failed: %v", err)
	}
}

// runReport executes one forecast and prints the text report to stdout.
func runReport(cfg *config.Config) error {
	chClient, err := di.ProvideClickHouseClient(cfg)
	if err != nil {
		return err
	}
	if chClient != nil {
		defer chClient.Close()
	}

	// Report goes to stdout; run logging stays on stderr.
	logger, err := applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: "stderr",
	})
	if err != nil {
		return err
	}
	src, err := di.ProvideSource(cfg, chClient, logger)
	if err != nil {
		return err
	}

	runner := usecase.NewForecastRunner(src, usecase.WithLogger(logger))
	result, err := runner.Run(context.Background(), usecase.RunParams{
		Window:  cfg.Forecast.Window,
		Horizon: cfg.Forecast.Horizon,
		History: cfg.Forecast.HistoryRows,
	})
	if err != nil {
		return err
	}

	render.Result(os.Stdout, result, cfg.Forecast.HistoryRows)
	return nil
}
