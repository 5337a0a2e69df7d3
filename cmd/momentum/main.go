// Package main runs the momentum long-short analysis: it loads the
// monthly security returns and Fama-French factor files, cleans and
// compounds the returns, buckets securities by prior-year momentum,
// evaluates the long-short portfolio, fits the three-factor regression,
// and prints the resulting tables.
package main

import (
	"os"

	"github.com/aristath/momentum/internal/analysis"
	"github.com/aristath/momentum/internal/config"
	"github.com/aristath/momentum/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Use fallback logger if config fails
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.Pretty,
	})
	logger.SetGlobalLogger(log)

	service := analysis.NewService(cfg, log)
	if err := service.Run(os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("Analysis run failed")
	}
}
