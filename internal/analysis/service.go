// Package analysis orchestrates the momentum pipeline end to end:
// ingest → clean → aggregate → bucketize → evaluate → regress → report.
// Each stage consumes an immutable table and produces a new one; nothing
// flows backwards.
package analysis

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/aristath/momentum/internal/config"
	"github.com/aristath/momentum/internal/domain"
	"github.com/aristath/momentum/internal/ingest"
	"github.com/aristath/momentum/internal/modules/momentum"
	"github.com/aristath/momentum/internal/modules/portfolio"
	"github.com/aristath/momentum/internal/modules/regression"
	"github.com/aristath/momentum/internal/modules/returns"
	"github.com/aristath/momentum/internal/report"
)

// Service runs one complete analysis pass.
type Service struct {
	cfg *config.Config
	log zerolog.Logger
}

// NewService creates a new analysis service.
func NewService(cfg *config.Config, log zerolog.Logger) *Service {
	return &Service{
		cfg: cfg,
		log: log.With().Str("component", "analysis").Logger(),
	}
}

// Run executes the pipeline and writes the report tables to w. A failed
// ingestion aborts the run before any pipeline stage executes. An
// insufficient-data regression is downgraded to a warning: the portfolio
// tables upstream are still valid and are still reported.
func (s *Service) Run(w io.Writer) error {
	reader := ingest.NewReader(s.log)

	observations, err := reader.ReadSecurityReturns(s.cfg.ReturnsFile)
	if err != nil {
		return fmt.Errorf("security return ingestion failed: %w", err)
	}

	factors, err := reader.ReadFactors(s.cfg.FactorsFile)
	if err != nil {
		return fmt.Errorf("factor ingestion failed: %w", err)
	}

	cleaned := returns.NewBuilder(s.cfg.OutlierThreshold, s.log).Clean(observations)
	annual := returns.NewAggregator(s.log).Aggregate(cleaned)
	buckets := momentum.NewBucketizer(s.log).Bucketize(annual)
	portfolioReturns := portfolio.NewEvaluator(s.log).Evaluate(buckets.LongSet, buckets.ShortSet, annual)

	report.PrintPortfolio(w, portfolioReturns)

	chartPath, err := report.SaveSpreadChart(s.cfg.OutputDir, portfolioReturns)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to render portfolio chart")
	} else {
		s.log.Info().Str("path", chartPath).Msg("Rendered portfolio chart")
	}

	result, err := regression.NewModel(s.log).Fit(portfolioReturns, factors)
	if errors.Is(err, domain.ErrInsufficientData) {
		s.log.Warn().Err(err).Msg("Skipping regression: not enough joined years")
		return nil
	}
	if err != nil {
		return fmt.Errorf("regression failed: %w", err)
	}

	report.PrintRegression(w, result)
	return nil
}
