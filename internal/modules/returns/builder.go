// Package returns builds the cleaned monthly return table and compounds
// it into one annual return per security-year.
package returns

import (
	"github.com/rs/zerolog"

	"github.com/aristath/momentum/internal/domain"
	"github.com/aristath/momentum/pkg/formulas"
)

// Builder cleans raw monthly observations into the canonical return table.
type Builder struct {
	threshold float64 // standard deviations from the global mean
	log       zerolog.Logger
}

// NewBuilder creates a new return table builder. threshold is the number
// of global standard deviations beyond which a row is treated as an
// outlier and removed (3.0 in the reference analysis).
func NewBuilder(threshold float64, log zerolog.Logger) *Builder {
	return &Builder{
		threshold: threshold,
		log:       log.With().Str("component", "return_builder").Logger(),
	}
}

// Clean applies the global outlier filter and returns a fresh table.
//
// The filter is intentionally coarse: the mean and standard deviation are
// computed ONCE over the whole unfiltered table, so the statistics are
// themselves influenced by the outliers being removed, and for
// heavy-tailed return data the filter can remove legitimate extreme
// momentum observations. It is preserved exactly as the reference
// analysis defines it, for reproducibility. It is also not idempotent:
// removing rows shifts the mean and standard deviation, so a second pass
// over the filtered table could expose new outliers.
func (b *Builder) Clean(observations []domain.Observation) []domain.Observation {
	if len(observations) == 0 {
		return nil
	}

	values := make([]float64, len(observations))
	for i, obs := range observations {
		values[i] = obs.Return
	}

	mean := formulas.Mean(values)
	std := formulas.StdDev(values)

	cleaned := make([]domain.Observation, 0, len(observations))
	for _, obs := range observations {
		deviation := obs.Return - mean
		if deviation < 0 {
			deviation = -deviation
		}
		if std > 0 && deviation > b.threshold*std {
			continue
		}
		cleaned = append(cleaned, obs)
	}

	b.log.Info().
		Int("input_rows", len(observations)).
		Int("output_rows", len(cleaned)).
		Float64("mean", mean).
		Float64("std", std).
		Float64("threshold", b.threshold).
		Msg("Applied global outlier filter")

	return cleaned
}
