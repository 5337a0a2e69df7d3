package returns

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/momentum/internal/domain"
	"github.com/aristath/momentum/pkg/formulas"
)

// Aggregator compounds monthly returns into annual returns.
type Aggregator struct {
	log zerolog.Logger
}

// NewAggregator creates a new annual return aggregator.
func NewAggregator(log zerolog.Logger) *Aggregator {
	return &Aggregator{
		log: log.With().Str("component", "annual_aggregator").Logger(),
	}
}

type securityYear struct {
	security string
	year     int
}

// Aggregate groups observations by (security, year) and compounds the
// available monthly returns: Π(1 + rᵢ) − 1. Months are multiplied in
// ascending order so runs are bit-identical. Missing months are simply
// not part of the product; a security-year with no observations never
// appears in the output. Output is sorted by security then year.
func (a *Aggregator) Aggregate(observations []domain.Observation) []domain.AnnualReturn {
	groups := make(map[securityYear][]domain.Observation)
	for _, obs := range observations {
		key := securityYear{security: obs.Security, year: obs.Year}
		groups[key] = append(groups[key], obs)
	}

	annual := make([]domain.AnnualReturn, 0, len(groups))
	for key, group := range groups {
		sort.Slice(group, func(i, j int) bool { return group[i].Month < group[j].Month })

		monthly := make([]float64, len(group))
		for i, obs := range group {
			monthly[i] = obs.Return
		}

		annual = append(annual, domain.AnnualReturn{
			Security: key.security,
			Year:     key.year,
			Return:   formulas.Compound(monthly),
		})
	}

	sort.Slice(annual, func(i, j int) bool {
		if annual[i].Security != annual[j].Security {
			return annual[i].Security < annual[j].Security
		}
		return annual[i].Year < annual[j].Year
	})

	a.log.Info().
		Int("observations", len(observations)).
		Int("security_years", len(annual)).
		Msg("Compounded monthly returns into annual returns")

	return annual
}
