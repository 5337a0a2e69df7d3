// Package portfolio evaluates the long-short momentum portfolio year by
// year.
package portfolio

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/momentum/internal/domain"
	"github.com/aristath/momentum/internal/modules/momentum"
	"github.com/aristath/momentum/pkg/formulas"
)

// Evaluator computes per-year long, short and spread returns.
type Evaluator struct {
	log zerolog.Logger
}

// NewEvaluator creates a new long-short portfolio evaluator.
func NewEvaluator(log zerolog.Logger) *Evaluator {
	return &Evaluator{
		log: log.With().Str("component", "portfolio_evaluator").Logger(),
	}
}

// Evaluate joins each bucket back to the annual return table to recover
// every member's realized return in the decision year (not the
// prior-year signal return), averages per year per side, and inner-joins
// the two sides. Years present on only one side are dropped: a spread
// needs both legs. Output is sorted by year.
func (e *Evaluator) Evaluate(
	longSet, shortSet []momentum.Membership,
	annual []domain.AnnualReturn,
) []domain.PortfolioReturn {
	index := make(map[momentum.Membership]float64, len(annual))
	for _, ar := range annual {
		index[momentum.Membership{Security: ar.Security, Year: ar.Year}] = ar.Return
	}

	long := meanByYear(longSet, index)
	short := meanByYear(shortSet, index)

	var results []domain.PortfolioReturn
	for year, longReturn := range long {
		shortReturn, ok := short[year]
		if !ok {
			continue
		}
		results = append(results, domain.PortfolioReturn{
			Year:   year,
			Long:   longReturn,
			Short:  shortReturn,
			Spread: longReturn - shortReturn,
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Year < results[j].Year })

	e.log.Info().
		Int("long_years", len(long)).
		Int("short_years", len(short)).
		Int("spread_years", len(results)).
		Msg("Evaluated long-short portfolio")

	return results
}

// meanByYear averages the realized annual returns of a bucket's members
// per year. Members without a matching annual return row contribute
// nothing (inner-join semantics).
func meanByYear(members []momentum.Membership, index map[momentum.Membership]float64) map[int]float64 {
	byYear := make(map[int][]float64)
	for _, member := range members {
		if ret, ok := index[member]; ok {
			byYear[member.Year] = append(byYear[member.Year], ret)
		}
	}

	means := make(map[int]float64, len(byYear))
	for year, values := range byYear {
		means[year] = formulas.Mean(values)
	}
	return means
}
