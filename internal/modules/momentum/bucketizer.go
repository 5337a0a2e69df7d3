// Package momentum ranks securities by prior-year return and assigns
// them to decile-based long/short buckets.
package momentum

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/aristath/momentum/internal/domain"
	"github.com/aristath/momentum/pkg/formulas"
)

// Percentile boundaries for the extreme buckets.
const (
	lowPercentile  = 10.0
	highPercentile = 90.0
)

// Membership keys the long and short sets by (security, decision year).
type Membership struct {
	Security string
	Year     int
}

// Bucketizer assigns each security a momentum group per decision year.
type Bucketizer struct {
	log zerolog.Logger
}

// NewBucketizer creates a new momentum bucketizer.
func NewBucketizer(log zerolog.Logger) *Bucketizer {
	return &Bucketizer{
		log: log.With().Str("component", "momentum_bucketizer").Logger(),
	}
}

// Result holds the full group table and the derived long/short sets.
type Result struct {
	Groups   []domain.MomentumGroup
	LongSet  []Membership
	ShortSet []Membership
}

// Bucketize shifts every annual return one year forward, so the return
// earned in year Y becomes the signal used in decision year Y+1, then
// assigns groups per decision year against that year's cross-sectional
// 10th and 90th percentiles. Percentiles use linear interpolation
// between order statistics (rank p·(n−1) in the sorted sample).
//
// Ties at a boundary land in the extreme bucket (≤/≥, not strict
// comparison), so with discrete return distributions the buckets are not
// exactly 10%/80%/10% of securities. That is the intended semantics.
// Boundaries are recomputed from scratch every year; a security's group
// can and does change yearly.
func (b *Bucketizer) Bucketize(annual []domain.AnnualReturn) Result {
	// Prior-year-return table, indexed by decision year.
	prior := make(map[int][]domain.AnnualReturn)
	for _, ar := range annual {
		decisionYear := ar.Year + 1
		prior[decisionYear] = append(prior[decisionYear], ar)
	}

	years := make([]int, 0, len(prior))
	for year := range prior {
		years = append(years, year)
	}
	sort.Ints(years)

	var result Result
	for _, year := range years {
		rows := prior[year]
		values := make([]float64, len(rows))
		for i, ar := range rows {
			values[i] = ar.Return
		}

		p10 := formulas.Percentile(values, lowPercentile)
		p90 := formulas.Percentile(values, highPercentile)

		for _, ar := range rows {
			group := domain.GroupMid
			switch {
			case ar.Return <= p10:
				group = domain.GroupLow
			case ar.Return >= p90:
				group = domain.GroupHigh
			}

			result.Groups = append(result.Groups, domain.MomentumGroup{
				Security:    ar.Security,
				Year:        year,
				PriorReturn: ar.Return,
				Group:       group,
			})

			member := Membership{Security: ar.Security, Year: year}
			switch group {
			case domain.GroupHigh:
				result.LongSet = append(result.LongSet, member)
			case domain.GroupLow:
				result.ShortSet = append(result.ShortSet, member)
			}
		}

		b.log.Debug().
			Int("year", year).
			Int("securities", len(rows)).
			Float64("p10", p10).
			Float64("p90", p90).
			Msg("Computed momentum bucket boundaries")
	}

	b.log.Info().
		Int("decision_years", len(years)).
		Int("long", len(result.LongSet)).
		Int("short", len(result.ShortSet)).
		Msg("Assigned momentum groups")

	return result
}
