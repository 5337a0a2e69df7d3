package returns

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/momentum/internal/domain"
)

func TestAggregator_CompoundsMonthlyReturns(t *testing.T) {
	observations := []domain.Observation{
		obs("AAA", 2020, 1, 0.1),
		obs("AAA", 2020, 2, -0.05),
		obs("AAA", 2020, 3, 0.02),
	}

	annual := NewAggregator(zerolog.Nop()).Aggregate(observations)

	require.Len(t, annual, 1)
	assert.Equal(t, "AAA", annual[0].Security)
	assert.Equal(t, 2020, annual[0].Year)
	// 1.1 × 0.95 × 1.02 − 1
	assert.InDelta(t, 0.0659, annual[0].Return, 1e-4)
}

func TestAggregator_OrderIndependentInput(t *testing.T) {
	// Months arrive out of order; compounding sorts them ascending so the
	// product is evaluated in a fixed order and runs are reproducible.
	shuffled := []domain.Observation{
		obs("AAA", 2020, 3, 0.02),
		obs("AAA", 2020, 1, 0.1),
		obs("AAA", 2020, 2, -0.05),
	}
	ordered := []domain.Observation{
		obs("AAA", 2020, 1, 0.1),
		obs("AAA", 2020, 2, -0.05),
		obs("AAA", 2020, 3, 0.02),
	}

	aggregator := NewAggregator(zerolog.Nop())

	a := aggregator.Aggregate(shuffled)
	b := aggregator.Aggregate(ordered)

	require.Len(t, a, 1)
	require.Len(t, b, 1)
	assert.Equal(t, a[0].Return, b[0].Return)
}

func TestAggregator_PartialYearUsesAvailableMonths(t *testing.T) {
	// Only two observed months: no imputation for the missing ten.
	observations := []domain.Observation{
		obs("AAA", 2020, 6, 0.05),
		obs("AAA", 2020, 7, 0.05),
	}

	annual := NewAggregator(zerolog.Nop()).Aggregate(observations)

	require.Len(t, annual, 1)
	assert.InDelta(t, 1.05*1.05-1, annual[0].Return, 1e-12)
}

func TestAggregator_GroupsBySecurityAndYear(t *testing.T) {
	observations := []domain.Observation{
		obs("AAA", 2020, 1, 0.1),
		obs("AAA", 2021, 1, 0.2),
		obs("BBB", 2020, 1, -0.1),
	}

	annual := NewAggregator(zerolog.Nop()).Aggregate(observations)

	require.Len(t, annual, 3)
	// Sorted by security, then year.
	assert.Equal(t, domain.AnnualReturn{Security: "AAA", Year: 2020, Return: annual[0].Return}, annual[0])
	assert.Equal(t, 2021, annual[1].Year)
	assert.Equal(t, "BBB", annual[2].Security)
}

func TestAggregator_EmptyInput(t *testing.T) {
	assert.Empty(t, NewAggregator(zerolog.Nop()).Aggregate(nil))
}
