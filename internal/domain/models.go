// Package domain provides core domain models and types.
package domain

// Observation is one cleaned monthly return observation for a security.
// At most one observation exists per (security, year, month).
type Observation struct {
	Security string
	Year     int
	Month    int
	Return   float64 // fractional, 0.05 = +5%
}

// AnnualReturn is the compounded return of a security over one calendar year.
// Compounding uses only the months that were actually observed.
type AnnualReturn struct {
	Security string
	Year     int
	Return   float64
}

// Group identifies which momentum bucket a security falls into for a
// decision year.
type Group string

const (
	// GroupLow holds securities at or below the 10th percentile of
	// prior-year returns.
	GroupLow Group = "low"
	// GroupMid holds everything between the extremes.
	GroupMid Group = "mid"
	// GroupHigh holds securities at or above the 90th percentile of
	// prior-year returns.
	GroupHigh Group = "high"
)

// MomentumGroup is a security's bucket assignment for a decision year,
// based on its prior-year annual return relative to that year's
// cross-sectional distribution.
type MomentumGroup struct {
	Security    string
	Year        int // decision year (prior-year return shifted forward)
	PriorReturn float64
	Group       Group
}

// PortfolioReturn is the realized long/short/spread return of the
// momentum portfolio for one year. Only years where both buckets were
// non-empty produce a row.
type PortfolioReturn struct {
	Year   int
	Long   float64 // mean annual return of the high bucket
	Short  float64 // mean annual return of the low bucket
	Spread float64 // Long - Short
}

// FactorObservation holds the three Fama-French factor values and the
// risk-free rate for one year.
type FactorObservation struct {
	Year  int
	MktRF float64 // market return minus risk-free rate
	SMB   float64 // small minus big (size)
	HML   float64 // high minus low (value)
	RF    float64 // risk-free rate
}

// Coefficient is one fitted regression coefficient with its classical
// OLS inference statistics.
type Coefficient struct {
	Name     string
	Estimate float64
	StdErr   float64
	TStat    float64
	PValue   float64
}

// RegressionResult is the fitted three-factor model of the portfolio
// spread return. Coefficients are ordered intercept, MktRF, SMB, HML.
type RegressionResult struct {
	N            int // joined observations
	DF           int // residual degrees of freedom (N - 4)
	Coefficients []Coefficient
	RSquared     float64
}

// Alpha returns the fitted intercept estimate.
func (r *RegressionResult) Alpha() float64 {
	if len(r.Coefficients) == 0 {
		return 0
	}
	return r.Coefficients[0].Estimate
}
