// Package regression fits the Fama-French three-factor model to the
// portfolio spread return series.
package regression

import (
	"fmt"
	"math"
	"sort"

	"github.com/rs/zerolog"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/aristath/momentum/internal/domain"
)

// regressors is the number of fitted coefficients: intercept + 3 factors.
const regressors = 4

var coefficientNames = [regressors]string{"alpha", "mkt_rf", "smb", "hml"}

// Model fits ordinary least squares of spread return on the three
// factors and reports classical inference statistics.
type Model struct {
	log zerolog.Logger
}

// NewModel creates a new factor regression model.
func NewModel(log zerolog.Logger) *Model {
	return &Model{
		log: log.With().Str("component", "factor_regression").Logger(),
	}
}

// Fit inner-joins the portfolio returns with the factor observations by
// year and solves spread ~ 1 + MktRF + SMB + HML in closed form via the
// normal equations; (XᵀX)⁻¹ is needed for the standard errors anyway.
//
// Standard errors assume i.i.d. homoscedastic residuals (the classical
// OLS variance estimator σ̂²·(XᵀX)⁻¹ with σ̂² = RSS/(n−4)); p-values are
// two-tailed against a Student's t distribution with n−4 degrees of
// freedom.
//
// Returns domain.ErrInsufficientData when the join leaves n ≤ 4 rows,
// and domain.ErrSingularMatrix when XᵀX cannot be inverted (a constant
// factor, or collinear factors). No fallback fit is attempted in either
// case; upstream results remain valid.
func (m *Model) Fit(
	portfolio []domain.PortfolioReturn,
	factors []domain.FactorObservation,
) (*domain.RegressionResult, error) {
	joined := join(portfolio, factors)
	n := len(joined)
	if n <= regressors {
		return nil, fmt.Errorf("%w: %d observations for %d regressors",
			domain.ErrInsufficientData, n, regressors)
	}

	x := mat.NewDense(n, regressors, nil)
	y := mat.NewVecDense(n, nil)
	for i, row := range joined {
		x.Set(i, 0, 1)
		x.Set(i, 1, row.factors.MktRF)
		x.Set(i, 2, row.factors.SMB)
		x.Set(i, 3, row.factors.HML)
		y.SetVec(i, row.portfolio.Spread)
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var xtxInv mat.Dense
	if err := xtxInv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrSingularMatrix, err)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var beta mat.VecDense
	beta.MulVec(&xtxInv, &xty)

	// Residual sum of squares and total sum of squares for R².
	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	meanY := mat.Sum(y) / float64(n)
	rss, tss := 0.0, 0.0
	for i := 0; i < n; i++ {
		residual := y.AtVec(i) - fitted.AtVec(i)
		rss += residual * residual
		deviation := y.AtVec(i) - meanY
		tss += deviation * deviation
	}

	df := n - regressors
	sigma2 := rss / float64(df)
	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(df)}

	result := &domain.RegressionResult{
		N:            n,
		DF:           df,
		Coefficients: make([]domain.Coefficient, regressors),
	}
	if tss > 0 {
		result.RSquared = 1 - rss/tss
	}

	for j := 0; j < regressors; j++ {
		estimate := beta.AtVec(j)
		stdErr := math.Sqrt(sigma2 * xtxInv.At(j, j))

		tStat := math.Inf(1)
		pValue := 0.0
		if stdErr > 0 {
			tStat = estimate / stdErr
			pValue = 2 * tDist.CDF(-math.Abs(tStat))
		} else if estimate == 0 {
			tStat = 0
			pValue = 1
		} else if estimate < 0 {
			tStat = math.Inf(-1)
		}

		result.Coefficients[j] = domain.Coefficient{
			Name:     coefficientNames[j],
			Estimate: estimate,
			StdErr:   stdErr,
			TStat:    tStat,
			PValue:   pValue,
		}
	}

	m.log.Info().
		Int("observations", n).
		Float64("alpha", result.Alpha()).
		Float64("alpha_p", result.Coefficients[0].PValue).
		Float64("r_squared", result.RSquared).
		Msg("Fitted three-factor regression")

	return result, nil
}

type joinedRow struct {
	portfolio domain.PortfolioReturn
	factors   domain.FactorObservation
}

// join inner-joins the two yearly series; years missing from either side
// are dropped. Rows come out in ascending year order so the design
// matrix is built deterministically.
func join(
	portfolio []domain.PortfolioReturn,
	factors []domain.FactorObservation,
) []joinedRow {
	factorsByYear := make(map[int]domain.FactorObservation, len(factors))
	for _, f := range factors {
		factorsByYear[f.Year] = f
	}

	var rows []joinedRow
	for _, p := range portfolio {
		f, ok := factorsByYear[p.Year]
		if !ok {
			continue
		}
		rows = append(rows, joinedRow{portfolio: p, factors: f})
	}

	sort.Slice(rows, func(i, j int) bool {
		return rows[i].portfolio.Year < rows[j].portfolio.Year
	})

	return rows
}
