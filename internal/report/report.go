// Package report formats the pipeline's outputs: text tables for the
// portfolio and regression results, and a cumulative return chart.
package report

import (
	"fmt"
	"io"

	"github.com/aristath/momentum/internal/domain"
)

// PrintPortfolio writes the per-year long/short/spread table.
func PrintPortfolio(w io.Writer, rows []domain.PortfolioReturn) {
	fmt.Fprintln(w, "Momentum long-short portfolio returns")
	fmt.Fprintln(w, "=====================================")
	fmt.Fprintf(w, "%-6s %10s %10s %10s\n", "Year", "Long", "Short", "Spread")
	for _, row := range rows {
		fmt.Fprintf(w, "%-6d %9.2f%% %9.2f%% %9.2f%%\n",
			row.Year, row.Long*100, row.Short*100, row.Spread*100)
	}
	fmt.Fprintln(w)
}

// PrintRegression writes a coefficient table with estimates, standard
// errors, t-statistics, two-tailed p-values and significance stars.
func PrintRegression(w io.Writer, result *domain.RegressionResult) {
	fmt.Fprintln(w, "Three-factor regression: spread ~ alpha + mkt_rf + smb + hml")
	fmt.Fprintln(w, "=============================================================")
	fmt.Fprintf(w, "Observations: %d   Residual DF: %d   R-squared: %.4f\n\n",
		result.N, result.DF, result.RSquared)
	fmt.Fprintf(w, "%-8s %12s %12s %10s %10s\n", "", "Estimate", "Std Err", "t", "P>|t|")
	for _, c := range result.Coefficients {
		fmt.Fprintf(w, "%-8s %12.6f %12.6f %10.3f %10.4f %s\n",
			c.Name, c.Estimate, c.StdErr, c.TStat, c.PValue, stars(c.PValue))
	}
	fmt.Fprintln(w, "\nSignificance: *** p<0.01, ** p<0.05, * p<0.10")
}

func stars(p float64) string {
	switch {
	case p < 0.01:
		return "***"
	case p < 0.05:
		return "**"
	case p < 0.10:
		return "*"
	}
	return ""
}
