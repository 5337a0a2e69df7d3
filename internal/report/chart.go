package report

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/aristath/momentum/internal/domain"
)

// SaveSpreadChart renders the cumulative growth of the long, short and
// spread series to a PNG in outputDir and returns the written path.
// Each series compounds from 1.0 across the available years.
func SaveSpreadChart(outputDir string, rows []domain.PortfolioReturn) (string, error) {
	p := plot.New()
	p.Title.Text = "Momentum long-short portfolio"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Growth of 1 unit"
	p.Legend.Top = true

	long := make(plotter.XYs, len(rows))
	short := make(plotter.XYs, len(rows))
	spread := make(plotter.XYs, len(rows))

	cumLong, cumShort, cumSpread := 1.0, 1.0, 1.0
	for i, row := range rows {
		cumLong *= 1 + row.Long
		cumShort *= 1 + row.Short
		cumSpread *= 1 + row.Spread

		year := float64(row.Year)
		long[i] = plotter.XY{X: year, Y: cumLong}
		short[i] = plotter.XY{X: year, Y: cumShort}
		spread[i] = plotter.XY{X: year, Y: cumSpread}
	}

	if err := plotutil.AddLinePoints(p,
		"Long", long,
		"Short", short,
		"Spread", spread,
	); err != nil {
		return "", fmt.Errorf("failed to add chart series: %w", err)
	}

	path := filepath.Join(outputDir, "momentum_spread.png")
	if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
		return "", fmt.Errorf("failed to save chart: %w", err)
	}

	return path, nil
}
