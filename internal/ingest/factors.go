package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/aristath/momentum/internal/domain"
)

// ReadFactors reads a monthly Fama-French factor CSV keyed by a year-month
// column (e.g. "200601") and collapses it to one row per year by keeping
// the January observation. The January convention mirrors the data
// source; it is deliberately not an annualization (see DESIGN.md).
func (r *Reader) ReadFactors(path string) ([]domain.FactorObservation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open factors file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read factors CSV header: %w", err)
	}

	dateCol, err := findColumn(header, "date", "yearmonth", "ym")
	if err != nil {
		return nil, fmt.Errorf("factors file %s: %w", path, err)
	}
	mktCol, err := findColumn(header, "mkt-rf", "mktrf", "mkt_rf")
	if err != nil {
		return nil, fmt.Errorf("factors file %s: %w", path, err)
	}
	smbCol, err := findColumn(header, "smb")
	if err != nil {
		return nil, fmt.Errorf("factors file %s: %w", path, err)
	}
	hmlCol, err := findColumn(header, "hml")
	if err != nil {
		return nil, fmt.Errorf("factors file %s: %w", path, err)
	}
	rfCol, err := findColumn(header, "rf")
	if err != nil {
		return nil, fmt.Errorf("factors file %s: %w", path, err)
	}

	var rows []domain.FactorObservation
	line := 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read factors CSV row: %w", err)
		}
		line++

		year, month, err := parseYearMonth(record[dateCol])
		if err != nil {
			return nil, &domain.IngestionError{File: path, Line: line, Field: "date", Err: err}
		}
		if month != 1 {
			continue
		}

		obs := domain.FactorObservation{Year: year}
		for _, field := range []struct {
			name string
			col  int
			dst  *float64
		}{
			{"mkt-rf", mktCol, &obs.MktRF},
			{"smb", smbCol, &obs.SMB},
			{"hml", hmlCol, &obs.HML},
			{"rf", rfCol, &obs.RF},
		} {
			value, err := strconv.ParseFloat(strings.TrimSpace(record[field.col]), 64)
			if err != nil {
				return nil, &domain.IngestionError{File: path, Line: line, Field: field.name, Err: err}
			}
			*field.dst = value
		}

		rows = append(rows, obs)
	}

	r.log.Info().
		Str("file", path).
		Int("years", len(rows)).
		Msg("Loaded factor observations")

	return rows, nil
}

// parseYearMonth parses a compact YYYYMM field, tolerating an optional
// day suffix (YYYYMMDD) and a dashed YYYY-MM form.
func parseYearMonth(text string) (int, int, error) {
	text = strings.TrimSpace(strings.ReplaceAll(text, "-", ""))
	if len(text) != 6 && len(text) != 8 {
		return 0, 0, fmt.Errorf("unparseable year-month %q", text)
	}
	year, err := strconv.Atoi(text[:4])
	if err != nil {
		return 0, 0, fmt.Errorf("unparseable year-month %q", text)
	}
	month, err := strconv.Atoi(text[4:6])
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("unparseable year-month %q", text)
	}
	return year, month, nil
}
