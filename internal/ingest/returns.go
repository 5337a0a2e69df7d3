// Package ingest reads the two input CSV files into typed records. It is
// the only place raw text is parsed; everything downstream works on
// validated domain types.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aristath/momentum/internal/domain"
)

// Reader ingests CSV input files.
type Reader struct {
	log zerolog.Logger
}

// NewReader creates a new CSV reader.
func NewReader(log zerolog.Logger) *Reader {
	return &Reader{
		log: log.With().Str("component", "ingest").Logger(),
	}
}

// dateLayouts are the accepted formats for the returns file date column.
var dateLayouts = []string{"2006-01-02", "20060102", "01/02/2006"}

// ReadSecurityReturns reads a monthly security returns CSV. The header
// must contain a security identifier column, a date column and a return
// column. Rows with an empty or NA return cell are dropped silently;
// an unparseable date or return value aborts the run.
func (r *Reader) ReadSecurityReturns(path string) ([]domain.Observation, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open returns file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read returns CSV header: %w", err)
	}

	secCol, err := findColumn(header, "permno", "security", "security_id", "ticker", "symbol")
	if err != nil {
		return nil, fmt.Errorf("returns file %s: %w", path, err)
	}
	dateCol, err := findColumn(header, "date")
	if err != nil {
		return nil, fmt.Errorf("returns file %s: %w", path, err)
	}
	retCol, err := findColumn(header, "ret", "return", "monthly_return")
	if err != nil {
		return nil, fmt.Errorf("returns file %s: %w", path, err)
	}

	var rows []domain.Observation
	dropped := 0
	line := 1 // header was line 1

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read returns CSV row: %w", err)
		}
		line++

		// Missing return: excluded, not an error.
		retText := strings.TrimSpace(record[retCol])
		if retText == "" || isNA(retText) {
			dropped++
			continue
		}

		date, err := parseDate(record[dateCol])
		if err != nil {
			return nil, &domain.IngestionError{File: path, Line: line, Field: "date", Err: err}
		}

		ret, err := strconv.ParseFloat(retText, 64)
		if err != nil {
			return nil, &domain.IngestionError{File: path, Line: line, Field: "return", Err: err}
		}

		rows = append(rows, domain.Observation{
			Security: strings.TrimSpace(record[secCol]),
			Year:     date.Year(),
			Month:    int(date.Month()),
			Return:   ret,
		})
	}

	r.log.Info().
		Str("file", path).
		Int("rows", len(rows)).
		Int("dropped_missing", dropped).
		Msg("Loaded security returns")

	return rows, nil
}

func parseDate(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	for _, layout := range dateLayouts {
		if date, err := time.Parse(layout, text); err == nil {
			return date, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", text)
}

func isNA(text string) bool {
	switch strings.ToUpper(text) {
	case "NA", "N/A", "NAN", "NULL", ".":
		return true
	}
	return false
}

// findColumn returns the index of the first header cell matching any of
// the accepted names, case-insensitively.
func findColumn(header []string, names ...string) (int, error) {
	for i, cell := range header {
		cell = strings.ToLower(strings.TrimSpace(cell))
		for _, name := range names {
			if cell == name {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("missing column %q in header %v", names[0], header)
}
