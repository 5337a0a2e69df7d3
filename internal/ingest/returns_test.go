package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aristath/momentum/internal/domain"
)

func writeFixture(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadSecurityReturns(t *testing.T) {
	path := writeFixture(t, "returns.csv", `PERMNO,date,RET
10001,2020-01-31,0.05
10001,2020-02-28,-0.02
10002,2020-01-31,0.01
`)

	rows, err := NewReader(zerolog.Nop()).ReadSecurityReturns(path)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.Observation{Security: "10001", Year: 2020, Month: 1, Return: 0.05}, rows[0])
	assert.Equal(t, domain.Observation{Security: "10001", Year: 2020, Month: 2, Return: -0.02}, rows[1])
	assert.Equal(t, "10002", rows[2].Security)
}

func TestReadSecurityReturns_MissingReturnIsDropped(t *testing.T) {
	// Empty and NA return cells are excluded silently, not errors.
	path := writeFixture(t, "returns.csv", `permno,date,ret
10001,2020-01-31,0.05
10001,2020-02-28,
10001,2020-03-31,NA
10001,2020-04-30,0.01
`)

	rows, err := NewReader(zerolog.Nop()).ReadSecurityReturns(path)

	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestReadSecurityReturns_BadDateAbortsRun(t *testing.T) {
	path := writeFixture(t, "returns.csv", `permno,date,ret
10001,2020-01-31,0.05
10001,not-a-date,0.02
`)

	_, err := NewReader(zerolog.Nop()).ReadSecurityReturns(path)

	var ingestionErr *domain.IngestionError
	require.ErrorAs(t, err, &ingestionErr)
	assert.Equal(t, 3, ingestionErr.Line)
	assert.Equal(t, "date", ingestionErr.Field)
}

func TestReadSecurityReturns_BadReturnValueAbortsRun(t *testing.T) {
	path := writeFixture(t, "returns.csv", `permno,date,ret
10001,2020-01-31,bogus
`)

	_, err := NewReader(zerolog.Nop()).ReadSecurityReturns(path)

	var ingestionErr *domain.IngestionError
	require.ErrorAs(t, err, &ingestionErr)
	assert.Equal(t, "return", ingestionErr.Field)
}

func TestReadSecurityReturns_AlternateDateLayouts(t *testing.T) {
	path := writeFixture(t, "returns.csv", `permno,date,ret
10001,20200131,0.05
10002,01/31/2020,0.02
`)

	rows, err := NewReader(zerolog.Nop()).ReadSecurityReturns(path)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 1, rows[0].Month)
	assert.Equal(t, 2020, rows[1].Year)
}

func TestReadSecurityReturns_MissingColumn(t *testing.T) {
	path := writeFixture(t, "returns.csv", `permno,observed
10001,0.05
`)

	_, err := NewReader(zerolog.Nop()).ReadSecurityReturns(path)

	assert.Error(t, err)
}

func TestReadSecurityReturns_MissingFile(t *testing.T) {
	_, err := NewReader(zerolog.Nop()).ReadSecurityReturns(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}
