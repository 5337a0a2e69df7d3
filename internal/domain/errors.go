package domain

import (
	"errors"
	"fmt"
)

// ErrInsufficientData is returned when fewer joined observations remain
// than the regression has regressors. The system is underdetermined and
// no fit is attempted.
var ErrInsufficientData = errors.New("insufficient data: observations must exceed regressor count")

// ErrSingularMatrix is returned when the regression design matrix is
// rank-deficient (a constant factor, or two collinear factors) so no
// unique least-squares solution exists. No fallback fit is attempted.
var ErrSingularMatrix = errors.New("singular design matrix: factors are constant or collinear")

// IngestionError reports a malformed input row. It aborts the run
// immediately: the pipeline never executes on partially corrupt input.
type IngestionError struct {
	File  string
	Line  int
	Field string
	Err   error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion failed: %s line %d field %q: %v", e.File, e.Line, e.Field, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}
