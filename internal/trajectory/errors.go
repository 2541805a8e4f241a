package trajectory

import (
	"errors"
	"fmt"
)

// Domain errors for store construction and queries.
var (
	// ErrSeriesMissing indicates a query on a series that was not recorded.
	ErrSeriesMissing = errors.New("trajectory: series not recorded in this run")

	// ErrNonFinite indicates a NaN or Inf in input data or a query argument.
	ErrNonFinite = errors.New("trajectory: non-finite value (NaN or Inf detected)")

	// ErrTimeNotAscending indicates a time axis that is not strictly increasing.
	ErrTimeNotAscending = errors.New("trajectory: time axis not strictly ascending")

	// ErrZeroDirection indicates a direction that interpolated to the zero
	// vector, which has no unit normalization.
	ErrZeroDirection = errors.New("trajectory: direction interpolated to zero vector")
)

// ShapeError reports a series whose dimensions disagree with the store's
// derived agent and step counts.
type ShapeError struct {
	Field string
	Want  string
	Got   string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("trajectory: %s: want shape %s, got %s", e.Field, e.Want, e.Got)
}
