package domain

import (
	"fmt"
	"strings"
	"time"
)

// DataIntegrityError is returned under the strict policy when one or more
// tickers have no non-null close values at all.
type DataIntegrityError struct {
	Tickers []string
}

func (e DataIntegrityError) Error() string {
	return fmt.Sprintf("tickers with no valid close values: %s", strings.Join(e.Tickers, ", "))
}

// InvalidRangeError is returned when the requested end date precedes the
// resolved common start date.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf(
		"end date %s precedes common start date %s",
		e.End.Format(time.DateOnly),
		e.Start.Format(time.DateOnly),
	)
}

// EmptyResultError is returned when no calendar date survives the
// completeness filter, so the dense panel would be empty.
type EmptyResultError struct {
	CommonStart time.Time
	EndDate     time.Time
}

func (e EmptyResultError) Error() string {
	return fmt.Sprintf(
		"no complete trading days between %s and %s",
		e.CommonStart.Format(time.DateOnly),
		e.EndDate.Format(time.DateOnly),
	)
}
