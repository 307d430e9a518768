package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"time"
)

// BusinessIndex returns every weekday (Mon-Fri) between start and end,
// inclusive on both ends, as UTC midnight dates in ascending order.
//
// Market holidays are not excluded: they show up as null rows after
// reindexing and get dropped by the completeness filter, so the calendar
// stays exchange-agnostic.
func BusinessIndex(start, end time.Time) ([]time.Time, error) {
	start = util.TruncateDate(start)
	end = util.TruncateDate(end)

	if end.Before(start) {
		return nil, domain.InvalidRangeError{Start: start, End: end}
	}

	index := []time.Time{}
	for d := start; util.DateLte(d, end); d = d.AddDate(0, 0, 1) {
		if util.IsWeekday(d) {
			index = append(index, d)
		}
	}

	return index, nil
}
