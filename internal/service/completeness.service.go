package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DropIncompleteDays removes every date on which ANY ticker has a null
// close, across all tickers jointly: one missing ETF day drops that day
// for the cryptos too, so the surviving panel stays cross-sectionally
// aligned for multivariate correlation and volatility modeling downstream.
//
// Asset class and currency are reattached from each ticker's first value in
// the input table, never recomputed from surviving rows. Returns
// EmptyResultError when no date survives.
func DropIncompleteDays(table domain.ObservationTable) (domain.ObservationTable, error) {
	tickers := table.Tickers()
	meta := table.MetaByTicker()

	// pivot wide: date -> ticker -> close
	wide := map[string]map[string]*decimal.Decimal{}
	dateByKey := map[string]time.Time{}
	for _, obs := range table {
		date := util.TruncateDate(obs.Date)
		key := date.Format(time.DateOnly)
		if _, ok := wide[key]; !ok {
			wide[key] = map[string]*decimal.Decimal{}
			dateByKey[key] = date
		}
		wide[key][obs.Ticker] = obs.Close
	}

	completeKeys := []string{}
	for key, row := range wide {
		complete := true
		for _, ticker := range tickers {
			if close, ok := row[ticker]; !ok || close == nil {
				complete = false
				break
			}
		}
		if complete {
			completeKeys = append(completeKeys, key)
		}
	}
	sort.Strings(completeKeys)

	if len(completeKeys) == 0 {
		var first, last time.Time
		for _, d := range dateByKey {
			if first.IsZero() || d.Before(first) {
				first = d
			}
			if d.After(last) {
				last = d
			}
		}
		return nil, domain.EmptyResultError{CommonStart: first, EndDate: last}
	}

	out := domain.ObservationTable{}
	for _, ticker := range tickers {
		for _, key := range completeKeys {
			out = append(out, domain.Observation{
				Date:       dateByKey[key],
				Ticker:     ticker,
				Close:      wide[key][ticker],
				AssetClass: meta[ticker].AssetClass,
				Currency:   meta[ticker].Currency,
			})
		}
	}

	return out, nil
}
