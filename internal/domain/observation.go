package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// Observation is one daily close record for a single asset. Close is nil
// when the asset had no valid quote on that date.
type Observation struct {
	Date       time.Time
	Ticker     string
	Close      *decimal.Decimal
	AssetClass string
	Currency   string
}

// ObservationTable is a tidy (long-format) collection of observations.
// No guarantees on ordering or on which (ticker, date) pairs exist.
type ObservationTable []Observation

type TickerMeta struct {
	AssetClass string
	Currency   string
}

func (t ObservationTable) Tickers() []string {
	seen := map[string]bool{}
	symbols := []string{}
	for _, obs := range t {
		if !seen[obs.Ticker] {
			seen[obs.Ticker] = true
			symbols = append(symbols, obs.Ticker)
		}
	}
	sort.Strings(symbols)
	return symbols
}

// MetaByTicker returns each ticker's asset class and currency, taking the
// first observed value. Metadata is constant per ticker, so first wins.
func (t ObservationTable) MetaByTicker() map[string]TickerMeta {
	meta := map[string]TickerMeta{}
	for _, obs := range t {
		if _, ok := meta[obs.Ticker]; !ok {
			meta[obs.Ticker] = TickerMeta{
				AssetClass: obs.AssetClass,
				Currency:   obs.Currency,
			}
		}
	}
	return meta
}

// RowCountByTicker counts records per ticker, null closes included.
func (t ObservationTable) RowCountByTicker() map[string]int {
	counts := map[string]int{}
	for _, obs := range t {
		counts[obs.Ticker]++
	}
	return counts
}

