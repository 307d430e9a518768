package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"time"

	"github.com/shopspring/decimal"
)

// ReindexToBusiness projects every ticker's series onto the given business
// calendar. Calendar days a ticker never traded get a synthesized record
// with a nil close, inheriting the ticker's asset class and currency.
// Observations dated outside the calendar are discarded. The result has
// exactly one record per (ticker, calendar day), ordered by (ticker, date).
//
// No null removal happens here - this only harmonizes the calendar grid.
func ReindexToBusiness(table domain.ObservationTable, businessIndex []time.Time) domain.ObservationTable {
	meta := table.MetaByTicker()

	// symbol -> date -> close. Duplicate (ticker, date) records resolve to
	// the last one seen, matching upsert semantics in the observation store.
	closes := map[string]map[string]*decimal.Decimal{}
	for _, obs := range table {
		if _, ok := closes[obs.Ticker]; !ok {
			closes[obs.Ticker] = map[string]*decimal.Decimal{}
		}
		closes[obs.Ticker][util.TruncateDate(obs.Date).Format(time.DateOnly)] = obs.Close
	}

	out := domain.ObservationTable{}
	for _, ticker := range table.Tickers() {
		for _, date := range businessIndex {
			close := closes[ticker][date.Format(time.DateOnly)]
			out = append(out, domain.Observation{
				Date:       date,
				Ticker:     ticker,
				Close:      close,
				AssetClass: meta[ticker].AssetClass,
				Currency:   meta[ticker].Currency,
			})
		}
	}

	return out
}
