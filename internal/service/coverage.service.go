package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"sort"
	"time"
)

type coverageAccumulator struct {
	firstDate  time.Time
	lastDate   time.Time
	firstValid *time.Time
	nTotal     int
	nNonNull   int
}

// CoverageByTicker computes per-ticker date coverage stats from a tidy
// observation table: min/max dates, record counts, the first date with a
// non-null close, and the non-null coverage ratio. One summary per distinct
// ticker, ordered by ticker. Pure - the input table is not touched.
func CoverageByTicker(table domain.ObservationTable) []domain.CoverageSummary {
	accs := map[string]*coverageAccumulator{}

	for _, obs := range table {
		date := util.TruncateDate(obs.Date)
		acc, ok := accs[obs.Ticker]
		if !ok {
			acc = &coverageAccumulator{
				firstDate: date,
				lastDate:  date,
			}
			accs[obs.Ticker] = acc
		}

		if date.Before(acc.firstDate) {
			acc.firstDate = date
		}
		if date.After(acc.lastDate) {
			acc.lastDate = date
		}
		acc.nTotal++
		if obs.Close != nil {
			acc.nNonNull++
			if acc.firstValid == nil || date.Before(*acc.firstValid) {
				d := date
				acc.firstValid = &d
			}
		}
	}

	out := []domain.CoverageSummary{}
	for ticker, acc := range accs {
		out = append(out, domain.CoverageSummary{
			Ticker:         ticker,
			FirstValidDate: acc.firstValid,
			FirstDate:      acc.firstDate,
			LastDate:       acc.lastDate,
			NTotal:         acc.nTotal,
			NNonNull:       acc.nNonNull,
			CoverageRatio:  float64(acc.nNonNull) / float64(acc.nTotal),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Ticker < out[j].Ticker
	})

	return out
}
