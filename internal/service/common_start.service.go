package service

import (
	"edufinance/internal/domain"
	"fmt"
	"time"
)

// CommonStartDate resolves the single start date from which every ticker
// has valid data: the latest of all tickers' first valid dates. Using the
// max avoids spurious leading nulls for late-listing assets (e.g. a crypto
// asset that started trading after an ETF).
//
// Tickers with no valid close at all fail the run under StartPolicyStrict
// (DataIntegrityError naming them) and are dropped from the returned
// coverage table under StartPolicyLenient.
func CommonStartDate(table domain.ObservationTable, policy domain.StartPolicy) (time.Time, []domain.CoverageSummary, error) {
	if !policy.Valid() {
		return time.Time{}, nil, fmt.Errorf("unknown start policy %q", policy)
	}

	summaries := CoverageByTicker(table)

	missing := []string{}
	kept := []domain.CoverageSummary{}
	for _, s := range summaries {
		if s.FirstValidDate == nil {
			missing = append(missing, s.Ticker)
			continue
		}
		kept = append(kept, s)
	}

	if len(missing) > 0 && policy == domain.StartPolicyStrict {
		return time.Time{}, nil, domain.DataIntegrityError{Tickers: missing}
	}

	// nothing left to align - lenient mode dropped everything, or the
	// table was empty to begin with
	if len(kept) == 0 {
		return time.Time{}, nil, domain.DataIntegrityError{Tickers: missing}
	}

	commonStart := *kept[0].FirstValidDate
	for _, s := range kept[1:] {
		if s.FirstValidDate.After(commonStart) {
			commonStart = *s.FirstValidDate
		}
	}

	return commonStart, kept, nil
}
