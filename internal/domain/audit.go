package domain

import (
	"time"
)

// TickerRetention compares one ticker's row count before and after
// normalization. RetainedRatio is 0 for tickers dropped under the lenient
// policy (RowsAfter is 0).
type TickerRetention struct {
	Ticker        string
	RowsBefore    int
	RowsAfter     int
	RetainedRatio float64
}

// AuditMetadata records what a normalization run did to the data. It is
// built once by the orchestrator and never mutated afterwards. Identical
// inputs produce identical metadata; run identity lives in the
// normalization_run store, not here.
type AuditMetadata struct {
	CommonStart time.Time
	EndDate     time.Time
	Policy      StartPolicy

	// FirstValid is the per-ticker coverage table, ordered by first valid
	// date ascending.
	FirstValid []CoverageSummary
	// Retention is ordered by ticker.
	Retention []TickerRetention

	// Summary stats over the tables above, for the dashboard's audit view.
	MeanCoverageRatio float64
	MinRetainedRatio  float64
}
