package domain

import "time"

// CoverageSummary describes how well one ticker's history is populated.
// FirstValidDate is nil when the ticker has no non-null close at all -
// distinct from any real date, including the epoch.
type CoverageSummary struct {
	Ticker         string
	FirstValidDate *time.Time
	FirstDate      time.Time
	LastDate       time.Time
	NTotal         int
	NNonNull       int
	CoverageRatio  float64
}

// StartPolicy controls what happens to tickers that have no valid close
// values when resolving the common start date.
type StartPolicy string

const (
	// StartPolicyStrict fails the run, naming the offending tickers.
	StartPolicyStrict StartPolicy = "STRICT"
	// StartPolicyLenient drops the offending tickers and continues.
	StartPolicyLenient StartPolicy = "LENIENT"
)

func (p StartPolicy) Valid() bool {
	return p == StartPolicyStrict || p == StartPolicyLenient
}
