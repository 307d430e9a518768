package app

import (
	"context"
	"edufinance/internal/domain"
	"edufinance/internal/logger"
	"edufinance/internal/service"
	"edufinance/internal/util"
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

type NormalizeHandler struct{}

type NormalizeInput struct {
	Observations domain.ObservationTable
	EndDate      time.Time
	Policy       domain.StartPolicy
}

type NormalizeResult struct {
	// Panel is dense: every surviving date has a non-null close for every
	// ticker.
	Panel domain.ObservationTable
	Audit domain.AuditMetadata
}

// Normalize aligns a heterogeneous multi-asset observation table onto a
// common business calendar: resolve the common start date, build the
// Mon-Fri calendar up to EndDate, reindex every ticker onto it, then drop
// any day where some ticker is missing a close. Stages run strictly in
// order and the first failure aborts the run - no partial output.
func (h NormalizeHandler) Normalize(ctx context.Context, in NormalizeInput) (*NormalizeResult, error) {
	log := logger.FromContext(ctx)
	profile := domain.NewProfile()

	endSpan := profile.StartSpan("commonStart")
	commonStart, summaries, err := service.CommonStartDate(in.Observations, in.Policy)
	endSpan()
	if err != nil {
		return nil, err
	}

	endSpan = profile.StartSpan("businessIndex")
	businessIndex, err := service.BusinessIndex(commonStart, in.EndDate)
	endSpan()
	if err != nil {
		return nil, err
	}
	log.Infof(
		"normalizing %d tickers onto %d business days (%s to %s)",
		len(summaries), len(businessIndex),
		commonStart.Format(time.DateOnly), in.EndDate.Format(time.DateOnly),
	)

	// lenient mode may have dropped all-null tickers from the coverage
	// table; only the survivors get aligned
	kept := map[string]bool{}
	for _, s := range summaries {
		kept[s.Ticker] = true
	}
	aligned := domain.ObservationTable{}
	for _, obs := range in.Observations {
		if kept[obs.Ticker] {
			aligned = append(aligned, obs)
		}
	}

	endSpan = profile.StartSpan("reindex")
	reindexed := service.ReindexToBusiness(aligned, businessIndex)
	endSpan()

	endSpan = profile.StartSpan("dropIncompleteDays")
	panel, err := service.DropIncompleteDays(reindexed)
	endSpan()
	if err != nil {
		return nil, err
	}

	audit, err := buildAudit(in, commonStart, summaries, panel)
	if err != nil {
		return nil, err
	}
	log.Infof("retained %d of %d rows in %dms", len(panel), len(in.Observations), profile.TotalMs())
	for _, span := range profile.Spans {
		log.Debugf("stage %s took %dms", span.Name, span.ElapsedMs)
	}

	return &NormalizeResult{
		Panel: panel,
		Audit: *audit,
	}, nil
}

func buildAudit(
	in NormalizeInput,
	commonStart time.Time,
	summaries []domain.CoverageSummary,
	panel domain.ObservationTable,
) (*domain.AuditMetadata, error) {
	beforeCounts := in.Observations.RowCountByTicker()
	afterCounts := panel.RowCountByTicker()

	// row counts from the original table, so tickers dropped under the
	// lenient policy still show up, with zero rows retained
	retention := []domain.TickerRetention{}
	for _, ticker := range in.Observations.Tickers() {
		before := beforeCounts[ticker]
		after := afterCounts[ticker]
		retention = append(retention, domain.TickerRetention{
			Ticker:        ticker,
			RowsBefore:    before,
			RowsAfter:     after,
			RetainedRatio: float64(after) / float64(before),
		})
	}

	firstValid := make([]domain.CoverageSummary, len(summaries))
	copy(firstValid, summaries)
	sort.SliceStable(firstValid, func(i, j int) bool {
		return firstValid[i].FirstValidDate.Before(*firstValid[j].FirstValidDate)
	})

	coverageRatios := []float64{}
	for _, s := range summaries {
		coverageRatios = append(coverageRatios, s.CoverageRatio)
	}
	meanCoverage, err := stats.Mean(coverageRatios)
	if err != nil {
		return nil, err
	}

	retainedRatios := []float64{}
	for _, r := range retention {
		retainedRatios = append(retainedRatios, r.RetainedRatio)
	}
	minRetained, err := stats.Min(retainedRatios)
	if err != nil {
		return nil, err
	}

	return &domain.AuditMetadata{
		CommonStart:       commonStart,
		EndDate:           util.TruncateDate(in.EndDate),
		Policy:            in.Policy,
		FirstValid:        firstValid,
		Retention:         retention,
		MeanCoverageRatio: meanCoverage,
		MinRetainedRatio:  minRetained,
	}, nil
}
