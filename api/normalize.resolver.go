package api

import (
	"edufinance/internal/app"
	"edufinance/internal/domain"
	"edufinance/internal/logger"
	"edufinance/internal/util"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type observationJson struct {
	Date       string   `json:"date"`
	Ticker     string   `json:"ticker"`
	AssetClass string   `json:"assetClass"`
	Close      *float64 `json:"close"`
	Currency   string   `json:"currency"`
}

type normalizeRequest struct {
	EndDate string `json:"endDate"`
	Policy  string `json:"policy"`
	// Observations are normalized inline when given; otherwise the stored
	// observation table is used, optionally filtered by Symbols.
	Observations []observationJson `json:"observations"`
	Symbols      []string          `json:"symbols"`
}

type coverageSummaryJson struct {
	Ticker         string  `json:"ticker"`
	FirstValidDate *string `json:"firstValidDate"`
	FirstDate      string  `json:"firstDate"`
	LastDate       string  `json:"lastDate"`
	NTotal         int     `json:"nTotal"`
	NNonNull       int     `json:"nNonNull"`
	CoverageRatio  float64 `json:"coverageRatio"`
}

type tickerRetentionJson struct {
	Ticker        string  `json:"ticker"`
	RowsBefore    int     `json:"rowsBefore"`
	RowsAfter     int     `json:"rowsAfter"`
	RetainedRatio float64 `json:"retainedRatio"`
}

type auditJson struct {
	CommonStart       string                `json:"commonStart"`
	EndDate           string                `json:"endDate"`
	Policy            string                `json:"policy"`
	FirstValid        []coverageSummaryJson `json:"firstValid"`
	Retention         []tickerRetentionJson `json:"retention"`
	MeanCoverageRatio float64               `json:"meanCoverageRatio"`
	MinRetainedRatio  float64               `json:"minRetainedRatio"`
}

type normalizeResponse struct {
	Panel []observationJson `json:"panel"`
	Audit auditJson         `json:"audit"`
}

func (m ApiHandler) normalize(c *gin.Context) {
	var requestBody normalizeRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	endDate, err := time.Parse(time.DateOnly, requestBody.EndDate)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse endDate: %w", err), c, 400)
		return
	}

	policy, err := parsePolicy(requestBody.Policy)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	table, err := m.observationTable(requestBody.Observations, requestBody.Symbols)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	result, err := m.NormalizeHandler.Normalize(c.Request.Context(), app.NormalizeInput{
		Observations: table,
		EndDate:      endDate,
		Policy:       policy,
	})
	if err != nil {
		returnPipelineError(err, c)
		return
	}

	m.persistRun(result.Audit)

	c.JSON(200, normalizeResponse{
		Panel: toObservationJson(result.Panel),
		Audit: toAuditJson(result.Audit),
	})
}

// persistRun records the run for the dashboard's audit views. Failures are
// logged, not surfaced - the caller already has its panel.
func (m ApiHandler) persistRun(audit domain.AuditMetadata) {
	if m.Db == nil || m.RunRepository == nil {
		return
	}
	tx, err := m.Db.Begin()
	if err != nil {
		logger.Error(fmt.Errorf("failed to begin run tx: %w", err))
		return
	}
	defer tx.Rollback()

	_, err = m.RunRepository.Add(tx, audit)
	if err != nil {
		logger.Error(fmt.Errorf("failed to record normalization run: %w", err))
		return
	}
	if err := tx.Commit(); err != nil {
		logger.Error(fmt.Errorf("failed to commit normalization run: %w", err))
	}
}

func (m ApiHandler) observationTable(inline []observationJson, symbols []string) (domain.ObservationTable, error) {
	if len(inline) > 0 {
		return fromObservationJson(inline)
	}
	if m.ObservationRepository == nil {
		return nil, fmt.Errorf("no observations given and no observation store configured")
	}
	return m.ObservationRepository.List(symbols)
}

func parsePolicy(raw string) (domain.StartPolicy, error) {
	if raw == "" {
		return domain.StartPolicyStrict, nil
	}
	policy := domain.StartPolicy(strings.ToUpper(raw))
	if !policy.Valid() {
		return "", fmt.Errorf("unknown policy %q - want strict or lenient", raw)
	}
	return policy, nil
}

func fromObservationJson(rows []observationJson) (domain.ObservationTable, error) {
	out := domain.ObservationTable{}
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date on observation %d: %w", i, err)
		}
		var close *decimal.Decimal
		if row.Close != nil {
			close = util.DecimalPointer(decimal.NewFromFloat(*row.Close))
		}
		out = append(out, domain.Observation{
			Date:       util.TruncateDate(date),
			Ticker:     row.Ticker,
			Close:      close,
			AssetClass: row.AssetClass,
			Currency:   row.Currency,
		})
	}
	return out, nil
}

func toObservationJson(table domain.ObservationTable) []observationJson {
	out := []observationJson{}
	for _, obs := range table {
		var close *float64
		if obs.Close != nil {
			close = util.FloatPointer(obs.Close.InexactFloat64())
		}
		out = append(out, observationJson{
			Date:       obs.Date.Format(time.DateOnly),
			Ticker:     obs.Ticker,
			AssetClass: obs.AssetClass,
			Close:      close,
			Currency:   obs.Currency,
		})
	}
	return out
}

func toCoverageJson(summaries []domain.CoverageSummary) []coverageSummaryJson {
	out := []coverageSummaryJson{}
	for _, s := range summaries {
		var firstValid *string
		if s.FirstValidDate != nil {
			v := s.FirstValidDate.Format(time.DateOnly)
			firstValid = &v
		}
		out = append(out, coverageSummaryJson{
			Ticker:         s.Ticker,
			FirstValidDate: firstValid,
			FirstDate:      s.FirstDate.Format(time.DateOnly),
			LastDate:       s.LastDate.Format(time.DateOnly),
			NTotal:         s.NTotal,
			NNonNull:       s.NNonNull,
			CoverageRatio:  s.CoverageRatio,
		})
	}
	return out
}

func toAuditJson(audit domain.AuditMetadata) auditJson {
	retention := []tickerRetentionJson{}
	for _, r := range audit.Retention {
		retention = append(retention, tickerRetentionJson{
			Ticker:        r.Ticker,
			RowsBefore:    r.RowsBefore,
			RowsAfter:     r.RowsAfter,
			RetainedRatio: r.RetainedRatio,
		})
	}
	return auditJson{
		CommonStart:       audit.CommonStart.Format(time.DateOnly),
		EndDate:           audit.EndDate.Format(time.DateOnly),
		Policy:            string(audit.Policy),
		FirstValid:        toCoverageJson(audit.FirstValid),
		Retention:         retention,
		MeanCoverageRatio: audit.MeanCoverageRatio,
		MinRetainedRatio:  audit.MinRetainedRatio,
	}
}
