package repository

import (
	"database/sql"
	"edufinance/internal/db/models/postgres/public/model"
	. "edufinance/internal/db/models/postgres/public/table"
	"edufinance/internal/domain"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type NormalizationRunRepository interface {
	Add(tx *sql.Tx, audit domain.AuditMetadata) (*model.NormalizationRun, error)
	List() ([]model.NormalizationRun, error)
}

type normalizationRunRepositoryHandler struct {
	Db *sql.DB
}

func NewNormalizationRunRepository(db *sql.DB) NormalizationRunRepository {
	return normalizationRunRepositoryHandler{Db: db}
}

// Add records one normalization run and its per-ticker retention rows.
func (h normalizationRunRepositoryHandler) Add(tx *sql.Tx, audit domain.AuditMetadata) (*model.NormalizationRun, error) {
	run := model.NormalizationRun{
		RunID:       uuid.New(),
		CommonStart: audit.CommonStart,
		EndDate:     audit.EndDate,
		Policy:      string(audit.Policy),
		CreatedAt:   time.Now().UTC(),
	}

	query := NormalizationRun.
		INSERT(NormalizationRun.AllColumns).
		MODEL(run)

	_, err := query.Exec(tx)
	if err != nil {
		return nil, fmt.Errorf("failed to add normalization run: %w", err)
	}

	tickerRows := []model.NormalizationRunTicker{}
	for _, r := range audit.Retention {
		tickerRows = append(tickerRows, model.NormalizationRunTicker{
			RunID:         run.RunID,
			Ticker:        r.Ticker,
			NRowsBefore:   int32(r.RowsBefore),
			NRowsAfter:    int32(r.RowsAfter),
			RetainedRatio: r.RetainedRatio,
		})
	}
	if len(tickerRows) > 0 {
		query := NormalizationRunTicker.
			INSERT(NormalizationRunTicker.AllColumns).
			MODELS(tickerRows)
		_, err = query.Exec(tx)
		if err != nil {
			return nil, fmt.Errorf("failed to add normalization run tickers: %w", err)
		}
	}

	return &run, nil
}

func (h normalizationRunRepositoryHandler) List() ([]model.NormalizationRun, error) {
	query := NormalizationRun.
		SELECT(NormalizationRun.AllColumns).
		ORDER_BY(NormalizationRun.CreatedAt.DESC())

	result := []model.NormalizationRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list normalization runs: %w", err)
	}

	return result, nil
}
