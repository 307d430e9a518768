package repository

import (
	"database/sql"
	"edufinance/internal/db/models/postgres/public/model"
	. "edufinance/internal/db/models/postgres/public/table"
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"fmt"
	"time"

	. "github.com/go-jet/jet/v2/postgres"
	"github.com/shopspring/decimal"
)

type ObservationRepository interface {
	Add(tx *sql.Tx, observations []model.MarketObservation) error
	List(symbols []string) (domain.ObservationTable, error)
	ListSymbols() ([]string, error)
}

type observationRepositoryHandler struct {
	Db *sql.DB
}

func NewObservationRepository(db *sql.DB) ObservationRepository {
	return observationRepositoryHandler{Db: db}
}

func (h observationRepositoryHandler) Add(tx *sql.Tx, observations []model.MarketObservation) error {
	if len(observations) == 0 {
		return nil
	}

	query := MarketObservation.
		INSERT(MarketObservation.AllColumns).
		MODELS(observations).
		ON_CONFLICT(
			MarketObservation.Date, MarketObservation.Ticker,
		).DO_UPDATE(
		SET(
			MarketObservation.Close.SET(MarketObservation.EXCLUDED.Close),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add market observations: %w", err)
	}

	return nil
}

// List returns the tidy observation table for the given symbols, or for
// every stored symbol when symbols is empty.
func (h observationRepositoryHandler) List(symbols []string) (domain.ObservationTable, error) {
	query := MarketObservation.SELECT(MarketObservation.AllColumns)
	if len(symbols) > 0 {
		symbolExprs := []Expression{}
		for _, s := range symbols {
			symbolExprs = append(symbolExprs, String(s))
		}
		query = query.WHERE(MarketObservation.Ticker.IN(symbolExprs...))
	}
	query = query.ORDER_BY(MarketObservation.Ticker.ASC(), MarketObservation.Date.ASC())

	result := []model.MarketObservation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list market observations: %w", err)
	}

	out := domain.ObservationTable{}
	for _, m := range result {
		var close *decimal.Decimal
		if m.Close != nil {
			close = util.DecimalPointer(decimal.NewFromFloat(*m.Close))
		}
		out = append(out, domain.Observation{
			Date:       util.TruncateDate(m.Date),
			Ticker:     m.Ticker,
			Close:      close,
			AssetClass: m.AssetClass,
			Currency:   m.Currency,
		})
	}

	return out, nil
}

func (h observationRepositoryHandler) ListSymbols() ([]string, error) {
	query := MarketObservation.
		SELECT(MarketObservation.Ticker).
		GROUP_BY(MarketObservation.Ticker).
		ORDER_BY(MarketObservation.Ticker.ASC())

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list symbols: %w", err)
	}
	defer rows.Close()

	out := []string{}
	for rows.Next() {
		var s string
		err := rows.Scan(&s)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, s)
	}

	return out, nil
}

// ToModels converts a domain table into db models stamped with now.
func ToModels(table domain.ObservationTable) []model.MarketObservation {
	out := []model.MarketObservation{}
	for _, obs := range table {
		var close *float64
		if obs.Close != nil {
			close = util.FloatPointer(obs.Close.InexactFloat64())
		}
		out = append(out, model.MarketObservation{
			Date:       util.TruncateDate(obs.Date),
			Ticker:     obs.Ticker,
			Close:      close,
			AssetClass: obs.AssetClass,
			Currency:   obs.Currency,
			CreatedAt:  time.Now().UTC(),
		})
	}
	return out
}
