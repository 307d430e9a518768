package repository

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// ObservationCsvRow mirrors the tidy csv layout the dashboard exchanges:
// date,ticker,asset_class,close,currency. Close is empty for null values.
type ObservationCsvRow struct {
	Date       string `csv:"date"`
	Ticker     string `csv:"ticker"`
	AssetClass string `csv:"asset_class"`
	Close      string `csv:"close"`
	Currency   string `csv:"currency"`
}

type CoverageCsvRow struct {
	Ticker         string  `csv:"ticker"`
	FirstValidDate string  `csv:"first_valid_date"`
	FirstDate      string  `csv:"first_date"`
	LastDate       string  `csv:"last_date"`
	NTotal         int     `csv:"n_total"`
	NNonNull       int     `csv:"n_nonnull"`
	CoverageRatio  float64 `csv:"coverage_ratio"`
}

type RetentionCsvRow struct {
	Ticker        string  `csv:"ticker"`
	NRowsBefore   int     `csv:"n_rows_before"`
	NRowsAfter    int     `csv:"n_rows_after"`
	RetainedRatio float64 `csv:"retained_ratio"`
}

func ReadObservationCsv(path string) (domain.ObservationTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows := []ObservationCsvRow{}
	err = gocsv.UnmarshalFile(f, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	out := domain.ObservationTable{}
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("failed to parse date on row %d: %w", i+1, err)
		}
		var close *decimal.Decimal
		if row.Close != "" {
			d, err := decimal.NewFromString(row.Close)
			if err != nil {
				return nil, fmt.Errorf("failed to parse close on row %d: %w", i+1, err)
			}
			close = &d
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

func WriteObservationCsv(path string, table domain.ObservationTable) error {
	rows := []ObservationCsvRow{}
	for _, obs := range table {
		close := ""
		if obs.Close != nil {
			close = obs.Close.String()
		}
		rows = append(rows, ObservationCsvRow{
			Date:       obs.Date.Format(time.DateOnly),
			Ticker:     obs.Ticker,
			AssetClass: obs.AssetClass,
			Close:      close,
			Currency:   obs.Currency,
		})
	}

	return writeCsvFile(path, rows)
}

func WriteCoverageCsv(path string, summaries []domain.CoverageSummary) error {
	rows := []CoverageCsvRow{}
	for _, s := range summaries {
		firstValid := ""
		if s.FirstValidDate != nil {
			firstValid = s.FirstValidDate.Format(time.DateOnly)
		}
		rows = append(rows, CoverageCsvRow{
			Ticker:         s.Ticker,
			FirstValidDate: firstValid,
			FirstDate:      s.FirstDate.Format(time.DateOnly),
			LastDate:       s.LastDate.Format(time.DateOnly),
			NTotal:         s.NTotal,
			NNonNull:       s.NNonNull,
			CoverageRatio:  s.CoverageRatio,
		})
	}

	return writeCsvFile(path, rows)
}

func WriteRetentionCsv(path string, retention []domain.TickerRetention) error {
	rows := []RetentionCsvRow{}
	for _, r := range retention {
		rows = append(rows, RetentionCsvRow{
			Ticker:        r.Ticker,
			NRowsBefore:   r.RowsBefore,
			NRowsAfter:    r.RowsAfter,
			RetainedRatio: r.RetainedRatio,
		})
	}

	return writeCsvFile(path, rows)
}

// WriteWidePriceCsv exports a dense panel in wide format (rows = dates,
// columns = tickers), the shape the dashboard's prices.csv uses. Column
// count is dynamic so this writes through encoding/csv rather than gocsv.
func WriteWidePriceCsv(path string, panel domain.ObservationTable) error {
	tickers := panel.Tickers()

	byDate := map[string]map[string]string{}
	for _, obs := range panel {
		key := obs.Date.Format(time.DateOnly)
		if _, ok := byDate[key]; !ok {
			byDate[key] = map[string]string{}
		}
		if obs.Close != nil {
			byDate[key][obs.Ticker] = obs.Close.String()
		}
	}

	dates := []string{}
	for key := range byDate {
		dates = append(dates, key)
	}
	sort.Strings(dates)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append([]string{"date"}, tickers...)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, date := range dates {
		record := []string{date}
		for _, ticker := range tickers {
			record = append(record, byDate[date][ticker])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()

	return w.Error()
}

func writeCsvFile(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	err = gocsv.MarshalFile(rows, f)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
