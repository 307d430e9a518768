package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func obs(ticker string, date time.Time, close *decimal.Decimal) domain.Observation {
	return domain.Observation{
		Date:       date,
		Ticker:     ticker,
		Close:      close,
		AssetClass: "ETF",
		Currency:   "USD",
	}
}

func price(f float64) *decimal.Decimal {
	return util.DecimalPointer(decimal.NewFromFloat(f))
}

func Test_CoverageByTicker(t *testing.T) {
	t.Run("coverage arithmetic", func(t *testing.T) {
		table := domain.ObservationTable{}
		for i := 0; i < 10; i++ {
			var close *decimal.Decimal
			if i < 7 {
				close = price(100 + float64(i))
			}
			table = append(table, obs("VOO", util.NewDate(2020, 1, 1+i), close))
		}

		summaries := CoverageByTicker(table)
		require.Len(t, summaries, 1)

		s := summaries[0]
		require.Equal(t, "VOO", s.Ticker)
		require.Equal(t, 10, s.NTotal)
		require.Equal(t, 7, s.NNonNull)
		require.Equal(t, 0.7, s.CoverageRatio)
		require.Equal(t, util.NewDate(2020, 1, 1), s.FirstDate)
		require.Equal(t, util.NewDate(2020, 1, 10), s.LastDate)
	})

	t.Run("first valid date skips leading nulls", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("TSLA", util.NewDate(2020, 1, 1), nil),
			obs("TSLA", util.NewDate(2020, 1, 2), nil),
			obs("TSLA", util.NewDate(2020, 1, 3), price(42.33)),
			obs("TSLA", util.NewDate(2020, 1, 4), price(43.01)),
		}

		summaries := CoverageByTicker(table)
		require.Len(t, summaries, 1)

		s := summaries[0]
		require.Equal(t, util.NewDate(2020, 1, 1), s.FirstDate)
		require.NotNil(t, s.FirstValidDate)
		require.Equal(t, util.NewDate(2020, 1, 3), *s.FirstValidDate)
	})

	t.Run("ticker with only nulls has no first valid date", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("X", util.NewDate(2020, 1, 1), nil),
			obs("X", util.NewDate(2020, 1, 2), nil),
		}

		summaries := CoverageByTicker(table)
		require.Len(t, summaries, 1)
		require.Nil(t, summaries[0].FirstValidDate)
		require.Equal(t, 0, summaries[0].NNonNull)
	})

	t.Run("one summary per ticker, ordered", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("QQQ", util.NewDate(2020, 1, 2), price(102.73)),
			obs("BTC-USD", util.NewDate(2020, 1, 1), price(315.23)),
			obs("QQQ", util.NewDate(2020, 1, 3), price(103.1)),
		}

		summaries := CoverageByTicker(table)
		require.Len(t, summaries, 2)
		require.Equal(t, "BTC-USD", summaries[0].Ticker)
		require.Equal(t, "QQQ", summaries[1].Ticker)
	})

	t.Run("input table is not mutated", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("VOO", util.NewDate(2020, 1, 2).Add(5*time.Hour), price(193.98)),
		}
		CoverageByTicker(table)
		require.Equal(t, util.NewDate(2020, 1, 2).Add(5*time.Hour), table[0].Date)
	})
}
