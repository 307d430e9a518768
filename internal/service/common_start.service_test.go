package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CommonStartDate(t *testing.T) {
	t.Run("picks the latest first valid date", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("VOO", util.NewDate(2020, 1, 1), price(193.98)),
			obs("VOO", util.NewDate(2020, 1, 2), price(194.5)),
			obs("BTC-USD", util.NewDate(2020, 1, 6), price(7200)),
			obs("BTC-USD", util.NewDate(2020, 1, 7), price(7300)),
		}

		commonStart, summaries, err := CommonStartDate(table, domain.StartPolicyStrict)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2020, 1, 6), commonStart)
		require.Len(t, summaries, 2)
	})

	t.Run("strict fails naming all-null tickers", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("VOO", util.NewDate(2020, 1, 1), price(193.98)),
			obs("X", util.NewDate(2020, 1, 1), nil),
			obs("X", util.NewDate(2020, 1, 2), nil),
		}

		_, _, err := CommonStartDate(table, domain.StartPolicyStrict)
		require.Error(t, err)

		var integrityErr domain.DataIntegrityError
		require.True(t, errors.As(err, &integrityErr))
		require.Equal(t, []string{"X"}, integrityErr.Tickers)
		require.Contains(t, err.Error(), "X")
	})

	t.Run("lenient drops all-null tickers", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("VOO", util.NewDate(2020, 1, 1), price(193.98)),
			obs("X", util.NewDate(2020, 1, 1), nil),
		}

		commonStart, summaries, err := CommonStartDate(table, domain.StartPolicyLenient)
		require.NoError(t, err)
		require.Equal(t, util.NewDate(2020, 1, 1), commonStart)
		require.Len(t, summaries, 1)
		require.Equal(t, "VOO", summaries[0].Ticker)
	})

	t.Run("lenient with nothing left still fails", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("X", util.NewDate(2020, 1, 1), nil),
		}

		_, _, err := CommonStartDate(table, domain.StartPolicyLenient)
		var integrityErr domain.DataIntegrityError
		require.True(t, errors.As(err, &integrityErr))
	})

	t.Run("unknown policy rejected", func(t *testing.T) {
		_, _, err := CommonStartDate(domain.ObservationTable{}, domain.StartPolicy("SOMETIMES"))
		require.Error(t, err)
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		table := domain.ObservationTable{
			obs("VOO", util.NewDate(2020, 1, 3), price(193.98)),
			obs("QQQ", util.NewDate(2020, 1, 2), price(102.73)),
		}

		first, _, err := CommonStartDate(table, domain.StartPolicyStrict)
		require.NoError(t, err)
		second, _, err := CommonStartDate(table, domain.StartPolicyStrict)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}
