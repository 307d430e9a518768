package service

import (
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_BusinessIndex(t *testing.T) {
	t.Run("weekdays only, bounds inclusive", func(t *testing.T) {
		// 2020-01-10 is a Friday, 2020-01-15 a Wednesday
		index, err := BusinessIndex(util.NewDate(2020, 1, 10), util.NewDate(2020, 1, 15))
		require.NoError(t, err)

		require.Equal(t, []time.Time{
			util.NewDate(2020, 1, 10),
			util.NewDate(2020, 1, 13),
			util.NewDate(2020, 1, 14),
			util.NewDate(2020, 1, 15),
		}, index)

		for _, d := range index {
			require.NotEqual(t, time.Saturday, d.Weekday())
			require.NotEqual(t, time.Sunday, d.Weekday())
		}
	})

	t.Run("single day range", func(t *testing.T) {
		index, err := BusinessIndex(util.NewDate(2020, 1, 13), util.NewDate(2020, 1, 13))
		require.NoError(t, err)
		require.Equal(t, []time.Time{util.NewDate(2020, 1, 13)}, index)
	})

	t.Run("weekend-only range is empty but valid", func(t *testing.T) {
		index, err := BusinessIndex(util.NewDate(2020, 1, 11), util.NewDate(2020, 1, 12))
		require.NoError(t, err)
		require.Empty(t, index)
	})

	t.Run("end before start fails", func(t *testing.T) {
		_, err := BusinessIndex(util.NewDate(2020, 1, 15), util.NewDate(2020, 1, 10))
		require.Error(t, err)

		var rangeErr domain.InvalidRangeError
		require.True(t, errors.As(err, &rangeErr))
		require.Equal(t, util.NewDate(2020, 1, 15), rangeErr.Start)
	})

	t.Run("time components are dropped", func(t *testing.T) {
		index, err := BusinessIndex(
			util.NewDate(2020, 1, 13).Add(9*time.Hour),
			util.NewDate(2020, 1, 14).Add(17*time.Hour),
		)
		require.NoError(t, err)
		require.Equal(t, []time.Time{
			util.NewDate(2020, 1, 13),
			util.NewDate(2020, 1, 14),
		}, index)
	})
}
