package service

import (
	"context"
	"database/sql"
	"edufinance/internal/db/models/postgres/public/model"
	"edufinance/internal/domain"
	"edufinance/internal/util"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// serialWriteRepository flags any two Add calls that overlap in time.
type serialWriteRepository struct {
	inAdd      int32
	overlapped int32
	added      int32
}

func (r *serialWriteRepository) Add(tx *sql.Tx, observations []model.MarketObservation) error {
	if !atomic.CompareAndSwapInt32(&r.inAdd, 0, 1) {
		atomic.StoreInt32(&r.overlapped, 1)
	}
	time.Sleep(2 * time.Millisecond)
	atomic.AddInt32(&r.added, int32(len(observations)))
	atomic.StoreInt32(&r.inAdd, 0)
	return nil
}

func (r *serialWriteRepository) List(symbols []string) (domain.ObservationTable, error) {
	return nil, nil
}

func (r *serialWriteRepository) ListSymbols() ([]string, error) {
	return nil, nil
}

func Test_IngestUniverse(t *testing.T) {
	t.Run("writes to the shared tx are serialized", func(t *testing.T) {
		orig := fetchDailyCloses
		defer func() { fetchDailyCloses = orig }()
		fetchDailyCloses = func(asset util.UniverseAsset, start *time.Time) ([]model.MarketObservation, error) {
			return []model.MarketObservation{{
				Date:       util.NewDate(2020, 1, 13),
				Ticker:     asset.Symbol,
				AssetClass: asset.AssetClass,
				Currency:   asset.Currency,
			}}, nil
		}

		universe := []util.UniverseAsset{}
		for _, symbol := range []string{"VOO", "QQQ", "BTC-USD", "ETH-USD", "TSLA", "GLD", "TLT", "VTI"} {
			universe = append(universe, util.UniverseAsset{Symbol: symbol, AssetClass: "ETF", Currency: "USD"})
		}

		repo := &serialWriteRepository{}
		err := IngestUniverse(context.Background(), nil, universe, repo, nil)
		require.NoError(t, err)

		require.Equal(t, int32(0), atomic.LoadInt32(&repo.overlapped), "concurrent Add calls on one tx")
		require.Equal(t, int32(len(universe)), atomic.LoadInt32(&repo.added))
	})
}
