package service

import (
	"context"
	"database/sql"
	"edufinance/internal/db/models/postgres/public/model"
	"edufinance/internal/logger"
	"edufinance/internal/repository"
	"edufinance/internal/util"
	"fmt"
	"sync"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// fetchDailyCloses pulls daily close quotes for one universe asset from
// Yahoo Finance. Weekends and holidays simply don't appear in the feed;
// the normalization pipeline is what turns those gaps into explicit nulls
// later. Package var so tests can stub the network call.
var fetchDailyCloses = func(asset util.UniverseAsset, start *time.Time) ([]model.MarketObservation, error) {
	s := util.NewDate(2015, 1, 1)
	if start != nil {
		s = *start
	}
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&now),
		Symbol:   asset.Symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.MarketObservation{}
	for iter.Next() {
		close := iter.Bar().AdjClose.InexactFloat64()
		models = append(models, model.MarketObservation{
			Date:       util.TruncateDate(time.Unix(int64(iter.Bar().Timestamp), 0).UTC()),
			Ticker:     asset.Symbol,
			Close:      &close,
			AssetClass: asset.AssetClass,
			Currency:   asset.Currency,
			CreatedAt:  time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get quotes for %s: %w", asset.Symbol, err)
	}

	return models, nil
}

// IngestDailyCloses fetches one asset's daily closes and upserts them into
// the observation store.
func IngestDailyCloses(
	tx *sql.Tx,
	asset util.UniverseAsset,
	observationRepository repository.ObservationRepository,
	start *time.Time,
) error {
	models, err := fetchDailyCloses(asset, start)
	if err != nil {
		return err
	}

	return observationRepository.Add(tx, models)
}

// IngestUniverse ingests every configured asset. Fetches run concurrently;
// writes are serialized because a sql.Tx is not safe for concurrent use.
func IngestUniverse(
	ctx context.Context,
	tx *sql.Tx,
	universe []util.UniverseAsset,
	observationRepository repository.ObservationRepository,
	start *time.Time,
) error {
	numGoroutines := 4

	inputCh := make(chan util.UniverseAsset, len(universe))

	var wg sync.WaitGroup
	for _, a := range universe {
		wg.Add(1)
		inputCh <- a
	}
	close(inputCh)

	var txMu sync.Mutex
	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case asset, ok := <-inputCh:
					if !ok {
						return
					}
					models, err := fetchDailyCloses(asset, start)
					if err == nil {
						txMu.Lock()
						err = observationRepository.Add(tx, models)
						txMu.Unlock()
					}
					if err != nil {
						logger.Error(fmt.Errorf("failed to ingest quotes for %s: %w", asset.Symbol, err))
					}
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	return nil
}
