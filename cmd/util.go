package cmd

import (
	"database/sql"
	"edufinance/api"
	"edufinance/internal/app"
	"edufinance/internal/repository"
	"edufinance/internal/util"
	"fmt"
	"log"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	settings, err := util.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	dbConn, err := sql.Open("postgres", settings.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	observationRepository := repository.NewObservationRepository(dbConn)
	runRepository := repository.NewNormalizationRunRepository(dbConn)

	return &api.ApiHandler{
		Db:                    dbConn,
		NormalizeHandler:      app.NormalizeHandler{},
		ObservationRepository: observationRepository,
		RunRepository:         runRepository,
	}, nil
}
