package main

import (
	"context"
	"database/sql"
	"edufinance/internal/app"
	"edufinance/internal/domain"
	"edufinance/internal/logger"
	"edufinance/internal/repository"
	"edufinance/internal/service"
	"edufinance/internal/util"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"
)

var (
	inputPath  string
	outputDir  string
	endDateStr string
	policyStr  string
	startStr   string
)

var rootCmd = &cobra.Command{
	Use:   "edufinance",
	Short: "Market panel tooling for the EduFinance dashboard",
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Align all tickers onto a common business calendar and drop incomplete days",
	RunE: func(cmd *cobra.Command, args []string) error {
		endDate, err := time.Parse(time.DateOnly, endDateStr)
		if err != nil {
			return fmt.Errorf("failed to parse --end: %w", err)
		}
		policy := domain.StartPolicy(strings.ToUpper(policyStr))
		if !policy.Valid() {
			return fmt.Errorf("unknown policy %q - want strict or lenient", policyStr)
		}

		table, err := loadObservations()
		if err != nil {
			return err
		}

		handler := app.NormalizeHandler{}
		result, err := handler.Normalize(context.Background(), app.NormalizeInput{
			Observations: table,
			EndDate:      endDate,
			Policy:       policy,
		})
		if err != nil {
			return err
		}

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return err
		}
		if err := repository.WriteObservationCsv(filepath.Join(outputDir, "panel.csv"), result.Panel); err != nil {
			return err
		}
		if err := repository.WriteWidePriceCsv(filepath.Join(outputDir, "prices.csv"), result.Panel); err != nil {
			return err
		}
		if err := repository.WriteCoverageCsv(filepath.Join(outputDir, "first_valid.csv"), result.Audit.FirstValid); err != nil {
			return err
		}
		if err := repository.WriteRetentionCsv(filepath.Join(outputDir, "retention.csv"), result.Audit.Retention); err != nil {
			return err
		}

		logger.Info(
			"wrote panel of %d rows to %s (common start %s, min retained ratio %.2f)",
			len(result.Panel),
			outputDir,
			result.Audit.CommonStart.Format(time.DateOnly),
			result.Audit.MinRetainedRatio,
		)
		return nil
	},
}

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report per-ticker date coverage for an observation table",
	RunE: func(cmd *cobra.Command, args []string) error {
		table, err := loadObservations()
		if err != nil {
			return err
		}

		summaries := service.CoverageByTicker(table)

		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return err
		}
		path := filepath.Join(outputDir, "coverage.csv")
		if err := repository.WriteCoverageCsv(path, summaries); err != nil {
			return err
		}

		logger.Info("wrote coverage for %d tickers to %s", len(summaries), path)
		return nil
	},
}

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Fetch daily closes for the configured universe into the observation store",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := util.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		if len(settings.Universe) == 0 {
			return fmt.Errorf("no assets configured in universe")
		}

		var start *time.Time
		if startStr != "" {
			s, err := time.Parse(time.DateOnly, startStr)
			if err != nil {
				return fmt.Errorf("failed to parse --start: %w", err)
			}
			start = &s
		}

		dbConn, err := sql.Open("postgres", settings.Db.ToConnectionStr())
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		defer dbConn.Close()

		tx, err := dbConn.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		observationRepository := repository.NewObservationRepository(dbConn)
		err = service.IngestUniverse(context.Background(), tx, settings.Universe, observationRepository, start)
		if err != nil {
			return err
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit ingested observations: %w", err)
		}

		logger.Info("ingested %d assets", len(settings.Universe))
		return nil
	},
}

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Upsert a tidy observation csv into the observation store",
	RunE: func(cmd *cobra.Command, args []string) error {
		if inputPath == "" {
			return fmt.Errorf("--input is required")
		}
		table, err := repository.ReadObservationCsv(inputPath)
		if err != nil {
			return err
		}

		settings, err := util.LoadSettings()
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		dbConn, err := sql.Open("postgres", settings.Db.ToConnectionStr())
		if err != nil {
			return fmt.Errorf("failed to connect to db: %w", err)
		}
		defer dbConn.Close()

		tx, err := dbConn.Begin()
		if err != nil {
			return err
		}
		defer tx.Rollback()

		observationRepository := repository.NewObservationRepository(dbConn)
		if err := observationRepository.Add(tx, repository.ToModels(table)); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit loaded observations: %w", err)
		}

		logger.Info("loaded %d observations from %s", len(table), inputPath)
		return nil
	},
}

// loadObservations reads the tidy table from --input, or from the
// observation store when no file is given.
func loadObservations() (domain.ObservationTable, error) {
	if inputPath != "" {
		return repository.ReadObservationCsv(inputPath)
	}

	settings, err := util.LoadSettings()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	dbConn, err := sql.Open("postgres", settings.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}
	defer dbConn.Close()

	return repository.NewObservationRepository(dbConn).List(nil)
}

func main() {
	normalizeCmd.Flags().StringVar(&inputPath, "input", "", "tidy observation csv (defaults to the observation store)")
	normalizeCmd.Flags().StringVar(&outputDir, "out", "out", "output directory")
	normalizeCmd.Flags().StringVar(&endDateStr, "end", "", "cutoff date YYYY-MM-DD")
	normalizeCmd.Flags().StringVar(&policyStr, "policy", "strict", "strict or lenient")
	normalizeCmd.MarkFlagRequired("end")

	coverageCmd.Flags().StringVar(&inputPath, "input", "", "tidy observation csv (defaults to the observation store)")
	coverageCmd.Flags().StringVar(&outputDir, "out", "out", "output directory")

	ingestCmd.Flags().StringVar(&startStr, "start", "", "earliest date to fetch, YYYY-MM-DD")

	loadCmd.Flags().StringVar(&inputPath, "input", "", "tidy observation csv")

	rootCmd.AddCommand(normalizeCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(loadCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
