package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"ppr-analyser/config"
	"ppr-analyser/loader/ppr"
	"ppr-analyser/models"
	"ppr-analyser/services"
	"ppr-analyser/storage"
	"ppr-analyser/utils"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	logger := utils.NewLogger()
	cfg, err := config.Load()
	if err != nil {
		logger.Error("Invalid configuration: %v", err)
		return err
	}
	logger.SetLevel(cfg.LogLevel)

	logger.Info("=== Property Price Register analyser starting ===")
	logger.Info("Config: input %s | summary %s | row cap %d | strict %t | interactive %t",
		cfg.InputPath, cfg.SummaryPath, cfg.RowCap, cfg.Strict, cfg.Interactive)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	lines, err := ppr.New(cfg, logger).Load()
	if err != nil {
		logger.Error("File import failed: %v", err)
		return err
	}
	if len(lines) == 0 {
		logger.Error("Input contains no data lines. Exiting.")
		return services.ErrEmptyDataset
	}

	var prompter *services.Prompter
	if cfg.Interactive {
		prompter = services.NewPrompter(os.Stdin, os.Stdout)
		defer prompter.Close()
	}

	rowCap, err := resolveRowCap(ctx, cfg, prompter, len(lines))
	if err != nil {
		logger.Error("No row cap chosen: %v", err)
		return err
	}

	builder := services.NewDatasetBuilder(logger, services.BuildOptions{RowCap: rowCap, Strict: cfg.Strict})
	built, err := builder.Build(lines)
	if err != nil {
		logger.Error("Dataset build failed: %v", err)
		return err
	}

	engine := services.NewAggregationEngine(logger)
	result, err := engine.Generate(built.Dataset)
	if err != nil {
		logger.Error("Statistics failed: %v", err)
		return err
	}

	summary := services.BuildSummary(result, built.Dataset.Len())
	summaryWriter, err := storage.NewSummaryWriter(cfg.SummaryPath)
	if err != nil {
		logger.Error("Failed to open summary file: %v", err)
	} else if err := appendSummary(summaryWriter, summary); err != nil {
		logger.Error("Summary write failed: %v", err)
	} else {
		logger.Info("Summary appended to %s", cfg.SummaryPath)
	}

	if cfg.PostgresEnabled {
		persist(cfg, logger, built.Dataset, summary)
	}

	var workbook *storage.WorkbookWriter
	var exporter services.ResultExporter
	if cfg.WorkbookPath != "" {
		workbook = storage.NewWorkbookWriter(cfg.WorkbookPath)
		exporter = workbook
	}

	if !cfg.Interactive {
		services.NewPrinter(os.Stdout).All(result)
		if workbook != nil {
			if err := workbook.Write(result); err != nil {
				logger.Error("Workbook export failed: %v", err)
			} else {
				logger.Info("Workbook saved to %s", workbook.Path())
			}
		}
		return nil
	}

	return services.NewMenu(prompter, os.Stdout, result, exporter).Run(ctx)
}

// resolveRowCap prefers the configured cap, then asks, then takes every line.
func resolveRowCap(ctx context.Context, cfg *config.Config, p *services.Prompter, available int) (int, error) {
	if cfg.RowCap > 0 {
		return cfg.RowCap, nil
	}
	if p == nil {
		return available, nil
	}
	fmt.Printf("%d records found in %s.\n", available, cfg.InputPath)
	return services.PromptRowCap(ctx, p, available)
}

// appendSummary writes s to sink and closes it.
func appendSummary(sink storage.SummaryAppender, s models.Summary) error {
	defer sink.Close()
	return sink.AppendSummary(s)
}

// persist mirrors the dataset and run summary into PostgreSQL. Failures are
// logged; the terminal report does not depend on the database.
func persist(cfg *config.Config, logger *utils.Logger, ds *models.Dataset, s models.Summary) {
	retry := &utils.RetryConfig{MaxAttempts: cfg.MaxRetries, BaseDelay: time.Second, Logger: logger}
	pg, err := storage.NewPostgresWriter(cfg.DSN(), retry)
	if err != nil {
		logger.Error("Failed to connect to PostgreSQL: %v", err)
		logger.Error("Make sure the database is running: docker compose up -d")
		return
	}
	if err := pg.Write(ds); err != nil {
		logger.Error("PostgreSQL write failed: %v", err)
	} else {
		logger.Info("%d sales stored in PostgreSQL (table: sales)", ds.Len())
	}
	if err := appendSummary(pg, s); err != nil {
		logger.Error("%v", err)
	}
}
