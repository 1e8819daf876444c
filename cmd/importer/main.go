package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/xuri/excelize/v2"

	"github.com/4NTx/desafioFacilita/internal/config"
	"github.com/4NTx/desafioFacilita/internal/db"
	"github.com/4NTx/desafioFacilita/internal/importer"
	"github.com/4NTx/desafioFacilita/internal/models"
	"github.com/4NTx/desafioFacilita/internal/repository"
)

// Bulk-imports customers from an xlsx workbook. Each row goes through the
// same validation as the registration API; invalid and duplicate rows are
// logged and skipped so one bad row never aborts the whole import.
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment variables")
	}

	file := flag.String("file", "", "path to the xlsx workbook (required)")
	sheet := flag.String("sheet", "Sheet1", "worksheet to read")
	flag.Parse()

	if *file == "" {
		logger.Error("missing required -file flag")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	database, err := db.New(db.Config{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
	})
	if err != nil {
		logger.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.Close()

	ctx := context.Background()

	if err := database.InitSchema(ctx); err != nil {
		logger.Error("failed to initialize schema", slog.String("error", err.Error()))
		os.Exit(1)
	}

	workbook, err := excelize.OpenFile(*file)
	if err != nil {
		logger.Error("failed to open workbook",
			slog.String("file", *file),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}
	defer workbook.Close()

	rows, rowErrs, err := importer.ReadCustomers(workbook, *sheet)
	if err != nil {
		logger.Error("failed to read workbook", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, rowErr := range rowErrs {
		logger.Warn("skipping row", slog.String("reason", rowErr.Error()))
	}

	customerRepo := repository.NewCustomerRepository(database.DB)

	imported := 0
	skipped := len(rowErrs)

	for _, row := range rows {
		if err := row.Request.Validate(); err != nil {
			logger.Warn("skipping invalid row",
				slog.Int("line", row.Line),
				slog.String("error", err.Error()),
			)
			skipped++
			continue
		}

		customer := &models.Customer{
			Name:  row.Request.Name,
			Email: row.Request.Email,
			Phone: row.Request.Phone,
			X:     row.Request.X,
			Y:     row.Request.Y,
		}

		if err := customerRepo.Create(ctx, customer); err != nil {
			if errors.Is(err, models.ErrDuplicateEmail) {
				logger.Warn("skipping duplicate email",
					slog.Int("line", row.Line),
					slog.String("email", customer.Email),
				)
				skipped++
				continue
			}
			// Storage failures abort: retrying the import is safe because
			// duplicates are skipped on the next run.
			logger.Error("import aborted",
				slog.Int("line", row.Line),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}

		imported++
	}

	logger.Info("import complete",
		slog.Int("imported", imported),
		slog.Int("skipped", skipped),
	)
}
