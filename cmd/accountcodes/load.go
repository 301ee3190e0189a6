package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zdziszkee/account-codes/internal/database"
	models "github.com/zdziszkee/account-codes/internal/models"
	parser "github.com/zdziszkee/account-codes/internal/parsers"
	"github.com/zdziszkee/account-codes/internal/readers/csv"
	repository "github.com/zdziszkee/account-codes/internal/repositories"
	service "github.com/zdziszkee/account-codes/internal/services"
)

func newLoadOwnCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "load-own <csv>",
		Short: "Load an own-accounts CSV file into the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.cfg.Database.Enabled {
				return errors.New("own-account registry is disabled; set database.enabled")
			}

			db, err := database.New(a.cfg.Database, a.logger)
			if err != nil {
				return err
			}
			defer db.Close()

			accountService := service.NewAccountService(repository.NewSQLOwnAccountRepository(db, a.logger), a.logger)

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			summary, err := loadOwnAccountsFromFile(ctx, args[0], accountService, a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "loaded %d own accounts, skipped %d already registered\n", summary.Imported, summary.Skipped)
			return nil
		},
	}
}

// loadOwnAccountsFromFile reads, validates and stores an own-accounts CSV file
func loadOwnAccountsFromFile(ctx context.Context, filePath string, accountService service.AccountService, logger *zap.Logger) (*models.ImportSummary, error) {
	startTime := time.Now()

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", filePath, err)
	}
	defer file.Close()

	reader := &csv.CSVOwnAccountsReader{}
	records, err := reader.LoadOwnAccounts(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read own accounts: %w", err)
	}

	ownAccounts, err := parser.DefaultOwnAccountsParser{Logger: logger}.ParseOwnAccounts(records)
	if err != nil {
		return nil, fmt.Errorf("failed to parse own accounts: %w", err)
	}

	summary, err := accountService.ImportOwnAccounts(ctx, ownAccounts)
	if err != nil {
		return nil, fmt.Errorf("failed to import own accounts: %w", err)
	}

	logger.Info("own accounts file processed",
		zap.String("file", filePath),
		zap.Int("records", len(records)),
		zap.Int("loaded", summary.Imported),
		zap.Int("skipped", summary.Skipped),
		zap.Duration("elapsed", time.Since(startTime)),
	)
	return summary, nil
}
