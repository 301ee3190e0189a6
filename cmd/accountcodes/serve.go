package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	handler "github.com/zdziszkee/account-codes/internal/api/handlers"
	"github.com/zdziszkee/account-codes/internal/api/router"
	"github.com/zdziszkee/account-codes/internal/database"
	repository "github.com/zdziszkee/account-codes/internal/repositories"
	service "github.com/zdziszkee/account-codes/internal/services"
)

func newServeCmd(a *app) *cobra.Command {
	var loadFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadFile != "" {
				a.cfg.Data.OwnAccountsFile = loadFile
				a.cfg.Data.AutoLoad = true
			}
			return a.serve()
		},
	}

	cmd.Flags().StringVar(&loadFile, "load", "", "Path to own-accounts CSV file to load on startup")
	return cmd
}

func (a *app) serve() error {
	var repo repository.OwnAccountRepository

	if a.cfg.Database.Enabled {
		db, err := database.New(a.cfg.Database, a.logger)
		if err != nil {
			return err
		}
		defer db.Close()
		repo = repository.NewSQLOwnAccountRepository(db, a.logger)
	} else {
		a.logger.Info("own-account registry disabled")
	}

	accountService := service.NewAccountService(repo, a.logger)

	// Auto-load data if configured
	if a.cfg.Data.AutoLoad && repo != nil {
		a.logger.Info("loading own accounts", zap.String("file", a.cfg.Data.OwnAccountsFile))

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		summary, err := loadOwnAccountsFromFile(ctx, a.cfg.Data.OwnAccountsFile, accountService, a.logger)
		cancel()
		if err != nil {
			a.logger.Warn("failed to load own accounts", zap.Error(err))
		} else {
			a.logger.Info("loaded own accounts",
				zap.Int("imported", summary.Imported),
				zap.Int("skipped", summary.Skipped),
			)
		}
	}

	accountHandler := handler.NewAccountHandler(accountService, a.logger)
	formatHandler := handler.NewFormatHandler(a.formatService(), a.logger)
	fiberApp := router.SetupRoutes(accountHandler, formatHandler, a.logger)

	// Start server in a goroutine so we can handle graceful shutdown
	serverErr := make(chan error, 1)
	go func() {
		a.logger.Info("starting server", zap.String("address", a.cfg.Server.Address))
		serverErr <- fiberApp.Listen(a.cfg.Server.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		if err != nil {
			return err
		}
		return errors.New("server stopped unexpectedly")
	case <-quit:
	}

	a.logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := fiberApp.ShutdownWithContext(ctx); err != nil {
		a.logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	a.logger.Info("server exiting")
	return nil
}
