package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "github.com/zdziszkee/account-codes/internal/configurations"
	"github.com/zdziszkee/account-codes/internal/logging"
	models "github.com/zdziszkee/account-codes/internal/models"
	service "github.com/zdziszkee/account-codes/internal/services"
)

// app carries what PersistentPreRunE prepares for the subcommands
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "accountcodes",
		Short: "Korean bank account classification and amount formatting",
		Long: `accountcodes classifies Korean bank account numbers (type, subject code,
affiliation) and renders amounts for display, either from the command line or
as an HTTP service.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			logger, err := logging.New(cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.cfg = cfg
			a.logger = logger.With(zap.String("app", cfg.AppName))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to configuration file")

	rootCmd.AddCommand(
		newServeCmd(a),
		newClassifyCmd(a),
		newAffiliationCmd(a),
		newGroupCmd(a),
		newWordsCmd(a),
		newLoadOwnCmd(a),
	)
	return rootCmd
}

func (a *app) formatService() service.FormatService {
	return service.NewFormatService(service.FormatOptions{
		Separator:   a.cfg.Format.Separator,
		Strict:      a.cfg.Format.StrictAmounts,
		DefaultUnit: models.AmountUnit(a.cfg.Format.DefaultUnit),
	}, a.logger)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
