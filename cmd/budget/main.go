package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/rocjay1/budget-tracker/internal/config"
	"github.com/rocjay1/budget-tracker/internal/logging"
	"github.com/rocjay1/budget-tracker/internal/services"
	"github.com/rocjay1/budget-tracker/internal/shell"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		dataFile string
		logLevel string
	)

	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Record income and expenses and view budget summaries",
		Long: `budget is an interactive personal budget tracker. Entries are kept in a
CSV file in the working directory and every report is computed from it.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnvFile()
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("file") {
				cfg.DataFile = dataFile
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logging.Init(os.Stderr, cfg.LogLevel, cfg.LogFormat)

			store, err := newStore(cfg)
			if err != nil {
				slog.Error("failed to initialize ledger store", "error", err)
				return err
			}

			ctx := cmd.Context()
			if err := shell.New(store, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx); err != nil {
				slog.ErrorContext(ctx, "budget tracker stopped", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "file", services.DefaultLedgerFile, "path of the ledger CSV file (env BUDGET_FILE)")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn or error (env LOG_LEVEL)")

	return cmd
}

// newStore returns the file store, wrapped with a blob mirror when one is
// configured.
func newStore(cfg *config.Config) (shell.Store, error) {
	fileStore := services.NewFileStore(cfg.DataFile)
	if !cfg.MirrorEnabled() {
		return fileStore, nil
	}

	blob, err := services.NewBlobService(cfg.BlobServiceURL)
	if err != nil {
		return nil, fmt.Errorf("failed to init blob mirror: %w", err)
	}
	slog.Info("mirroring ledger to blob storage", "container", cfg.BlobContainer, "path", cfg.DataFile)
	return services.NewMirroredStore(fileStore, blob, cfg.BlobContainer), nil
}
