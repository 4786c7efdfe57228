package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"classiflyer/internal/adapters/vault"
	"classiflyer/internal/config"
	"classiflyer/internal/logging"
	"classiflyer/internal/ports"
)

var (
	rootPath string
	store    ports.Store
)

var rootCmd = &cobra.Command{
	Use:   "classiflyer-cli",
	Short: "CLI for managing binder hierarchies",
	Long: `classiflyer-cli is a command-line interface for organizing documents
into binders with folders and files, backed by a plain directory tree.

Binders live in one of three zones: active, archived (optionally grouped
into archive folders), or the trash. Every operation keeps the JSON index
and the directory tree in sync.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		if err := config.Bootstrap(rootPath); err != nil {
			return fmt.Errorf("bootstrap root: %w", err)
		}
		logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelWarn,
		})))
		store = vault.New(rootPath, vault.WithLogger(logger))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", config.RootPath(), "path to the managed root directory")
}

// GetStore returns the initialized store
func GetStore() ports.Store {
	return store
}
