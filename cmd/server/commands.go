package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tmj-platform/internal/browse"
	"tmj-platform/internal/config"
	"tmj-platform/internal/platform/postgres"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text...]",
	Short: "Analyze a symptom description and print the result as JSON",
	Long: `Analyze runs the same pipeline as POST /api/ai/browse on the given
text, or on standard input when no arguments are passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		text := strings.Join(args, " ")
		if len(args) == 0 {
			b, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(b)
		}

		resp := browse.NewService(zap.NewNop(), nil).Analyze(cmd.Context(), text)

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending Postgres migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		if cfg.Database.Driver != config.DriverPostgres {
			return errors.New("migrate requires database.driver=postgres")
		}
		if err := postgres.Migrate(cfg.Database.URL, cfg.Database.MigrationsPath); err != nil {
			return err
		}
		logger.Info("migrations applied", zap.String("path", cfg.Database.MigrationsPath))
		return nil
	},
}
