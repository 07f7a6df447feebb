package main

import (
	"fmt"
	"log"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"

	"github.com/johnquangdev/meeting-recap/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-recap/pkg/config"
	pkglogger "github.com/johnquangdev/meeting-recap/pkg/logger"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back the meeting_records schema",
		Long: `Apply or roll back the embedded SQL migrations against the database
configured through DB_* environment variables (or .env).`,
	}

	var steps int
	up := &cobra.Command{
		Use:   "up",
		Short: "Apply pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd, migrate.Up, steps)
		},
	}
	up.Flags().IntVar(&steps, "steps", 0, "Maximum migrations to apply (0 = all)")

	var downSteps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrations(cmd, migrate.Down, downSteps)
		},
	}
	down.Flags().IntVar(&downSteps, "steps", 1, "Maximum migrations to roll back (0 = all)")

	cmd.AddCommand(up, down)
	return cmd
}

func runMigrations(cmd *cobra.Command, direction migrate.MigrationDirection, limit int) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	logger, err := pkglogger.New(cfg.Server.Environment)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db)

	log.Println("🔄 Applying migrations...")
	n, err := database.Migrate(db, direction, limit)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Applied %d migration(s)\n", n)
	return nil
}
