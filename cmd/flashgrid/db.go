package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashgrid/internal/database"
	"github.com/at-ishikawa/flashgrid/internal/flashcard"
)

func newDBCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "db",
		Short: "Database commands",
	}
	command.AddCommand(
		newDBMigrateCommand(),
		newDBImportCommand(),
	)
	return command
}

func newDBMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			if len(applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "The database is up to date.")
				return nil
			}
			for _, version := range applied {
				fmt.Fprintf(cmd.OutOrStdout(), "Applied %s\n", version)
			}
			return nil
		},
	}
}

func newDBImportCommand() *cobra.Command {
	var dryRun bool

	command := &cobra.Command{
		Use:   "import",
		Short: "Import the YAML flashcard sets into the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			sets, err := flashcard.NewYAMLRepository(cfg.Sets.Directory).ListSets(ctx)
			if err != nil {
				return fmt.Errorf("read flashcard sets: %w", err)
			}
			validator, err := flashcard.NewValidator()
			if err != nil {
				return fmt.Errorf("flashcard.NewValidator() > %w", err)
			}
			if validationErrors := validator.ValidateAll(sets); len(validationErrors) > 0 {
				for _, validationError := range validationErrors {
					fmt.Fprintf(cmd.OutOrStdout(), "  ✗ %s\n", validationError.Error())
				}
				return fmt.Errorf("validation failed with %d error(s)", len(validationErrors))
			}

			if dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "%d set(s) would be imported (dry-run mode, no changes made)\n", len(sets))
				return nil
			}

			db, err := database.Open(cfg.Database)
			if err != nil {
				return fmt.Errorf("open database: %w", err)
			}
			defer func() { _ = db.Close() }()

			return importSets(ctx, cmd.OutOrStdout(), flashcard.NewDBRepository(db), sets)
		},
	}
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the sets without writing to the database")
	return command
}
