package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashgrid/internal/export"
)

func newExportCommand() *cobra.Command {
	var outputDir string

	command := &cobra.Command{
		Use:   "export <set-id>",
		Short: "Export a flashcard set as markdown and PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store, err := openStorage(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			set, err := store.sets.LoadSet(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("LoadSet(%s) > %w", args[0], err)
			}

			if outputDir == "" {
				outputDir = cfg.Outputs.ExportDirectory
			}
			pdfPath, err := export.WriteFiles(outputDir, cfg.Templates.SetTemplate, *set)
			if err != nil {
				return fmt.Errorf("export.WriteFiles() > %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF file created: %s\n", pdfPath)
			return nil
		},
	}
	command.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory; defaults to outputs.export_directory")
	return command
}
