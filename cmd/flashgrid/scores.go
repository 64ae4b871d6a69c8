package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashgrid/internal/scoreboard"
)

func newScoresCommand() *cobra.Command {
	var limit int

	command := &cobra.Command{
		Use:   "scores <set-id>",
		Short: "Show the best block mode scores of a set",
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

			records, err := store.scores.Best(cmd.Context(), args[0], limit)
			if err != nil {
				return fmt.Errorf("Best(%s) > %w", args[0], err)
			}
			return writeScores(cmd.OutOrStdout(), records)
		},
	}
	command.Flags().IntVar(&limit, "limit", 10, "Number of scores to show; 0 shows all")
	return command
}

func writeScores(output io.Writer, records []scoreboard.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(output, "No scores yet.")
		return err
	}
	writer := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "RANK\tSCORE\tCORRECT\tLINES\tDURATION\tPLAYED AT")
	for i, record := range records {
		fmt.Fprintf(writer, "%d\t%d\t%d/%d\t%d\t%s\t%s\n",
			i+1,
			record.Score,
			record.CorrectAnswers,
			record.TotalAnswers,
			record.LinesCleared,
			time.Duration(record.DurationSeconds)*time.Second,
			record.PlayedAt.Local().Format(time.DateTime),
		)
	}
	return writer.Flush()
}
