package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
)

func newSetsCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "sets",
		Short: "List, show and validate flashcard sets",
	}
	command.AddCommand(
		newSetsListCommand(),
		newSetsShowCommand(),
		newSetsValidateCommand(),
	)
	return command
}

func newSetsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List flashcard sets",
		Args:  cobra.NoArgs,
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

			sets, err := store.sets.ListSets(cmd.Context())
			if err != nil {
				return fmt.Errorf("ListSets() > %w", err)
			}
			return writeSetList(cmd.OutOrStdout(), sets)
		},
	}
}

func writeSetList(output io.Writer, sets []flashcard.FlashcardSet) error {
	if len(sets) == 0 {
		_, err := fmt.Fprintln(output, "No flashcard sets found.")
		return err
	}
	writer := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tTITLE\tCARDS")
	for _, set := range sets {
		fmt.Fprintf(writer, "%s\t%s\t%d\n", set.ID, set.Title, len(set.Cards))
	}
	return writer.Flush()
}

func newSetsShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <set-id>",
		Short: "Show the cards of a flashcard set",
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
			return writeSet(cmd.OutOrStdout(), set)
		},
	}
}

func writeSet(output io.Writer, set *flashcard.FlashcardSet) error {
	bold := color.New(color.Bold)
	if _, err := bold.Fprintln(output, set.Title); err != nil {
		return err
	}
	if set.Description != "" {
		fmt.Fprintln(output, set.Description)
	}
	fmt.Fprintln(output)

	writer := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tQUESTION\tANSWER\tLANGUAGES")
	for _, card := range set.Cards {
		languages := ""
		if card.QuestionLanguage != "" || card.AnswerLanguage != "" {
			languages = fmt.Sprintf("%s/%s", card.QuestionLanguage, card.AnswerLanguage)
		}
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", card.ID, oneLine(card.Question), oneLine(card.Answer), languages)
	}
	return writer.Flush()
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func newSetsValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate every flashcard set",
		Args:  cobra.NoArgs,
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

			sets, err := store.sets.ListSets(cmd.Context())
			if err != nil {
				return fmt.Errorf("ListSets() > %w", err)
			}
			validator, err := flashcard.NewValidator()
			if err != nil {
				return fmt.Errorf("flashcard.NewValidator() > %w", err)
			}

			validationErrors := validator.ValidateAll(sets)
			output := cmd.OutOrStdout()
			if len(validationErrors) == 0 {
				_, _ = color.New(color.FgGreen).Fprintf(output, "All %d set(s) are valid.\n", len(sets))
				return nil
			}
			for _, validationError := range validationErrors {
				_, _ = color.New(color.FgRed).Fprintf(output, "  ✗ %s\n", validationError.Error())
			}
			return fmt.Errorf("validation failed with %d error(s)", len(validationErrors))
		},
	}
}
