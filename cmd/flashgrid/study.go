package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashgrid/internal/cli"
	"github.com/at-ishikawa/flashgrid/internal/config"
	"github.com/at-ishikawa/flashgrid/internal/preference"
	"github.com/at-ishikawa/flashgrid/internal/pronunciation"
	"github.com/at-ishikawa/flashgrid/internal/session"
)

func newStudyCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "study",
		Short: "Study a flashcard set",
	}
	command.AddCommand(
		newStudyBlockCommand(),
		newStudyFlipCommand(),
	)
	return command
}

func newStudyBlockCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "block <set-id>",
		Short: "Answer cards to earn blocks and fill lines on an 8x8 grid",
		Long: `Answer cards to earn blocks and fill lines on an 8x8 grid.
The answer of each card is shown; type its question. Place blocks with "block row column".
Commands: :s skip, :say read aloud, :chars special characters, :r restart, :q quit.`,
		Args: cobra.ExactArgs(1),
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

			blockSession := session.NewBlockSession(session.BlockOptions{
				IncorrectAnswerDelay: cfg.Study.IncorrectAnswerDelay,
				BatchCompleteDelay:   cfg.Study.BatchCompleteDelay,
			})
			if err := blockSession.Load(cmd.Context(), store.sets, args[0]); err != nil {
				return fmt.Errorf("failed to load the set: %w", err)
			}

			studyCLI := cli.NewBlockStudyCLI(blockSession, store.scores, newSpeaker(cfg))
			return studyCLI.Run(cmd.Context(), studyCLI)
		},
	}
}

func newStudyFlipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flip <set-id>",
		Short: "Review cards one by one and mark the ones you know",
		Long: `Review cards one by one and mark the ones you know.
Commands: :f flip, :n next, :p previous, :k known, :d don't know, :t switch direction,
:say read aloud, :chars special characters, :summary finish, :r restart, :q quit.
Type {n} to insert the n-th special character of the answer language.`,
		Args: cobra.ExactArgs(1),
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

			flipSession := session.NewFlipSession(session.FlipOptions{
				Directions: preference.NewYAMLStore(cfg.Preferences.File),
			})
			if err := flipSession.Load(cmd.Context(), store.sets, args[0]); err != nil {
				return fmt.Errorf("failed to load the set: %w", err)
			}

			studyCLI := cli.NewFlipStudyCLI(flipSession, newSpeaker(cfg))
			return studyCLI.Run(cmd.Context(), studyCLI)
		},
	}
}

// newSpeaker reports a missing speech.command when :say is used.
func newSpeaker(cfg *config.Config) pronunciation.Speaker {
	return pronunciation.NewCommandSpeaker(cfg.Speech.Command)
}
