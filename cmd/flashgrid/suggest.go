package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/flashgrid/internal/locale"
	"github.com/at-ishikawa/flashgrid/internal/translation"
)

func newSuggestCommand() *cobra.Command {
	var questionLanguage, answerLanguage string

	command := &cobra.Command{
		Use:   "suggest <word>",
		Short: "Suggest English answers for a new card",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			questionLang := locale.Language(questionLanguage)
			answerLang := locale.Language(answerLanguage)
			for _, lang := range []locale.Language{questionLang, answerLang} {
				if !lang.IsValid() {
					return fmt.Errorf("unknown language %q", lang)
				}
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			client := translation.NewClient(translation.Options{
				TranslateBaseURL:  cfg.Translation.TranslateBaseURL,
				DictionaryBaseURL: cfg.Translation.DictionaryBaseURL,
				RetryAttempts:     cfg.Translation.RetryAttempts,
			})
			defer func() { _ = client.Close() }()

			suggestions, err := client.Suggest(cmd.Context(), args[0], questionLang, answerLang)
			if err != nil {
				return fmt.Errorf("client.Suggest() > %w", err)
			}

			output := cmd.OutOrStdout()
			if len(suggestions) == 0 {
				if answerLang != locale.English {
					fmt.Fprintln(output, "Suggestions are only available for English answers.")
				} else {
					fmt.Fprintln(output, "No suggestions found.")
				}
				return nil
			}
			for i, suggestion := range suggestions {
				fmt.Fprintf(output, "%d. %s\n", i+1, suggestion)
			}
			return nil
		},
	}
	command.Flags().StringVarP(&questionLanguage, "question-language", "q", string(locale.None), "Language of the word")
	command.Flags().StringVarP(&answerLanguage, "answer-language", "a", string(locale.English), "Language of the answers")
	return command
}
