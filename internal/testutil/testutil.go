// Package testutil provides shared test helpers for creating config files and flashcard set fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/locale"
	"github.com/at-ishikawa/flashgrid/internal/yamlfile"
)

// Directories created under the temporary directory by SetupTestConfig.
const (
	SetsDir    = "sets"
	ScoresDir  = "scores"
	ExportsDir = "exports"
)

// SetupTestConfig creates a minimal config file and all required directories for testing.
// Returns the path to the generated config file.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	for _, d := range []string{SetsDir, ScoresDir, ExportsDir} {
		require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, d), 0755))
	}

	configContent := fmt.Sprintf(`sets:
  directory: %s
storage:
  driver: yaml
preferences:
  file: %s
scores:
  directory: %s
outputs:
  export_directory: %s
study:
  incorrect_answer_delay: 1ms
  batch_complete_delay: 1ms
`,
		filepath.Join(tmpDir, SetsDir),
		filepath.Join(tmpDir, "preferences.yml"),
		filepath.Join(tmpDir, ScoresDir),
		filepath.Join(tmpDir, ExportsDir),
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// SetupTestConfigWithTranslation appends translation endpoints, usually
// httptest servers, to the config created by SetupTestConfig.
func SetupTestConfigWithTranslation(t *testing.T, tmpDir, translateURL, dictionaryURL string) string {
	t.Helper()
	cfgPath := SetupTestConfig(t, tmpDir)

	content, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	content = append(content, []byte(fmt.Sprintf(
		"translation:\n  translate_base_url: %s\n  dictionary_base_url: %s\n  retry_attempts: 0\n",
		translateURL, dictionaryURL))...)
	require.NoError(t, os.WriteFile(cfgPath, content, 0644))
	return cfgPath
}

// FlashcardSetOption configures optional fields when creating a flashcard set fixture.
type FlashcardSetOption func(*flashcard.FlashcardSet)

// WithCards replaces the default cards of the fixture.
func WithCards(cards ...flashcard.Flashcard) FlashcardSetOption {
	return func(set *flashcard.FlashcardSet) {
		set.Cards = cards
	}
}

// CreateFlashcardSet writes <setsDir>/<id>.yml. By default the set holds
// two French to English cards. Use WithCards to override.
func CreateFlashcardSet(t *testing.T, setsDir, id string, opts ...FlashcardSetOption) flashcard.FlashcardSet {
	t.Helper()

	set := flashcard.FlashcardSet{
		ID:    id,
		Title: "Test set " + id,
		Cards: []flashcard.Flashcard{
			{ID: "1", Question: "chat", Answer: "cat", QuestionLanguage: locale.French, AnswerLanguage: locale.English},
			{ID: "2", Question: "chien", Answer: "dog", QuestionLanguage: locale.French, AnswerLanguage: locale.English},
		},
	}
	for _, opt := range opts {
		opt(&set)
	}

	require.NoError(t, yamlfile.Write(filepath.Join(setsDir, id+".yml"), set))
	return set
}
