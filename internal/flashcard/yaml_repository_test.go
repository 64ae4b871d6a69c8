package flashcard

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/at-ishikawa/flashgrid/internal/locale"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const spanishSetYAML = `id: spanish
title: Spanish
description: Everyday words
cards:
  - id: "1"
    question: gracias
    answer: thank you
    question_language: spanish
    answer_language: english
  - id: "2"
    question: niño
    answer: child
    image_url: https://example.com/child.png
`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestYAMLRepository_LoadSet(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "spanish.yml"), spanishSetYAML)
	writeFile(t, filepath.Join(dir, "untitled.yaml"), "title: No id\n")
	writeFile(t, filepath.Join(dir, "broken.yml"), "title: [broken")

	tests := []struct {
		name         string
		setID        string
		want         *FlashcardSet
		wantNotFound bool
		wantErr      bool
	}{
		{
			name:  "set with cards",
			setID: "spanish",
			want: &FlashcardSet{
				ID:          "spanish",
				Title:       "Spanish",
				Description: "Everyday words",
				Cards: []Flashcard{
					{ID: "1", Question: "gracias", Answer: "thank you", QuestionLanguage: locale.Spanish, AnswerLanguage: locale.English},
					{ID: "2", Question: "niño", Answer: "child", ImageURL: "https://example.com/child.png"},
				},
			},
		},
		{
			name:  "id defaults to the file name",
			setID: "untitled",
			want:  &FlashcardSet{ID: "untitled", Title: "No id"},
		},
		{
			name:         "missing set",
			setID:        "german",
			wantNotFound: true,
		},
		{
			name:         "path traversal",
			setID:        "../spanish",
			wantNotFound: true,
		},
		{
			name:         "empty id",
			setID:        "",
			wantNotFound: true,
		},
		{
			name:    "invalid file",
			setID:   "broken",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewYAMLRepository(dir)
			got, err := repo.LoadSet(context.Background(), tt.setID)

			switch {
			case tt.wantNotFound:
				assert.ErrorIs(t, err, ErrSetNotFound)
				assert.Nil(t, got)
			case tt.wantErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrSetNotFound)
			default:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestYAMLRepository_ListSets(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "spanish.yml"), spanishSetYAML)
	writeFile(t, filepath.Join(dir, "capitals.yml"), "title: Capitals\n")
	writeFile(t, filepath.Join(dir, "README.md"), "# not a set")

	got, err := NewYAMLRepository(dir).ListSets(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "capitals", got[0].ID)
	assert.Equal(t, "spanish", got[1].ID)
	assert.Len(t, got[1].Cards, 2)
}

func TestYAMLRepository_SaveSet(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sets")
	repo := NewYAMLRepository(dir)
	set := &FlashcardSet{
		ID:    "colors",
		Title: "Colors",
		Cards: []Flashcard{{ID: "1", Question: "bleu", Answer: "blue", QuestionLanguage: locale.French}},
	}

	require.NoError(t, repo.SaveSet(context.Background(), set))

	got, err := repo.LoadSet(context.Background(), "colors")
	require.NoError(t, err)
	assert.Equal(t, set, got)

	assert.Error(t, repo.SaveSet(context.Background(), &FlashcardSet{ID: "a/b"}))
}
