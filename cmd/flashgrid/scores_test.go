package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashgrid/internal/scoreboard"
	"github.com/at-ishikawa/flashgrid/internal/testutil"
)

func TestScoresCommand(t *testing.T) {
	tmpDir := setupTestConfig(t)
	repo := scoreboard.NewYAMLRepository(filepath.Join(tmpDir, testutil.ScoresDir))
	playedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for _, record := range []scoreboard.Record{
		{SetID: "french", Score: 30, CorrectAnswers: 3, TotalAnswers: 4, DurationSeconds: 90, PlayedAt: playedAt},
		{SetID: "french", Score: 70, CorrectAnswers: 5, TotalAnswers: 5, LinesCleared: 1, DurationSeconds: 120, PlayedAt: playedAt},
		{SetID: "french", Score: 10, CorrectAnswers: 1, TotalAnswers: 2, DurationSeconds: 20, PlayedAt: playedAt},
	} {
		require.NoError(t, repo.Save(context.Background(), &record))
	}

	got, err := execute(t, newScoresCommand(), "french", "--limit", "2")

	require.NoError(t, err)
	lines := bytes.Split([]byte(got), []byte("\n"))
	require.Len(t, lines, 4)
	assert.Contains(t, string(lines[0]), "RANK")
	assert.Regexp(t, `^1\s+70\s+5/5\s+1\s+2m0s\s+`, string(lines[1]))
	assert.Regexp(t, `^2\s+30\s+3/4\s+0\s+1m30s\s+`, string(lines[2]))
}

func TestWriteScores_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeScores(&buf, nil))
	assert.Equal(t, "No scores yet.\n", buf.String())
}
