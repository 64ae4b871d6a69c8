package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/testutil"
)

func TestExportCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    func(tmpDir string) []string
		wantDir func(tmpDir string) string
	}{
		{
			name:    "configured export directory",
			args:    func(string) []string { return []string{"french"} },
			wantDir: func(tmpDir string) string { return filepath.Join(tmpDir, testutil.ExportsDir) },
		},
		{
			name: "output flag",
			args: func(tmpDir string) []string {
				return []string{"french", "--output", filepath.Join(tmpDir, "custom")}
			},
			wantDir: func(tmpDir string) string { return filepath.Join(tmpDir, "custom") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := setupTestConfig(t)
			testutil.CreateFlashcardSet(t, filepath.Join(tmpDir, testutil.SetsDir), "french")

			got, err := execute(t, newExportCommand(), tt.args(tmpDir)...)

			require.NoError(t, err)
			pdfPath := filepath.Join(tt.wantDir(tmpDir), "french.pdf")
			assert.Equal(t, "PDF file created: "+pdfPath+"\n", got)
			assert.FileExists(t, pdfPath)

			markdown, err := os.ReadFile(filepath.Join(tt.wantDir(tmpDir), "french.md"))
			require.NoError(t, err)
			assert.Contains(t, string(markdown), "| 1 | chat | cat |")
		})
	}
}

func TestExportCommand_SetNotFound(t *testing.T) {
	setupTestConfig(t)

	_, err := execute(t, newExportCommand(), "missing")

	assert.ErrorIs(t, err, flashcard.ErrSetNotFound)
}
