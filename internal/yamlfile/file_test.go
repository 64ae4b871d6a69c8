package yamlfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testDocument struct {
	Name  string   `yaml:"name"`
	Value int      `yaml:"value"`
	Tags  []string `yaml:"tags,omitempty"`
}

func TestRead(t *testing.T) {
	tests := []struct {
		name             string
		fileContent      string
		createFile       bool
		want             testDocument
		wantErr          bool
		wantErrorContain string
	}{
		{
			name:        "valid yaml",
			fileContent: "name: test\nvalue: 42\n",
			createFile:  true,
			want:        testDocument{Name: "test", Value: 42},
		},
		{
			name:        "yaml with extra fields",
			fileContent: "name: test\nvalue: 42\nextra: ignored\n",
			createFile:  true,
			want:        testDocument{Name: "test", Value: 42},
		},
		{
			name:        "empty file",
			fileContent: "",
			createFile:  true,
			wantErr:     true,
		},
		{
			name:        "invalid yaml",
			fileContent: "name: test\nvalue: [invalid",
			createFile:  true,
			wantErr:     true,
		},
		{
			name:             "nonexistent file",
			wantErr:          true,
			wantErrorContain: "os.Open",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "test.yml")
			if tt.createFile {
				require.NoError(t, os.WriteFile(path, []byte(tt.fileContent), 0o644))
			}

			got, err := Read[testDocument](path)

			if tt.wantErr {
				assert.Error(t, err)
				if tt.wantErrorContain != "" {
					assert.Contains(t, err.Error(), tt.wantErrorContain)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrite(t *testing.T) {
	tests := []struct {
		name string
		data testDocument
		want string
	}{
		{
			name: "simple document",
			data: testDocument{Name: "test", Value: 42},
			want: "name: test\nvalue: 42\n",
		},
		{
			name: "empty document",
			data: testDocument{},
			want: "name: \"\"\nvalue: 0\n",
		},
		{
			name: "nested list uses two space indent",
			data: testDocument{Name: "tagged", Value: 1, Tags: []string{"a", "b"}},
			want: "name: tagged\nvalue: 1\ntags:\n  - a\n  - b\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "test.yml")

			require.NoError(t, Write(path, tt.data))

			content, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(content))

			got, err := Read[testDocument](path)
			require.NoError(t, err)
			assert.Equal(t, tt.data, got)
		})
	}
}

func TestWrite_InvalidPath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := Write(filepath.Join(blocker, "test.yml"), testDocument{})
	assert.ErrorContains(t, err, "os.MkdirAll")
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Write(filepath.Join(dir, "b.yml"), testDocument{Name: "b"}))
	require.NoError(t, Write(filepath.Join(dir, "a.yaml"), testDocument{Name: "a"}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.yml"), 0o755))

	got, err := LoadDir[testDocument](dir)

	require.NoError(t, err)
	assert.Equal(t, map[string]testDocument{
		"a": {Name: "a"},
		"b": {Name: "b"},
	}, got)
	assert.Equal(t, []string{"a", "b"}, SortedKeys(got))
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	got, err := LoadDir[testDocument](filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoadDir_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yml"), []byte("name: [oops"), 0o644))

	_, err := LoadDir[testDocument](dir)
	assert.ErrorContains(t, err, "broken.yml")
}
