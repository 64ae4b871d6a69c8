package flashcard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/at-ishikawa/flashgrid/internal/yamlfile"
)

// YAMLRepository keeps one set per file, named <set id>.yml, in a directory.
type YAMLRepository struct {
	directory string
}

func NewYAMLRepository(directory string) *YAMLRepository {
	return &YAMLRepository{directory: directory}
}

func (r *YAMLRepository) LoadSet(ctx context.Context, setID string) (*FlashcardSet, error) {
	if setID == "" || strings.ContainsAny(setID, `/\`) || setID == "." || setID == ".." {
		return nil, fmt.Errorf("%q: %w", setID, ErrSetNotFound)
	}

	for _, ext := range []string{".yml", ".yaml"} {
		path := filepath.Join(r.directory, setID+ext)
		set, err := yamlfile.Read[FlashcardSet](path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("yamlfile.Read(%s) > %w", path, err)
		}
		if set.ID == "" {
			set.ID = setID
		}
		return &set, nil
	}
	return nil, fmt.Errorf("%q: %w", setID, ErrSetNotFound)
}

// ListSets returns every set in the directory ordered by file name.
func (r *YAMLRepository) ListSets(ctx context.Context) ([]FlashcardSet, error) {
	files, err := yamlfile.LoadDir[FlashcardSet](r.directory)
	if err != nil {
		return nil, fmt.Errorf("yamlfile.LoadDir(%s) > %w", r.directory, err)
	}

	sets := make([]FlashcardSet, 0, len(files))
	for _, name := range yamlfile.SortedKeys(files) {
		set := files[name]
		if set.ID == "" {
			set.ID = name
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// SaveSet writes the set to <set id>.yml, replacing any existing file.
func (r *YAMLRepository) SaveSet(ctx context.Context, set *FlashcardSet) error {
	if set.ID == "" || strings.ContainsAny(set.ID, `/\`) {
		return fmt.Errorf("invalid set id %q", set.ID)
	}
	path := filepath.Join(r.directory, set.ID+".yml")
	if err := yamlfile.Write(path, set); err != nil {
		return fmt.Errorf("yamlfile.Write(%s) > %w", path, err)
	}
	return nil
}
