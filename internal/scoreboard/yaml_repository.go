package scoreboard

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/at-ishikawa/flashgrid/internal/yamlfile"
)

// YAMLRepository appends records to <set id>.yml in a directory.
type YAMLRepository struct {
	mu        sync.Mutex
	directory string
}

func NewYAMLRepository(directory string) *YAMLRepository {
	return &YAMLRepository{directory: directory}
}

func (r *YAMLRepository) Save(ctx context.Context, record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(record.SetID)
	if err != nil {
		return err
	}
	records = append(records, *record)

	path := r.path(record.SetID)
	if err := yamlfile.Write(path, records); err != nil {
		return fmt.Errorf("yamlfile.Write(%s) > %w", path, err)
	}
	return nil
}

func (r *YAMLRepository) Best(ctx context.Context, setID string, limit int) ([]Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(setID)
	if err != nil {
		return nil, err
	}
	Rank(records)
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func (r *YAMLRepository) load(setID string) ([]Record, error) {
	path := r.path(setID)
	records, err := yamlfile.Read[[]Record](path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("yamlfile.Read(%s) > %w", path, err)
	}
	return records, nil
}

func (r *YAMLRepository) path(setID string) string {
	return filepath.Join(r.directory, filepath.Base(setID)+".yml")
}
