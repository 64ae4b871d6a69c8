package main

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/flashgrid/internal/config"
	"github.com/at-ishikawa/flashgrid/internal/database"
	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/scoreboard"
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	return loader.Load()
}

// storage holds the repositories selected by storage.driver.
type storage struct {
	sets   flashcard.Store
	scores scoreboard.Repository
	db     *sqlx.DB
}

func openStorage(cfg *config.Config) (*storage, error) {
	if cfg.Storage.Driver != config.StorageDriverMySQL {
		return &storage{
			sets:   flashcard.NewYAMLRepository(cfg.Sets.Directory),
			scores: scoreboard.NewYAMLRepository(cfg.Scores.Directory),
		}, nil
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database.Open() > %w", err)
	}
	return &storage{
		sets:   flashcard.NewDBRepository(db),
		scores: scoreboard.NewDBRepository(db),
		db:     db,
	}, nil
}

func (s *storage) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
