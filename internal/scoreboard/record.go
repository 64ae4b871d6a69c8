// Package scoreboard keeps the results of finished block sessions.
package scoreboard

import (
	"context"
	"sort"
	"time"
)

type Record struct {
	ID              int64     `yaml:"-" db:"id"`
	SetID           string    `yaml:"set_id" db:"set_id"`
	Score           int       `yaml:"score" db:"score"`
	CorrectAnswers  int       `yaml:"correct_answers" db:"correct_answers"`
	TotalAnswers    int       `yaml:"total_answers" db:"total_answers"`
	LinesCleared    int       `yaml:"lines_cleared" db:"lines_cleared"`
	DurationSeconds int       `yaml:"duration_seconds" db:"duration_seconds"`
	PlayedAt        time.Time `yaml:"played_at" db:"played_at"`
}

//go:generate mockgen -source=record.go -destination=../mocks/scoreboard/mock_repository.go -package=mock_scoreboard

type Repository interface {
	Save(ctx context.Context, record *Record) error
	// Best returns up to limit records for the set, highest score first.
	Best(ctx context.Context, setID string, limit int) ([]Record, error)
}

// Rank orders records by score, then by the shorter duration, then by the
// earlier play.
func Rank(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.DurationSeconds != b.DurationSeconds {
			return a.DurationSeconds < b.DurationSeconds
		}
		return a.PlayedAt.Before(b.PlayedAt)
	})
}
