package scoreboard

import (
	"context"
	"fmt"
	"math"

	"github.com/jmoiron/sqlx"
)

type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) Save(ctx context.Context, record *Record) error {
	result, err := r.db.NamedExecContext(ctx,
		`INSERT INTO scores (set_id, score, correct_answers, total_answers, lines_cleared, duration_seconds, played_at)
		VALUES (:set_id, :score, :correct_answers, :total_answers, :lines_cleared, :duration_seconds, :played_at)`,
		record)
	if err != nil {
		return fmt.Errorf("db.NamedExecContext(insert score) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	record.ID = id
	return nil
}

func (r *DBRepository) Best(ctx context.Context, setID string, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = math.MaxInt32
	}
	var records []Record
	if err := r.db.SelectContext(ctx, &records,
		"SELECT * FROM scores WHERE set_id = ? ORDER BY score DESC, duration_seconds ASC, played_at ASC LIMIT ?",
		setID, limit); err != nil {
		return nil, fmt.Errorf("db.SelectContext(scores) > %w", err)
	}
	return records, nil
}
