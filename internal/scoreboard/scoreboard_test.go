package scoreboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var playedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestRank(t *testing.T) {
	records := []Record{
		{SetID: "a", Score: 40, DurationSeconds: 90, PlayedAt: playedAt},
		{SetID: "b", Score: 70, DurationSeconds: 120, PlayedAt: playedAt},
		{SetID: "c", Score: 40, DurationSeconds: 60, PlayedAt: playedAt.Add(time.Hour)},
		{SetID: "d", Score: 40, DurationSeconds: 60, PlayedAt: playedAt},
	}

	Rank(records)

	var order []string
	for _, r := range records {
		order = append(order, r.SetID)
	}
	assert.Equal(t, []string{"b", "d", "c", "a"}, order)
}

func TestYAMLRepository(t *testing.T) {
	repo := NewYAMLRepository(t.TempDir())
	ctx := context.Background()

	best, err := repo.Best(ctx, "capitals", 10)
	require.NoError(t, err)
	assert.Empty(t, best)

	for _, score := range []int{30, 90, 60} {
		require.NoError(t, repo.Save(ctx, &Record{
			SetID:           "capitals",
			Score:           score,
			CorrectAnswers:  score / 10,
			TotalAnswers:    score / 10,
			DurationSeconds: 100,
			PlayedAt:        playedAt,
		}))
	}
	require.NoError(t, repo.Save(ctx, &Record{SetID: "colors", Score: 500, PlayedAt: playedAt}))

	best, err = repo.Best(ctx, "capitals", 2)
	require.NoError(t, err)
	require.Len(t, best, 2)
	assert.Equal(t, 90, best[0].Score)
	assert.Equal(t, 60, best[1].Score)
	assert.Equal(t, playedAt, best[0].PlayedAt)

	all, err := repo.Best(ctx, "capitals", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDBRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := NewDBRepository(sqlx.NewDb(db, "mysql"))

	record := &Record{
		SetID:           "capitals",
		Score:           50,
		CorrectAnswers:  3,
		TotalAnswers:    4,
		LinesCleared:    1,
		DurationSeconds: 75,
		PlayedAt:        playedAt,
	}
	mock.ExpectExec("INSERT INTO scores").
		WithArgs("capitals", 50, 3, 4, 1, 75, playedAt).
		WillReturnResult(sqlmock.NewResult(12, 1))

	require.NoError(t, repo.Save(context.Background(), record))
	assert.Equal(t, int64(12), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBRepository_Best(t *testing.T) {
	columns := []string{"id", "set_id", "score", "correct_answers", "total_answers", "lines_cleared", "duration_seconds", "played_at"}

	tests := []struct {
		name      string
		limit     int
		wantLimit int
		rows      *sqlmock.Rows
		queryErr  error
		wantLen   int
		wantErr   bool
	}{
		{
			name:      "best scores",
			limit:     5,
			wantLimit: 5,
			rows: sqlmock.NewRows(columns).
				AddRow(2, "capitals", 90, 9, 9, 2, 40, playedAt).
				AddRow(1, "capitals", 30, 3, 5, 0, 60, playedAt),
			wantLen: 2,
		},
		{
			name:      "no limit",
			limit:     0,
			wantLimit: 2147483647,
			rows:      sqlmock.NewRows(columns),
		},
		{
			name:      "query error",
			limit:     5,
			wantLimit: 5,
			queryErr:  errors.New("table scores doesn't exist"),
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()
			repo := NewDBRepository(sqlx.NewDb(db, "mysql"))

			expectation := mock.ExpectQuery("SELECT \\* FROM scores WHERE set_id = \\? ORDER BY score DESC, duration_seconds ASC, played_at ASC LIMIT \\?").
				WithArgs("capitals", tt.wantLimit)
			if tt.queryErr != nil {
				expectation.WillReturnError(tt.queryErr)
			} else {
				expectation.WillReturnRows(tt.rows)
			}

			got, err := repo.Best(context.Background(), "capitals", tt.limit)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
