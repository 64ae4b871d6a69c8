package flashcard

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// cardRecord is a row of the flashcards table.
type cardRecord struct {
	SetID    string `db:"set_id"`
	Position int    `db:"position"`
	Flashcard
}

// DBRepository reads and writes sets in MySQL.
type DBRepository struct {
	db *sqlx.DB
}

func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) LoadSet(ctx context.Context, setID string) (*FlashcardSet, error) {
	var set FlashcardSet
	err := r.db.GetContext(ctx, &set, "SELECT * FROM flashcard_sets WHERE id = ?", setID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%q: %w", setID, ErrSetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(flashcard_set) > %w", err)
	}

	sets := []FlashcardSet{set}
	if err := r.loadCards(ctx, sets); err != nil {
		return nil, err
	}
	return &sets[0], nil
}

func (r *DBRepository) ListSets(ctx context.Context) ([]FlashcardSet, error) {
	var sets []FlashcardSet
	if err := r.db.SelectContext(ctx, &sets, "SELECT * FROM flashcard_sets ORDER BY id"); err != nil {
		return nil, fmt.Errorf("db.SelectContext(flashcard_sets) > %w", err)
	}
	if err := r.loadCards(ctx, sets); err != nil {
		return nil, err
	}
	return sets, nil
}

func (r *DBRepository) loadCards(ctx context.Context, sets []FlashcardSet) error {
	if len(sets) == 0 {
		return nil
	}

	setIDs := make([]string, len(sets))
	setMap := make(map[string]*FlashcardSet, len(sets))
	for i := range sets {
		setIDs[i] = sets[i].ID
		setMap[sets[i].ID] = &sets[i]
	}

	query, args, err := sqlx.In("SELECT * FROM flashcards WHERE set_id IN (?) ORDER BY set_id, position", setIDs)
	if err != nil {
		return fmt.Errorf("sqlx.In(flashcards) > %w", err)
	}
	var records []cardRecord
	if err := r.db.SelectContext(ctx, &records, r.db.Rebind(query), args...); err != nil {
		return fmt.Errorf("db.SelectContext(flashcards) > %w", err)
	}
	for _, record := range records {
		set := setMap[record.SetID]
		set.Cards = append(set.Cards, record.Flashcard)
	}
	return nil
}

// SaveSet inserts or replaces the set and all of its cards in a transaction.
func (r *DBRepository) SaveSet(ctx context.Context, set *FlashcardSet) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO flashcard_sets (id, title, description) VALUES (?, ?, ?) "+
			"ON DUPLICATE KEY UPDATE title = VALUES(title), description = VALUES(description)",
		set.ID, set.Title, set.Description); err != nil {
		return fmt.Errorf("tx.ExecContext(upsert flashcard_set) > %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM flashcards WHERE set_id = ?", set.ID); err != nil {
		return fmt.Errorf("tx.ExecContext(delete flashcards) > %w", err)
	}
	for i, card := range set.Cards {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO flashcards (set_id, id, position, question, answer, image_url, question_language, answer_language) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
			set.ID, card.ID, i, card.Question, card.Answer, card.ImageURL, card.QuestionLanguage, card.AnswerLanguage); err != nil {
			return fmt.Errorf("tx.ExecContext(insert flashcard %s) > %w", card.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}
