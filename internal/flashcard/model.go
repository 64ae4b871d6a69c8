// Package flashcard provides the flashcard set model and the sources sets are loaded from.
package flashcard

import (
	"context"
	"errors"
	"time"

	"github.com/at-ishikawa/flashgrid/internal/locale"
)

var ErrSetNotFound = errors.New("flashcard set not found")

type Flashcard struct {
	ID               string          `yaml:"id" db:"id" validate:"required"`
	Question         string          `yaml:"question" db:"question" validate:"required"`
	Answer           string          `yaml:"answer" db:"answer" validate:"required"`
	ImageURL         string          `yaml:"image_url,omitempty" db:"image_url" validate:"omitempty,url"`
	QuestionLanguage locale.Language `yaml:"question_language,omitempty" db:"question_language" validate:"omitempty,language"`
	AnswerLanguage   locale.Language `yaml:"answer_language,omitempty" db:"answer_language" validate:"omitempty,language"`
	CreatedAt        time.Time       `yaml:"created_at,omitempty" db:"created_at"`
	UpdatedAt        time.Time       `yaml:"updated_at,omitempty" db:"updated_at"`
}

// FlashcardSet is the unit of study. Cards keep the order they were authored in.
type FlashcardSet struct {
	ID          string      `yaml:"id" db:"id" validate:"required"`
	Title       string      `yaml:"title" db:"title" validate:"required"`
	Description string      `yaml:"description,omitempty" db:"description"`
	Cards       []Flashcard `yaml:"cards" db:"-" validate:"dive"`
	CreatedAt   time.Time   `yaml:"created_at,omitempty" db:"created_at"`
	UpdatedAt   time.Time   `yaml:"updated_at,omitempty" db:"updated_at"`
}

//go:generate mockgen -source=model.go -destination=../mocks/flashcard/mock_source.go -package=mock_flashcard

// Source loads flashcard sets. LoadSet returns ErrSetNotFound for unknown ids.
type Source interface {
	LoadSet(ctx context.Context, setID string) (*FlashcardSet, error)
	ListSets(ctx context.Context) ([]FlashcardSet, error)
}

// Store is a Source that can also save sets.
type Store interface {
	Source
	SaveSet(ctx context.Context, set *FlashcardSet) error
}
