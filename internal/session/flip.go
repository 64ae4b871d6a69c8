package session

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/locale"
	"github.com/at-ishikawa/flashgrid/internal/study"
)

//go:generate mockgen -source=flip.go -destination=../mocks/session/mock_direction_store.go -package=mock_session

// DirectionStore keeps the study direction of each set between sessions.
type DirectionStore interface {
	// AskInQuestionLanguage returns the saved direction. found is false when
	// nothing has been saved for the set yet.
	AskInQuestionLanguage(setID string) (ask bool, found bool, err error)
	SetAskInQuestionLanguage(setID string, ask bool) error
}

type FlipState int

const (
	FlipStateNotLoaded FlipState = iota
	FlipStateNoCards
	FlipStateReviewing
	FlipStateSummary
)

func (s FlipState) String() string {
	switch s {
	case FlipStateNotLoaded:
		return "not-loaded"
	case FlipStateNoCards:
		return "no-cards"
	case FlipStateReviewing:
		return "reviewing"
	case FlipStateSummary:
		return "summary"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Summary counts cards by classification. Unrated cards were never marked
// known or unknown.
type Summary struct {
	Known   int
	Unknown int
	Unrated int
	Total   int
}

type FlipOptions struct {
	Rand       *rand.Rand
	Directions DirectionStore
}

// FlipSession walks through a set in a fixed random order. Cards are
// classified as known or unknown by their index in the set, so the same
// card can be reclassified but never counts twice.
type FlipSession struct {
	rnd        *rand.Rand
	directions DirectionStore

	set      *flashcard.FlashcardSet
	state    FlipState
	order    []int
	position int
	flipped  bool
	ask      bool
	known    map[int]struct{}
	unknown  map[int]struct{}
	// nil until an answer has been submitted for the current card
	lastResult *AnswerResult
}

func NewFlipSession(opts FlipOptions) *FlipSession {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &FlipSession{
		rnd:        opts.Rand,
		directions: opts.Directions,
		known:      make(map[int]struct{}),
		unknown:    make(map[int]struct{}),
	}
}

func (s *FlipSession) Load(ctx context.Context, source flashcard.Source, setID string) error {
	set, err := source.LoadSet(ctx, setID)
	if err != nil {
		s.Start(nil)
		return fmt.Errorf("source.LoadSet(%s) > %w", setID, err)
	}
	s.Start(set)
	return nil
}

// Start begins reviewing the set and restores its saved direction.
func (s *FlipSession) Start(set *flashcard.FlashcardSet) {
	s.set = set
	s.ask = false
	if set != nil && s.directions != nil {
		ask, found, err := s.directions.AskInQuestionLanguage(set.ID)
		if err != nil {
			slog.Default().Warn("failed to load the study direction", "setID", set.ID, "error", err)
		} else if found {
			s.ask = ask
		}
	}
	s.reset()
}

// Restart shuffles a new order, clears every classification and goes back
// to the first card. The direction is kept.
func (s *FlipSession) Restart() error {
	if s.set == nil {
		return ErrNoSet
	}
	s.reset()
	return nil
}

func (s *FlipSession) reset() {
	clear(s.known)
	clear(s.unknown)
	s.position = 0
	s.resetCard()

	switch {
	case s.set == nil:
		s.order = nil
		s.state = FlipStateNotLoaded
	case len(s.set.Cards) == 0:
		s.order = nil
		s.state = FlipStateNoCards
	default:
		s.order = study.Permutation(s.rnd, len(s.set.Cards))
		s.state = FlipStateReviewing
	}
}

func (s *FlipSession) resetCard() {
	s.flipped = false
	s.lastResult = nil
}

// Next moves to the next card. It reports false at the last card.
func (s *FlipSession) Next() bool {
	if s.state != FlipStateReviewing || s.position >= len(s.order)-1 {
		return false
	}
	s.position++
	s.resetCard()
	return true
}

// Previous moves to the previous card. It reports false at the first card.
func (s *FlipSession) Previous() bool {
	if s.state != FlipStateReviewing || s.position == 0 {
		return false
	}
	s.position--
	s.resetCard()
	return true
}

func (s *FlipSession) Flip() {
	if s.state != FlipStateReviewing {
		return
	}
	s.flipped = !s.flipped
}

// Submit checks the typed text against the side being asked for and
// classifies the card. Blank text and submissions on a flipped card are
// ignored.
func (s *FlipSession) Submit(text string) AnswerResult {
	card := s.currentCard()
	if card == nil || s.flipped || strings.TrimSpace(text) == "" {
		return AnswerResult{}
	}

	expected := s.expectedAnswer(card)
	result := AnswerResult{
		Accepted: true,
		Correct:  study.Matches(text, expected),
		Expected: expected,
	}
	s.classify(result.Correct)
	s.lastResult = &result
	return result
}

// MarkKnown classifies the flipped card as known and moves on.
func (s *FlipSession) MarkKnown() bool {
	return s.mark(true)
}

// MarkDontKnow classifies the flipped card as unknown and moves on.
func (s *FlipSession) MarkDontKnow() bool {
	return s.mark(false)
}

func (s *FlipSession) mark(known bool) bool {
	if s.state != FlipStateReviewing || !s.flipped {
		return false
	}
	s.classify(known)
	s.Next()
	return true
}

func (s *FlipSession) classify(known bool) {
	index := s.order[s.position]
	if known {
		s.known[index] = struct{}{}
		delete(s.unknown, index)
		return
	}
	s.unknown[index] = struct{}{}
	delete(s.known, index)
}

// ToggleDirection switches between being asked the question and being
// asked the answer, and saves the choice for the set.
func (s *FlipSession) ToggleDirection() {
	if s.set == nil {
		return
	}
	s.ask = !s.ask
	if s.directions == nil {
		return
	}
	if err := s.directions.SetAskInQuestionLanguage(s.set.ID, s.ask); err != nil {
		slog.Default().Warn("failed to save the study direction", "setID", s.set.ID, "error", err)
	}
}

// ViewSummary ends the review. It is only available on the last card.
func (s *FlipSession) ViewSummary() (Summary, bool) {
	if s.state == FlipStateSummary {
		return s.Summary(), true
	}
	if s.state != FlipStateReviewing || s.position != len(s.order)-1 {
		return Summary{}, false
	}
	s.state = FlipStateSummary
	return s.Summary(), true
}

func (s *FlipSession) Summary() Summary {
	total := len(s.order)
	return Summary{
		Known:   len(s.known),
		Unknown: len(s.unknown),
		Unrated: total - len(s.known) - len(s.unknown),
		Total:   total,
	}
}

func (s *FlipSession) currentCard() *flashcard.Flashcard {
	if s.state != FlipStateReviewing {
		return nil
	}
	return &s.set.Cards[s.order[s.position]]
}

func (s *FlipSession) expectedAnswer(card *flashcard.Flashcard) string {
	if s.ask {
		return card.Answer
	}
	return card.Question
}

// CurrentCard returns a copy of the card on screen, or nil outside a review.
func (s *FlipSession) CurrentCard() *flashcard.Flashcard {
	card := s.currentCard()
	if card == nil {
		return nil
	}
	c := *card
	return &c
}

// VisibleSide returns the text shown for the current card and its language.
// Before flipping, the question is shown when asking in the question
// language and the answer otherwise.
func (s *FlipSession) VisibleSide() (string, locale.Language) {
	card := s.currentCard()
	if card == nil {
		return "", locale.None
	}
	if s.ask != s.flipped {
		return card.Question, card.QuestionLanguage
	}
	return card.Answer, card.AnswerLanguage
}

// ExpectedLanguage is the language the user types in for the current card.
func (s *FlipSession) ExpectedLanguage() locale.Language {
	card := s.currentCard()
	if card == nil {
		return locale.None
	}
	if s.ask {
		return card.AnswerLanguage
	}
	return card.QuestionLanguage
}

// Position returns the zero-based position and the number of cards.
func (s *FlipSession) Position() (int, int) {
	return s.position, len(s.order)
}

func (s *FlipSession) State() FlipState {
	return s.state
}

func (s *FlipSession) Flipped() bool {
	return s.flipped
}

func (s *FlipSession) AskInQuestionLanguage() bool {
	return s.ask
}

func (s *FlipSession) LastResult() *AnswerResult {
	return s.lastResult
}

// IsKnown reports the classification of the card at index in the set.
func (s *FlipSession) IsKnown(index int) (known bool, rated bool) {
	if _, ok := s.known[index]; ok {
		return true, true
	}
	if _, ok := s.unknown[index]; ok {
		return false, true
	}
	return false, false
}

// CurrentIndex returns the index in the set of the card on screen.
func (s *FlipSession) CurrentIndex() int {
	if s.state != FlipStateReviewing {
		return -1
	}
	return s.order[s.position]
}

func (s *FlipSession) Set() *flashcard.FlashcardSet {
	return s.set
}
