package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/puzzle"
	"github.com/at-ishikawa/flashgrid/internal/study"
	"github.com/jonboulle/clockwork"
)

const (
	CorrectAnswerScore     = 10
	BlocksPerCorrectAnswer = 3

	DefaultIncorrectAnswerDelay = 1500 * time.Millisecond
	DefaultBatchCompleteDelay   = 500 * time.Millisecond
)

var ErrNoSet = errors.New("no flashcard set loaded")

type BlockState int

const (
	BlockStateNotLoaded BlockState = iota
	BlockStateNoCards
	BlockStateAwaitingAnswer
	BlockStateBlocksOffered
	BlockStateAdvancingCard
	BlockStateSessionOver
)

func (s BlockState) String() string {
	switch s {
	case BlockStateNotLoaded:
		return "not-loaded"
	case BlockStateNoCards:
		return "no-cards"
	case BlockStateAwaitingAnswer:
		return "awaiting-answer"
	case BlockStateBlocksOffered:
		return "blocks-offered"
	case BlockStateAdvancingCard:
		return "advancing-card"
	case BlockStateSessionOver:
		return "session-over"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Offer is a block waiting to be placed. IDs are unique within a session.
type Offer struct {
	ID    int
	Shape puzzle.Shape
}

// AnswerResult is the outcome of a submitted answer. Accepted is false when
// the submission was ignored.
type AnswerResult struct {
	Accepted bool
	Correct  bool
	Expected string
}

// BlockStats are the running totals of a block session.
type BlockStats struct {
	Score          int
	CorrectAnswers int
	TotalAnswers   int
	LinesCleared   int
	StartedAt      time.Time
	EndedAt        time.Time
}

func (s BlockStats) Duration() time.Duration {
	if s.EndedAt.IsZero() {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}

type BlockOptions struct {
	Rand                 *rand.Rand
	Scheduler            Scheduler
	IncorrectAnswerDelay time.Duration
	BatchCompleteDelay   time.Duration
}

// BlockSession is the block puzzle study mode. Every correct answer earns
// blocks that must be placed on the grid; the session ends when the grid
// is full or none of the offered blocks fits anywhere.
//
// Delayed transitions are tagged with the generation they were scheduled
// in. Restart bumps the generation so transitions scheduled before it are
// dropped when they fire.
type BlockSession struct {
	mu sync.Mutex

	rnd                  *rand.Rand
	scheduler            Scheduler
	incorrectAnswerDelay time.Duration
	batchCompleteDelay   time.Duration

	set         *flashcard.FlashcardSet
	deck        *study.Deck
	state       BlockState
	grid        puzzle.Grid
	offers      map[int]puzzle.Shape
	nextOfferID int
	stats       BlockStats

	generation uint64
	pending    int
	idle       chan struct{}
}

func NewBlockSession(opts BlockOptions) *BlockSession {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Scheduler == nil {
		opts.Scheduler = NewClockScheduler(clockwork.NewRealClock())
	}
	if opts.IncorrectAnswerDelay <= 0 {
		opts.IncorrectAnswerDelay = DefaultIncorrectAnswerDelay
	}
	if opts.BatchCompleteDelay <= 0 {
		opts.BatchCompleteDelay = DefaultBatchCompleteDelay
	}
	return &BlockSession{
		rnd:                  opts.Rand,
		scheduler:            opts.Scheduler,
		incorrectAnswerDelay: opts.IncorrectAnswerDelay,
		batchCompleteDelay:   opts.BatchCompleteDelay,
		deck:                 study.NewDeck(opts.Rand),
		offers:               make(map[int]puzzle.Shape),
	}
}

// Load reads the set from the source and starts the session. When the set
// does not exist the session stays in BlockStateNotLoaded.
func (s *BlockSession) Load(ctx context.Context, source flashcard.Source, setID string) error {
	set, err := source.LoadSet(ctx, setID)
	if err != nil {
		s.Start(nil)
		return fmt.Errorf("source.LoadSet(%s) > %w", setID, err)
	}
	s.Start(set)
	return nil
}

// Start begins a session for the set. A nil set leaves the session unloaded
// and a set without cards ends in BlockStateNoCards.
func (s *BlockSession) Start(set *flashcard.FlashcardSet) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.set = set
	s.resetLocked()
}

// Restart clears the grid, the score and the offered blocks, reshuffles the
// deck and deals the first card. Pending delayed transitions are discarded.
func (s *BlockSession) Restart() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.set == nil {
		return ErrNoSet
	}
	s.resetLocked()
	return nil
}

func (s *BlockSession) resetLocked() {
	s.cancelPendingLocked()
	s.grid.Reset()
	clear(s.offers)
	s.stats = BlockStats{StartedAt: s.scheduler.Now()}

	switch {
	case s.set == nil:
		s.state = BlockStateNotLoaded
		return
	case len(s.set.Cards) == 0:
		s.state = BlockStateNoCards
		return
	}
	s.deck.Start(s.set.Cards)
	s.state = BlockStateAwaitingAnswer
	slog.Default().Debug("block session started",
		"setID", s.set.ID,
		"cards", len(s.set.Cards),
		"generation", s.generation)
}

// Submit judges an answer to the current card. In block mode the card's
// answer is shown and its question has to be typed. Submissions outside
// BlockStateAwaitingAnswer and blank submissions are ignored.
func (s *BlockSession) Submit(answer string) AnswerResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	card := s.deck.Current()
	if s.state != BlockStateAwaitingAnswer || card == nil || strings.TrimSpace(answer) == "" {
		return AnswerResult{}
	}

	s.stats.TotalAnswers++
	result := AnswerResult{
		Accepted: true,
		Correct:  study.Matches(answer, card.Question),
		Expected: card.Question,
	}
	if !result.Correct {
		s.state = BlockStateAdvancingCard
		s.deferLocked(s.incorrectAnswerDelay, s.advanceLocked)
		return result
	}

	s.stats.CorrectAnswers++
	s.stats.Score += CorrectAnswerScore
	// ids restart at 1 for every batch
	s.nextOfferID = 0
	for _, shape := range puzzle.RandomShapes(s.rnd, BlocksPerCorrectAnswer) {
		s.nextOfferID++
		s.offers[s.nextOfferID] = shape
	}
	s.state = BlockStateBlocksOffered
	if !s.grid.AnyFits(s.offeredShapesLocked()) {
		s.endLocked()
	}
	return result
}

// Place puts an offered block on the grid with its top-left corner at
// (row, col). It reports false and changes nothing when the block is not
// offered or does not fit there.
func (s *BlockSession) Place(offerID, row, col int) (puzzle.Placement, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != BlockStateBlocksOffered {
		return puzzle.Placement{}, false
	}
	shape, ok := s.offers[offerID]
	if !ok {
		return puzzle.Placement{}, false
	}
	placement, err := s.grid.Place(shape, row, col, puzzle.Green)
	if err != nil {
		slog.Default().Debug("block placement rejected", "offerID", offerID, "error", err)
		return puzzle.Placement{}, false
	}

	delete(s.offers, offerID)
	s.stats.Score += placement.Bonus()
	s.stats.LinesCleared += placement.LinesCleared()

	switch {
	case s.grid.IsFull():
		s.endLocked()
	case len(s.offers) > 0:
		if !s.grid.AnyFits(s.offeredShapesLocked()) {
			s.endLocked()
		}
	default:
		s.state = BlockStateAdvancingCard
		s.deferLocked(s.batchCompleteDelay, s.advanceLocked)
	}
	return placement, true
}

// Skip discards the offered blocks and deals the next card right away.
func (s *BlockSession) Skip() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != BlockStateAwaitingAnswer && s.state != BlockStateBlocksOffered {
		return false
	}
	s.advanceLocked()
	return true
}

// Wait blocks until every pending delayed transition has run or ctx is done.
func (s *BlockSession) Wait(ctx context.Context) error {
	s.mu.Lock()
	if s.pending == 0 {
		s.mu.Unlock()
		return nil
	}
	idle := s.idle
	s.mu.Unlock()

	select {
	case <-idle:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *BlockSession) advanceLocked() {
	clear(s.offers)
	s.deck.Next()
	s.state = BlockStateAwaitingAnswer
}

func (s *BlockSession) endLocked() {
	s.state = BlockStateSessionOver
	s.stats.EndedAt = s.scheduler.Now()
	slog.Default().Debug("block session over",
		"score", s.stats.Score,
		"correctAnswers", s.stats.CorrectAnswers,
		"linesCleared", s.stats.LinesCleared)
}

func (s *BlockSession) deferLocked(d time.Duration, transition func()) {
	generation := s.generation
	if s.pending == 0 {
		s.idle = make(chan struct{})
	}
	s.pending++

	s.scheduler.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if generation != s.generation {
			slog.Default().Debug("dropped stale transition",
				"scheduledIn", generation,
				"current", s.generation)
			return
		}
		transition()
		s.pending--
		if s.pending == 0 {
			close(s.idle)
		}
	})
}

func (s *BlockSession) cancelPendingLocked() {
	s.generation++
	if s.pending > 0 {
		s.pending = 0
		close(s.idle)
	}
}

func (s *BlockSession) offeredShapesLocked() []puzzle.Shape {
	shapes := make([]puzzle.Shape, 0, len(s.offers))
	for _, offer := range s.offersLocked() {
		shapes = append(shapes, offer.Shape)
	}
	return shapes
}

func (s *BlockSession) offersLocked() []Offer {
	offers := make([]Offer, 0, len(s.offers))
	for id, shape := range s.offers {
		offers = append(offers, Offer{ID: id, Shape: shape})
	}
	sort.Slice(offers, func(i, j int) bool {
		return offers[i].ID < offers[j].ID
	})
	return offers
}

func (s *BlockSession) State() BlockState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Offers returns the blocks waiting to be placed, oldest first.
func (s *BlockSession) Offers() []Offer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offersLocked()
}

// Grid returns a copy of the board.
func (s *BlockSession) Grid() puzzle.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

func (s *BlockSession) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats.Score
}

func (s *BlockSession) Stats() BlockStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// CurrentCard returns a copy of the card being asked, or nil when there is none.
func (s *BlockSession) CurrentCard() *flashcard.Flashcard {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == BlockStateNotLoaded || s.state == BlockStateNoCards {
		return nil
	}
	card := s.deck.Current()
	if card == nil {
		return nil
	}
	c := *card
	return &c
}

func (s *BlockSession) Set() *flashcard.FlashcardSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set
}
