package cli

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	mock_scoreboard "github.com/at-ishikawa/flashgrid/internal/mocks/scoreboard"
	"github.com/at-ishikawa/flashgrid/internal/scoreboard"
	"github.com/at-ishikawa/flashgrid/internal/session"
)

var playedAt = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestBlockCLI(t *testing.T, set *flashcard.FlashcardSet, scores scoreboard.Repository, input string) (*BlockStudyCLI, *session.BlockSession, func() string) {
	t.Helper()
	blockSession := session.NewBlockSession(session.BlockOptions{
		Rand:      testRand(),
		Scheduler: immediateScheduler{now: playedAt},
	})
	blockSession.Start(set)

	cli := NewBlockStudyCLI(blockSession, scores, nil)
	out := scriptIO(t, cli.InteractiveStudyCLI, input)
	return cli, blockSession, out.String
}

// play calls Session until it fails or n rounds have run.
func play(t *testing.T, cli Session, n int) error {
	t.Helper()
	for i := 0; i < n; i++ {
		if err := cli.Session(context.Background()); err != nil {
			return err
		}
	}
	return nil
}

func TestBlockStudyCLI_Session_correctAnswerThenPlacement(t *testing.T) {
	cli, blockSession, output := newTestBlockCLI(t, capitalSet(), nil, "paris\n1 1 1\n:q\n")

	require.NoError(t, play(t, cli, 1))
	assert.Equal(t, session.BlockStateBlocksOffered, blockSession.State())
	assert.Len(t, blockSession.Offers(), 3)

	require.NoError(t, play(t, cli, 1))
	offers := blockSession.Offers()
	require.Len(t, offers, 2)
	assert.Equal(t, 2, offers[0].ID)

	assert.ErrorIs(t, play(t, cli, 1), errEnd)

	got := output()
	assert.Contains(t, got, "Answer: France")
	assert.Contains(t, got, "Image: https://example.com/france.png")
	assert.Contains(t, got, "It's correct.")
	assert.Contains(t, got, "+10 points. Place your blocks.")
	assert.Contains(t, got, "[1] ")
	assert.Contains(t, got, "Score: 10  Correct: 1/1  Lines cleared: 0")
}

func TestBlockStudyCLI_Session_wrongAnswer(t *testing.T) {
	cli, blockSession, output := newTestBlockCLI(t, capitalSet(), nil, "Lyon\n")

	require.NoError(t, play(t, cli, 1))
	assert.Contains(t, output(), `It's wrong. The answer is "Paris"`)

	// the next round waits for the card to advance before asking again
	assert.ErrorIs(t, play(t, cli, 1), errEnd)
	assert.Equal(t, session.BlockStateAwaitingAnswer, blockSession.State())
	stats := blockSession.Stats()
	assert.Equal(t, 1, stats.TotalAnswers)
	assert.Equal(t, 0, stats.CorrectAnswers)
	assert.Equal(t, 0, stats.Score)
}

func TestBlockStudyCLI_Session_commands(t *testing.T) {
	tests := []struct {
		name      string
		set       *flashcard.FlashcardSet
		input     string
		rounds    int
		wantState session.BlockState
		wantOut   []string
	}{
		{
			name:      "blank input is ignored",
			set:       capitalSet(),
			input:     "   \n",
			rounds:    1,
			wantState: session.BlockStateAwaitingAnswer,
		},
		{
			name:      "special characters are listed and expanded",
			set:       cafeSet(),
			input:     ":chars\ncaf{6}\n",
			rounds:    2,
			wantState: session.BlockStateBlocksOffered,
			wantOut:   []string{"{1}à  {2}â", "It's correct."},
		},
		{
			name:      "skip deals the next card",
			set:       capitalSet(),
			input:     "Paris\n:s\n",
			rounds:    2,
			wantState: session.BlockStateAwaitingAnswer,
		},
		{
			name:      "placement input is validated",
			set:       capitalSet(),
			input:     "Paris\nnorth west\n1 8 8\n9 1 1\n",
			rounds:    4,
			wantState: session.BlockStateBlocksOffered,
			wantOut: []string{
				"type the block number, a row and a column, e.g. 1 3 5",
				"That block does not fit there.",
			},
		},
		{
			name:      "restart clears the score",
			set:       capitalSet(),
			input:     "Paris\n:r\n",
			rounds:    2,
			wantState: session.BlockStateAwaitingAnswer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, blockSession, output := newTestBlockCLI(t, tt.set, nil, tt.input)

			require.NoError(t, play(t, cli, tt.rounds))

			assert.Equal(t, tt.wantState, blockSession.State())
			for _, want := range tt.wantOut {
				assert.Contains(t, output(), want)
			}
		})
	}
}

func TestBlockStudyCLI_Session_restartResetsScore(t *testing.T) {
	cli, blockSession, _ := newTestBlockCLI(t, capitalSet(), nil, "Paris\n:r\n")

	require.NoError(t, play(t, cli, 1))
	assert.Equal(t, 10, blockSession.Score())
	require.NoError(t, play(t, cli, 1))
	assert.Equal(t, 0, blockSession.Score())
	assert.Empty(t, blockSession.Offers())
}

func TestBlockStudyCLI_Session_unplayableSets(t *testing.T) {
	t.Run("no cards", func(t *testing.T) {
		cli, _, output := newTestBlockCLI(t, &flashcard.FlashcardSet{ID: "empty"}, nil, "")
		assert.ErrorIs(t, cli.Session(context.Background()), errEnd)
		assert.Contains(t, output(), "There are no cards in this set.")
	})
	t.Run("not loaded", func(t *testing.T) {
		cli, _, _ := newTestBlockCLI(t, nil, nil, "")
		assert.ErrorIs(t, cli.Session(context.Background()), session.ErrNoSet)
	})
}

func TestBlockStudyCLI_finish(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		saveErr   error
		wantErr   error
		wantState session.BlockState
		wantOut   string
	}{
		{
			name:      "saves the score and quits",
			input:     "\n",
			wantErr:   errEnd,
			wantState: session.BlockStateBlocksOffered,
			wantOut:   "Game over!",
		},
		{
			name:      "plays again",
			input:     ":r\n",
			wantState: session.BlockStateAwaitingAnswer,
			wantOut:   "Score: 10  Correct: 1/1  Lines cleared: 0",
		},
		{
			name:      "a failed save is reported",
			input:     "\n",
			saveErr:   errors.New("read-only file system"),
			wantErr:   errEnd,
			wantState: session.BlockStateBlocksOffered,
			wantOut:   "The score could not be saved.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			scores := mock_scoreboard.NewMockRepository(ctrl)
			scores.EXPECT().
				Save(gomock.Any(), &scoreboard.Record{
					SetID:          "capitals",
					Score:          10,
					CorrectAnswers: 1,
					TotalAnswers:   1,
				}).
				Return(tt.saveErr)

			cli, blockSession, output := newTestBlockCLI(t, capitalSet(), scores, tt.input)
			require.True(t, blockSession.Submit("Paris").Correct)

			err := cli.finish(context.Background())

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantState, blockSession.State())
			assert.Contains(t, output(), tt.wantOut)
		})
	}
}

func TestBlockStudyCLI_finish_savesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	scores := mock_scoreboard.NewMockRepository(ctrl)
	scores.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	cli, _, _ := newTestBlockCLI(t, capitalSet(), scores, ":x\n\n")

	assert.ErrorIs(t, cli.finish(context.Background()), errEnd)
	assert.ErrorIs(t, cli.finish(context.Background()), errEnd)
}

func TestParsePlacement(t *testing.T) {
	tests := []struct {
		input   string
		want    [3]int
		wantErr bool
	}{
		{input: "1 3 5", want: [3]int{1, 3, 5}},
		{input: "  2\t8 1 ", want: [3]int{2, 8, 1}},
		{input: "1 3", wantErr: true},
		{input: "1 3 5 7", wantErr: true},
		{input: "a b c", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			id, row, col, err := parsePlacement(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, errPlacementFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, [3]int{id, row, col})
		})
	}
}
