package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/at-ishikawa/flashgrid/internal/pronunciation"
	"github.com/at-ishikawa/flashgrid/internal/puzzle"
	"github.com/at-ishikawa/flashgrid/internal/scoreboard"
	"github.com/at-ishikawa/flashgrid/internal/session"
)

const commandSkip = ":s"

// BlockStudyCLI plays the block puzzle mode in the terminal.
type BlockStudyCLI struct {
	*InteractiveStudyCLI
	session *session.BlockSession
	// nil disables score history
	scores     scoreboard.Repository
	scoreSaved bool
}

func NewBlockStudyCLI(
	blockSession *session.BlockSession,
	scores scoreboard.Repository,
	speaker pronunciation.Speaker,
) *BlockStudyCLI {
	return &BlockStudyCLI{
		InteractiveStudyCLI: newInteractiveStudyCLI(speaker),
		session:             blockSession,
		scores:              scores,
	}
}

func (r *BlockStudyCLI) Session(ctx context.Context) error {
	// let the feedback of the previous answer or batch settle first
	if err := r.session.Wait(ctx); err != nil {
		return err
	}

	switch state := r.session.State(); state {
	case session.BlockStateNotLoaded:
		return session.ErrNoSet
	case session.BlockStateNoCards:
		fmt.Fprintln(r.stdoutWriter, "There are no cards in this set.")
		return errEnd
	case session.BlockStateAwaitingAnswer:
		return r.askQuestion(ctx)
	case session.BlockStateBlocksOffered:
		return r.offerBlocks()
	case session.BlockStateSessionOver:
		return r.finish(ctx)
	default:
		return fmt.Errorf("unexpected block session state %s", state)
	}
}

func (r *BlockStudyCLI) askQuestion(ctx context.Context) error {
	card := r.session.CurrentCard()
	if card == nil {
		return errEnd
	}

	r.printBoard()
	fmt.Fprintf(r.stdoutWriter, "Answer: %s\n", r.bold.Sprint(card.Answer))
	if card.ImageURL != "" {
		fmt.Fprintf(r.stdoutWriter, "Image: %s\n", card.ImageURL)
	}
	_, _ = r.bold.Fprint(r.stdoutWriter, "Question? ")

	input, err := r.readLine()
	if err != nil {
		return err
	}
	if handled, err := r.handleCommand(input); handled {
		return err
	}
	switch strings.TrimSpace(input) {
	case commandSay:
		r.say(ctx, card.Answer, card.AnswerLanguage)
		return nil
	case commandCharacters:
		r.printCharacters(card.QuestionLanguage)
		return nil
	}

	result := r.session.Submit(r.expand(input, card.QuestionLanguage))
	if !result.Accepted {
		return nil
	}
	r.printResult(result.Correct, result.Expected)
	if result.Correct {
		fmt.Fprintf(r.stdoutWriter, "+%d points. Place your blocks.\n", session.CorrectAnswerScore)
	}
	return nil
}

func (r *BlockStudyCLI) offerBlocks() error {
	r.printBoard()
	r.printOffers()
	_, _ = r.bold.Fprint(r.stdoutWriter, "Place a block (block row column)? ")

	input, err := r.readLine()
	if err != nil {
		return err
	}
	if handled, err := r.handleCommand(input); handled {
		return err
	}

	offerID, row, col, err := parsePlacement(input)
	if err != nil {
		fmt.Fprintln(r.stdoutWriter, err)
		return nil
	}
	placement, ok := r.session.Place(offerID, row-1, col-1)
	if !ok {
		fmt.Fprintln(r.stdoutWriter, "That block does not fit there.")
		return nil
	}
	if lines := placement.LinesCleared(); lines > 0 {
		_, _ = r.correct.Fprintf(r.stdoutWriter, "Cleared %d line(s): +%d points\n", lines, placement.Bonus())
	}
	return nil
}

// handleCommand runs the commands shared by every prompt of the block mode.
func (r *BlockStudyCLI) handleCommand(input string) (bool, error) {
	switch strings.TrimSpace(input) {
	case commandQuit:
		r.printStats()
		return true, errEnd
	case commandRestart:
		r.scoreSaved = false
		return true, r.session.Restart()
	case commandSkip:
		r.session.Skip()
		return true, nil
	}
	return false, nil
}

func (r *BlockStudyCLI) finish(ctx context.Context) error {
	r.printBoard()
	_, _ = r.bold.Fprintln(r.stdoutWriter, "Game over!")
	r.printStats()
	if !r.scoreSaved {
		r.saveScore(ctx)
		r.scoreSaved = true
	}

	fmt.Fprintf(r.stdoutWriter, "Type %s to play again or anything else to quit: ", commandRestart)
	input, err := r.readLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) != commandRestart {
		return errEnd
	}
	r.scoreSaved = false
	return r.session.Restart()
}

func (r *BlockStudyCLI) saveScore(ctx context.Context) {
	if r.scores == nil {
		return
	}
	set := r.session.Set()
	if set == nil {
		return
	}
	stats := r.session.Stats()
	record := scoreboard.Record{
		SetID:           set.ID,
		Score:           stats.Score,
		CorrectAnswers:  stats.CorrectAnswers,
		TotalAnswers:    stats.TotalAnswers,
		LinesCleared:    stats.LinesCleared,
		DurationSeconds: int(stats.Duration().Seconds()),
		PlayedAt:        stats.EndedAt,
	}
	if err := r.scores.Save(ctx, &record); err != nil {
		slog.Default().Warn("failed to save the score", "setID", set.ID, "error", err)
		fmt.Fprintln(r.stdoutWriter, "The score could not be saved.")
	}
}

func (r *BlockStudyCLI) printStats() {
	stats := r.session.Stats()
	fmt.Fprintf(r.stdoutWriter, "Score: %d  Correct: %d/%d  Lines cleared: %d\n",
		stats.Score, stats.CorrectAnswers, stats.TotalAnswers, stats.LinesCleared)
}

func (r *BlockStudyCLI) printBoard() {
	grid := r.session.Grid()
	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintf(r.stdoutWriter, "Score: %d\n", r.session.Score())
	fmt.Fprint(r.stdoutWriter, "   ")
	for col := 1; col <= puzzle.Size; col++ {
		fmt.Fprintf(r.stdoutWriter, " %d", col)
	}
	fmt.Fprintln(r.stdoutWriter)
	for row := 0; row < puzzle.Size; row++ {
		fmt.Fprintf(r.stdoutWriter, " %d ", row+1)
		for col := 0; col < puzzle.Size; col++ {
			if grid.Occupied(row, col) {
				fmt.Fprint(r.stdoutWriter, " "+r.block.Sprint("#"))
			} else {
				fmt.Fprint(r.stdoutWriter, " .")
			}
		}
		fmt.Fprintln(r.stdoutWriter)
	}
}

func (r *BlockStudyCLI) printOffers() {
	for _, offer := range r.session.Offers() {
		fmt.Fprintf(r.stdoutWriter, "[%d] %s\n", offer.ID, offer.Shape.Name())
		for _, line := range strings.Split(offer.Shape.String(), "\n") {
			fmt.Fprintf(r.stdoutWriter, "    %s\n", r.block.Sprint(line))
		}
	}
}

var errPlacementFormat = errors.New("type the block number, a row and a column, e.g. 1 3 5")

// parsePlacement reads "block row column" with 1-based rows and columns.
func parsePlacement(input string) (int, int, int, error) {
	fields := strings.Fields(input)
	if len(fields) != 3 {
		return 0, 0, 0, errPlacementFormat
	}
	var values [3]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return 0, 0, 0, errPlacementFormat
		}
		values[i] = v
	}
	return values[0], values[1], values[2], nil
}
