package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/at-ishikawa/flashgrid/internal/pronunciation"
	"github.com/at-ishikawa/flashgrid/internal/session"
)

const (
	commandFlip       = ":f"
	commandNext       = ":n"
	commandPrevious   = ":p"
	commandKnown      = ":k"
	commandDontKnow   = ":d"
	commandToggle     = ":t"
	commandSummary    = ":summary"
	commandHelpFlip   = ":h"
	flipCommandsUsage = ":f flip, :n next, :p previous, :k known, :d don't know, :t switch direction, " +
		":say read aloud, :chars special characters, :summary finish, :r restart, :q quit"
)

// FlipStudyCLI reviews a set card by card in the terminal.
type FlipStudyCLI struct {
	*InteractiveStudyCLI
	session *session.FlipSession
}

func NewFlipStudyCLI(flipSession *session.FlipSession, speaker pronunciation.Speaker) *FlipStudyCLI {
	return &FlipStudyCLI{
		InteractiveStudyCLI: newInteractiveStudyCLI(speaker),
		session:             flipSession,
	}
}

func (r *FlipStudyCLI) Session(ctx context.Context) error {
	switch state := r.session.State(); state {
	case session.FlipStateNotLoaded:
		return session.ErrNoSet
	case session.FlipStateNoCards:
		fmt.Fprintln(r.stdoutWriter, "There are no cards in this set.")
		return errEnd
	case session.FlipStateSummary:
		return r.finish()
	case session.FlipStateReviewing:
		return r.review(ctx)
	default:
		return fmt.Errorf("unexpected flip session state %s", state)
	}
}

func (r *FlipStudyCLI) review(ctx context.Context) error {
	r.printCard()
	if r.session.Flipped() {
		_, _ = r.bold.Fprint(r.stdoutWriter, "Did you know it? (:k / :d) ")
	} else {
		_, _ = r.bold.Fprintf(r.stdoutWriter, "Your answer in %s? ", r.session.ExpectedLanguage())
	}

	input, err := r.readLine()
	if err != nil {
		return err
	}

	switch strings.TrimSpace(input) {
	case "":
		return nil
	case commandQuit:
		r.printSummary(r.session.Summary())
		return errEnd
	case commandRestart:
		return r.session.Restart()
	case commandFlip:
		r.session.Flip()
	case commandNext:
		if !r.session.Next() {
			fmt.Fprintf(r.stdoutWriter, "This is the last card. Type %s to see the summary.\n", commandSummary)
		}
	case commandPrevious:
		if !r.session.Previous() {
			fmt.Fprintln(r.stdoutWriter, "This is the first card.")
		}
	case commandKnown:
		r.mark(r.session.MarkKnown)
	case commandDontKnow:
		r.mark(r.session.MarkDontKnow)
	case commandToggle:
		r.session.ToggleDirection()
	case commandSay:
		text, lang := r.session.VisibleSide()
		r.say(ctx, text, lang)
	case commandCharacters:
		r.printCharacters(r.session.ExpectedLanguage())
	case commandSummary:
		if _, ok := r.session.ViewSummary(); !ok {
			fmt.Fprintln(r.stdoutWriter, "The summary is available on the last card.")
		}
	case commandHelpFlip:
		fmt.Fprintln(r.stdoutWriter, flipCommandsUsage)
	default:
		r.submit(input)
	}
	return nil
}

func (r *FlipStudyCLI) submit(input string) {
	if r.session.Flipped() {
		fmt.Fprintf(r.stdoutWriter, "The card is flipped. Type %s to flip it back.\n", commandFlip)
		return
	}
	result := r.session.Submit(r.expand(input, r.session.ExpectedLanguage()))
	if result.Accepted {
		r.printResult(result.Correct, result.Expected)
	}
}

func (r *FlipStudyCLI) mark(fn func() bool) {
	if !fn() {
		fmt.Fprintf(r.stdoutWriter, "Flip the card with %s first.\n", commandFlip)
	}
}

func (r *FlipStudyCLI) printCard() {
	position, total := r.session.Position()
	text, lang := r.session.VisibleSide()
	side := "front"
	if r.session.Flipped() {
		side = "back"
	}

	fmt.Fprintln(r.stdoutWriter)
	fmt.Fprintf(r.stdoutWriter, "Card %d/%d (%s)\n", position+1, total, side)
	fmt.Fprintf(r.stdoutWriter, "%s [%s]\n", r.bold.Sprint(text), lang)
	if card := r.session.CurrentCard(); card != nil && card.ImageURL != "" {
		fmt.Fprintf(r.stdoutWriter, "Image: %s\n", card.ImageURL)
	}
	if known, rated := r.session.IsKnown(r.session.CurrentIndex()); rated {
		if known {
			_, _ = r.correct.Fprintln(r.stdoutWriter, "Marked as known")
		} else {
			_, _ = r.wrong.Fprintln(r.stdoutWriter, "Marked as not known")
		}
	}
}

func (r *FlipStudyCLI) finish() error {
	r.printSummary(r.session.Summary())
	fmt.Fprintf(r.stdoutWriter, "Type %s to review again or anything else to quit: ", commandRestart)
	input, err := r.readLine()
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) != commandRestart {
		return errEnd
	}
	return r.session.Restart()
}

func (r *FlipStudyCLI) printSummary(summary session.Summary) {
	_, _ = r.bold.Fprintln(r.stdoutWriter, "Summary")
	_, _ = r.correct.Fprintf(r.stdoutWriter, "Known: %d\n", summary.Known)
	_, _ = r.wrong.Fprintf(r.stdoutWriter, "Don't know: %d\n", summary.Unknown)
	fmt.Fprintf(r.stdoutWriter, "Not rated: %d\n", summary.Unrated)
	fmt.Fprintf(r.stdoutWriter, "Total: %d\n", summary.Total)
}
