// Package cli runs the study sessions as interactive terminal programs.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/at-ishikawa/flashgrid/internal/locale"
	"github.com/at-ishikawa/flashgrid/internal/pronunciation"
)

var errEnd = errors.New("end")

const (
	commandQuit       = ":q"
	commandRestart    = ":r"
	commandSay        = ":say"
	commandCharacters = ":chars"
)

// InteractiveStudyCLI contains shared logic for interactive study CLIs
type InteractiveStudyCLI struct {
	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	speaker      pronunciation.Speaker
	bold         *color.Color
	italic       *color.Color
	correct      *color.Color
	wrong        *color.Color
	block        *color.Color
}

func newInteractiveStudyCLI(speaker pronunciation.Speaker) *InteractiveStudyCLI {
	if speaker == nil {
		speaker = pronunciation.NopSpeaker{}
	}
	return &InteractiveStudyCLI{
		stdinReader:  bufio.NewReader(os.Stdin),
		stdoutWriter: os.Stdout,
		speaker:      speaker,
		bold:         color.New(color.Bold),
		italic:       color.New(color.Italic),
		correct:      color.New(color.FgGreen),
		wrong:        color.New(color.FgRed),
		block:        color.New(color.FgGreen, color.Bold),
	}
}

//go:generate mockgen -source=interactive_study_cli.go -destination=../mocks/cli/mock_session.go -package=mock_cli

type Session interface {
	Session(ctx context.Context) error
}

// Run calls session.Session until it reports the end, fails, or an interrupt
// signal arrives.
func (cli *InteractiveStudyCLI) Run(ctx context.Context, session Session) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := runSessions(ctx, session)
	select {
	case <-ctx.Done():
		fmt.Fprintln(cli.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// runSessions calls session.Session in the background until it ends or ctx
// is done. The first error is buffered so the worker never blocks on a
// reader that already left after an interrupt.
func runSessions(ctx context.Context, session Session) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := session.Session(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	return errCh
}

// readLine returns the next input line without its line break. The end of
// input finishes the session.
func (cli *InteractiveStudyCLI) readLine() (string, error) {
	line, err := cli.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line == "" {
			return "", errEnd
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("error reading input: %w", err)
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// expand replaces {n} placeholders with the language's special characters.
func (cli *InteractiveStudyCLI) expand(input string, lang locale.Language) string {
	expanded, err := locale.ExpandPlaceholders(input, lang)
	if err != nil {
		fmt.Fprintf(cli.stdoutWriter, "%v\n", err)
	}
	return expanded
}

func (cli *InteractiveStudyCLI) printCharacters(lang locale.Language) {
	chars := locale.CharactersFor(lang)
	if len(chars) == 0 {
		fmt.Fprintf(cli.stdoutWriter, "No special characters for %s\n", lang)
		return
	}
	var sb strings.Builder
	for i, char := range chars {
		if i > 0 {
			sb.WriteString("  ")
		}
		fmt.Fprintf(&sb, "{%d}%s", i+1, char)
	}
	fmt.Fprintln(cli.stdoutWriter, sb.String())
}

func (cli *InteractiveStudyCLI) say(ctx context.Context, text string, lang locale.Language) {
	if err := cli.speaker.Speak(ctx, text, lang); err != nil {
		fmt.Fprintf(cli.stdoutWriter, "Could not read it aloud: %v\n", err)
	}
}

func (cli *InteractiveStudyCLI) printResult(correct bool, expected string) {
	if correct {
		fmt.Fprint(cli.stdoutWriter, "✅ ")
		_, _ = cli.correct.Fprintln(cli.stdoutWriter, "It's correct.")
		return
	}
	fmt.Fprint(cli.stdoutWriter, "❌ ")
	_, _ = cli.wrong.Fprintf(cli.stdoutWriter, "It's wrong. The answer is %s\n", cli.italic.Sprintf("%q", expected))
}
