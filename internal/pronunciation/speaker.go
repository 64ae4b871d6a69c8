package pronunciation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/at-ishikawa/flashgrid/internal/locale"
)

//go:generate mockgen -source=speaker.go -destination=../mocks/pronunciation/mock_speaker.go -package=mock_pronunciation

// Speaker reads text aloud. Speak returns once playback has started.
type Speaker interface {
	Speak(ctx context.Context, text string, lang locale.Language) error
}

var ErrNoCommand = errors.New("no speech command configured")

// CommandSpeaker runs an external text-to-speech program such as
// `say -v {voice} {text}` or `espeak-ng -v {voice} {text}`. The {voice}
// and {text} placeholders in each argument are replaced before running.
type CommandSpeaker struct {
	argv []string
	// starts the command; replaced in tests
	start func(cmd *exec.Cmd) error
}

func NewCommandSpeaker(argv []string) *CommandSpeaker {
	return &CommandSpeaker{
		argv:  argv,
		start: startDetached,
	}
}

func (s *CommandSpeaker) Speak(ctx context.Context, text string, lang locale.Language) error {
	if len(s.argv) == 0 {
		return ErrNoCommand
	}
	if strings.TrimSpace(text) == "" {
		return nil
	}

	args := s.Args(text, lang)
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	if err := s.start(cmd); err != nil {
		return fmt.Errorf("cmd.Start(%s) > %w", args[0], err)
	}
	return nil
}

// Args returns the command line for text with the placeholders filled in.
func (s *CommandSpeaker) Args(text string, lang locale.Language) []string {
	voice := ResolveSpeechCode(text, lang).String()
	replacer := strings.NewReplacer("{voice}", voice, "{text}", text)

	args := make([]string, len(s.argv))
	for i, arg := range s.argv {
		args[i] = replacer.Replace(arg)
	}
	return args
}

func startDetached(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		if err := cmd.Wait(); err != nil {
			slog.Default().Debug("speech command failed", "command", cmd.Path, "error", err)
		}
	}()
	return nil
}

// NopSpeaker is used when no speech command is configured.
type NopSpeaker struct{}

func (NopSpeaker) Speak(ctx context.Context, text string, lang locale.Language) error {
	return nil
}
