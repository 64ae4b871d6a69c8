package cli

import (
	"bufio"
	"bytes"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/locale"
)

// immediateScheduler runs delayed transitions right away on their own goroutine.
type immediateScheduler struct {
	now time.Time
}

func (s immediateScheduler) AfterFunc(d time.Duration, f func()) {
	go f()
}

func (s immediateScheduler) Now() time.Time {
	return s.now
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

// scriptIO points the CLI at a scripted stdin and returns its output buffer.
func scriptIO(t *testing.T, cli *InteractiveStudyCLI, input string) *bytes.Buffer {
	t.Helper()
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	var buf bytes.Buffer
	cli.stdinReader = bufio.NewReader(strings.NewReader(input))
	cli.stdoutWriter = &buf
	return &buf
}

func capitalSet() *flashcard.FlashcardSet {
	return &flashcard.FlashcardSet{
		ID:    "capitals",
		Title: "Capitals",
		Cards: []flashcard.Flashcard{
			{ID: "fr", Question: "Paris", Answer: "France", ImageURL: "https://example.com/france.png"},
		},
	}
}

func cafeSet() *flashcard.FlashcardSet {
	return &flashcard.FlashcardSet{
		ID:    "french",
		Title: "French",
		Cards: []flashcard.Flashcard{
			{ID: "1", Question: "café", Answer: "coffee", QuestionLanguage: locale.French, AnswerLanguage: locale.English},
		},
	}
}
