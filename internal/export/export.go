// Package export renders flashcard sets into printable markdown and PDF files.
package export

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/mandolyte/mdtopdf"

	"github.com/at-ishikawa/flashgrid/internal/flashcard"
	"github.com/at-ishikawa/flashgrid/internal/locale"
)

const templateName = "flashcard-set.md.go.tmpl"

//go:embed templates/flashcard-set.md.go.tmpl
var fallbackSetTemplate string

type setTemplate struct {
	Title       string
	Description string
	Languages   string
	Cards       []flashcard.Flashcard
}

var funcMap = template.FuncMap{
	"inc": func(i int) int { return i + 1 },
	// keeps a value inside a single markdown table cell
	"cell": func(s string) string {
		s = strings.ReplaceAll(s, "|", `\|`)
		return strings.Join(strings.Fields(s), " ")
	},
}

// ParseTemplate reads the template at templatePath, falling back to the
// embedded one when the path is empty, missing, or does not parse.
func ParseTemplate(templatePath string) (*template.Template, error) {
	if templatePath != "" {
		if _, err := os.Stat(templatePath); err == nil {
			tmpl, err := template.New(filepath.Base(templatePath)).
				Funcs(funcMap).
				ParseFiles(templatePath)
			if err == nil {
				return tmpl, nil
			}
			slog.Default().Warn("failed to parse a template, using the embedded one",
				slog.String("templatePath", templatePath),
				slog.Any("error", err),
			)
		}
	}

	tmpl, err := template.New(templateName).
		Funcs(funcMap).
		Parse(fallbackSetTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded template: %w", err)
	}
	return tmpl, nil
}

// RenderMarkdown writes set as a markdown document with one table row per card.
func RenderMarkdown(output io.Writer, templatePath string, set flashcard.FlashcardSet) error {
	tmpl, err := ParseTemplate(templatePath)
	if err != nil {
		return fmt.Errorf("ParseTemplate() > %w", err)
	}

	data := setTemplate{
		Title:       set.Title,
		Description: set.Description,
		Languages:   languages(set.Cards),
		Cards:       set.Cards,
	}
	if err := tmpl.Execute(output, data); err != nil {
		return fmt.Errorf("tmpl.Execute() > %w", err)
	}
	return nil
}

// languages describes the card languages as "french → english" when every
// card shares one pair, and "" otherwise.
func languages(cards []flashcard.Flashcard) string {
	if len(cards) == 0 {
		return ""
	}
	question, answer := cards[0].QuestionLanguage, cards[0].AnswerLanguage
	for _, card := range cards[1:] {
		if card.QuestionLanguage != question || card.AnswerLanguage != answer {
			return ""
		}
	}
	if question == "" {
		question = locale.None
	}
	if answer == "" {
		answer = locale.None
	}
	if question == locale.None && answer == locale.None {
		return ""
	}
	return fmt.Sprintf("%s → %s", question, answer)
}

// WriteFiles renders set into <dir>/<set id>.md and converts it into
// <dir>/<set id>.pdf, returning the absolute PDF path.
func WriteFiles(dir, templatePath string, set flashcard.FlashcardSet) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
	}

	var buf bytes.Buffer
	if err := RenderMarkdown(&buf, templatePath, set); err != nil {
		return "", fmt.Errorf("RenderMarkdown() > %w", err)
	}

	markdownPath := filepath.Join(dir, set.ID+".md")
	if err := os.WriteFile(markdownPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("os.WriteFile(%s) > %w", markdownPath, err)
	}

	pdfPath := filepath.Join(dir, set.ID+".pdf")
	if err := WritePDF(pdfPath, buf.Bytes()); err != nil {
		return "", err
	}

	absPath, err := filepath.Abs(pdfPath)
	if err != nil {
		return pdfPath, nil
	}
	return absPath, nil
}

// WritePDF converts markdown content into a PDF at pdfPath.
func WritePDF(pdfPath string, markdown []byte) error {
	renderer := mdtopdf.NewPdfRenderer("P", "A4", pdfPath, "", nil, mdtopdf.LIGHT)
	if err := renderer.Process(markdown); err != nil {
		return fmt.Errorf("renderer.Process() > %w", err)
	}
	return nil
}
