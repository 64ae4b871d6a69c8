package study

import (
	"strings"

	"golang.org/x/text/cases"
)

// Matches reports whether the user's answer equals the expected text after
// trimming surrounding whitespace and case folding both sides.
func Matches(userInput, expected string) bool {
	return normalize(userInput) == normalize(expected)
}

func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}
