// Package locale holds the language tags cards are labelled with and the
// special-character palette offered while typing answers.
package locale

import (
	"fmt"
	"regexp"
	"strconv"
	"unicode/utf8"
)

type Language string

const (
	None       Language = "none"
	English    Language = "english"
	Spanish    Language = "spanish"
	French     Language = "french"
	German     Language = "german"
	Japanese   Language = "japanese"
	Korean     Language = "korean"
	Vietnamese Language = "vietnamese"
	Chinese    Language = "chinese"
)

// Languages lists every supported tag in display order.
var Languages = []Language{None, English, Spanish, French, German, Japanese, Korean, Vietnamese, Chinese}

// IsValid reports whether l is one of the supported tags. The empty value counts as None.
func (l Language) IsValid() bool {
	if l == "" {
		return true
	}
	for _, known := range Languages {
		if l == known {
			return true
		}
	}
	return false
}

var palette = map[Language][]string{
	None:       {},
	English:    {},
	Chinese:    {},
	Japanese:   {},
	Korean:     {},
	French:     {"à", "â", "ä", "æ", "ç", "é", "è", "ê", "ë", "ï", "î", "ô", "ù", "û", "ü", "œ"},
	Vietnamese: {"à", "á", "ả", "ã", "ạ", "ă", "ằ", "ắ", "ẳ", "ẵ", "ặ", "â", "ầ", "ấ", "ẩ", "ẫ", "ậ", "đ", "è", "é", "ẻ", "ẽ", "ẹ", "ê", "ề", "ế", "ể", "ễ", "ệ"},
	Spanish:    {"á", "é", "í", "ó", "ú", "ñ", "ü", "¿", "¡", "Á", "É", "Í", "Ó", "Ú", "Ñ", "Ü"},
	German:     {"ä", "ö", "ü", "ß", "Ä", "Ö", "Ü"},
}

// CharactersFor returns the special characters for a language, in palette order.
// Unknown tags have no characters.
func CharactersFor(l Language) []string {
	chars := palette[l]
	result := make([]string, len(chars))
	copy(result, chars)
	return result
}

// Insert puts char into text at the rune offset cursor and returns the new
// text together with the cursor placed right after the inserted character.
// Out of range cursors are clamped.
func Insert(text string, cursor int, char string) (string, int) {
	runes := []rune(text)
	cursor = max(0, min(cursor, len(runes)))
	inserted := []rune(char)

	result := make([]rune, 0, len(runes)+len(inserted))
	result = append(result, runes[:cursor]...)
	result = append(result, inserted...)
	result = append(result, runes[cursor:]...)
	return string(result), cursor + len(inserted)
}

var placeholderPattern = regexp.MustCompile(`\{(\d+)\}`)

// ExpandPlaceholders replaces {n} tokens with the n-th (1-based) palette
// character of the language. Tokens without a matching character are kept
// as typed and reported in the returned error.
func ExpandPlaceholders(text string, l Language) (string, error) {
	chars := palette[l]
	var (
		expanded  string
		last      int
		expandErr error
	)
	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		expanded += text[last:m[0]]
		last = m[1]

		n, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil || n < 1 || n > len(chars) {
			if expandErr == nil {
				expandErr = fmt.Errorf("no character %s for language %q", text[m[0]:m[1]], l)
			}
			expanded += text[m[0]:m[1]]
			continue
		}
		expanded, _ = Insert(expanded, utf8.RuneCountInString(expanded), chars[n-1])
	}
	return expanded + text[last:], expandErr
}
