// Package pronunciation reads card text aloud through an external
// text-to-speech command.
package pronunciation

import (
	"regexp"

	"golang.org/x/text/language"

	"github.com/at-ishikawa/flashgrid/internal/locale"
)

var (
	americanEnglish = language.MustParse("en-US")

	speechCodes = map[locale.Language]language.Tag{
		locale.None:       americanEnglish,
		locale.English:    americanEnglish,
		locale.French:     language.MustParse("fr-FR"),
		locale.Spanish:    language.MustParse("es-ES"),
		locale.German:     language.MustParse("de-DE"),
		locale.Vietnamese: language.MustParse("vi-VN"),
		locale.Chinese:    language.MustParse("zh-CN"),
		locale.Japanese:   language.MustParse("ja-JP"),
		locale.Korean:     language.MustParse("ko-KR"),
	}
)

// SpeechCode returns the voice tag for a card language. Unknown and empty
// languages use American English.
func SpeechCode(l locale.Language) language.Tag {
	if tag, ok := speechCodes[l]; ok {
		return tag
	}
	return americanEnglish
}

type detector struct {
	tag      language.Tag
	patterns []*regexp.Regexp
}

// Checked in order; the first match wins.
var detectors = []detector{
	{
		tag: speechCodes[locale.French],
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)[àâäæçéèêëïîôùûü]`),
			regexp.MustCompile(`(?i)\b(l|d|j|m|t|s|c|n|qu)'`),
			regexp.MustCompile(`(?i)\b(le|la|les|un|une|des|de|du|au|aux|ce|cette|mon|ma|mes|ton|ta|tes|son|sa|ses|je|tu|il|elle|nous|vous|ils|elles|avoir|faire|aller|venir|pouvoir|vouloir|devoir|savoir|voir|prendre|mettre|dire|donner|porter|parler|manger|boire|avec|dans|pour|sur|sous|entre|chez|sans|comme|mais|ou|et|donc|car|ni|or|quel)\b`),
		},
	},
	{
		tag:      speechCodes[locale.Spanish],
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)[áéíóúñü¿¡]`)},
	},
	{
		tag:      speechCodes[locale.German],
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)[äöüß]`)},
	},
	{
		tag:      speechCodes[locale.Japanese],
		patterns: []*regexp.Regexp{regexp.MustCompile(`[\x{3040}-\x{309F}\x{30A0}-\x{30FF}\x{31F0}-\x{31FF}\x{FF65}-\x{FF9F}]`)},
	},
	{
		tag:      speechCodes[locale.Chinese],
		patterns: []*regexp.Regexp{regexp.MustCompile(`[\x{4E00}-\x{9FFF}\x{3400}-\x{4DBF}\x{F900}-\x{FAFF}\x{2E80}-\x{2EFF}]`)},
	},
	{
		tag:      speechCodes[locale.Korean],
		patterns: []*regexp.Regexp{regexp.MustCompile(`[\x{AC00}-\x{D7AF}]`)},
	},
	{
		tag:      speechCodes[locale.Vietnamese],
		patterns: []*regexp.Regexp{regexp.MustCompile(`(?i)[àáảãạăằắẳẵặâầấẩẫậèéẻẽẹêềếểễệìíỉĩịòóỏõọôồốổỗộơờớởỡợùúủũụưừứửữựỳýỷỹỵđ]`)},
	},
}

// DetectSpeechCode guesses the voice for text from its accents, scripts and
// common French words, falling back to American English.
func DetectSpeechCode(text string) language.Tag {
	for _, d := range detectors {
		for _, pattern := range d.patterns {
			if pattern.MatchString(text) {
				return d.tag
			}
		}
	}
	return americanEnglish
}

// ResolveSpeechCode uses the card language when one is set and detects it
// from the text otherwise.
func ResolveSpeechCode(text string, l locale.Language) language.Tag {
	if l != "" && l != locale.None {
		return SpeechCode(l)
	}
	return DetectSpeechCode(text)
}
