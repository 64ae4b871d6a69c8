// Package translation suggests answers for a new card by translating its
// question to English and looking the result up in a dictionary.
package translation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"resty.dev/v3"

	"github.com/at-ishikawa/flashgrid/internal/locale"
)

const (
	DefaultTranslateBaseURL  = "https://translate.googleapis.com"
	DefaultDictionaryBaseURL = "https://api.dictionaryapi.dev"

	MaxSuggestions = 3
)

var translateCodes = map[locale.Language]string{
	locale.French:     "fr",
	locale.Spanish:    "es",
	locale.German:     "de",
	locale.Vietnamese: "vi",
	locale.Chinese:    "zh",
	locale.Japanese:   "ja",
	locale.Korean:     "ko",
}

type Options struct {
	TranslateBaseURL  string
	DictionaryBaseURL string
	RetryAttempts     uint
	RetryDelay        time.Duration
}

type Client struct {
	translateClient  *resty.Client
	dictionaryClient *resty.Client
	maxRetryAttempts uint
	retryDelay       time.Duration
}

func NewClient(opts Options) *Client {
	if opts.TranslateBaseURL == "" {
		opts.TranslateBaseURL = DefaultTranslateBaseURL
	}
	if opts.DictionaryBaseURL == "" {
		opts.DictionaryBaseURL = DefaultDictionaryBaseURL
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 100 * time.Millisecond
	}

	translateClient := resty.New()
	translateClient.SetBaseURL(opts.TranslateBaseURL)
	dictionaryClient := resty.New()
	dictionaryClient.SetBaseURL(opts.DictionaryBaseURL)
	dictionaryClient.SetHeader("Accept", "application/json")

	return &Client{
		translateClient:  translateClient,
		dictionaryClient: dictionaryClient,
		maxRetryAttempts: opts.RetryAttempts,
		retryDelay:       opts.RetryDelay,
	}
}

func (client *Client) Close() error {
	if err := client.translateClient.Close(); err != nil {
		return err
	}
	return client.dictionaryClient.Close()
}

// Suggest returns up to three answers for word: its English translation, the
// first English dictionary definition, and that definition translated back
// into the question language. Suggestions are only made for English answers.
// A failed dictionary lookup or back translation is skipped.
func (client *Client) Suggest(ctx context.Context, word string, questionLang, answerLang locale.Language) ([]string, error) {
	word = strings.TrimSpace(word)
	if word == "" || answerLang != locale.English {
		return nil, nil
	}

	translation, err := client.Translate(ctx, word, "auto", "en")
	if err != nil {
		return nil, fmt.Errorf("Translate(%s) > %w", word, err)
	}
	if translation == "" {
		return nil, nil
	}
	suggestions := []string{translation}

	definition, err := client.Define(ctx, translation)
	if err != nil {
		slog.Default().Warn("dictionary lookup failed", "word", translation, "error", err)
		return suggestions, nil
	}
	if definition == "" {
		return suggestions, nil
	}
	if definition != translation {
		suggestions = append(suggestions, definition)
	}

	if questionLang != "" && questionLang != locale.None && questionLang != locale.English {
		target, ok := translateCodes[questionLang]
		if !ok {
			target = "fr"
		}
		backTranslation, err := client.Translate(ctx, definition, "en", target)
		if err != nil {
			slog.Default().Warn("definition translation failed", "target", target, "error", err)
		} else if backTranslation != "" {
			suggestions = append(suggestions, backTranslation)
		}
	}

	if len(suggestions) > MaxSuggestions {
		suggestions = suggestions[:MaxSuggestions]
	}
	return suggestions, nil
}

// Translate translates text from source to target. source may be "auto".
func (client *Client) Translate(ctx context.Context, text, source, target string) (string, error) {
	var result string
	err := client.withRetry(ctx, func() error {
		response, err := client.translateClient.R().
			SetContext(ctx).
			SetQueryParams(map[string]string{
				"client": "gtx",
				"sl":     source,
				"tl":     target,
				"dt":     "t",
				"q":      text,
			}).
			Get("/translate_a/single")
		if err != nil {
			return fmt.Errorf("translateClient.Get > %w", err)
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}

		translated, err := parseTranslation(response.String())
		if err != nil {
			return err
		}
		result = translated
		return nil
	})
	return result, err
}

// parseTranslation joins the translated segments of a response such as
// [[["Hello ","Bonjour ",null],["world","monde",null]],null,"fr"].
func parseTranslation(body string) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal([]byte(body), &top); err != nil {
		return "", fmt.Errorf("json.Unmarshal(translation) > %w", err)
	}
	if len(top) == 0 {
		return "", nil
	}

	var segments []json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		// null when nothing could be translated
		return "", nil
	}

	var builder strings.Builder
	for _, segment := range segments {
		var parts []json.RawMessage
		if err := json.Unmarshal(segment, &parts); err != nil || len(parts) == 0 {
			continue
		}
		var text string
		if err := json.Unmarshal(parts[0], &text); err != nil {
			continue
		}
		builder.WriteString(text)
	}
	return strings.TrimSpace(builder.String()), nil
}

type dictionaryEntry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// Define returns the first English definition of word, or "" when the
// dictionary does not know it.
func (client *Client) Define(ctx context.Context, word string) (string, error) {
	var result string
	err := client.withRetry(ctx, func() error {
		response, err := client.dictionaryClient.R().
			SetContext(ctx).
			SetPathParam("word", word).
			SetResult(&[]dictionaryEntry{}).
			Get("/api/v2/entries/en/{word}")
		if err != nil {
			return fmt.Errorf("dictionaryClient.Get > %w", err)
		}
		if response.StatusCode() == http.StatusNotFound {
			result = ""
			return nil
		}
		if response.IsError() {
			return fmt.Errorf("response error %d: %s", response.StatusCode(), response.String())
		}

		entries, ok := response.Result().(*[]dictionaryEntry)
		if !ok || entries == nil {
			return fmt.Errorf("unexpected dictionary response: %s", response.String())
		}
		result = firstDefinition(*entries)
		return nil
	})
	return result, err
}

func firstDefinition(entries []dictionaryEntry) string {
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, definition := range meaning.Definitions {
				if definition.Definition != "" {
					return definition.Definition
				}
			}
		}
	}
	return ""
}

func (client *Client) withRetry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if err != nil && !isRetryableError(err) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(client.maxRetryAttempts+1),
		retry.Delay(client.retryDelay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}

// isRetryableError reports whether err is worth another attempt.
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	for _, retryable := range []string{
		"connection refused",
		"i/o timeout",
		"response error 5",
		"response error 429",
	} {
		if strings.Contains(errStr, retryable) {
			return true
		}
	}
	return false
}
