package flashcard

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/at-ishikawa/flashgrid/internal/locale"
)

// ValidationError is a single problem found in a set.
type ValidationError struct {
	SetID    string
	Location string
	Message  string
}

func (e ValidationError) Error() string {
	location := ""
	if e.Location != "" {
		location = fmt.Sprintf(" (%s)", e.Location)
	}
	return fmt.Sprintf("%s%s: %s", e.SetID, location, e.Message)
}

// Validator checks sets for missing fields, unknown languages and
// duplicated ids.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewValidator() (*Validator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := validate.RegisterValidation("language", isLanguage); err != nil {
		return nil, fmt.Errorf("validate.RegisterValidation(language) > %w", err)
	}
	if err := validate.RegisterTranslation("language", trans, func(ut ut.Translator) error {
		return ut.Add("language", "{0} must be one of {1}", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("language", fe.Field(), languageNames())
		return t
	}); err != nil {
		return nil, fmt.Errorf("validate.RegisterTranslation(language) > %w", err)
	}

	return &Validator{
		validate:   validate,
		translator: trans,
	}, nil
}

func isLanguage(fl validator.FieldLevel) bool {
	return locale.Language(fl.Field().String()).IsValid()
}

func languageNames() string {
	names := make([]string, 0, len(locale.Languages))
	for _, l := range locale.Languages {
		names = append(names, string(l))
	}
	return strings.Join(names, ", ")
}

// Validate returns every problem found in the set. An empty result means
// the set can be studied.
func (v *Validator) Validate(set FlashcardSet) []ValidationError {
	var result []ValidationError

	if err := v.validate.Struct(set); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return append(result, ValidationError{SetID: set.ID, Message: err.Error()})
		}
		for _, e := range validationErrors {
			result = append(result, ValidationError{
				SetID:    set.ID,
				Location: strings.TrimPrefix(e.Namespace(), "FlashcardSet."),
				Message:  e.Translate(v.translator),
			})
		}
	}

	seen := make(map[string]int, len(set.Cards))
	for i, card := range set.Cards {
		if card.ID == "" {
			continue
		}
		if first, ok := seen[card.ID]; ok {
			result = append(result, ValidationError{
				SetID:    set.ID,
				Location: fmt.Sprintf("cards[%d]", i),
				Message:  fmt.Sprintf("card id %q is also used by cards[%d]", card.ID, first),
			})
			continue
		}
		seen[card.ID] = i
	}
	return result
}

// ValidateAll validates every set and also reports set ids used more than once.
func (v *Validator) ValidateAll(sets []FlashcardSet) []ValidationError {
	var result []ValidationError
	seen := make(map[string]bool, len(sets))
	for _, set := range sets {
		if set.ID != "" && seen[set.ID] {
			result = append(result, ValidationError{
				SetID:   set.ID,
				Message: "set id is used by more than one set",
			})
		}
		seen[set.ID] = true
		result = append(result, v.Validate(set)...)
	}
	return result
}
