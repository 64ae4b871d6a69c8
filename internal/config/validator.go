package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// rule is a validation tag only flashgrid configs use.
type rule struct {
	tag     string
	message string
	check   validator.Func
}

var rules = []rule{
	{tag: "file", message: "{0} must be an existing and readable file", check: isFileReadable},
	{tag: "speech_command", message: "{0} must pass the {text} placeholder to the command", check: hasTextPlaceholder},
}

// configValidator checks a loaded Config and reports every problem with its
// config key, e.g. "storage.driver must be one of [yaml mysql]".
type configValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func newConfigValidator() (*configValidator, error) {
	enLocale := en.New()
	trans, _ := ut.New(enLocale, enLocale).GetTranslator("en")

	validate := validator.New()
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("enTranslations.RegisterDefaultTranslations() > %w", err)
	}
	// config keys instead of Go field names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
	})

	for _, r := range rules {
		if err := validate.RegisterValidation(r.tag, r.check); err != nil {
			return nil, fmt.Errorf("RegisterValidation(%s) > %w", r.tag, err)
		}
		message := r.message
		if err := validate.RegisterTranslation(r.tag, trans, func(t ut.Translator) error {
			return t.Add(r.tag, message, true)
		}, func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(fe.Tag(), fe.Field())
			return msg
		}); err != nil {
			return nil, fmt.Errorf("RegisterTranslation(%s) > %w", r.tag, err)
		}
	}

	return &configValidator{validate: validate, translator: trans}, nil
}

func (v *configValidator) Validate(cfg *Config) error {
	err := v.validate.Struct(cfg)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("validate.Struct() > %w", err)
	}

	messages := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		messages = append(messages, v.message(fe))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(messages, ", "))
}

// message replaces the leading field name of a translation with the full key.
func (v *configValidator) message(fe validator.FieldError) string {
	msg := fe.Translate(v.translator)
	key := strings.TrimPrefix(fe.Namespace(), "Config.")
	if rest, ok := strings.CutPrefix(msg, fe.Field()); ok {
		return key + rest
	}
	return msg
}

func isFileReadable(fl validator.FieldLevel) bool {
	path := fl.Field().String()
	if path == "" {
		return false
	}

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}

	file, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = file.Close()
	return true
}

// hasTextPlaceholder reports whether some argument of a speech command
// receives the text to read.
func hasTextPlaceholder(fl validator.FieldLevel) bool {
	args, ok := fl.Field().Interface().([]string)
	if !ok {
		return false
	}
	for _, arg := range args {
		if strings.Contains(arg, "{text}") {
			return true
		}
	}
	return false
}
