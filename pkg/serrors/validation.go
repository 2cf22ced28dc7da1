package serrors

import (
	"sort"

	"github.com/go-playground/validator/v10"
	"github.com/iota-uz/go-i18n/v2/i18n"
)

// Localizable is anything that can render itself as a user-facing message.
type Localizable interface {
	Localize(l *i18n.Localizer) string
}

// ValidationErrors maps a field path to its violation. An empty map means
// the value is submittable.
type ValidationErrors map[string]Localizable

// FieldError is a single rule violation on one field.
type FieldError struct {
	Field          string
	Rule           string
	Param          string
	FieldLocaleKey string
}

func (e *FieldError) Localize(l *i18n.Localizer) string {
	fieldName := e.Field
	if e.FieldLocaleKey != "" {
		fieldName = l.MustLocalize(&i18n.LocalizeConfig{
			MessageID: e.FieldLocaleKey,
			DefaultMessage: &i18n.Message{
				ID:    e.FieldLocaleKey,
				Other: e.Field,
			},
		})
	}
	messageID := "ValidationErrors." + e.Rule
	return l.MustLocalize(&i18n.LocalizeConfig{
		MessageID: messageID,
		DefaultMessage: &i18n.Message{
			ID:    messageID,
			Other: "{{.Field}} is invalid",
		},
		TemplateData: map[string]string{
			"Field": fieldName,
			"Param": e.Param,
		},
	})
}

// Message is a pre-rendered violation that needs no localization.
type Message string

func (m Message) Localize(_ *i18n.Localizer) string { return string(m) }

// ProcessValidatorErrors converts go-playground violations into ValidationErrors
// keyed by struct field name. fieldLocaleKey maps a field name to its label
// message id; an empty result keeps the raw field name.
func ProcessValidatorErrors(
	errs validator.ValidationErrors,
	fieldLocaleKey func(field string) string,
) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, err := range errs {
		localeKey := ""
		if fieldLocaleKey != nil {
			localeKey = fieldLocaleKey(err.Field())
		}
		out[err.Field()] = &FieldError{
			Field:          err.Field(),
			Rule:           err.Tag(),
			Param:          err.Param(),
			FieldLocaleKey: localeKey,
		}
	}
	return out
}

// LocalizeValidationErrors renders every violation with the given localizer.
func LocalizeValidationErrors(ve ValidationErrors, l *i18n.Localizer) map[string]string {
	out := make(map[string]string, len(ve))
	for field, err := range ve {
		out[field] = err.Localize(l)
	}
	return out
}

// Fields returns the violated field paths in deterministic order.
func (ve ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(ve))
	for f := range ve {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func (ve ValidationErrors) Empty() bool { return len(ve) == 0 }

// Merge copies other's entries into ve, keeping existing entries on conflict
// so the first recorded violation for a field wins.
func (ve ValidationErrors) Merge(other ValidationErrors) {
	for field, err := range other {
		if _, ok := ve[field]; !ok {
			ve[field] = err
		}
	}
}
