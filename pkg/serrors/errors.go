package serrors

import (
	"fmt"

	"github.com/iota-uz/go-i18n/v2/i18n"
)

// BaseError carries a machine-readable code next to the human message.
type BaseError struct {
	Code      string
	Message   string
	LocaleKey string
}

func NewError(code, message, localeKey string) *BaseError {
	return &BaseError{
		Code:      code,
		Message:   message,
		LocaleKey: localeKey,
	}
}

func (e *BaseError) Error() string {
	return e.Message
}

func (e *BaseError) Localize(l *i18n.Localizer) string {
	if e.LocaleKey == "" {
		return e.Message
	}
	return l.MustLocalize(&i18n.LocalizeConfig{
		MessageID: e.LocaleKey,
		DefaultMessage: &i18n.Message{
			ID:    e.LocaleKey,
			Other: e.Message,
		},
	})
}

var _ error = (*BaseError)(nil)

// Is matches by code so detailed copies still compare equal to their
// sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	return ok && t.Code == e.Code
}

func (e *BaseError) WithDetail(format string, args ...any) *BaseError {
	return &BaseError{
		Code:      e.Code,
		Message:   fmt.Sprintf("%s: %s", e.Message, fmt.Sprintf(format, args...)),
		LocaleKey: e.LocaleKey,
	}
}
