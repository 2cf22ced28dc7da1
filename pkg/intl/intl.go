package intl

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"sync"

	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

type SupportedLanguage struct {
	Code        string
	VerboseName string
	Tag         language.Tag
}

var SupportedLanguages = []SupportedLanguage{
	{
		Code:        "en",
		VerboseName: "English",
		Tag:         language.English,
	},
	{
		Code:        "fr",
		VerboseName: "Français",
		Tag:         language.French,
	},
}

var ErrNoLocalizer = errors.New("localizer not found in context")

type localizerKey struct{}

//go:embed locales/*.json
var localeFS embed.FS

var bundle = sync.OnceValue(func() *i18n.Bundle {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("json", json.Unmarshal)
	for _, lang := range SupportedLanguages {
		if _, err := b.LoadMessageFileFS(localeFS, "locales/"+lang.Code+".json"); err != nil {
			panic(err)
		}
	}
	return b
})

// Bundle returns the shared message bundle with all locale files loaded.
func Bundle() *i18n.Bundle {
	return bundle()
}

// NewLocalizer returns a localizer preferring the given language codes,
// falling back to English.
func NewLocalizer(langs ...string) *i18n.Localizer {
	return i18n.NewLocalizer(Bundle(), append(langs, "en")...)
}

// WithLocalizer stores the localizer in the context.
func WithLocalizer(ctx context.Context, l *i18n.Localizer) context.Context {
	return context.WithValue(ctx, localizerKey{}, l)
}

// UseLocalizer retrieves the localizer from the context.
func UseLocalizer(ctx context.Context) (*i18n.Localizer, bool) {
	l, ok := ctx.Value(localizerKey{}).(*i18n.Localizer)
	return l, ok
}

// MustUseLocalizer returns the context localizer or the English default.
func MustUseLocalizer(ctx context.Context) *i18n.Localizer {
	if l, ok := UseLocalizer(ctx); ok {
		return l
	}
	return NewLocalizer("en")
}
