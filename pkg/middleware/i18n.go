package middleware

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/10021987z/dzilo-sub003/pkg/intl"
)

func supportedTags() []language.Tag {
	tags := make([]language.Tag, len(intl.SupportedLanguages))
	for i, lang := range intl.SupportedLanguages {
		tags[i] = lang.Tag
	}
	return tags
}

func matchLocale(r *http.Request, supported []language.Tag) language.Tag {
	candidates, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil || len(candidates) == 0 {
		candidates = []language.Tag{language.English}
	}
	matcher := language.NewMatcher(supported)
	_, idx, _ := matcher.Match(candidates...)
	return supported[idx]
}

// ProvideLocalizer resolves the request locale from Accept-Language and
// stores a matching localizer in the request context.
func ProvideLocalizer() mux.MiddlewareFunc {
	bundle := intl.Bundle()
	supported := supportedTags()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			locale := matchLocale(r, supported)
			ctx := intl.WithLocalizer(
				r.Context(),
				i18n.NewLocalizer(bundle, locale.String()),
			)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
