package main

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/watershedhub/web/i18n"
)

var langRegex = regexp.MustCompile("^[a-z]{2}$")

func languageMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw string
		if v := r.URL.Query().Get("lang"); v != "" {
			raw = v
			http.SetCookie(w, &http.Cookie{Name: "lang", Value: raw, Path: "/", MaxAge: 365 * 24 * 60 * 60})
		} else if c, err := r.Cookie("lang"); err == nil && c.Value != "" {
			raw = c.Value
		}
		if raw == "" {
			if al := r.Header.Get("Accept-Language"); al != "" {
				raw = strings.SplitN(strings.Split(al, ",")[0], ";", 2)[0]
			}
		}
		if raw == "" {
			raw = s.DefaultLanguage
		}

		lang := strings.ToLower(raw)
		if i := strings.Index(lang, "-"); i != -1 {
			lang = lang[:i]
		}
		if !langRegex.MatchString(lang) {
			lang = s.DefaultLanguage
		}

		ctx := i18n.WithLanguage(r.Context(), lang)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
