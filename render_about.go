package main

import (
	_ "embed"
	"html/template"
	"net/http"
	"time"

	"github.com/watershedhub/web/i18n"
)

//go:embed content/about.md
var aboutMarkdown []byte

const aboutCacheKey = "rendered:about"

func renderAbout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "public, s-maxage=3600, max-age=3600")

	ctx := r.Context()

	var body template.HTML
	if b, ok := cache.Get(aboutCacheKey); ok {
		body = template.HTML(b)
	} else {
		body = renderMarkdown(aboutMarkdown)
		cache.SetWithTTL(aboutCacheKey, []byte(body), time.Hour)
	}

	err := AboutPageTemplate.Render(w, &AboutPage{
		HeadPartial: HeadPartial{
			Lang:        i18n.LanguageFromContext(ctx),
			Title:       t(ctx, "about.title") + " — " + t(ctx, "site.name"),
			Description: t(ctx, "site.tagline"),
		},
		NavbarPartial: navbarPartial(ctx),
		FooterPartial: footerPartial(ctx),

		Content: body,
	})
	if err != nil {
		log.Warn().Err(err).Msg("error rendering tmpl")
		LoggedError(err, "about page template rendering", r, nil)
	}
}
