package main

import (
	"net/http"

	"github.com/watershedhub/web/i18n"
)

func renderHomepage(w http.ResponseWriter, r *http.Request) {
	// the signup block depends on the session, so no shared caching
	w.Header().Set("Cache-Control", "private, max-age=0")

	ctx := r.Context()
	user := userFromContext(ctx)

	var (
		banner     Banner
		showBanner bool
	)
	if msg, ok := loadSiteMessage(); ok && msg.CanShowMessage {
		showBanner = true
		banner = Banner{
			Style: msg.BannerStyle(),
			Text:  stripTags(msg.Content),
		}
	}

	pagesRendered.Add(1)

	err := HomePageTemplate.Render(w, &HomePage{
		HeadPartial: HeadPartial{
			Lang:        i18n.LanguageFromContext(ctx),
			Title:       t(ctx, "site.name") + " — " + t(ctx, "site.tagline"),
			Description: t(ctx, "site.tagline"),
		},
		NavbarPartial: navbarPartial(ctx),
		FooterPartial: footerPartial(ctx),

		ShowBanner:    showBanner,
		Banner:        banner,
		ShowSignupCTA: user.IsAnonymous,
		SignupURL:     s.OAuthLoginURL,

		Copy:     homeCopy(ctx),
		Carousel: carouselSlides(ctx),
		Steps:    howItWorksSteps(ctx),
		Features: featureChecklist(ctx),
		Devices:  deviceList(ctx),
	})
	if err != nil {
		log.Warn().Err(err).Msg("error rendering homepage")
		LoggedError(err, "homepage template rendering", r, nil)
	}
}
