package main

import (
	"context"
	"time"
)

// Static landing content. Copy lives in the locale files; this file only
// pins the structure: which slides, steps and icons exist and in what order.

func navbarPartial(ctx context.Context) NavbarPartial {
	return NavbarPartial{
		SiteName: t(ctx, "site.name"),
		Discover: t(ctx, "nav.discover"),
		About:    t(ctx, "nav.about"),
		SignIn:   t(ctx, "nav.signin"),
	}
}

func footerPartial(ctx context.Context) FooterPartial {
	return FooterPartial{
		Copyright: tWithData(ctx, "footer.copyright", map[string]any{
			"Year": time.Now().Year(),
		}),
	}
}

func homeCopy(ctx context.Context) HomeCopy {
	return HomeCopy{
		HeroTitle:      t(ctx, "home.hero.title"),
		HeroSubtitle:   t(ctx, "home.hero.subtitle"),
		SignupAction:   t(ctx, "home.hero.signup"),
		BannerClose:    t(ctx, "home.banner.close"),
		HowTitle:       t(ctx, "home.how.title"),
		FeaturesTitle:  t(ctx, "home.features.title"),
		DevicesTitle:   t(ctx, "home.devices.title"),
		DevicesCaption: t(ctx, "home.devices.caption"),
	}
}

func carouselSlides(ctx context.Context) []CarouselSlide {
	return []CarouselSlide{
		{
			Image:   "img/carousel-share.svg",
			Title:   t(ctx, "home.carousel.share.title"),
			Caption: t(ctx, "home.carousel.share.caption"),
		},
		{
			Image:   "img/carousel-collaborate.svg",
			Title:   t(ctx, "home.carousel.collaborate.title"),
			Caption: t(ctx, "home.carousel.collaborate.caption"),
		},
		{
			Image:   "img/carousel-publish.svg",
			Title:   t(ctx, "home.carousel.publish.title"),
			Caption: t(ctx, "home.carousel.publish.caption"),
		},
	}
}

func howItWorksSteps(ctx context.Context) []HowItWorksStep {
	return []HowItWorksStep{
		{
			Number:      1,
			Icon:        "img/step-create.svg",
			Title:       t(ctx, "home.how.step1.title"),
			Description: t(ctx, "home.how.step1.description"),
		},
		{
			Number:      2,
			Icon:        "img/step-describe.svg",
			Title:       t(ctx, "home.how.step2.title"),
			Description: t(ctx, "home.how.step2.description"),
		},
		{
			Number:      3,
			Icon:        "img/step-share.svg",
			Title:       t(ctx, "home.how.step3.title"),
			Description: t(ctx, "home.how.step3.description"),
		},
		{
			Number:      4,
			Icon:        "img/step-publish.svg",
			Title:       t(ctx, "home.how.step4.title"),
			Description: t(ctx, "home.how.step4.description"),
		},
	}
}

func featureChecklist(ctx context.Context) []Feature {
	return []Feature{
		{Name: t(ctx, "home.features.item1")},
		{Name: t(ctx, "home.features.item2")},
		{Name: t(ctx, "home.features.item3")},
		{Name: t(ctx, "home.features.item4")},
		{Name: t(ctx, "home.features.item5")},
		{Name: t(ctx, "home.features.item6")},
	}
}

func deviceList(ctx context.Context) []Device {
	return []Device{
		{Name: t(ctx, "home.devices.desktop")},
		{Name: t(ctx, "home.devices.tablet")},
		{Name: t(ctx, "home.devices.phone")},
	}
}
