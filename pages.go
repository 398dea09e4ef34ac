//go:generate tmpl bind ./...

package main

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/tylermmorton/tmpl"
)

// Assets resolves logical asset paths against the configured static base,
// so templates can write {{.Static "img/logo.svg"}}.
type Assets struct{}

func (Assets) Static(path string) string {
	return strings.TrimSuffix(s.StaticURL, "/") + "/" + strings.TrimPrefix(path, "/")
}

var (
	//go:embed templates/head.html
	tmplHead     string
	HeadTemplate = tmpl.MustCompile(&HeadPartial{})
)

//tmpl:bind head.html
type HeadPartial struct {
	Assets

	Lang        string
	Title       string
	Description string
}

func (*HeadPartial) TemplateText() string { return tmplHead }

var (
	//go:embed templates/navbar.html
	tmplNavbar     string
	NavbarTemplate = tmpl.MustCompile(&NavbarPartial{})
)

//tmpl:bind navbar.html
type NavbarPartial struct {
	Assets

	SiteName string
	Discover string
	About    string
	SignIn   string
}

func (*NavbarPartial) TemplateText() string { return tmplNavbar }

var (
	//go:embed templates/footer.html
	tmplFooter     string
	FooterTemplate = tmpl.MustCompile(&FooterPartial{})
)

//tmpl:bind footer.html
type FooterPartial struct {
	Copyright string
}

func (*FooterPartial) TemplateText() string { return tmplFooter }

// Banner is the maintenance message as it is displayed: a visual style and
// the already tag-stripped text. Rendered only when HomePage.ShowBanner is set.
type Banner struct {
	Style string
	Text  string
}

type CarouselSlide struct {
	Image   string
	Title   string
	Caption string
}

type HowItWorksStep struct {
	Number      int
	Icon        string
	Title       string
	Description string
}

type Feature struct {
	Name string
}

type Device struct {
	Name string
}

// HomeCopy carries the translated one-off strings of the landing page.
type HomeCopy struct {
	HeroTitle      string
	HeroSubtitle   string
	SignupAction   string
	BannerClose    string
	HowTitle       string
	FeaturesTitle  string
	DevicesTitle   string
	DevicesCaption string
}

var (
	//go:embed templates/homepage.html
	tmplHomePage     string
	HomePageTemplate = tmpl.MustCompile(&HomePage{})
)

type HomePage struct {
	HeadPartial   `tmpl:"head"`
	NavbarPartial `tmpl:"navbar"`
	FooterPartial `tmpl:"footer"`
	Assets

	ShowBanner    bool
	Banner        Banner
	ShowSignupCTA bool
	SignupURL     string

	Copy     HomeCopy
	Carousel []CarouselSlide
	Steps    []HowItWorksStep
	Features []Feature
	Devices  []Device
}

func (*HomePage) TemplateText() string { return tmplHomePage }

var (
	//go:embed templates/about.html
	tmplAboutPage     string
	AboutPageTemplate = tmpl.MustCompile(&AboutPage{})
)

type AboutPage struct {
	HeadPartial   `tmpl:"head"`
	NavbarPartial `tmpl:"navbar"`
	FooterPartial `tmpl:"footer"`
	Assets

	Content template.HTML
}

func (*AboutPage) TemplateText() string { return tmplAboutPage }
