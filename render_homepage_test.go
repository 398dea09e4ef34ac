package main

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderHomepageDoc(t *testing.T, cookie *http.Cookie) *goquery.Document {
	t.Helper()

	r := httptest.NewRequest("GET", "/", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	w := httptest.NewRecorder()

	sessionMiddleware(renderHomepage)(w, r)

	require.Equal(t, http.StatusOK, w.Code, "homepage is not 200")

	doc, err := goquery.NewDocumentFromReader(w.Body)
	require.NoError(t, err, "failed to parse homepage with goquery")
	return doc
}

func sessionCookieFor(t *testing.T, name string) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name: name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(s.SessionSecret))
	require.NoError(t, err)

	return &http.Cookie{Name: s.SessionCookie, Value: signed}
}

func TestHomepageShowsOperatorMessageEndToEnd(t *testing.T) {
	t.Cleanup(func() { cache.Delete(siteMessageKey) })

	w := adminRequest(t, http.MethodPut,
		`{"can_show_message":true,"message_type":"Warning","content":"Storage <b>upgrade</b> tonight"}`, true)
	require.Equal(t, http.StatusNoContent, w.Code)

	doc := renderHomepageDoc(t, nil)

	banner := doc.Find("#maintenance-banner")
	require.Equal(t, 1, banner.Length())
	assert.True(t, banner.HasClass("alert-danger"))
	assert.Contains(t, banner.Text(), "Storage upgrade tonight")

	inner, err := banner.Html()
	require.NoError(t, err)
	assert.NotContains(t, inner, "<b>")

	assert.Equal(t, 1, doc.Find("#signup-cta a").Length())
	assert.Equal(t, 4, doc.Find("#how-it-works li.step").Length())
}

func TestHomepageWithoutMessageHasNoBanner(t *testing.T) {
	cache.Delete(siteMessageKey)

	doc := renderHomepageDoc(t, nil)
	assert.Zero(t, doc.Find("#maintenance-banner").Length())
}

func TestHomepageHidesDisabledMessage(t *testing.T) {
	cache.SetJSON(siteMessageKey, SiteMessage{
		CanShowMessage: false,
		MessageType:    "warning",
		Content:        "we are down",
	})
	t.Cleanup(func() { cache.Delete(siteMessageKey) })

	doc := renderHomepageDoc(t, nil)
	assert.Zero(t, doc.Find("#maintenance-banner").Length())
}

func TestBannerSeverityStyles(t *testing.T) {
	t.Cleanup(func() { cache.Delete(siteMessageKey) })

	for _, tc := range []struct {
		messageType string
		style       string
	}{
		{"warning", "alert-danger"},
		{"Warning", "alert-danger"},
		{"WARNING", "alert-danger"},
		{"info", "alert-success"},
		{"Notice", "alert-success"},
		{"", "alert-success"},
	} {
		cache.SetJSON(siteMessageKey, SiteMessage{
			CanShowMessage: true,
			MessageType:    tc.messageType,
			Content:        "scheduled maintenance tonight",
		})

		doc := renderHomepageDoc(t, nil)
		banner := doc.Find("#maintenance-banner")
		require.Equal(t, 1, banner.Length(), "message type %q", tc.messageType)
		assert.True(t, banner.HasClass(tc.style), "message type %q should get %s", tc.messageType, tc.style)
	}
}

func TestBannerStripsMarkup(t *testing.T) {
	cache.SetJSON(siteMessageKey, SiteMessage{
		CanShowMessage: true,
		MessageType:    "warning",
		Content:        `We will be <b>down</b> tonight <script>alert("x")</script>for upgrades`,
	})
	t.Cleanup(func() { cache.Delete(siteMessageKey) })

	doc := renderHomepageDoc(t, nil)
	banner := doc.Find("#maintenance-banner")
	require.Equal(t, 1, banner.Length())

	assert.Contains(t, banner.Text(), "We will be down tonight for upgrades")

	inner, err := banner.Html()
	require.NoError(t, err)
	assert.NotContains(t, inner, "<b>")
	assert.NotContains(t, inner, "script")
}

func TestBannerIsDismissible(t *testing.T) {
	cache.SetJSON(siteMessageKey, SiteMessage{
		CanShowMessage: true,
		MessageType:    "info",
		Content:        "new features released",
	})
	t.Cleanup(func() { cache.Delete(siteMessageKey) })

	doc := renderHomepageDoc(t, nil)
	assert.Equal(t, 1, doc.Find("#maintenance-banner button.close").Length())
}

func TestSignupCTAForAnonymousVisitor(t *testing.T) {
	doc := renderHomepageDoc(t, nil)

	links := doc.Find("#signup-cta a")
	require.Equal(t, 1, links.Length(), "signup block must have exactly one call-to-action link")

	href, _ := links.Attr("href")
	assert.Equal(t, s.OAuthLoginURL, href)
}

func TestSignupCTAAbsentForAuthenticatedVisitor(t *testing.T) {
	doc := renderHomepageDoc(t, sessionCookieFor(t, "Ada"))
	assert.Zero(t, doc.Find("#signup-cta").Length())
}

func TestStepsRenderInFixedOrder(t *testing.T) {
	// steps are static markup, session and message state must not affect them
	cache.SetJSON(siteMessageKey, SiteMessage{
		CanShowMessage: true,
		MessageType:    "warning",
		Content:        "maintenance",
	})
	t.Cleanup(func() { cache.Delete(siteMessageKey) })

	for _, cookie := range []*http.Cookie{nil, sessionCookieFor(t, "Ada")} {
		doc := renderHomepageDoc(t, cookie)

		steps := doc.Find("#how-it-works li.step")
		require.Equal(t, 4, steps.Length())

		steps.Each(func(i int, sel *goquery.Selection) {
			assert.Equal(t, strconv.Itoa(i+1), sel.Find(".step-number").Text())
		})
	}
}

func TestStaticAssetsResolveUnderConfiguredBase(t *testing.T) {
	doc := renderHomepageDoc(t, nil)

	imgs := doc.Find("img")
	require.NotZero(t, imgs.Length())

	imgs.Each(func(_ int, sel *goquery.Selection) {
		src, ok := sel.Attr("src")
		assert.True(t, ok)
		assert.True(t, strings.HasPrefix(src, s.StaticURL),
			"asset %q not under %q", src, s.StaticURL)
	})
}
