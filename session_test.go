package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolveUser(t *testing.T, cookie *http.Cookie) User {
	t.Helper()

	var got User
	handler := sessionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		got = userFromContext(r.Context())
	})

	r := httptest.NewRequest("GET", "/", nil)
	if cookie != nil {
		r.AddCookie(cookie)
	}
	handler(httptest.NewRecorder(), r)
	return got
}

func TestSessionAnonymousWithoutCookie(t *testing.T) {
	user := resolveUser(t, nil)
	assert.True(t, user.IsAnonymous)
}

func TestSessionRejectsGarbageCookie(t *testing.T) {
	user := resolveUser(t, &http.Cookie{Name: s.SessionCookie, Value: "not-a-jwt"})
	assert.True(t, user.IsAnonymous)
}

func TestSessionRejectsExpiredToken(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name: "Ada",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(s.SessionSecret))
	require.NoError(t, err)

	user := resolveUser(t, &http.Cookie{Name: s.SessionCookie, Value: signed})
	assert.True(t, user.IsAnonymous)
}

func TestSessionRejectsWrongSignature(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name: "Ada",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte("some-other-secret"))
	require.NoError(t, err)

	user := resolveUser(t, &http.Cookie{Name: s.SessionCookie, Value: signed})
	assert.True(t, user.IsAnonymous)
}

func TestSessionRejectsTokenWithoutSubject(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		Name: "Ada",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(s.SessionSecret))
	require.NoError(t, err)

	user := resolveUser(t, &http.Cookie{Name: s.SessionCookie, Value: signed})
	assert.True(t, user.IsAnonymous)
}

func TestSessionAcceptsValidToken(t *testing.T) {
	user := resolveUser(t, sessionCookieFor(t, "Ada"))
	assert.False(t, user.IsAnonymous)
	assert.Equal(t, "Ada", user.Name)
}
