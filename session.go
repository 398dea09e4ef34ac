package main

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// User is the slice of the session this frontend cares about. Sessions are
// minted by the external auth service; we only verify its cookie.
type User struct {
	IsAnonymous bool
	Name        string
}

var anonymous = User{IsAnonymous: true}

type userContextKey struct{}

type sessionClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// sessionMiddleware resolves the current visitor from the session cookie.
// Anything that doesn't verify cleanly degrades to the anonymous user.
func sessionMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := anonymous

		if c, err := r.Cookie(s.SessionCookie); err == nil && c.Value != "" && s.SessionSecret != "" {
			var claims sessionClaims
			token, err := jwt.ParseWithClaims(c.Value, &claims, func(token *jwt.Token) (any, error) {
				return []byte(s.SessionSecret), nil
			}, jwt.WithValidMethods([]string{"HS256"}))

			if err == nil && token.Valid && claims.Subject != "" {
				user = User{Name: claims.Name}
			} else {
				log.Debug().Err(err).Msg("rejecting session cookie")
			}
		}

		ctx := context.WithValue(r.Context(), userContextKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

func userFromContext(ctx context.Context) User {
	if u, ok := ctx.Value(userContextKey{}).(User); ok {
		return u
	}
	return anonymous
}
