// Package auth issues and verifies the bearer tokens used by the API and
// provides the middleware that loads the current user into the request
// context.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is what the token carries and what handlers see via
// CurrentUser(r).
type TokenUser struct {
	ID   string
	Name string
	Role string // rider | driver | operator
}

type ctxKey struct{}

// CurrentUser returns the user loaded by LoadTokenUser and a "found?" flag.
func CurrentUser(r *http.Request) (*TokenUser, bool) {
	u, ok := r.Context().Value(ctxKey{}).(*TokenUser)
	return u, ok
}

// WithTestUser injects a user directly into the request context.
// Test-only: lets handler tests bypass token verification.
func WithTestUser(r *http.Request, u *TokenUser) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), ctxKey{}, u))
}

// claims is the JWT payload. Subject holds the user id.
type claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies access tokens with a shared HMAC secret.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager constructs a TokenManager. ttl bounds how long an issued
// token stays valid.
func NewTokenManager(secret, issuer string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), issuer: issuer, ttl: ttl}
}

// Issue signs a token for the given user.
func (tm *TokenManager) Issue(u TokenUser) (string, error) {
	now := time.Now()
	c := claims{
		Name: u.Name,
		Role: u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			Issuer:    tm.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(tm.secret)
}

// Verify parses and validates a token string, returning the embedded user.
func (tm *TokenManager) Verify(token string) (*TokenUser, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c,
		func(t *jwt.Token) (any, error) { return tm.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tm.issuer),
	)
	if err != nil || !parsed.Valid {
		return nil, apperr.Unauthorized("invalid or expired token")
	}
	return &TokenUser{ID: c.Subject, Name: c.Name, Role: c.Role}, nil
}

// LoadTokenUser injects the user into context when the request carries a
// valid bearer token. Requests without a token continue anonymously;
// RequireSignedIn decides whether that matters.
func (tm *TokenManager) LoadTokenUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if raw := bearerToken(r); raw != "" {
			if u, err := tm.Verify(raw); err == nil {
				r = WithTestUser(r, u)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireSignedIn rejects requests with no user in context.
func RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			respond.Err(w, nil, apperr.Unauthorized("sign in required"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects signed-in users whose role is not in the allowed set.
func RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[strings.ToLower(strings.TrimSpace(role))] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				respond.Err(w, nil, apperr.Unauthorized("sign in required"))
				return
			}
			if _, has := set[strings.ToLower(u.Role)]; !has {
				respond.JSON(w, http.StatusForbidden, map[string]any{
					"success": false,
					"error":   "you do not have permission to do that",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && strings.EqualFold(h[:len(prefix)], prefix) {
		return strings.TrimSpace(h[len(prefix):])
	}
	return ""
}
