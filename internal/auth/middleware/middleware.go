// Package middleware gates protected routes behind bearer-token
// authentication. Tokens are verified once per request and the resulting
// claims are shared with downstream handlers through the request context.
package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/kishordev/portfolio-api/internal/auth/token"
	"github.com/kishordev/portfolio-api/internal/utils"
)

const (
	authHeaderName   = "Authorization"
	authHeaderPrefix = "Bearer "
)

// ErrNoClaims indicates FromContext was called on a request that never
// went through Authenticate. That is a routing/config error, not a
// runtime user error.
var ErrNoClaims = errors.New("middleware: no identity claims in context")

type claimsContextKey struct{}

// Verifier validates a signed token and returns its claims.
type Verifier interface {
	Verify(tok string) (token.Claims, error)
}

// Authenticate validates the bearer token before the wrapped handler runs.
// A missing header is rejected before any cryptographic verification; any
// verification failure is rejected with the same generic 401.
func Authenticate(verifier Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tok := extractToken(r)
			if tok == "" {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := verifier.Verify(tok)
			if err != nil {
				utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey{}, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// FromContext returns the claims attached by Authenticate.
func FromContext(ctx context.Context) (token.Claims, error) {
	claims, ok := ctx.Value(claimsContextKey{}).(token.Claims)
	if !ok {
		return token.Claims{}, ErrNoClaims
	}
	return claims, nil
}

// extractToken extracts the bearer token from the Authorization header.
// Tokens are accepted from the header only; query parameters leak into
// access logs.
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get(authHeaderName)
	if strings.HasPrefix(authHeader, authHeaderPrefix) {
		return strings.TrimPrefix(authHeader, authHeaderPrefix)
	}
	return ""
}
