// Package auth wires the OAuth login flow: provider exchange, allow-list
// check, token issuance and the request authenticator.
package auth

import (
	"net/http"

	"github.com/kishordev/portfolio-api/internal/auth/gate"
	"github.com/kishordev/portfolio-api/internal/auth/handlers"
	"github.com/kishordev/portfolio-api/internal/auth/middleware"
	"github.com/kishordev/portfolio-api/internal/auth/providers"
	"github.com/kishordev/portfolio-api/internal/auth/token"
	"github.com/kishordev/portfolio-api/internal/config"
	"go.uber.org/fx"
)

// Service represents the authentication service
type Service struct {
	handler *handlers.Handler
	codec   *token.Codec
}

// NewService creates a new authentication service
func NewService(handler *handlers.Handler, codec *token.Codec) *Service {
	return &Service{
		handler: handler,
		codec:   codec,
	}
}

// RegisterRoutes registers the login endpoints
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /auth/google/login", s.handler.HandleLogin)
	mux.HandleFunc("GET /auth/google/callback", s.handler.HandleCallback)
}

// Authenticate returns the authentication middleware for protected routes
func (s *Service) Authenticate() func(http.Handler) http.Handler {
	return middleware.Authenticate(s.codec)
}

func newCodec(cfg *config.Config) *token.Codec {
	return token.NewCodec([]byte(cfg.JWT.Secret), token.TTL)
}

func newGoogleProvider(cfg *config.Config) *providers.GoogleProvider {
	return providers.NewGoogleProvider(&cfg.OAuth)
}

func newGate(cfg *config.Config) *gate.Gate {
	return gate.New(cfg.OAuth.AllowedEmail)
}

// Module provides the authentication dependencies
var Module = fx.Module("auth",
	fx.Provide(
		newCodec,
		fx.Annotate(
			newGoogleProvider,
			fx.As(new(providers.Provider)),
		),
		newGate,
		handlers.NewHandler,
		NewService,
	),
)
