// Package handlers implements the OAuth login HTTP endpoints.
package handlers

import (
	"errors"
	"net/http"

	"github.com/kishordev/portfolio-api/internal/auth/gate"
	"github.com/kishordev/portfolio-api/internal/auth/providers"
	"github.com/kishordev/portfolio-api/internal/auth/token"
	"github.com/kishordev/portfolio-api/internal/logger"
	"github.com/kishordev/portfolio-api/internal/utils"
	"go.uber.org/zap"
)

// Handler handles the OAuth login and callback requests
type Handler struct {
	provider providers.Provider
	gate     *gate.Gate
	codec    *token.Codec
}

// NewHandler creates a new Handler instance
func NewHandler(provider providers.Provider, g *gate.Gate, codec *token.Codec) *Handler {
	return &Handler{
		provider: provider,
		gate:     g,
		codec:    codec,
	}
}

// HandleLogin handles GET /auth/google/login with a redirect to the
// provider authorization URL.
func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.provider.LoginURL(), http.StatusFound)
}

// HandleCallback handles GET /auth/google/callback. It exchanges the
// authorization code, checks the allow-list and returns a signed token.
// Allow-list misses and provider identity problems both answer 401 so the
// response never reveals which emails were tried.
func (h *Handler) HandleCallback(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		utils.WriteError(w, http.StatusBadRequest, "Bad Request")
		return
	}

	user, err := h.provider.Exchange(r.Context(), code)
	if err != nil {
		logger.Error("OAuth code exchange failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	claims, err := h.gate.Authorize(user)
	if err != nil {
		if !errors.Is(err, gate.ErrNotAllowed) {
			logger.Error("Authorization failed", zap.Error(err))
		}
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	tok, err := h.codec.Issue(claims)
	if err != nil {
		logger.Error("Token signing failed", zap.Error(err))
		utils.WriteError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	logger.Info("Login completed", zap.String("email", claims.Email))
	utils.WriteJSON(w, http.StatusOK, map[string]string{"token": tok})
}
