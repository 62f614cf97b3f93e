// Package gate authorizes the single identity this API recognizes.
package gate

import (
	"errors"

	"github.com/kishordev/portfolio-api/internal/auth/providers"
	"github.com/kishordev/portfolio-api/internal/auth/token"
)

// ErrNotAllowed indicates the external identity is not the allow-listed
// one. The HTTP layer must surface it exactly like bad provider data so
// responses never reveal which emails were tried.
var ErrNotAllowed = errors.New("gate: identity not allow-listed")

// Gate checks external identities against the one configured email.
type Gate struct {
	allowedEmail string
}

func New(allowedEmail string) *Gate {
	return &Gate{allowedEmail: allowedEmail}
}

// Authorize compares the external identity against the allow-listed email.
// The match is case-sensitive and exact; no trimming, no normalization.
func (g *Gate) Authorize(user *providers.UserInfo) (token.Claims, error) {
	if user.Email != g.allowedEmail {
		return token.Claims{}, ErrNotAllowed
	}

	return token.Claims{
		Email:   user.Email,
		Name:    user.Name,
		Picture: user.Picture,
	}, nil
}
