package gate

import (
	"testing"

	"github.com/kishordev/portfolio-api/internal/auth/providers"
	"github.com/kishordev/portfolio-api/internal/auth/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorize(t *testing.T) {
	g := New("owner@example.com")

	tests := []struct {
		name    string
		email   string
		allowed bool
	}{
		{name: "exact match", email: "owner@example.com", allowed: true},
		{name: "other email", email: "intruder@example.com", allowed: false},
		{name: "case variant", email: "Owner@example.com", allowed: false},
		{name: "leading whitespace", email: " owner@example.com", allowed: false},
		{name: "trailing whitespace", email: "owner@example.com ", allowed: false},
		{name: "empty", email: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := g.Authorize(&providers.UserInfo{
				Email:   tt.email,
				Name:    "Owner",
				Picture: "http://x/p.png",
			})

			if !tt.allowed {
				assert.ErrorIs(t, err, ErrNotAllowed)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, token.Claims{
				Email:   "owner@example.com",
				Name:    "Owner",
				Picture: "http://x/p.png",
			}, claims)
		})
	}
}
