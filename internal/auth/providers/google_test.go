package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/kishordev/portfolio-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func testConfig() *config.OAuthConfig {
	return &config.OAuthConfig{
		ClientID:     "test-client-id",
		ClientSecret: "test-client-secret",
		RedirectURL:  "http://localhost:8080/auth/google/callback",
		AllowedEmail: "owner@example.com",
	}
}

// newFakeGoogle stands in for Google's token and userinfo endpoints.
func newFakeGoogle(t *testing.T, tokenStatus, userInfoStatus int) (*httptest.Server, *GoogleProvider) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fake-access-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fake-access-token", r.Header.Get("Authorization"))
		if userInfoStatus != http.StatusOK {
			w.WriteHeader(userInfoStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"email":"owner@example.com","name":"Owner","picture":"http://x/p.png"}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	p := NewGoogleProvider(testConfig())
	p.oauth2Config.Endpoint = oauth2.Endpoint{
		AuthURL:  srv.URL + "/auth",
		TokenURL: srv.URL + "/token",
	}
	p.userInfoURL = srv.URL + "/userinfo"

	return srv, p
}

func TestLoginURL(t *testing.T) {
	p := NewGoogleProvider(testConfig())

	u, err := url.Parse(p.LoginURL())
	require.NoError(t, err)

	q := u.Query()
	assert.Equal(t, "test-client-id", q.Get("client_id"))
	assert.Equal(t, "http://localhost:8080/auth/google/callback", q.Get("redirect_uri"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "email profile", q.Get("scope"))
}

func TestExchange(t *testing.T) {
	_, p := newFakeGoogle(t, http.StatusOK, http.StatusOK)

	user, err := p.Exchange(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, &UserInfo{
		Email:   "owner@example.com",
		Name:    "Owner",
		Picture: "http://x/p.png",
	}, user)
}

func TestExchangeTokenEndpointFailure(t *testing.T) {
	_, p := newFakeGoogle(t, http.StatusInternalServerError, http.StatusOK)

	_, err := p.Exchange(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestExchangeUserInfoFailure(t *testing.T) {
	_, p := newFakeGoogle(t, http.StatusOK, http.StatusInternalServerError)

	_, err := p.Exchange(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrUpstream)
}

func TestExchangeUnreachableProvider(t *testing.T) {
	srv, p := newFakeGoogle(t, http.StatusOK, http.StatusOK)
	srv.Close()

	_, err := p.Exchange(context.Background(), "abc123")
	assert.ErrorIs(t, err, ErrUpstream)
}
