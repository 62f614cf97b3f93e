package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kishordev/portfolio-api/internal/config"
	"github.com/kishordev/portfolio-api/internal/logger"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const defaultUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// upstreamTimeout bounds each call to Google. The provider could stall;
// this timeout is independent of the server's own request timeouts.
const upstreamTimeout = 10 * time.Second

type GoogleProvider struct {
	oauth2Config *oauth2.Config
	userInfoURL  string
	httpClient   *http.Client
}

func NewGoogleProvider(cfg *config.OAuthConfig) *GoogleProvider {
	return &GoogleProvider{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"email", "profile"},
		},
		userInfoURL: defaultUserInfoURL,
		httpClient:  &http.Client{Timeout: upstreamTimeout},
	}
}

// LoginURL returns the Google authorization URL. The flow is stateless
// across the two HTTP legs, so no state parameter is sent.
func (p *GoogleProvider) LoginURL() string {
	return p.oauth2Config.AuthCodeURL("")
}

// Exchange posts the authorization code to the token endpoint and fetches
// the user-info record with the resulting access token. The access token
// never leaves this method.
func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*UserInfo, error) {
	// Route the token-endpoint POST through the timeout-bounded client.
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	tok, err := p.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: exchange code: %v", ErrUpstream, err)
	}

	return p.fetchUserInfo(ctx, tok.AccessToken)
}

func (p *GoogleProvider) fetchUserInfo(ctx context.Context, accessToken string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build user info request: %v", ErrUpstream, err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetch user info: %v", ErrUpstream, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("Failed to close user info response body", zap.Error(err))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: user info request returned status %d", ErrUpstream, resp.StatusCode)
	}

	var userInfo struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&userInfo); err != nil {
		return nil, fmt.Errorf("%w: decode user info response: %v", ErrUpstream, err)
	}

	return &UserInfo{
		Email:   userInfo.Email,
		Name:    userInfo.Name,
		Picture: userInfo.Picture,
	}, nil
}

// compile-time interface check
var _ Provider = (*GoogleProvider)(nil)
