package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/kishordev/portfolio-api/internal/auth"
	"github.com/kishordev/portfolio-api/internal/auth/gate"
	"github.com/kishordev/portfolio-api/internal/auth/handlers"
	"github.com/kishordev/portfolio-api/internal/auth/providers"
	"github.com/kishordev/portfolio-api/internal/auth/token"
	"github.com/kishordev/portfolio-api/internal/config"
	"github.com/kishordev/portfolio-api/internal/metrics"
	"github.com/kishordev/portfolio-api/internal/portfolio"
	"github.com/kishordev/portfolio-api/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is a minimal in-memory store.Store for route tests.
type memStore struct {
	mu   sync.Mutex
	docs map[string]json.RawMessage
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string]json.RawMessage)}
}

func (m *memStore) List(ctx context.Context, collection string) ([]json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []json.RawMessage
	for key, doc := range m.docs {
		if strings.HasPrefix(key, collection+"/") {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (m *memStore) Get(ctx context.Context, collection, id string) (json.RawMessage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[collection+"/"+id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return doc, nil
}

func (m *memStore) Insert(ctx context.Context, collection, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[collection+"/"+id] = json.RawMessage(data)
	return nil
}

func (m *memStore) Update(ctx context.Context, collection, id string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.docs[collection+"/"+id]; !ok {
		return store.ErrNotFound
	}
	m.docs[collection+"/"+id] = json.RawMessage(data)
	return nil
}

func (m *memStore) Delete(ctx context.Context, collection, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.docs, collection+"/"+id)
	return nil
}

// fakeProvider completes every exchange with the configured identity.
type fakeProvider struct {
	user *providers.UserInfo
}

func (f *fakeProvider) LoginURL() string {
	return "https://accounts.google.com/o/oauth2/auth?client_id=test"
}

func (f *fakeProvider) Exchange(ctx context.Context, code string) (*providers.UserInfo, error) {
	return f.user, nil
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{
			Host:         "127.0.0.1",
			Port:         0,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		OAuth: config.OAuthConfig{AllowedEmail: "owner@example.com"},
		JWT:   config.JWTConfig{Secret: "test-secret"},
	}

	codec := token.NewCodec([]byte(cfg.JWT.Secret), token.TTL)
	provider := &fakeProvider{user: &providers.UserInfo{
		Email:   "owner@example.com",
		Name:    "Owner",
		Picture: "http://x/p.png",
	}}
	authService := auth.NewService(
		handlers.NewHandler(provider, gate.New(cfg.OAuth.AllowedEmail), codec),
		codec,
	)
	portfolioHandler := portfolio.NewHandler(portfolio.NewService(newMemStore()))
	collector := metrics.NewCollector(prometheus.NewRegistry())

	return NewServer(cfg, authService, portfolioHandler, collector)
}

func do(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)
	return rec
}

func TestRootBanner(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Portfolio Backend API")
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLoginRedirect(t *testing.T) {
	s := newTestServer(t)

	rec := do(s, httptest.NewRequest(http.MethodGet, "/auth/google/login", nil))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Location"))
}

func TestLoginThenWriteFlow(t *testing.T) {
	s := newTestServer(t)

	// Complete the callback to obtain a token.
	rec := do(s, httptest.NewRequest(http.MethodGet, "/auth/google/callback?code=abc123", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Token)

	// Writing without the token is rejected.
	payload := `{"name":"Go","level":"advanced"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/programming-languages", strings.NewReader(payload))
	rec = do(s, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Writing with the token succeeds.
	req = httptest.NewRequest(http.MethodPost, "/v1/programming-languages", strings.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+body.Token)
	rec = do(s, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	// The write is publicly readable.
	rec = do(s, httptest.NewRequest(http.MethodGet, "/v1/programming-languages", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"Go"`)
}
