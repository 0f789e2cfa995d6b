package routes

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/internal/analytics"
	"github.com/teruzahostel/minimarket-backend/internal/auth"
	"github.com/teruzahostel/minimarket-backend/internal/cart"
	"github.com/teruzahostel/minimarket-backend/internal/catalog"
	checkoutsvc "github.com/teruzahostel/minimarket-backend/internal/checkout"
	"github.com/teruzahostel/minimarket-backend/internal/orders"
	"github.com/teruzahostel/minimarket-backend/internal/settings"
	pkgAuth "github.com/teruzahostel/minimarket-backend/pkg/auth"
	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error { return nil }

// memoryCache backs the guest session, language, and rate limit lookups
// without a redis server.
type memoryCache struct {
	mu       sync.Mutex
	values   map[string]string
	counters map[string]int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{values: map[string]string{}, counters: map[string]int64{}}
}

func (m *memoryCache) Ping(context.Context) error { return nil }

func (m *memoryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.values[key]; ok {
		return v, nil
	}
	return "", errors.New("cache miss")
}

func (m *memoryCache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := value.(string); ok {
		m.values[key] = s
	}
	return nil
}

func (m *memoryCache) IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counters[key]++
	return m.counters[key], nil
}

func (m *memoryCache) LanguageKey(sessionID string) string { return "lang:" + sessionID }

type stubSessionChecker struct{ ok bool }

func (s stubSessionChecker) HasSession(ctx context.Context, accessID string) (bool, error) {
	return s.ok, nil
}

// stubCatalog overrides only the storefront list; anything else hit in a
// routing test is a wiring bug, so the embedded nil interface panics.
type stubCatalog struct {
	catalog.Service
}

func (stubCatalog) ListStorefrontProducts(ctx context.Context, input catalog.ListProductsInput) ([]catalog.StorefrontProductDTO, error) {
	return []catalog.StorefrontProductDTO{}, nil
}

type stubOrders struct {
	orders.Service
}

func (stubOrders) List(ctx context.Context, input orders.ListOrdersInput) (*orders.OrderPageDTO, error) {
	return &orders.OrderPageDTO{Orders: []orders.OrderDTO{}}, nil
}

type stubCart struct{ cart.Service }

type stubCheckout struct{ checkoutsvc.Service }

type stubAnalytics struct{ analytics.Service }

type stubSettings struct{ settings.Service }

type stubAuth struct{ auth.Service }

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0"},
		JWT: config.JWTConfig{Secret: "secret", Issuer: "teruza-test", ExpirationMinutes: 10},
		AuthRateLimit: config.AuthRateLimitConfig{
			LoginWindow:     time.Minute,
			LoginEmailLimit: 5,
			LoginIPLimit:    20,
		},
		Session: config.SessionConfig{CookieName: "teruza_session", CartTTL: 24 * time.Hour},
	}
}

func newTestRouter(cfg *config.Config, sessions stubSessionChecker) http.Handler {
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: logger.ParseLevel("debug"), Output: io.Discard})
	return NewRouter(cfg, logg, stubPinger{}, newMemoryCache(), sessions, Services{
		Catalog:   stubCatalog{},
		Cart:      stubCart{},
		Checkout:  stubCheckout{},
		Orders:    stubOrders{},
		Analytics: stubAnalytics{},
		Settings:  stubSettings{},
		Auth:      stubAuth{},
	})
}

func TestHealthLive(t *testing.T) {
	router := newTestRouter(testConfig(), stubSessionChecker{ok: true})

	req := httptest.NewRequest(http.MethodGet, "/health/live", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if env := resp.Header().Get("X-Teruza-Env"); env != "test" {
		t.Fatalf("unexpected env header: %s", env)
	}
}

func TestGuestRouteIssuesSessionCookie(t *testing.T) {
	router := newTestRouter(testConfig(), stubSessionChecker{ok: true})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "teruza_session" {
		t.Fatalf("expected session cookie, got %v", cookies)
	}
	if _, err := uuid.Parse(cookies[0].Value); err != nil {
		t.Fatalf("cookie is not a uuid: %s", cookies[0].Value)
	}
}

func TestAdminGroupRejectsMissingJWT(t *testing.T) {
	router := newTestRouter(testConfig(), stubSessionChecker{ok: true})

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token got %d", resp.Code)
	}
}

func TestAdminGroupAcceptsLiveSession(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, stubSessionChecker{ok: true})

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@teruza.test",
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestAdminGroupRejectsRevokedSession(t *testing.T) {
	cfg := testConfig()
	router := newTestRouter(cfg, stubSessionChecker{ok: false})

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{
		UserID: uuid.New(),
		Email:  "admin@teruza.test",
		JTI:    uuid.NewString(),
	})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for revoked session got %d", resp.Code)
	}
}
