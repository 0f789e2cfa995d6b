package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

type stubLanguageStore struct {
	stored string
	err    error
}

func (s stubLanguageStore) Get(ctx context.Context, key string) (string, error) {
	return s.stored, s.err
}

func (s stubLanguageStore) LanguageKey(sessionID string) string {
	return "lang:" + sessionID
}

func testSessionConfig() config.SessionConfig {
	return config.SessionConfig{CookieName: "teruza_session", CartTTL: 24 * time.Hour}
}

func TestGuestSessionIssuesCookie(t *testing.T) {
	var gotSession string
	handler := GuestSession(testSessionConfig(), stubLanguageStore{err: errors.New("missing")}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = GuestSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if gotSession == "" {
		t.Fatal("expected a session id in context")
	}
	if _, err := uuid.Parse(gotSession); err != nil {
		t.Fatalf("session id is not a uuid: %s", gotSession)
	}

	cookies := resp.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "teruza_session" {
		t.Fatalf("expected one session cookie, got %v", cookies)
	}
	if cookies[0].Value != gotSession {
		t.Fatalf("cookie %s does not match context %s", cookies[0].Value, gotSession)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
}

func TestGuestSessionReusesValidCookie(t *testing.T) {
	existing := uuid.NewString()
	var gotSession string
	handler := GuestSession(testSessionConfig(), stubLanguageStore{err: errors.New("missing")}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = GuestSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.AddCookie(&http.Cookie{Name: "teruza_session", Value: existing})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if gotSession != existing {
		t.Fatalf("expected session %s, got %s", existing, gotSession)
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatal("valid cookie should not be reissued")
	}
}

func TestGuestSessionReplacesInvalidCookie(t *testing.T) {
	var gotSession string
	handler := GuestSession(testSessionConfig(), stubLanguageStore{err: errors.New("missing")}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSession = GuestSessionFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.AddCookie(&http.Cookie{Name: "teruza_session", Value: "not-a-uuid"})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if gotSession == "not-a-uuid" {
		t.Fatal("invalid cookie value must be replaced")
	}
	if len(resp.Result().Cookies()) != 1 {
		t.Fatal("expected a replacement cookie")
	}
}

func TestGuestSessionPrefersStoredLanguage(t *testing.T) {
	var gotLang enums.Language
	handler := GuestSession(testSessionConfig(), stubLanguageStore{stored: "es"}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = LanguageFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.AddCookie(&http.Cookie{Name: "teruza_session", Value: uuid.NewString()})
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if gotLang != enums.LanguageES {
		t.Fatalf("stored preference should win, got %s", gotLang)
	}
}

func TestGuestSessionDetectsHeaderLanguage(t *testing.T) {
	var gotLang enums.Language
	handler := GuestSession(testSessionConfig(), stubLanguageStore{err: errors.New("missing")}, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = LanguageFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if gotLang != enums.LanguageEN {
		t.Fatalf("expected en from header, got %s", gotLang)
	}
}
