package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/teruzahostel/minimarket-backend/internal/i18n"
	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

type languageStore interface {
	Get(ctx context.Context, key string) (string, error)
	LanguageKey(sessionID string) string
}

// GuestSession ensures every storefront request carries a session cookie and
// resolves the guest's language: a stored preference wins, otherwise the
// Accept-Language header is detected.
func GuestSession(cfg config.SessionConfig, store languageStore, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if cookie, err := r.Cookie(cfg.CookieName); err == nil {
				if _, parseErr := uuid.Parse(cookie.Value); parseErr == nil {
					sessionID = cookie.Value
				}
			}
			if sessionID == "" {
				sessionID = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     cfg.CookieName,
					Value:    sessionID,
					Path:     "/",
					MaxAge:   int(cfg.CartTTL.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			lang := resolveLanguage(r, store, sessionID)

			ctx := WithGuestSession(r.Context(), sessionID)
			ctx = WithLanguage(ctx, lang)
			if logg != nil {
				ctx = logg.WithGuestSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveLanguage(r *http.Request, store languageStore, sessionID string) enums.Language {
	if store != nil {
		if stored, err := store.Get(r.Context(), store.LanguageKey(sessionID)); err == nil {
			if lang, parseErr := enums.ParseLanguage(stored); parseErr == nil {
				return lang
			}
		}
	}
	return i18n.Detect(r.Header.Get("Accept-Language"))
}
