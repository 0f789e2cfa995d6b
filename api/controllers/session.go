package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/teruzahostel/minimarket-backend/api/middleware"
	"github.com/teruzahostel/minimarket-backend/api/responses"
	"github.com/teruzahostel/minimarket-backend/api/validators"
	"github.com/teruzahostel/minimarket-backend/pkg/enums"
	pkgerrors "github.com/teruzahostel/minimarket-backend/pkg/errors"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

type languageStore interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	LanguageKey(sessionID string) string
}

type updateLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

// SessionLanguage returns the language resolved for the current guest
// session (stored preference or Accept-Language detection).
func SessionLanguage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		lang := middleware.LanguageFromContext(r.Context())
		responses.WriteSuccess(w, map[string]string{"language": string(lang)})
	}
}

// UpdateSessionLanguage stores an explicit language preference for the guest
// session. The preference outlives the cart by reusing the cart TTL.
func UpdateSessionLanguage(store languageStore, ttl time.Duration, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := middleware.GuestSessionFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "guest session missing"))
			return
		}

		var payload updateLanguageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		lang, err := enums.ParseLanguage(payload.Language)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unsupported language"))
			return
		}

		if err := store.Set(r.Context(), store.LanguageKey(sessionID), string(lang), ttl); err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store language"))
			return
		}

		responses.WriteSuccess(w, map[string]string{"language": string(lang)})
	}
}
