package controllers

import (
	"net/http"

	"github.com/teruzahostel/minimarket-backend/api/middleware"
	"github.com/teruzahostel/minimarket-backend/api/responses"
	"github.com/teruzahostel/minimarket-backend/api/validators"
	"github.com/teruzahostel/minimarket-backend/internal/checkout"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

// SubmitCheckout creates a pending order from the session cart and returns
// the WhatsApp hand-off payload.
func SubmitCheckout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := guestSession(w, r, logg)
		if !ok {
			return
		}

		// Field validation happens in the service so messages localize.
		var payload checkout.SubmitInput
		if err := validators.DecodeJSON(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Submit(r.Context(), sessionID, middleware.LanguageFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}

// ComposeCheckout builds the order message without creating an order, for
// the copy-to-clipboard path.
func ComposeCheckout(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := guestSession(w, r, logg)
		if !ok {
			return
		}

		var payload checkout.SubmitInput
		if err := validators.DecodeJSON(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Compose(r.Context(), sessionID, middleware.LanguageFromContext(r.Context()), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

// ClaimConfirmation consumes the single-use hand-off record for the session.
func ClaimConfirmation(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID, ok := guestSession(w, r, logg)
		if !ok {
			return
		}

		confirmation, err := svc.ClaimConfirmation(r.Context(), sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, confirmation)
	}
}
