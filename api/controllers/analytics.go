package controllers

import (
	"net/http"

	"github.com/teruzahostel/minimarket-backend/api/middleware"
	"github.com/teruzahostel/minimarket-backend/api/responses"
	"github.com/teruzahostel/minimarket-backend/api/validators"
	"github.com/teruzahostel/minimarket-backend/internal/analytics"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

// TrackEvent records a storefront view or add-to-cart event.
func TrackEvent(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload analytics.TrackInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Track(r.Context(), middleware.LanguageFromContext(r.Context()), payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]string{"status": "queued"})
	}
}

// AnalyticsSummary returns the back-office dashboard aggregates.
func AnalyticsSummary(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary, err := svc.Summary(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, summary)
	}
}

// AnalyticsProducts returns per-product view and add-to-cart counts.
func AnalyticsProducts(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := svc.Products(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}

// AnalyticsReset deletes all analytics events and reports the count.
func AnalyticsReset(svc analytics.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Reset(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
