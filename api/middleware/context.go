package middleware

import (
	"context"

	"github.com/teruzahostel/minimarket-backend/pkg/enums"
)

type contextKey string

const (
	ctxUserID       contextKey = "user_id"
	ctxAccessID     contextKey = "access_id"
	ctxGuestSession contextKey = "guest_session_id"
	ctxLanguage     contextKey = "language"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

func AccessIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxAccessID).(string); ok {
		return v
	}
	return ""
}

func GuestSessionFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxGuestSession).(string); ok {
		return v
	}
	return ""
}

// LanguageFromContext returns the resolved storefront language, defaulting to
// Portuguese when the guest session middleware did not run.
func LanguageFromContext(ctx context.Context) enums.Language {
	if ctx != nil {
		if v, ok := ctx.Value(ctxLanguage).(enums.Language); ok {
			return v
		}
	}
	return enums.LanguagePT
}

// WithUserID injects the admin user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithGuestSession injects the guest session identifier into the context.
func WithGuestSession(ctx context.Context, sessionID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxGuestSession, sessionID)
}

// WithLanguage injects the resolved language into the context.
func WithLanguage(ctx context.Context, lang enums.Language) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxLanguage, lang)
}
