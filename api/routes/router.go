package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/teruzahostel/minimarket-backend/api/controllers"
	"github.com/teruzahostel/minimarket-backend/api/middleware"
	"github.com/teruzahostel/minimarket-backend/internal/analytics"
	"github.com/teruzahostel/minimarket-backend/internal/auth"
	"github.com/teruzahostel/minimarket-backend/internal/cart"
	"github.com/teruzahostel/minimarket-backend/internal/catalog"
	checkoutsvc "github.com/teruzahostel/minimarket-backend/internal/checkout"
	"github.com/teruzahostel/minimarket-backend/internal/orders"
	"github.com/teruzahostel/minimarket-backend/internal/settings"
	"github.com/teruzahostel/minimarket-backend/pkg/auth/session"
	"github.com/teruzahostel/minimarket-backend/pkg/config"
	"github.com/teruzahostel/minimarket-backend/pkg/db"
	"github.com/teruzahostel/minimarket-backend/pkg/logger"
)

// Services bundles everything the router wires into controllers.
type Services struct {
	Catalog   catalog.Service
	Cart      cart.Service
	Checkout  checkoutsvc.Service
	Orders    orders.Service
	Analytics analytics.Service
	Settings  settings.Service
	Auth      auth.Service
}

// Cache is the slice of the redis client the router hands to middleware
// and controllers. Satisfied by *redis.Client.
type Cache interface {
	Ping(ctx context.Context) error
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	IncrWithTTL(ctx context.Context, key string, ttl time.Duration) (int64, error)
	LanguageKey(sessionID string) string
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	database db.Pinger,
	cache Cache,
	sessions session.AccessSessionChecker,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, database, cache, logg))
	})

	// Guest storefront. Every route runs under the session cookie middleware
	// so carts, language, and hand-off slots stay bound to one browser.
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.GuestSession(cfg.Session, cache, logg))

			r.Get("/categories", controllers.StorefrontCategories(svcs.Catalog, logg))
			r.Get("/products", controllers.StorefrontProducts(svcs.Catalog, logg))
			r.Get("/products/{id}", controllers.StorefrontProduct(svcs.Catalog, logg))
			r.Get("/settings", controllers.GetSettings(svcs.Settings, logg))

			r.Route("/session/language", func(r chi.Router) {
				r.Get("/", controllers.SessionLanguage())
				r.Put("/", controllers.UpdateSessionLanguage(cache, cfg.Session.CartTTL, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(svcs.Cart, logg))
				r.Post("/", controllers.AddCartItem(svcs.Cart, logg))
				r.Patch("/", controllers.UpdateCartItem(svcs.Cart, logg))
				r.Delete("/", controllers.ClearCart(svcs.Cart, logg))
				r.Delete("/{productID}", controllers.RemoveCartItem(svcs.Cart, logg))
			})

			r.Post("/orders", controllers.SubmitCheckout(svcs.Checkout, logg))
			r.Post("/checkout", controllers.SubmitCheckout(svcs.Checkout, logg))
			r.Post("/checkout/compose", controllers.ComposeCheckout(svcs.Checkout, logg))
			r.Post("/confirmation/claim", controllers.ClaimConfirmation(svcs.Checkout, logg))

			r.Post("/analytics/track", controllers.TrackEvent(svcs.Analytics, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.LoginRateLimit(cfg.AuthRateLimit, cache, logg)).Post("/login", controllers.Login(svcs.Auth, logg))

			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(cfg.JWT, sessions, logg))
				r.Get("/me", controllers.Me(svcs.Auth, logg))
				r.Post("/logout", controllers.Logout(svcs.Auth, logg))
			})
		})

		// Back office. Everything below requires a live admin session.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, sessions, logg))

			r.Route("/admin/products", func(r chi.Router) {
				r.Get("/", controllers.AdminListProducts(svcs.Catalog, logg))
				r.Post("/", controllers.AdminCreateProduct(svcs.Catalog, logg))
				r.Get("/{id}", controllers.AdminGetProduct(svcs.Catalog, logg))
				r.Put("/{id}", controllers.AdminUpdateProduct(svcs.Catalog, logg))
				r.Delete("/{id}", controllers.AdminDeleteProduct(svcs.Catalog, logg))
			})
			r.Post("/products/upload-image", controllers.UploadProductImage(cfg.Uploads, logg))

			r.Route("/admin/categories", func(r chi.Router) {
				r.Get("/", controllers.AdminListCategories(svcs.Catalog, logg))
				r.Post("/", controllers.AdminCreateCategory(svcs.Catalog, logg))
				r.Put("/{id}", controllers.AdminUpdateCategory(svcs.Catalog, logg))
				r.Delete("/{id}", controllers.AdminDeleteCategory(svcs.Catalog, logg))
			})

			r.Route("/admin/orders", func(r chi.Router) {
				r.Get("/", controllers.AdminListOrders(svcs.Orders, logg))
				r.Get("/{id}", controllers.AdminGetOrder(svcs.Orders, logg))
				r.Put("/{id}/status", controllers.AdminUpdateOrderStatus(svcs.Orders, logg))
				r.Delete("/{id}", controllers.AdminDeleteOrder(svcs.Orders, logg))
			})

			r.Route("/analytics", func(r chi.Router) {
				r.Get("/summary", controllers.AnalyticsSummary(svcs.Analytics, logg))
				r.Get("/products", controllers.AnalyticsProducts(svcs.Analytics, logg))
				r.Delete("/reset", controllers.AnalyticsReset(svcs.Analytics, logg))
			})

			r.Put("/settings", controllers.UpdateSettings(svcs.Settings, logg))
		})
	})

	return r
}
