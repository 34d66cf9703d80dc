package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// NewRouter builds and returns the Chi router with all routes configured.
// Rate limiting is applied globally: 60 requests per minute per IP.
// Either pinger may be nil when that backing store is not configured.
func NewRouter(handlers *Handlers, avail Availability, db, redis Pinger, log *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(log))
	r.Use(httprate.LimitByIP(60, time.Minute))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", HealthHandlerFunc(avail, db, redis, log))

		r.Get("/places", handlers.GetPlaces)
		r.Get("/attractions", handlers.GetAttractions)
		r.Get("/restaurants", handlers.GetRestaurants)
		r.Get("/reviews", handlers.GetReviews)
		r.Get("/locations/{locationId}", handlers.GetLocationDetails)
		r.Get("/weather", handlers.GetWeather)

		r.Get("/properties", handlers.ListProperties)
		r.Get("/properties/{slug}", handlers.GetProperty)

		r.Post("/checkout/session", handlers.CreateCheckoutSession)
	})

	return r
}

// Ensure chi.Mux implements http.Handler.
var _ http.Handler = (*chi.Mux)(nil)
