package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/obxstays/obx-backend/internal/booking"
	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/places"
)

// fallbackNote is attached to responses served from sample catalogs so
// the frontend can surface a hint without treating it as an error.
const fallbackNote = "Live data is temporarily unavailable; showing curated sample data."

// Handlers holds the dependencies for all HTTP handlers.
type Handlers struct {
	places     PlaceSearcher
	directory  DirectoryService
	weather    WeatherService
	properties PropertyCatalog
	checkout   CheckoutService
	log        *slog.Logger
}

// NewHandlers constructs Handlers with all required dependencies.
func NewHandlers(places PlaceSearcher, directory DirectoryService, weather WeatherService,
	properties PropertyCatalog, checkout CheckoutService, log *slog.Logger) *Handlers {
	return &Handlers{
		places:     places,
		directory:  directory,
		weather:    weather,
		properties: properties,
		checkout:   checkout,
		log:        log,
	}
}

type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Note    string `json:"note,omitempty"`
	Error   string `json:"error,omitempty"`
}

// writeJSON encodes v as JSON and writes it with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeData(w http.ResponseWriter, status int, data any, prov model.Provenance) {
	env := envelope{Success: true, Data: data}
	if prov == model.SourceFallback {
		env.Note = fallbackNote
	}
	writeJSON(w, status, env)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, envelope{Success: false, Error: msg})
}

// parseLimit reads an optional positive integer limit query parameter.
func parseLimit(r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

// GetPlaces handles GET /api/v1/places?domain=&location=&limit=.
func (h *Handlers) GetPlaces(w http.ResponseWriter, r *http.Request) {
	domain := places.Domain(r.URL.Query().Get("domain"))
	if domain == "" {
		domain = places.DomainAttractions
	}
	if domain != places.DomainAttractions && domain != places.DomainRestaurants {
		writeError(w, http.StatusBadRequest, "domain must be attractions or restaurants")
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	results, prov := h.places.Search(r.Context(), domain, r.URL.Query().Get("location"), limit)
	writeData(w, http.StatusOK, results, prov)
}

// GetAttractions handles GET /api/v1/attractions?locationId=&limit=.
func (h *Handlers) GetAttractions(w http.ResponseWriter, r *http.Request) {
	h.servePlaceList(w, r, h.directory.GetAttractions)
}

// GetRestaurants handles GET /api/v1/restaurants?locationId=&limit=.
func (h *Handlers) GetRestaurants(w http.ResponseWriter, r *http.Request) {
	h.servePlaceList(w, r, h.directory.GetRestaurants)
}

// perPlaceReviewLimit caps reviews attached per place when
// withReviews=true.
const perPlaceReviewLimit = 3

type placeWithReviews struct {
	model.Place
	Reviews []model.Review `json:"reviews"`
}

func (h *Handlers) servePlaceList(w http.ResponseWriter, r *http.Request,
	fetch func(ctx context.Context, locationID string, limit int) ([]model.Place, model.Provenance)) {
	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	results, prov := fetch(r.Context(), r.URL.Query().Get("locationId"), limit)

	if r.URL.Query().Get("withReviews") != "true" {
		writeData(w, http.StatusOK, results, prov)
		return
	}

	ids := make([]string, len(results))
	for i, p := range results {
		ids[i] = p.ID
	}
	reviews := h.directory.ReviewsForPlaces(r.Context(), ids, perPlaceReviewLimit)

	enriched := make([]placeWithReviews, len(results))
	for i, p := range results {
		enriched[i] = placeWithReviews{Place: p, Reviews: reviews[p.ID].Reviews}
	}
	writeData(w, http.StatusOK, enriched, prov)
}

// GetReviews handles GET /api/v1/reviews?locationId=&limit=.
func (h *Handlers) GetReviews(w http.ResponseWriter, r *http.Request) {
	locationID := r.URL.Query().Get("locationId")
	if locationID == "" {
		writeError(w, http.StatusBadRequest, "locationId is required")
		return
	}

	limit, ok := parseLimit(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "limit must be a positive integer")
		return
	}

	reviews, prov := h.directory.GetReviews(r.Context(), locationID, limit)
	writeData(w, http.StatusOK, reviews, prov)
}

// GetLocationDetails handles GET /api/v1/locations/{locationId}.
func (h *Handlers) GetLocationDetails(w http.ResponseWriter, r *http.Request) {
	locationID := chi.URLParam(r, "locationId")

	place, prov := h.directory.GetLocationDetails(r.Context(), locationID)
	if place == nil {
		writeError(w, http.StatusNotFound, "location not found")
		return
	}
	writeData(w, http.StatusOK, place, prov)
}

// GetWeather handles GET /api/v1/weather?location= or ?lat=&lng=.
// Weather is never a hard failure; malformed coordinates are the only
// 400.
func (h *Handlers) GetWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	latRaw, lngRaw := q.Get("lat"), q.Get("lng")

	if latRaw != "" || lngRaw != "" {
		lat, latErr := strconv.ParseFloat(latRaw, 64)
		lng, lngErr := strconv.ParseFloat(lngRaw, 64)
		if latErr != nil || lngErr != nil {
			writeError(w, http.StatusBadRequest, "lat and lng must both be valid numbers")
			return
		}
		if math.IsNaN(lat) || lat < -90 || lat > 90 || math.IsNaN(lng) || lng < -180 || lng > 180 {
			writeError(w, http.StatusBadRequest, "lat must be within [-90, 90] and lng within [-180, 180]")
			return
		}

		label := q.Get("location")
		snap := h.weather.GetByCoordinates(r.Context(), lat, lng, label)
		writeData(w, http.StatusOK, snap, snap.Source)
		return
	}

	snap := h.weather.GetByLocation(r.Context(), q.Get("location"))
	writeData(w, http.StatusOK, snap, snap.Source)
}

// ListProperties handles GET /api/v1/properties.
func (h *Handlers) ListProperties(w http.ResponseWriter, r *http.Request) {
	props, prov := h.properties.List(r.Context())
	writeData(w, http.StatusOK, props, prov)
}

// GetProperty handles GET /api/v1/properties/{slug}.
func (h *Handlers) GetProperty(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	prop, prov := h.properties.BySlug(r.Context(), slug)
	if prop == nil {
		writeError(w, http.StatusNotFound, "property not found")
		return
	}
	writeData(w, http.StatusOK, prop, prov)
}

// CreateCheckoutSession handles POST /api/v1/checkout/session.
func (h *Handlers) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	var req booking.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	session, err := h.checkout.CreateSession(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrUnknownProperty):
			writeError(w, http.StatusNotFound, "property not found")
		case errors.Is(err, booking.ErrInvalidRequest):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			h.log.Error("checkout session creation failed", "err", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, envelope{Success: true, Data: session})
}

// Availability reports which upstream providers have credentials.
type Availability struct {
	Places    bool `json:"places"`
	Weather   bool `json:"weather"`
	Directory bool `json:"directory"`
	Geocoding bool `json:"geocoding"`
}

// Pinger is satisfied by any backing store that supports a
// connectivity check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandlerFunc returns an http.HandlerFunc reporting provider
// availability and backing-store connectivity. Either pinger may be
// nil when that store is not configured. Missing provider credentials
// never degrade health; the service serves fallback data instead.
func HealthHandlerFunc(avail Availability, db, redis Pinger, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		status := http.StatusOK
		body := map[string]any{
			"status":    "ok",
			"providers": avail,
		}

		if db != nil {
			body["db"] = "ok"
			if err := db.Ping(ctx); err != nil {
				log.Error("health check: db ping failed", "err", err)
				body["db"] = "error"
				status = http.StatusServiceUnavailable
			}
		}

		if redis != nil {
			body["redis"] = "ok"
			if err := redis.Ping(ctx); err != nil {
				log.Error("health check: redis ping failed", "err", err)
				body["redis"] = "error"
				status = http.StatusServiceUnavailable
			}
		}

		if status != http.StatusOK {
			body["status"] = "degraded"
		}
		writeJSON(w, status, body)
	}
}
