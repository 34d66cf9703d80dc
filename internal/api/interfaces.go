package api

import (
	"context"

	"github.com/obxstays/obx-backend/internal/booking"
	"github.com/obxstays/obx-backend/internal/directory"
	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/places"
)

// PlaceSearcher defines the nearby-search aggregation needed by handlers.
type PlaceSearcher interface {
	Search(ctx context.Context, domain places.Domain, location string, limit int) ([]model.Place, model.Provenance)
}

// DirectoryService defines the travel-directory operations needed by handlers.
type DirectoryService interface {
	GetAttractions(ctx context.Context, locationID string, limit int) ([]model.Place, model.Provenance)
	GetRestaurants(ctx context.Context, locationID string, limit int) ([]model.Place, model.Provenance)
	GetReviews(ctx context.Context, locationID string, limit int) ([]model.Review, model.Provenance)
	ReviewsForPlaces(ctx context.Context, locationIDs []string, perPlace int) map[string]directory.PlaceReviews
	GetLocationDetails(ctx context.Context, locationID string) (*model.Place, model.Provenance)
}

// WeatherService defines the weather operations needed by handlers.
type WeatherService interface {
	GetByLocation(ctx context.Context, address string) model.WeatherSnapshot
	GetByCoordinates(ctx context.Context, lat, lng float64, label string) model.WeatherSnapshot
}

// PropertyCatalog defines the listing operations needed by handlers.
type PropertyCatalog interface {
	List(ctx context.Context) ([]model.Property, model.Provenance)
	BySlug(ctx context.Context, slug string) (*model.Property, model.Provenance)
}

// CheckoutService defines the booking operations needed by handlers.
type CheckoutService interface {
	CreateSession(ctx context.Context, req booking.CheckoutRequest) (*booking.CheckoutSession, error)
}
