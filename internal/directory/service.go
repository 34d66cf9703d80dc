package directory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

const (
	defaultPlaceLimit  = 10
	defaultReviewLimit = 5

	// reviewFanOutLimit caps concurrent per-place review fetches.
	reviewFanOutLimit = 10
)

type contentClient interface {
	Available() bool
	Attractions(ctx context.Context, locationID string, limit int) ([]model.Place, error)
	Restaurants(ctx context.Context, locationID string, limit int) ([]model.Place, error)
	Reviews(ctx context.Context, locationID string, limit int) ([]model.Review, error)
	Details(ctx context.Context, locationID string) (*model.Place, error)
}

// ContentCache is the optional 24-hour read-through cache for live
// directory payloads. A nil implementation-free Service works without
// one; misses and cache errors both mean "go to the network".
type ContentCache interface {
	GetPlaces(ctx context.Context, key string) ([]model.Place, error)
	SetPlaces(ctx context.Context, key string, places []model.Place) error
	GetReviews(ctx context.Context, key string) ([]model.Review, error)
	SetReviews(ctx context.Context, key string, reviews []model.Review) error
}

// Service is the directory's aggregation and fallback controller.
// Every Get operation returns a usable list; provider failures degrade
// to the sample catalogs and are only visible through the provenance
// tag.
type Service struct {
	client contentClient
	cache  ContentCache
	log    *slog.Logger
	now    func() time.Time
}

// NewService constructs a Service. cache may be nil.
func NewService(client contentClient, cache ContentCache, log *slog.Logger) *Service {
	return &Service{client: client, cache: cache, log: log, now: time.Now}
}

// NewServiceWithClock constructs a Service with an injected clock (for tests).
func NewServiceWithClock(client contentClient, cache ContentCache, log *slog.Logger, now func() time.Time) *Service {
	return &Service{client: client, cache: cache, log: log, now: now}
}

// GetAttractions returns up to limit attractions for the location.
func (s *Service) GetAttractions(ctx context.Context, locationID string, limit int) ([]model.Place, model.Provenance) {
	return s.getPlaces(ctx, "attractions", locationID, limit, s.client.Attractions, sampleAttractions)
}

// GetRestaurants returns up to limit restaurants for the location.
func (s *Service) GetRestaurants(ctx context.Context, locationID string, limit int) ([]model.Place, model.Provenance) {
	return s.getPlaces(ctx, "restaurants", locationID, limit, s.client.Restaurants, sampleRestaurants)
}

func (s *Service) getPlaces(
	ctx context.Context,
	domain, locationID string,
	limit int,
	fetch func(ctx context.Context, locationID string, limit int) ([]model.Place, error),
	catalog []model.Place,
) ([]model.Place, model.Provenance) {
	if locationID == "" {
		locationID = DefaultLocationID
	}
	if limit <= 0 {
		limit = defaultPlaceLimit
	}

	if !s.client.Available() {
		s.log.Info("directory provider unavailable, serving sample data", "domain", domain)
		return truncatePlaces(catalog, limit), model.SourceFallback
	}

	key := cacheKey(domain, locationID, limit)
	if cached := s.cachedPlaces(ctx, key); cached != nil {
		return cached, model.SourceLive
	}

	live, err := fetch(ctx, locationID, limit)
	if err != nil {
		s.log.Warn("directory fetch failed, serving sample data",
			"domain", domain, "location_id", locationID, "class", upstream.Class(err), "err", err)
		return truncatePlaces(catalog, limit), model.SourceFallback
	}
	if len(live) == 0 {
		s.log.Warn("directory fetch returned nothing, serving sample data",
			"domain", domain, "location_id", locationID, "class", upstream.Class(upstream.ErrEmptyResult))
		return truncatePlaces(catalog, limit), model.SourceFallback
	}

	live = truncatePlaces(live, limit)
	s.storePlaces(ctx, key, live)
	return live, model.SourceLive
}

// GetReviews returns up to limit reviews for the location. Fallback
// reviews carry staggered distinct timestamps derived from the
// service clock.
func (s *Service) GetReviews(ctx context.Context, locationID string, limit int) ([]model.Review, model.Provenance) {
	if limit <= 0 {
		limit = defaultReviewLimit
	}

	if !s.client.Available() {
		return s.sampleReviews(locationID, limit), model.SourceFallback
	}

	key := cacheKey("reviews", locationID, limit)
	if s.cache != nil {
		cached, err := s.cache.GetReviews(ctx, key)
		if err != nil {
			s.log.Warn("review cache lookup failed", "key", key, "err", err)
		}
		if cached != nil {
			return cached, model.SourceLive
		}
	}

	live, err := s.client.Reviews(ctx, locationID, limit)
	if err != nil {
		s.log.Warn("review fetch failed, serving sample data",
			"location_id", locationID, "class", upstream.Class(err), "err", err)
		return s.sampleReviews(locationID, limit), model.SourceFallback
	}
	if len(live) == 0 {
		return s.sampleReviews(locationID, limit), model.SourceFallback
	}

	if s.cache != nil {
		if err := s.cache.SetReviews(ctx, key, live); err != nil {
			s.log.Warn("review cache store failed", "key", key, "err", err)
		}
	}
	return live, model.SourceLive
}

// PlaceReviews holds one place's reviews, tagged with that batch's
// provenance.
type PlaceReviews struct {
	Reviews []model.Review
	Source  model.Provenance
}

// ReviewsForPlaces fetches reviews for several places with bounded
// concurrency. Results are keyed by place ID, never by completion
// order.
func (s *Service) ReviewsForPlaces(ctx context.Context, locationIDs []string, perPlace int) map[string]PlaceReviews {
	out := make(map[string]PlaceReviews, len(locationIDs))
	results := make([]PlaceReviews, len(locationIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(reviewFanOutLimit)

	for i, id := range locationIDs {
		g.Go(func() error {
			reviews, prov := s.GetReviews(gCtx, id, perPlace)
			results[i] = PlaceReviews{Reviews: reviews, Source: prov}
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range locationIDs {
		out[id] = results[i]
	}
	return out
}

// GetLocationDetails returns one location record, degrading to the
// sample catalogs when the live lookup is impossible. An ID that is
// neither live nor in any catalog returns nil rather than an arbitrary
// sample record.
func (s *Service) GetLocationDetails(ctx context.Context, locationID string) (*model.Place, model.Provenance) {
	if s.client.Available() {
		p, err := s.client.Details(ctx, locationID)
		if err == nil {
			return p, model.SourceLive
		}
		s.log.Warn("location details fetch failed, serving sample data",
			"location_id", locationID, "class", upstream.Class(err), "err", err)
	}

	for _, catalog := range [][]model.Place{sampleAttractions, sampleRestaurants} {
		for _, p := range catalog {
			if p.ID == locationID {
				return &p, model.SourceFallback
			}
		}
	}
	return nil, model.SourceFallback
}

func (s *Service) cachedPlaces(ctx context.Context, key string) []model.Place {
	if s.cache == nil {
		return nil
	}
	cached, err := s.cache.GetPlaces(ctx, key)
	if err != nil {
		s.log.Warn("place cache lookup failed", "key", key, "err", err)
		return nil
	}
	return cached
}

func (s *Service) storePlaces(ctx context.Context, key string, places []model.Place) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetPlaces(ctx, key, places); err != nil {
		s.log.Warn("place cache store failed", "key", key, "err", err)
	}
}

func cacheKey(domain, locationID string, limit int) string {
	return fmt.Sprintf("directory:%s:%s:%d", domain, locationID, limit)
}

func truncatePlaces(places []model.Place, limit int) []model.Place {
	out := make([]model.Place, 0, limit)
	for _, p := range places {
		if len(out) == limit {
			break
		}
		out = append(out, p)
	}
	return out
}
