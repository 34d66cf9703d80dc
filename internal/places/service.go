package places

import (
	"context"
	"log/slog"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/obxstays/obx-backend/internal/geo"
	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

// Domain selects which half of the directory a search targets.
type Domain string

const (
	DomainAttractions Domain = "attractions"
	DomainRestaurants Domain = "restaurants"
)

const (
	defaultRadiusMeters = 50000
	defaultLimit        = 12

	// Rating floors below which a result is considered low-confidence.
	attractionMinRating = 3.5
	restaurantMinRating = 3.0
)

var domainCategories = map[Domain][]string{
	DomainAttractions: {"tourist_attraction", "museum", "park", "amusement_park", "aquarium"},
	DomainRestaurants: {"restaurant", "meal_takeaway", "bar", "cafe"},
}

type searchClient interface {
	Available() bool
	NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, category string) ([]model.Place, error)
}

type locationResolver interface {
	Resolve(ctx context.Context, address string) model.GeocodeResult
}

// Service is the single entry point for place searches. It owns the
// live/fallback decision: callers always get a usable list.
type Service struct {
	client   searchClient
	resolver locationResolver
	log      *slog.Logger
}

// NewService constructs a Service.
func NewService(client searchClient, resolver locationResolver, log *slog.Logger) *Service {
	return &Service{client: client, resolver: resolver, log: log}
}

// Search returns up to limit places for the domain around the given
// free-text location, ranked by rating. The returned provenance is
// uniform across the batch: live results and sample results are never
// mixed in one response.
func (s *Service) Search(ctx context.Context, domain Domain, location string, limit int) ([]model.Place, model.Provenance) {
	if limit <= 0 || limit > defaultLimit {
		limit = defaultLimit
	}

	origin := s.resolver.Resolve(ctx, location)

	if !s.client.Available() {
		s.log.Info("places provider unavailable, serving sample data", "domain", domain)
		return s.fallback(domain, origin, limit), model.SourceFallback
	}

	raw, err := s.searchCategories(ctx, domain, origin)
	if err != nil {
		s.log.Warn("places search failed, serving sample data",
			"domain", domain, "class", upstream.Class(err), "err", err)
		return s.fallback(domain, origin, limit), model.SourceFallback
	}

	results := qualityFilter(raw, minRating(domain), limit)
	if len(results) == 0 {
		// Nothing survived the filter. An empty list is
		// indistinguishable from "nothing worth showing", so degrade
		// the same way a failed call would.
		s.log.Warn("places search returned no usable results, serving sample data",
			"domain", domain, "class", upstream.Class(upstream.ErrEmptyResult))
		return s.fallback(domain, origin, limit), model.SourceFallback
	}

	annotateDistance(results, origin, s.log)
	return results, model.SourceLive
}

// searchCategories fans out one nearby search per category. Individual
// category failures are tolerated; the search fails only when every
// category does. Results are concatenated in category order, not
// completion order, so output stays deterministic.
func (s *Service) searchCategories(ctx context.Context, domain Domain, origin model.GeocodeResult) ([]model.Place, error) {
	categories := domainCategories[domain]

	batches := make([][]model.Place, len(categories))
	errs := make([]error, len(categories))

	g, gCtx := errgroup.WithContext(ctx)
	for i, category := range categories {
		g.Go(func() error {
			batch, err := s.client.NearbySearch(gCtx, origin.Lat, origin.Lng, defaultRadiusMeters, category)
			if err != nil {
				s.log.Warn("category search failed", "category", category, "class", upstream.Class(err), "err", err)
				errs[i] = err
				return nil
			}
			batches[i] = batch
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []model.Place
	var lastErr error
	failed := 0
	for i := range categories {
		if errs[i] != nil {
			failed++
			lastErr = errs[i]
			continue
		}
		results = append(results, batches[i]...)
	}
	if failed == len(categories) {
		return nil, lastErr
	}
	return results, nil
}

// qualityFilter applies the dedup → threshold → sort → truncate
// pipeline. The sort is stable: ties on rating break on review count,
// and full ties preserve original order.
func qualityFilter(raw []model.Place, minRating float64, limit int) []model.Place {
	seen := make(map[string]struct{}, len(raw))
	filtered := make([]model.Place, 0, len(raw))
	for _, p := range raw {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		if p.Rating < minRating {
			continue
		}
		filtered = append(filtered, p)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].Rating != filtered[j].Rating {
			return filtered[i].Rating > filtered[j].Rating
		}
		return filtered[i].ReviewCount > filtered[j].ReviewCount
	})

	if len(filtered) > limit {
		filtered = filtered[:limit]
	}
	return filtered
}

func minRating(domain Domain) float64 {
	if domain == DomainRestaurants {
		return restaurantMinRating
	}
	return attractionMinRating
}

// fallback returns a fresh copy of the domain's sample catalog,
// distance-annotated like the live path.
func (s *Service) fallback(domain Domain, origin model.GeocodeResult, limit int) []model.Place {
	catalog := fallbackAttractions
	if domain == DomainRestaurants {
		catalog = fallbackRestaurants
	}

	out := make([]model.Place, 0, limit)
	for _, p := range catalog {
		if len(out) == limit {
			break
		}
		out = append(out, p)
	}
	annotateDistance(out, origin, s.log)
	return out
}

func annotateDistance(places []model.Place, origin model.GeocodeResult, log *slog.Logger) {
	for i := range places {
		d, err := geo.Distance(origin.Lat, origin.Lng, places[i].Location.Lat, places[i].Location.Lng)
		if err != nil {
			log.Warn("skipping distance annotation", "place", places[i].ID, "err", err)
			continue
		}
		places[i].DistanceMiles = d
	}
}
