package places_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/places"
	"github.com/obxstays/obx-backend/internal/upstream"
)

type mockSearchClient struct {
	available bool
	searchFn  func(ctx context.Context, lat, lng float64, radiusMeters int, category string) ([]model.Place, error)
}

func (m *mockSearchClient) Available() bool { return m.available }
func (m *mockSearchClient) NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, category string) ([]model.Place, error) {
	return m.searchFn(ctx, lat, lng, radiusMeters, category)
}

type staticResolver struct{}

func (staticResolver) Resolve(_ context.Context, address string) model.GeocodeResult {
	return model.GeocodeResult{Lat: 35.9582, Lng: -75.6201, FormattedAddress: address, Source: model.SourceFallback}
}

func newService(client *mockSearchClient) *places.Service {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return places.NewService(client, staticResolver{}, log)
}

func livePlace(id string, rating float64, reviews int) model.Place {
	return model.Place{
		ID:          id,
		Name:        "Place " + id,
		Rating:      rating,
		ReviewCount: reviews,
		Location:    model.Coordinates{Lat: 35.9, Lng: -75.6},
		Source:      model.SourceLive,
	}
}

// oneCategory returns results for the first category only; other
// categories come back empty, the way sparse regions behave.
func oneCategory(results []model.Place) func(context.Context, float64, float64, int, string) ([]model.Place, error) {
	return func(_ context.Context, _, _ float64, _ int, category string) ([]model.Place, error) {
		if category == "tourist_attraction" || category == "restaurant" {
			return results, nil
		}
		return nil, nil
	}
}

func TestSearch_NoCredential_Fallback(t *testing.T) {
	svc := newService(&mockSearchClient{available: false})

	got, prov := svc.Search(context.Background(), places.DomainAttractions, "Outer Banks, NC", 6)
	assert.Equal(t, model.SourceFallback, prov)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 6)
	for _, p := range got {
		assert.Equal(t, model.SourceFallback, p.Source)
	}
}

func TestSearch_ProviderForbidden_Fallback(t *testing.T) {
	// Credential present, provider answers 403 on every category.
	client := &mockSearchClient{
		available: true,
		searchFn: func(_ context.Context, _, _ float64, _ int, _ string) ([]model.Place, error) {
			return nil, &upstream.StatusError{Status: http.StatusForbidden}
		},
	}
	svc := newService(client)

	got, prov := svc.Search(context.Background(), places.DomainAttractions, "Outer Banks, NC", 6)
	assert.Equal(t, model.SourceFallback, prov)
	require.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 6)
}

func TestSearch_QualityFilter(t *testing.T) {
	raw := []model.Place{
		livePlace("a", 4.9, 100),
		livePlace("b", 3.2, 500), // below the 3.5 attraction floor
		livePlace("c", 4.7, 300),
		livePlace("d", 4.1, 50),
		livePlace("e", 4.7, 900),
		livePlace("f", 3.9, 10),
	}
	client := &mockSearchClient{available: true, searchFn: oneCategory(raw)}
	svc := newService(client)

	got, prov := svc.Search(context.Background(), places.DomainAttractions, "", 4)
	assert.Equal(t, model.SourceLive, prov)
	require.Len(t, got, 4)

	// 3.2 excluded, sorted descending, review-count tie-break between c and e.
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "e", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
	assert.Equal(t, "d", got[3].ID)
}

func TestSearch_FullTiePreservesOrder(t *testing.T) {
	raw := []model.Place{
		livePlace("first", 4.5, 200),
		livePlace("second", 4.5, 200),
	}
	client := &mockSearchClient{available: true, searchFn: oneCategory(raw)}
	svc := newService(client)

	got, _ := svc.Search(context.Background(), places.DomainAttractions, "", 12)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].ID)
	assert.Equal(t, "second", got[1].ID)
}

func TestSearch_DeduplicatesAcrossCategories(t *testing.T) {
	// The same place shows up under two category searches.
	client := &mockSearchClient{
		available: true,
		searchFn: func(_ context.Context, _, _ float64, _ int, category string) ([]model.Place, error) {
			switch category {
			case "tourist_attraction", "museum":
				return []model.Place{livePlace("dup", 4.8, 100)}, nil
			default:
				return nil, nil
			}
		},
	}
	svc := newService(client)

	got, _ := svc.Search(context.Background(), places.DomainAttractions, "", 12)
	require.Len(t, got, 1)
	assert.Equal(t, "dup", got[0].ID)
}

func TestSearch_EmptyLiveResult_Fallback(t *testing.T) {
	// Everything scored below the floor: treat like a failure.
	client := &mockSearchClient{
		available: true,
		searchFn:  oneCategory([]model.Place{livePlace("low", 2.1, 40)}),
	}
	svc := newService(client)

	got, prov := svc.Search(context.Background(), places.DomainAttractions, "", 6)
	assert.Equal(t, model.SourceFallback, prov)
	require.NotEmpty(t, got)
}

func TestSearch_RestaurantThresholdIsLower(t *testing.T) {
	raw := []model.Place{livePlace("r1", 3.2, 40)}
	client := &mockSearchClient{available: true, searchFn: oneCategory(raw)}
	svc := newService(client)

	got, prov := svc.Search(context.Background(), places.DomainRestaurants, "", 6)
	assert.Equal(t, model.SourceLive, prov)
	require.Len(t, got, 1)
}

func TestSearch_Idempotent(t *testing.T) {
	raw := []model.Place{
		livePlace("a", 4.9, 100),
		livePlace("b", 4.7, 300),
		livePlace("c", 4.7, 300),
	}
	client := &mockSearchClient{available: true, searchFn: oneCategory(raw)}
	svc := newService(client)

	first, _ := svc.Search(context.Background(), places.DomainAttractions, "Duck, NC", 12)
	second, _ := svc.Search(context.Background(), places.DomainAttractions, "Duck, NC", 12)
	assert.True(t, reflect.DeepEqual(first, second), "identical inputs must produce identical output")
}

func TestSearch_AnnotatesDistance(t *testing.T) {
	raw := []model.Place{livePlace("a", 4.9, 100)}
	client := &mockSearchClient{available: true, searchFn: oneCategory(raw)}
	svc := newService(client)

	got, _ := svc.Search(context.Background(), places.DomainAttractions, "Nags Head, NC", 12)
	require.Len(t, got, 1)
	assert.Greater(t, got[0].DistanceMiles, 0.0)
}

func TestSearch_OneCategoryFailureTolerated(t *testing.T) {
	client := &mockSearchClient{
		available: true,
		searchFn: func(_ context.Context, _, _ float64, _ int, category string) ([]model.Place, error) {
			if category == "museum" {
				return nil, fmt.Errorf("transient failure")
			}
			return []model.Place{livePlace(category, 4.6, 100)}, nil
		},
	}
	svc := newService(client)

	got, prov := svc.Search(context.Background(), places.DomainAttractions, "", 12)
	assert.Equal(t, model.SourceLive, prov)
	assert.Len(t, got, 4) // 5 categories, one failed
}

func TestFallback_RatingAndPriceBounds(t *testing.T) {
	svc := newService(&mockSearchClient{available: false})

	attractions, _ := svc.Search(context.Background(), places.DomainAttractions, "", 12)
	for _, p := range attractions {
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
	}

	restaurants, _ := svc.Search(context.Background(), places.DomainRestaurants, "", 12)
	for _, p := range restaurants {
		assert.GreaterOrEqual(t, p.Rating, 0.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		if p.PriceLevel != 0 {
			assert.Contains(t, []int{1, 2, 3, 4}, p.PriceLevel)
		}
	}
}

func TestFallback_SchemaComplete(t *testing.T) {
	// Every field the live path can populate appears on at least one
	// fallback record.
	svc := newService(&mockSearchClient{available: false})
	got, _ := svc.Search(context.Background(), places.DomainRestaurants, "", 12)

	var hasOpenNow, hasPhoto, hasPrice, hasVicinity, hasTypes bool
	for _, p := range got {
		require.NotEmpty(t, p.ID)
		require.NotEmpty(t, p.Name)
		require.NotZero(t, p.Location.Lat)
		hasOpenNow = hasOpenNow || p.OpenNow != nil
		hasPhoto = hasPhoto || p.PhotoURL != ""
		hasPrice = hasPrice || p.PriceLevel != 0
		hasVicinity = hasVicinity || p.Vicinity != ""
		hasTypes = hasTypes || len(p.Types) > 0
	}
	assert.True(t, hasOpenNow)
	assert.True(t, hasPhoto)
	assert.True(t, hasPrice)
	assert.True(t, hasVicinity)
	assert.True(t, hasTypes)
}
