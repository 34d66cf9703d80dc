// Package places wraps the Google Places directory: nearby search by
// category, normalization into model.Place, and the quality-filter
// pipeline that turns raw results into a ranked list.
package places

import (
	"context"
	"fmt"
	"net/url"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

const (
	nearbySearchURL = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
	photoURL        = "https://maps.googleapis.com/maps/api/place/photo"

	// placeholderImage stands in for a photo when no credential is
	// available to sign a real photo URL.
	placeholderImage = "/placeholder.svg?height=300&width=400"
)

// Client fetches places from the Google Places nearby-search endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *upstream.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: nearbySearchURL, http: upstream.NewClient("google-places")}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, http: upstream.NewClient("google-places")}
}

// Available reports whether a credential was configured.
func (c *Client) Available() bool { return c.apiKey != "" }

type nearbyResponse struct {
	Results []rawPlace `json:"results"`
	Status  string     `json:"status"`
}

type rawPlace struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Rating           *float64 `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PriceLevel       int      `json:"price_level"`
	Vicinity         string   `json:"vicinity"`
	Types            []string `json:"types"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	OpeningHours *struct {
		OpenNow bool `json:"open_now"`
	} `json:"opening_hours"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
}

// NearbySearch returns normalized places of one category around the
// given point. Items missing an identifier, a name, or valid
// coordinates are dropped at this boundary rather than passed along.
func (c *Client) NearbySearch(ctx context.Context, lat, lng float64, radiusMeters int, category string) ([]model.Place, error) {
	if !c.Available() {
		return nil, upstream.ErrNoCredential
	}

	endpoint := fmt.Sprintf("%s?location=%f,%f&radius=%d&type=%s&key=%s",
		c.baseURL, lat, lng, radiusMeters, url.QueryEscape(category), c.apiKey)

	var raw nearbyResponse
	if err := c.http.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("nearby search for %s: %w", category, err)
	}

	if raw.Status != "OK" && raw.Status != "ZERO_RESULTS" {
		return nil, fmt.Errorf("nearby search for %s: provider status %s", category, raw.Status)
	}

	out := make([]model.Place, 0, len(raw.Results))
	for _, r := range raw.Results {
		p, ok := c.normalize(r)
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) normalize(r rawPlace) (model.Place, bool) {
	if r.PlaceID == "" || r.Name == "" {
		return model.Place{}, false
	}
	loc := r.Geometry.Location
	if loc.Lat < -90 || loc.Lat > 90 || loc.Lng < -180 || loc.Lng > 180 {
		return model.Place{}, false
	}

	p := model.Place{
		ID:          r.PlaceID,
		Name:        r.Name,
		Types:       r.Types,
		ReviewCount: r.UserRatingsTotal,
		PriceLevel:  r.PriceLevel,
		Vicinity:    r.Vicinity,
		Location:    model.Coordinates{Lat: loc.Lat, Lng: loc.Lng},
		Source:      model.SourceLive,
	}
	if r.Rating != nil {
		if *r.Rating < 0 || *r.Rating > 5 {
			return model.Place{}, false
		}
		p.Rating = *r.Rating
	}
	if r.OpeningHours != nil {
		open := r.OpeningHours.OpenNow
		p.OpenNow = &open
	}
	if len(r.Photos) > 0 {
		p.PhotoURL = c.PhotoURL(r.Photos[0].PhotoReference, 400)
	}
	return p, true
}

// PhotoURL builds a fetchable photo URL from a photo reference.
func (c *Client) PhotoURL(photoReference string, maxWidth int) string {
	if !c.Available() {
		return placeholderImage
	}
	return fmt.Sprintf("%s?maxwidth=%d&photo_reference=%s&key=%s",
		photoURL, maxWidth, url.QueryEscape(photoReference), c.apiKey)
}
