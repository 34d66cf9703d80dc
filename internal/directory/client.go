// Package directory wraps the TripAdvisor Content API: attractions,
// restaurants, reviews, and location details for a fixed set of known
// location IDs, with sample-data fallback when the API is unreachable.
package directory

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

const contentAPIURL = "https://api.content.tripadvisor.com/api/v1"

// DefaultLocationID is the main Outer Banks region.
const DefaultLocationID = "49022"

// locationIDs maps the service area's town names to their directory
// location IDs.
var locationIDs = map[string]string{
	"Outer Banks":      DefaultLocationID,
	"Nags Head":        "58541",
	"Kill Devil Hills": "49256",
	"Kitty Hawk":       "49253",
	"Duck":             "49242",
	"Corolla":          "49233",
	"Hatteras":         "49248",
	"Ocracoke":         "49265",
	"Manteo":           "49260",
	"Rodanthe":         "49270",
	"Buxton":           "49229",
	"Avon":             "49223",
	"Waves":            "1815223",
	"Salvo":            "3476045",
	"Frisco":           "49245",
}

// LocationID returns the directory ID for a known town name.
func LocationID(name string) (string, bool) {
	id, ok := locationIDs[name]
	return id, ok
}

// Client fetches location content from the TripAdvisor Content API.
type Client struct {
	apiKey  string
	baseURL string
	http    *upstream.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: contentAPIURL, http: upstream.NewClient("tripadvisor")}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, http: upstream.NewClient("tripadvisor")}
}

// Available reports whether a credential was configured.
func (c *Client) Available() bool { return c.apiKey != "" }

type listResponse struct {
	Data []rawLocation `json:"data"`
}

type rawLocation struct {
	LocationID string  `json:"location_id"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating,string"`
	NumReviews int     `json:"num_reviews,string"`
	PriceLevel string  `json:"price_level"`
	Latitude   string  `json:"latitude"`
	Longitude  string  `json:"longitude"`
	AddressObj struct {
		City  string `json:"city"`
		State string `json:"state"`
	} `json:"address_obj"`
	Category struct {
		Name string `json:"name"`
	} `json:"category"`
	Cuisine []struct {
		Name string `json:"name"`
	} `json:"cuisine"`
	Photo struct {
		Images struct {
			Medium struct {
				URL string `json:"url"`
			} `json:"medium"`
		} `json:"images"`
	} `json:"photo"`
}

type reviewsResponse struct {
	Data []rawReview `json:"data"`
}

type rawReview struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Text          string `json:"text"`
	Rating        int    `json:"rating"`
	PublishedDate string `json:"published_date"`
	User          struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Attractions lists attractions for a location ID.
func (c *Client) Attractions(ctx context.Context, locationID string, limit int) ([]model.Place, error) {
	return c.listPlaces(ctx, locationID, "attractions", limit)
}

// Restaurants lists restaurants for a location ID.
func (c *Client) Restaurants(ctx context.Context, locationID string, limit int) ([]model.Place, error) {
	return c.listPlaces(ctx, locationID, "restaurants", limit)
}

func (c *Client) listPlaces(ctx context.Context, locationID, kind string, limit int) ([]model.Place, error) {
	if !c.Available() {
		return nil, upstream.ErrNoCredential
	}

	endpoint := fmt.Sprintf("%s/location/%s/%s?key=%s&language=en&limit=%d",
		c.baseURL, url.PathEscape(locationID), kind, c.apiKey, limit)

	var raw listResponse
	if err := c.http.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("listing %s for location %s: %w", kind, locationID, err)
	}

	out := make([]model.Place, 0, len(raw.Data))
	for _, r := range raw.Data {
		p, ok := normalizeLocation(r)
		if !ok {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Reviews lists reviews for a location ID. Reviews with out-of-range
// ratings or no identifier are dropped at this boundary.
func (c *Client) Reviews(ctx context.Context, locationID string, limit int) ([]model.Review, error) {
	if !c.Available() {
		return nil, upstream.ErrNoCredential
	}

	endpoint := fmt.Sprintf("%s/location/%s/reviews?key=%s&language=en&limit=%d",
		c.baseURL, url.PathEscape(locationID), c.apiKey, limit)

	var raw reviewsResponse
	if err := c.http.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("listing reviews for location %s: %w", locationID, err)
	}

	out := make([]model.Review, 0, len(raw.Data))
	for _, r := range raw.Data {
		if r.ID == "" || r.Rating < 1 || r.Rating > 5 {
			continue
		}
		published, err := time.Parse(time.RFC3339, r.PublishedDate)
		if err != nil {
			continue
		}
		out = append(out, model.Review{
			ID:        r.ID,
			Title:     r.Title,
			Text:      r.Text,
			Rating:    r.Rating,
			Published: published,
			Author:    r.User.Username,
			Source:    model.SourceLive,
		})
	}
	return out, nil
}

// Details fetches a single location record.
func (c *Client) Details(ctx context.Context, locationID string) (*model.Place, error) {
	if !c.Available() {
		return nil, upstream.ErrNoCredential
	}

	endpoint := fmt.Sprintf("%s/location/%s/details?key=%s&language=en",
		c.baseURL, url.PathEscape(locationID), c.apiKey)

	var raw rawLocation
	if err := c.http.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("location details for %s: %w", locationID, err)
	}

	p, ok := normalizeLocation(raw)
	if !ok {
		return nil, fmt.Errorf("location details for %s: %w", locationID, upstream.ErrEmptyResult)
	}
	return &p, nil
}

func normalizeLocation(r rawLocation) (model.Place, bool) {
	if r.LocationID == "" || r.Name == "" {
		return model.Place{}, false
	}
	if r.Rating < 0 || r.Rating > 5 {
		return model.Place{}, false
	}

	p := model.Place{
		ID:          r.LocationID,
		Name:        r.Name,
		Rating:      r.Rating,
		ReviewCount: r.NumReviews,
		PriceLevel:  parsePriceLevel(r.PriceLevel),
		PhotoURL:    r.Photo.Images.Medium.URL,
		Source:      model.SourceLive,
	}

	if r.AddressObj.City != "" {
		p.Vicinity = r.AddressObj.City
		if r.AddressObj.State != "" {
			p.Vicinity += ", " + r.AddressObj.State
		}
	}

	if r.Category.Name != "" {
		p.Types = append(p.Types, r.Category.Name)
	}
	for _, cu := range r.Cuisine {
		if cu.Name != "" {
			p.Types = append(p.Types, cu.Name)
		}
	}

	if lat, err := strconv.ParseFloat(r.Latitude, 64); err == nil {
		if lng, err := strconv.ParseFloat(r.Longitude, 64); err == nil {
			if lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180 {
				p.Location = model.Coordinates{Lat: lat, Lng: lng}
			}
		}
	}

	return p, true
}

// parsePriceLevel maps the directory's "$".."$$$$" notation onto the
// 1-4 ordinal scale. Ranges like "$$ - $$$" take the lower bound.
func parsePriceLevel(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	first := strings.Fields(s)[0]
	n := strings.Count(first, "$")
	if n < 1 || n > 4 {
		return 0
	}
	return n
}
