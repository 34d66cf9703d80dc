// Package geocode resolves free-text locations to coordinates, with a
// static town table and a regional default behind the live geocoder so
// resolution never fails outright.
package geocode

import (
	"context"
	"fmt"
	"net/url"

	"github.com/obxstays/obx-backend/internal/upstream"
)

const googleGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"

// Client fetches coordinates for an address from the Google Geocoding
// API.
type Client struct {
	apiKey  string
	baseURL string
	http    *upstream.Client
}

// NewClient constructs a Client with the given API key. An empty key
// means the live geocoder is unavailable for the life of the process.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: googleGeocodeURL, http: upstream.NewClient("google-geocoding")}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, http: upstream.NewClient("google-geocoding")}
}

// Available reports whether a credential was configured.
func (c *Client) Available() bool { return c.apiKey != "" }

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

// Lookup resolves address to coordinates via the live geocoder.
func (c *Client) Lookup(ctx context.Context, address string) (lat, lng float64, formatted string, err error) {
	if !c.Available() {
		return 0, 0, "", upstream.ErrNoCredential
	}

	endpoint := c.baseURL + "?address=" + url.QueryEscape(address) + "&key=" + c.apiKey

	var raw geocodeResponse
	if err := c.http.GetJSON(ctx, endpoint, &raw); err != nil {
		return 0, 0, "", fmt.Errorf("geocoding %q: %w", address, err)
	}

	if len(raw.Results) == 0 {
		return 0, 0, "", fmt.Errorf("geocoding %q: %w", address, upstream.ErrEmptyResult)
	}

	r := raw.Results[0]
	return r.Geometry.Location.Lat, r.Geometry.Location.Lng, r.FormattedAddress, nil
}
