package model

import "time"

// Provenance marks whether a record came from a live upstream call or
// from the bundled sample catalog.
type Provenance string

const (
	SourceLive     Provenance = "live"
	SourceFallback Provenance = "fallback"
)

// Coordinates is a WGS84 latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place is a normalized attraction or restaurant, regardless of which
// upstream directory produced it.
type Place struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Types       []string    `json:"types,omitempty"`
	Rating      float64     `json:"rating,omitempty"`
	ReviewCount int         `json:"review_count,omitempty"`
	Vicinity    string      `json:"vicinity,omitempty"`
	Location    Coordinates `json:"location"`
	// PriceLevel is 1-4 when known; restaurants only.
	PriceLevel int    `json:"price_level,omitempty"`
	OpenNow    *bool  `json:"open_now,omitempty"`
	PhotoURL   string `json:"photo_url,omitempty"`
	// DistanceMiles is a per-request annotation from the caller's
	// resolved origin, not a stored attribute.
	DistanceMiles float64    `json:"distance_miles,omitempty"`
	Source        Provenance `json:"source"`
}

// Review is a normalized visitor review.
type Review struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Text      string     `json:"text"`
	Rating    int        `json:"rating"`
	Published time.Time  `json:"published"`
	Author    string     `json:"author"`
	Source    Provenance `json:"source"`
}

// ForecastDay is one entry of a 5-day forecast, starting from today.
type ForecastDay struct {
	Day       string `json:"day"`
	Date      string `json:"date"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// WeatherSnapshot holds current conditions plus a 5-day forecast for a
// resolved location. Temperatures are °F, wind mph, visibility miles.
type WeatherSnapshot struct {
	Location    string        `json:"location"`
	Coordinates Coordinates   `json:"coordinates"`
	Temperature int           `json:"temperature"`
	Condition   string        `json:"condition"`
	Description string        `json:"description"`
	Humidity    int           `json:"humidity"`
	WindSpeed   int           `json:"wind_speed"`
	Visibility  int           `json:"visibility"`
	UVIndex     int           `json:"uv_index"`
	Icon        string        `json:"icon"`
	Forecast    []ForecastDay `json:"forecast"`
	Source      Provenance    `json:"source"`
}

// GeocodeResult is a resolved location. Computed per request and
// discarded; never persisted.
type GeocodeResult struct {
	Lat              float64    `json:"lat"`
	Lng              float64    `json:"lng"`
	FormattedAddress string     `json:"formatted_address"`
	Source           Provenance `json:"source"`
}

// Property is one rental listing from the catalog.
type Property struct {
	ID        int             `json:"id"`
	Slug      string          `json:"slug"`
	Name      string          `json:"name"`
	Town      string          `json:"town"`
	Location  Coordinates     `json:"location"`
	Bedrooms  int             `json:"bedrooms"`
	Sleeps    int             `json:"sleeps"`
	Nightly   float64         `json:"nightly_rate"`
	Details   PropertyDetails `json:"details"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// PropertyDetails is the free-form portion of a listing, stored as
// JSONB when a database is configured.
type PropertyDetails struct {
	Description string   `json:"description,omitempty"`
	Amenities   []string `json:"amenities,omitempty"`
	Images      []string `json:"images,omitempty"`
	PetFriendly bool     `json:"pet_friendly,omitempty"`
	Oceanfront  bool     `json:"oceanfront,omitempty"`
}
