// Package weather wraps the OpenWeather One Call API and degrades to
// seasonally plausible synthetic conditions when the provider cannot
// be reached.
package weather

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

const oneCallURL = "https://api.openweathermap.org/data/3.0/onecall"

const metersPerMile = 1609.34

// Client fetches current conditions and the daily forecast from the
// OpenWeather One Call 3.0 endpoint.
type Client struct {
	apiKey  string
	baseURL string
	http    *upstream.Client
}

// NewClient constructs a Client with the given API key.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: oneCallURL, http: upstream.NewClient("openweather")}
}

// NewClientWithURL constructs a Client pointing at a custom base URL (for tests).
func NewClientWithURL(baseURL, apiKey string) *Client {
	return &Client{apiKey: apiKey, baseURL: baseURL, http: upstream.NewClient("openweather")}
}

// Available reports whether a credential was configured.
func (c *Client) Available() bool { return c.apiKey != "" }

type oneCallResponse struct {
	Current struct {
		Temp       float64 `json:"temp"`
		Humidity   int     `json:"humidity"`
		WindSpeed  float64 `json:"wind_speed"`
		Visibility float64 `json:"visibility"`
		UVI        float64 `json:"uvi"`
		Weather    []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"current"`
	Daily []struct {
		Dt   int64 `json:"dt"`
		Temp struct {
			Max float64 `json:"max"`
			Min float64 `json:"min"`
		} `json:"temp"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
	} `json:"daily"`
}

// Fetch retrieves a snapshot for the given coordinates. The caller
// fills in the location label and provenance.
func (c *Client) Fetch(ctx context.Context, lat, lng float64) (*model.WeatherSnapshot, error) {
	if !c.Available() {
		return nil, upstream.ErrNoCredential
	}

	endpoint := fmt.Sprintf("%s?lat=%f&lon=%f&appid=%s&units=imperial&exclude=minutely,hourly,alerts",
		c.baseURL, lat, lng, c.apiKey)

	var raw oneCallResponse
	if err := c.http.GetJSON(ctx, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("onecall fetch: %w", err)
	}

	if len(raw.Current.Weather) == 0 || len(raw.Daily) < forecastDays {
		return nil, &upstream.DecodeError{Err: fmt.Errorf("onecall response missing weather or daily blocks")}
	}

	snap := &model.WeatherSnapshot{
		Coordinates: model.Coordinates{Lat: lat, Lng: lng},
		Temperature: round(raw.Current.Temp),
		Condition:   raw.Current.Weather[0].Main,
		Description: raw.Current.Weather[0].Description,
		Humidity:    raw.Current.Humidity,
		WindSpeed:   round(raw.Current.WindSpeed),
		Visibility:  round(raw.Current.Visibility / metersPerMile),
		UVIndex:     round(raw.Current.UVI),
		Icon:        raw.Current.Weather[0].Icon,
		Source:      model.SourceLive,
	}

	for i, day := range raw.Daily[:forecastDays] {
		if len(day.Weather) == 0 {
			return nil, &upstream.DecodeError{Err: fmt.Errorf("daily entry %d missing weather block", i)}
		}
		t := time.Unix(day.Dt, 0).UTC()
		label := t.Weekday().String()
		if i == 0 {
			label = "Today"
		}
		snap.Forecast = append(snap.Forecast, model.ForecastDay{
			Day:       label,
			Date:      t.Format("2006-01-02"),
			High:      round(day.Temp.Max),
			Low:       round(day.Temp.Min),
			Condition: day.Weather[0].Main,
			Icon:      day.Weather[0].Icon,
		})
	}

	return snap, nil
}

func round(f float64) int {
	return int(math.Round(f))
}
