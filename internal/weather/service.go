package weather

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

const forecastDays = 5

type snapshotClient interface {
	Available() bool
	Fetch(ctx context.Context, lat, lng float64) (*model.WeatherSnapshot, error)
}

type locationResolver interface {
	Resolve(ctx context.Context, address string) model.GeocodeResult
}

// Service is the weather aggregation and fallback controller. It never
// fails: when the provider is unavailable or erroring it synthesizes
// seasonally plausible conditions for the resolved location.
type Service struct {
	client   snapshotClient
	resolver locationResolver
	log      *slog.Logger
	now      func() time.Time
	randInt  func(n int) int
}

// NewService constructs a Service.
func NewService(client snapshotClient, resolver locationResolver, log *slog.Logger) *Service {
	return &Service{client: client, resolver: resolver, log: log, now: time.Now, randInt: rand.Intn}
}

// NewServiceWithClock constructs a Service with an injected clock and
// random source (for tests).
func NewServiceWithClock(client snapshotClient, resolver locationResolver, log *slog.Logger, now func() time.Time, randInt func(n int) int) *Service {
	return &Service{client: client, resolver: resolver, log: log, now: now, randInt: randInt}
}

// GetByLocation resolves a free-text location and returns its weather.
func (s *Service) GetByLocation(ctx context.Context, address string) model.WeatherSnapshot {
	origin := s.resolver.Resolve(ctx, address)
	return s.GetByCoordinates(ctx, origin.Lat, origin.Lng, origin.FormattedAddress)
}

// GetByCoordinates returns weather for a known coordinate pair.
func (s *Service) GetByCoordinates(ctx context.Context, lat, lng float64, label string) model.WeatherSnapshot {
	if !s.client.Available() {
		s.log.Info("weather provider unavailable, serving synthetic conditions", "location", label)
		return s.synthetic(lat, lng, label)
	}

	snap, err := s.client.Fetch(ctx, lat, lng)
	if err != nil {
		s.log.Warn("weather fetch failed, serving synthetic conditions",
			"location", label, "class", upstream.Class(err), "err", err)
		return s.synthetic(lat, lng, label)
	}

	snap.Location = label
	return *snap
}

// seasonal profiles for the Outer Banks, keyed off the month.
func seasonalProfile(month time.Month) (baseTemp int, condition, icon string) {
	switch {
	case month >= time.December || month <= time.February:
		return 55, "Partly Cloudy", "02d"
	case month >= time.March && month <= time.May:
		return 68, "Clear", "01d"
	case month >= time.June && month <= time.August:
		return 82, "Sunny", "01d"
	default:
		return 70, "Few Clouds", "02d"
	}
}

var forecastConditions = []struct {
	condition string
	icon      string
}{
	{"Clear", "01d"},
	{"Few Clouds", "02d"},
	{"Scattered Clouds", "03d"},
	{"Partly Cloudy", "02d"},
	{"Sunny", "01d"},
}

// synthetic builds plausible fallback weather. The forecast low is
// derived from the high minus a bounded spread, so high >= low always
// holds.
func (s *Service) synthetic(lat, lng float64, label string) model.WeatherSnapshot {
	now := s.now()
	baseTemp, condition, icon := seasonalProfile(now.Month())

	snap := model.WeatherSnapshot{
		Location:    label,
		Coordinates: model.Coordinates{Lat: lat, Lng: lng},
		Temperature: baseTemp + s.randInt(8) - 4,
		Condition:   condition,
		Description: condition,
		Humidity:    65 + s.randInt(20),
		WindSpeed:   8 + s.randInt(10),
		Visibility:  10,
		UVIndex:     clamp(2+s.randInt(8), 1, 10),
		Icon:        icon,
		Source:      model.SourceFallback,
	}

	for i := 0; i < forecastDays; i++ {
		day := now.AddDate(0, 0, i)
		label := day.Weekday().String()
		if i == 0 {
			label = "Today"
		}

		pick := forecastConditions[s.randInt(len(forecastConditions))]
		high := baseTemp + s.randInt(10)
		low := high - 10 - s.randInt(6)

		snap.Forecast = append(snap.Forecast, model.ForecastDay{
			Day:       label,
			Date:      day.Format("2006-01-02"),
			High:      high,
			Low:       low,
			Condition: pick.condition,
			Icon:      pick.icon,
		})
	}

	return snap
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
