package geocode

import (
	"context"
	"log/slog"

	"github.com/obxstays/obx-backend/internal/model"
	"github.com/obxstays/obx-backend/internal/upstream"
)

// townCoords covers the service area's own towns so geocoding keeps
// working without the live geocoder. Lookups are case-sensitive; the
// table is keyed by the exact names the site uses.
var townCoords = map[string]model.Coordinates{
	"Corolla, NC":          {Lat: 36.3762, Lng: -75.8269},
	"Duck, NC":             {Lat: 36.1626, Lng: -75.7463},
	"Southern Shores, NC":  {Lat: 36.1162, Lng: -75.7199},
	"Kitty Hawk, NC":       {Lat: 36.0626, Lng: -75.7016},
	"Kill Devil Hills, NC": {Lat: 36.0162, Lng: -75.6699},
	"Nags Head, NC":        {Lat: 35.9582, Lng: -75.6201},
	"Manteo, NC":           {Lat: 35.9087, Lng: -75.6699},
	"Wanchese, NC":         {Lat: 35.8418, Lng: -75.6516},
	"Rodanthe, NC":         {Lat: 35.5918, Lng: -75.4682},
	"Waves, NC":            {Lat: 35.5851, Lng: -75.4607},
	"Salvo, NC":            {Lat: 35.5451, Lng: -75.4296},
	"Avon, NC":             {Lat: 35.3518, Lng: -75.5032},
	"Buxton, NC":           {Lat: 35.2518, Lng: -75.5277},
	"Frisco, NC":           {Lat: 35.2368, Lng: -75.6277},
	"Hatteras Village, NC": {Lat: 35.2087, Lng: -75.6877},
	"Ocracoke, NC":         {Lat: 35.1151, Lng: -75.9877},
}

// defaultCenter is the region's nominal center (Nags Head), the last
// resort for strings nothing else can place.
var defaultCenter = model.Coordinates{Lat: 35.9582, Lng: -75.6201}

// DefaultLocation is the address resolved when a caller supplies none.
const DefaultLocation = "Nags Head, NC"

type lookupClient interface {
	Available() bool
	Lookup(ctx context.Context, address string) (lat, lng float64, formatted string, err error)
}

// Resolver turns a free-text location into coordinates. Degradation is
// three-tier: live geocoder, then the static town table, then the
// regional default center. Resolve never fails.
type Resolver struct {
	client lookupClient
	log    *slog.Logger
}

// NewResolver constructs a Resolver around the given client.
func NewResolver(client lookupClient, log *slog.Logger) *Resolver {
	return &Resolver{client: client, log: log}
}

// Resolve returns a usable coordinate for any input string.
func (r *Resolver) Resolve(ctx context.Context, address string) model.GeocodeResult {
	if address == "" {
		address = DefaultLocation
	}

	if r.client.Available() {
		lat, lng, formatted, err := r.client.Lookup(ctx, address)
		if err == nil {
			return model.GeocodeResult{Lat: lat, Lng: lng, FormattedAddress: formatted, Source: model.SourceLive}
		}
		r.log.Warn("live geocoding failed, using static coordinates",
			"address", address, "class", upstream.Class(err), "err", err)
	}

	if coords, ok := townCoords[address]; ok {
		return model.GeocodeResult{Lat: coords.Lat, Lng: coords.Lng, FormattedAddress: address, Source: model.SourceFallback}
	}

	return model.GeocodeResult{
		Lat:              defaultCenter.Lat,
		Lng:              defaultCenter.Lng,
		FormattedAddress: address,
		Source:           model.SourceFallback,
	}
}
