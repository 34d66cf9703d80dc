package storage

import "github.com/obxstays/obx-backend/internal/model"

// seedProperties returns the built-in rental catalog. Each call copies
// the slice so callers cannot mutate the seed data.
func seedProperties() []model.Property {
	out := make([]model.Property, len(seedCatalog))
	copy(out, seedCatalog)
	return out
}

var seedCatalog = []model.Property{
	{
		ID:       1,
		Slug:     "pelican-watch",
		Name:     "Pelican Watch",
		Town:     "Nags Head",
		Location: model.Coordinates{Lat: 35.9582, Lng: -75.6201},
		Bedrooms: 4,
		Sleeps:   10,
		Nightly:  385,
		Details: model.PropertyDetails{
			Description: "Oceanfront home steps from the Nags Head fishing pier with a private walkway over the dunes.",
			Amenities:   []string{"Private pool", "Hot tub", "Ocean views", "Game room"},
			Images:      []string{"/images/pelican-watch-1.jpg", "/images/pelican-watch-2.jpg"},
			Oceanfront:  true,
		},
	},
	{
		ID:       2,
		Slug:     "sea-oats-cottage",
		Name:     "Sea Oats Cottage",
		Town:     "Duck",
		Location: model.Coordinates{Lat: 36.1690, Lng: -75.7550},
		Bedrooms: 3,
		Sleeps:   8,
		Nightly:  295,
		Details: model.PropertyDetails{
			Description: "Classic cedar-shake cottage a short walk from the Duck boardwalk and soundside shops.",
			Amenities:   []string{"Screened porch", "Outdoor shower", "Bikes included"},
			Images:      []string{"/images/sea-oats-1.jpg"},
			PetFriendly: true,
		},
	},
	{
		ID:       3,
		Slug:     "lighthouse-landing",
		Name:     "Lighthouse Landing",
		Town:     "Buxton",
		Location: model.Coordinates{Lat: 35.2518, Lng: -75.5277},
		Bedrooms: 5,
		Sleeps:   12,
		Nightly:  425,
		Details: model.PropertyDetails{
			Description: "Spacious Hatteras Island home with views of the Cape Hatteras Lighthouse from the upper deck.",
			Amenities:   []string{"Private pool", "Elevator", "Fish cleaning station"},
			Images:      []string{"/images/lighthouse-landing-1.jpg", "/images/lighthouse-landing-2.jpg"},
			Oceanfront:  true,
		},
	},
	{
		ID:       4,
		Slug:     "wild-horse-hideaway",
		Name:     "Wild Horse Hideaway",
		Town:     "Corolla",
		Location: model.Coordinates{Lat: 36.3773, Lng: -75.8305},
		Bedrooms: 6,
		Sleeps:   14,
		Nightly:  520,
		Details: model.PropertyDetails{
			Description: "Large Corolla home in the four-wheel-drive area where the wild horses roam the beach.",
			Amenities:   []string{"Private pool", "Hot tub", "Theater room", "4WD access"},
			Images:      []string{"/images/wild-horse-1.jpg"},
			PetFriendly: true,
			Oceanfront:  true,
		},
	},
	{
		ID:       5,
		Slug:     "soundside-serenity",
		Name:     "Soundside Serenity",
		Town:     "Avon",
		Location: model.Coordinates{Lat: 35.3452, Lng: -75.5035},
		Bedrooms: 3,
		Sleeps:   6,
		Nightly:  245,
		Details: model.PropertyDetails{
			Description: "Quiet soundfront retreat in Avon with a private dock and kayak launch, minutes from kiteboarding flats.",
			Amenities:   []string{"Private dock", "Kayaks included", "Sunset views"},
			Images:      []string{"/images/soundside-serenity-1.jpg"},
			PetFriendly: true,
		},
	},
	{
		ID:       6,
		Slug:     "dune-top-retreat",
		Name:     "Dune Top Retreat",
		Town:     "Kill Devil Hills",
		Location: model.Coordinates{Lat: 36.0306, Lng: -75.6760},
		Bedrooms: 4,
		Sleeps:   9,
		Nightly:  315,
		Details: model.PropertyDetails{
			Description: "Hilltop home near the Wright Brothers National Memorial with ocean views from the crow's nest.",
			Amenities:   []string{"Hot tub", "Game room", "Walk to beach access"},
			Images:      []string{"/images/dune-top-1.jpg", "/images/dune-top-2.jpg"},
		},
	},
}
