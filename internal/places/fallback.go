package places

import "github.com/obxstays/obx-backend/internal/model"

func boolPtr(b bool) *bool { return &b }

// Hand-curated sample catalogs, shaped exactly like the live path's
// output so downstream consumers never branch on provenance.

var fallbackAttractions = []model.Place{
	{
		ID:          "obx-attraction-1",
		Name:        "Jockey's Ridge State Park",
		Types:       []string{"tourist_attraction", "park"},
		Rating:      4.9,
		ReviewCount: 890,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.9582, Lng: -75.6201},
		OpenNow:     boolPtr(true),
		PhotoURL:    "/nags-head-pier-beach.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-attraction-2",
		Name:        "Corolla Wild Horse Fund",
		Types:       []string{"tourist_attraction", "point_of_interest"},
		Rating:      4.9,
		ReviewCount: 650,
		Vicinity:    "Corolla, NC",
		Location:    model.Coordinates{Lat: 36.3762, Lng: -75.8269},
		PhotoURL:    "/corolla-wild-horses-beach.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-attraction-3",
		Name:        "Wright Brothers National Memorial",
		Types:       []string{"tourist_attraction", "museum"},
		Rating:      4.8,
		ReviewCount: 1250,
		Vicinity:    "Kill Devil Hills, NC",
		Location:    model.Coordinates{Lat: 36.0162, Lng: -75.6699},
		OpenNow:     boolPtr(true),
		PhotoURL:    "/kitty-hawk-memorial.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-attraction-4",
		Name:        "Cape Hatteras Lighthouse",
		Types:       []string{"tourist_attraction", "point_of_interest"},
		Rating:      4.7,
		ReviewCount: 2100,
		Vicinity:    "Buxton, NC",
		Location:    model.Coordinates{Lat: 35.2518, Lng: -75.5277},
		PhotoURL:    "/cape-hatteras-lighthouse.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-attraction-5",
		Name:        "Bodie Island Lighthouse",
		Types:       []string{"tourist_attraction", "point_of_interest"},
		Rating:      4.7,
		ReviewCount: 2345,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.8185, Lng: -75.5632},
		PhotoURL:    "/solitary-lighthouse.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-attraction-6",
		Name:        "Duck Boardwalk",
		Types:       []string{"tourist_attraction", "point_of_interest"},
		Rating:      4.6,
		ReviewCount: 1987,
		Vicinity:    "Duck, NC",
		Location:    model.Coordinates{Lat: 36.1626, Lng: -75.7463},
		PhotoURL:    "/north-carolina-duck-boardwalk.png",
		Source:      model.SourceFallback,
	},
}

var fallbackRestaurants = []model.Place{
	{
		ID:          "obx-restaurant-1",
		Name:        "The Blue Point",
		Types:       []string{"restaurant", "food"},
		Rating:      4.6,
		ReviewCount: 890,
		PriceLevel:  3,
		Vicinity:    "Duck, NC",
		Location:    model.Coordinates{Lat: 36.1626, Lng: -75.7463},
		OpenNow:     boolPtr(true),
		PhotoURL:    "/waterfront-seafood.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-restaurant-2",
		Name:        "Owen's Restaurant",
		Types:       []string{"restaurant", "food"},
		Rating:      4.5,
		ReviewCount: 1200,
		PriceLevel:  2,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.9582, Lng: -75.6201},
		PhotoURL:    "/seafood-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-restaurant-3",
		Name:        "Awful Arthur's Oyster Bar",
		Types:       []string{"restaurant", "bar"},
		Rating:      4.4,
		ReviewCount: 750,
		PriceLevel:  2,
		Vicinity:    "Kill Devil Hills, NC",
		Location:    model.Coordinates{Lat: 36.0162, Lng: -75.6699},
		OpenNow:     boolPtr(true),
		PhotoURL:    "/burger-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-restaurant-4",
		Name:        "Blue Moon Beach Grill",
		Types:       []string{"restaurant", "food"},
		Rating:      4.7,
		ReviewCount: 2134,
		PriceLevel:  2,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.9441, Lng: -75.6247},
		PhotoURL:    "/seafood-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-restaurant-5",
		Name:        "Hatteras Sol Waterside Grill",
		Types:       []string{"restaurant", "food"},
		Rating:      4.7,
		ReviewCount: 1987,
		PriceLevel:  3,
		Vicinity:    "Hatteras, NC",
		Location:    model.Coordinates{Lat: 35.2087, Lng: -75.6877},
		PhotoURL:    "/waterfront-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "obx-restaurant-6",
		Name:        "Waves Market & Deli",
		Types:       []string{"restaurant", "food"},
		Rating:      4.6,
		ReviewCount: 1243,
		PriceLevel:  1,
		Vicinity:    "Waves, NC",
		Location:    model.Coordinates{Lat: 35.5851, Lng: -75.4607},
		PhotoURL:    "/deli-sandwich-shop.png",
		Source:      model.SourceFallback,
	},
}
