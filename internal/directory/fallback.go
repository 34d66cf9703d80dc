package directory

import (
	"fmt"
	"time"

	"github.com/obxstays/obx-backend/internal/model"
)

// Sample catalogs served when the directory cannot be reached. Shapes
// match the live path exactly so consumers never branch on provenance.

var sampleAttractions = []model.Place{
	{
		ID:          "ta-attraction-1",
		Name:        "Cape Hatteras Lighthouse",
		Types:       []string{"Historic Site"},
		Rating:      4.8,
		ReviewCount: 3245,
		Vicinity:    "Buxton, NC",
		Location:    model.Coordinates{Lat: 35.2518, Lng: -75.5277},
		PhotoURL:    "/cape-hatteras-lighthouse.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-attraction-2",
		Name:        "Wright Brothers National Memorial",
		Types:       []string{"Historic Site"},
		Rating:      4.7,
		ReviewCount: 4123,
		Vicinity:    "Kill Devil Hills, NC",
		Location:    model.Coordinates{Lat: 36.0162, Lng: -75.6699},
		PhotoURL:    "/kitty-hawk-memorial.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-attraction-3",
		Name:        "Corolla Wild Horse Tours",
		Types:       []string{"Nature & Wildlife Tour"},
		Rating:      4.9,
		ReviewCount: 2876,
		Vicinity:    "Corolla, NC",
		Location:    model.Coordinates{Lat: 36.3762, Lng: -75.8269},
		PhotoURL:    "/corolla-wild-horses-beach.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-attraction-4",
		Name:        "Jockey's Ridge State Park",
		Types:       []string{"State Park"},
		Rating:      4.8,
		ReviewCount: 3567,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.9582, Lng: -75.6201},
		PhotoURL:    "/nags-head-pier-beach.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-attraction-5",
		Name:        "Duck Boardwalk",
		Types:       []string{"Scenic Walking Area"},
		Rating:      4.6,
		ReviewCount: 1987,
		Vicinity:    "Duck, NC",
		Location:    model.Coordinates{Lat: 36.1626, Lng: -75.7463},
		PhotoURL:    "/north-carolina-duck-boardwalk.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-attraction-6",
		Name:        "Bodie Island Lighthouse",
		Types:       []string{"Historic Site"},
		Rating:      4.7,
		ReviewCount: 2345,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.8185, Lng: -75.5632},
		PhotoURL:    "/solitary-lighthouse.png",
		Source:      model.SourceFallback,
	},
}

var sampleRestaurants = []model.Place{
	{
		ID:          "ta-restaurant-1",
		Name:        "Blue Moon Beach Grill",
		Types:       []string{"Seafood", "American"},
		Rating:      4.7,
		ReviewCount: 2134,
		PriceLevel:  2,
		Vicinity:    "Nags Head, NC",
		Location:    model.Coordinates{Lat: 35.9441, Lng: -75.6247},
		PhotoURL:    "/seafood-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-restaurant-2",
		Name:        "Duck Duck Burgers",
		Types:       []string{"American", "Bar"},
		Rating:      4.6,
		ReviewCount: 1876,
		PriceLevel:  2,
		Vicinity:    "Duck, NC",
		Location:    model.Coordinates{Lat: 36.1626, Lng: -75.7463},
		PhotoURL:    "/burger-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-restaurant-3",
		Name:        "Coastal Cravings",
		Types:       []string{"Seafood", "American"},
		Rating:      4.8,
		ReviewCount: 2543,
		PriceLevel:  3,
		Vicinity:    "Kitty Hawk, NC",
		Location:    model.Coordinates{Lat: 36.0626, Lng: -75.7016},
		PhotoURL:    "/waterfront-seafood.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-restaurant-4",
		Name:        "Hatteras Sol Waterside Grill",
		Types:       []string{"Seafood", "American"},
		Rating:      4.7,
		ReviewCount: 1987,
		PriceLevel:  3,
		Vicinity:    "Hatteras, NC",
		Location:    model.Coordinates{Lat: 35.2087, Lng: -75.6877},
		PhotoURL:    "/waterfront-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-restaurant-5",
		Name:        "Corolla Cantina",
		Types:       []string{"Mexican", "Southwestern"},
		Rating:      4.5,
		ReviewCount: 1654,
		PriceLevel:  2,
		Vicinity:    "Corolla, NC",
		Location:    model.Coordinates{Lat: 36.3762, Lng: -75.8269},
		PhotoURL:    "/vibrant-mexican-restaurant.png",
		Source:      model.SourceFallback,
	},
	{
		ID:          "ta-restaurant-6",
		Name:        "Waves Market & Deli",
		Types:       []string{"Deli", "American"},
		Rating:      4.6,
		ReviewCount: 1243,
		PriceLevel:  1,
		Vicinity:    "Waves, NC",
		Location:    model.Coordinates{Lat: 35.5851, Lng: -75.4607},
		PhotoURL:    "/deli-sandwich-shop.png",
		Source:      model.SourceFallback,
	},
}

// sampleReviewSeeds are combined with a location ID and the service
// clock to produce plausible sample reviews. Ages are staggered so a
// fallback batch never shows identical timestamps.
var sampleReviewSeeds = []struct {
	title   string
	text    string
	rating  int
	author  string
	ageDays int
}{
	{
		title:   "Amazing experience!",
		text:    "We had a wonderful time here. The location is beautiful and the service was excellent. Would definitely recommend to anyone visiting the Outer Banks.",
		rating:  5,
		author:  "BeachLover123",
		ageDays: 7,
	},
	{
		title:   "Great place, a few minor issues",
		text:    "Overall we enjoyed our visit. The views were spectacular and most of the staff were friendly. There were a couple of small issues with cleanliness but nothing major.",
		rating:  4,
		author:  "CoastalExplorer",
		ageDays: 14,
	},
	{
		title:   "Worth the visit",
		text:    "Definitely worth checking out if you're in the area. Not the best I've seen but still very good. The prices were reasonable and the atmosphere was nice.",
		rating:  4,
		author:  "TravelingFoodie",
		ageDays: 30,
	},
	{
		title:   "Exceeded expectations",
		text:    "I wasn't expecting much but was pleasantly surprised. The location is stunning and everything was well maintained. Will definitely be back next time I'm in OBX.",
		rating:  5,
		author:  "SunsetChaser",
		ageDays: 45,
	},
	{
		title:   "Decent but overpriced",
		text:    "The experience was good but I felt it was a bit overpriced for what you get. The views are nice though and the staff were helpful when we had questions.",
		rating:  3,
		author:  "BudgetTraveler",
		ageDays: 60,
	},
}

func (s *Service) sampleReviews(locationID string, limit int) []model.Review {
	now := s.now()
	if limit > len(sampleReviewSeeds) {
		limit = len(sampleReviewSeeds)
	}

	out := make([]model.Review, 0, limit)
	for i, seed := range sampleReviewSeeds[:limit] {
		out = append(out, model.Review{
			ID:        fmt.Sprintf("%s-review-%d", locationID, i+1),
			Title:     seed.title,
			Text:      seed.text,
			Rating:    seed.rating,
			Published: now.Add(-time.Duration(seed.ageDays) * 24 * time.Hour),
			Author:    seed.author,
			Source:    model.SourceFallback,
		})
	}
	return out
}
