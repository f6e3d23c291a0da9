package feedprovider

import (
	"time"

	"github.com/triplinker/triplinker-api/internal/domain"
)

// feedPosts is the canonical mock feed, newest first.
var feedPosts = []domain.TravelPost{
	{
		ID:           "p_001",
		AuthorName:   "Sofia Marchetti",
		AuthorAvatar: "https://i.pravatar.cc/150?img=23",
		Location:     "Santorini",
		Country:      "Greece",
		ImageURL:     "https://images.unsplash.com/photo-1570077188670-e3a8d69ac5ff?w=800",
		Caption:      "Golden hour over the caldera. Nothing prepares you for this view, no matter how many photos you've seen.",
		Likes:        1284,
		Comments:     47,
		Tags:         []string{"Santorini", "Greece", "GoldenHour", "IslandLife"},
		CreatedAt:    time.Date(2025, 1, 10, 18, 30, 0, 0, time.UTC),
	},
	{
		ID:           "p_002",
		AuthorName:   "Kenji Watanabe",
		AuthorAvatar: "https://i.pravatar.cc/150?img=52",
		Location:     "Kyoto",
		Country:      "Japan",
		ImageURL:     "https://images.unsplash.com/photo-1545569341-9eb8b30979d9?w=800",
		Caption:      "Arashiyama bamboo grove at dawn – arrived at 5am to beat the crowds. Worth every second of lost sleep.",
		Likes:        2371,
		Comments:     89,
		Tags:         []string{"Kyoto", "Japan", "Bamboo", "ZenLife"},
		CreatedAt:    time.Date(2025, 1, 8, 5, 45, 0, 0, time.UTC),
	},
	{
		ID:           "p_003",
		AuthorName:   "Amara Osei",
		AuthorAvatar: "https://i.pravatar.cc/150?img=35",
		Location:     "Cape Town",
		Country:      "South Africa",
		ImageURL:     "https://images.unsplash.com/photo-1580060839134-75a5edca2e99?w=800",
		Caption:      "Table Mountain at sunrise. The cable car doesn't open until 8, but hiking up is one of the best decisions I've ever made.",
		Likes:        987,
		Comments:     34,
		Tags:         []string{"CapeTown", "TableMountain", "Africa", "Hiking"},
		CreatedAt:    time.Date(2025, 1, 6, 6, 0, 0, 0, time.UTC),
	},
	{
		ID:           "p_004",
		AuthorName:   "Lucia Fernández",
		AuthorAvatar: "https://i.pravatar.cc/150?img=44",
		Location:     "Cartagena",
		Country:      "Colombia",
		ImageURL:     "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
		Caption:      "The colors of the Old City never get old. Every corner is a painting.",
		Likes:        756,
		Comments:     21,
		Tags:         []string{"Colombia", "Cartagena", "ColonialCharm", "Wanderlust"},
		CreatedAt:    time.Date(2025, 1, 4, 14, 20, 0, 0, time.UTC),
	},
	{
		ID:           "p_005",
		AuthorName:   "Lars Eriksson",
		AuthorAvatar: "https://i.pravatar.cc/150?img=67",
		Location:     "Lofoten Islands",
		Country:      "Norway",
		ImageURL:     "https://images.unsplash.com/photo-1520769945061-0a448c463865?w=800",
		Caption:      "Chased the Northern Lights for 3 nights. Night 4 delivered. Patience is a travel superpower.",
		Likes:        3102,
		Comments:     112,
		Tags:         []string{"NorthernLights", "Norway", "Lofoten", "ArcticAdventure"},
		CreatedAt:    time.Date(2025, 1, 2, 23, 15, 0, 0, time.UTC),
	},
	{
		ID:           "p_006",
		AuthorName:   "Priya Nair",
		AuthorAvatar: "https://i.pravatar.cc/150?img=29",
		Location:     "Udaipur",
		Country:      "India",
		ImageURL:     "https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=800",
		Caption:      "The City of Lakes lives up to every superlative. Watching the palace glow at night from a rooftop café – absolute magic.",
		Likes:        1445,
		Comments:     58,
		Tags:         []string{"Udaipur", "India", "RajasthanRoyale", "PalaceLife"},
		CreatedAt:    time.Date(2024, 12, 30, 20, 0, 0, 0, time.UTC),
	},
}
