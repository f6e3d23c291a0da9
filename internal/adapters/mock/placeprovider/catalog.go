package placeprovider

import "github.com/triplinker/triplinker-api/internal/domain"

// catalog is the canned property inventory.
var catalog = []domain.Property{
	{
		ID:       "prop_001",
		Name:     "Villa Serenita",
		Type:     domain.PropertyTypeVilla,
		Location: "Positano",
		Country:  "Italy",
		ImageURL: "https://images.unsplash.com/photo-1523531294919-4bcd7c65e216?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1523531294919-4bcd7c65e216?w=800",
			"https://images.unsplash.com/photo-1564013799919-ab600027ffc6?w=800",
		},
		PricePerNight: 420,
		Currency:      "USD",
		Rating:        4.9,
		ReviewCount:   234,
		Description:   "A breathtaking cliffside villa with sweeping Amalfi Coast views. Featuring hand-painted tiles, a private infinity pool, and staff dedicated to making your stay exceptional.",
		Amenities: []domain.Amenity{
			{Icon: "wifi", Label: "Fast WiFi"},
			{Icon: "pool", Label: "Infinity Pool"},
			{Icon: "car", Label: "Free Parking"},
			{Icon: "cutlery", Label: "Private Chef"},
		},
		HostName:   "Marco Ricci",
		HostAvatar: "https://i.pravatar.cc/150?img=15",
	},
	{
		ID:       "prop_002",
		Name:     "Sakura Ryokan",
		Type:     domain.PropertyTypeHotel,
		Location: "Hakone",
		Country:  "Japan",
		ImageURL: "https://images.unsplash.com/photo-1578469645742-46cae010e5d4?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1578469645742-46cae010e5d4?w=800",
		},
		PricePerNight: 280,
		Currency:      "USD",
		Rating:        4.8,
		ReviewCount:   412,
		Description:   "An authentic Japanese ryokan experience with Mt. Fuji views, traditional onsen baths, and exquisite kaiseki cuisine. A spiritual retreat in the heart of nature.",
		Amenities: []domain.Amenity{
			{Icon: "droplet", Label: "Hot Spring Bath"},
			{Icon: "utensils", Label: "Kaiseki Dinner"},
			{Icon: "wifi", Label: "WiFi"},
			{Icon: "moon", Label: "Yukata Provided"},
		},
		HostName:    "Yuki Tanaka",
		HostAvatar:  "https://i.pravatar.cc/150?img=48",
		IsFavorited: true,
	},
	{
		ID:       "prop_003",
		Name:     "The Dune Retreat",
		Type:     domain.PropertyTypeResort,
		Location: "Marrakech",
		Country:  "Morocco",
		ImageURL: "https://images.unsplash.com/photo-1548013146-72479768bada?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1548013146-72479768bada?w=800",
		},
		PricePerNight: 190,
		Currency:      "USD",
		Rating:        4.7,
		ReviewCount:   318,
		Description:   "A palatial riad nestled within the medina, blending Moorish architecture with modern luxury. Rooftop terraces, a mosaic-tiled pool, and spice-laden breakfasts await.",
		Amenities: []domain.Amenity{
			{Icon: "pool", Label: "Mosaic Pool"},
			{Icon: "coffee", Label: "Rooftop Café"},
			{Icon: "spa", Label: "Hammam Spa"},
			{Icon: "wifi", Label: "WiFi"},
		},
		HostName:   "Fatima Benali",
		HostAvatar: "https://i.pravatar.cc/150?img=31",
	},
	{
		ID:       "prop_004",
		Name:     "Arctic Glass Cabin",
		Type:     domain.PropertyTypeVilla,
		Location: "Saariselkä",
		Country:  "Finland",
		ImageURL: "https://images.unsplash.com/photo-1531973576160-7125cd663d86?w=800",
		Images: []string{
			"https://images.unsplash.com/photo-1531973576160-7125cd663d86?w=800",
		},
		PricePerNight: 650,
		Currency:      "USD",
		Rating:        5.0,
		ReviewCount:   87,
		Description:   "Fall asleep under the Northern Lights in a climate-controlled glass cabin deep in Finnish Lapland. Wake to reindeer wandering past your window.",
		Amenities: []domain.Amenity{
			{Icon: "star", Label: "Aurora Views"},
			{Icon: "snowflake", Label: "Heated Floor"},
			{Icon: "wifi", Label: "WiFi"},
			{Icon: "fire", Label: "Sauna"},
		},
		HostName:   "Mikael Lahti",
		HostAvatar: "https://i.pravatar.cc/150?img=61",
	},
}
