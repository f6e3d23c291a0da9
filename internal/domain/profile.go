package domain

// ProfileStats is a read-only aggregate of a user's activity counters.
type ProfileStats struct {
	TripsPlanned  int
	PlacesVisited int
	ReviewsGiven  int
	Followers     int
	Following     int
}
