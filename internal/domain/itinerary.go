package domain

import "time"

// ActivityType categorizes a single itinerary activity.
type ActivityType string

const (
	ActivityTransport     ActivityType = "transport"
	ActivityFood          ActivityType = "food"
	ActivitySightseeing   ActivityType = "sightseeing"
	ActivityAccommodation ActivityType = "accommodation"
	ActivityLeisure       ActivityType = "leisure"
)

// Activity is one scheduled item within an itinerary day. Cost is an integer
// number of currency units (costs are floored during generation).
type Activity struct {
	Time        string
	Description string
	Type        ActivityType
	Cost        int
}

// ItineraryDay is one day of a generated itinerary.
type ItineraryDay struct {
	Day        int
	Title      string
	Activities []Activity
}

// Itinerary is the result of one generation request. It is replaced wholesale
// on the next generation and cleared explicitly by reset.
type Itinerary struct {
	ID ItineraryID

	Location string
	Budget   float64
	Currency string

	TotalDays     int
	EstimatedCost int

	Summary string
	Days    []ItineraryDay
	Tips    []string

	GeneratedAt time.Time
}
