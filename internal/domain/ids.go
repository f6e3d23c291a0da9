package domain

// UserID is an internal identifier for a user record. It doubles as the
// authenticated subject in session tokens ("sub" claim).
type UserID string

// PostID is an internal identifier for a travel post.
type PostID string

// PropertyID is an internal identifier for a property listing.
type PropertyID string

// ItineraryID is an internal identifier for a generated itinerary.
type ItineraryID string
