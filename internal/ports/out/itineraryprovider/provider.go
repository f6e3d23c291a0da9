package itineraryprovider

import (
	"context"

	"github.com/triplinker/triplinker-api/internal/domain"
)

// Provider fulfills itinerary generation requests. Input validation (budget
// range, non-empty location) happens at the application layer before any
// provider call; the provider may assume both are well-formed.
type Provider interface {
	GenerateItinerary(ctx context.Context, location string, budget float64) (domain.Itinerary, error)
}
