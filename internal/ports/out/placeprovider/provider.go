package placeprovider

import (
	"context"

	"github.com/triplinker/triplinker-api/internal/domain"
)

// NewProperty is the partial listing submitted by add-property. Nil or empty
// fields take provider-side defaults (name "New Property", type hotel, price
// 100, rating and review count 0, no amenities).
type NewProperty struct {
	Name        string
	Type        domain.PropertyType
	Location    string
	Country     string
	Description string

	// PricePerNight is optional; nil means "use the default nightly price".
	PricePerNight *float64
}

// Provider fulfills property listing requests.
type Provider interface {
	FetchProperties(ctx context.Context) ([]domain.Property, error)

	// FetchPropertyByID returns the listing with the given ID, or ErrNotFound.
	FetchPropertyByID(ctx context.Context, id domain.PropertyID) (domain.Property, error)

	// AddProperty creates a listing from the partial input, assigning the ID
	// and host defaults, and returns the full record.
	AddProperty(ctx context.Context, in NewProperty) (domain.Property, error)
}
