// Package placeprovider is the mock implementation of the property listing
// port. The canned catalog is fixed; AddProperty synthesizes a record without
// persisting it into the catalog (the places container owns the working list).
package placeprovider

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/triplinker/triplinker-api/internal/adapters/mock/latency"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/placeprovider"
)

const (
	fetchPropertiesDelay = 800 * time.Millisecond
	fetchByIDDelay       = 400 * time.Millisecond
	addPropertyDelay     = 1200 * time.Millisecond
)

// Defaults applied to unsupplied add-property fields.
const (
	defaultName          = "New Property"
	defaultPricePerNight = 100
	defaultImageURL      = "https://images.unsplash.com/photo-1582719478250-c89cae4dc85b?w=800"
	defaultHostName      = "You"
	defaultHostAvatar    = "https://i.pravatar.cc/150?img=5"
)

type Provider struct {
	sim latency.Simulator

	newPropertyID func() domain.PropertyID
}

var _ placeprovider.Provider = (*Provider)(nil)

func NewProvider(sim latency.Simulator) *Provider {
	return &Provider{
		sim: sim,
		newPropertyID: func() domain.PropertyID {
			return domain.PropertyID("prop_" + uuid.NewString())
		},
	}
}

// SetNewPropertyIDForTest overrides listing ID generation for deterministic tests.
// It should not be used in production code.
func (p *Provider) SetNewPropertyIDForTest(fn func() domain.PropertyID) {
	if fn != nil {
		p.newPropertyID = fn
	}
}

func (p *Provider) FetchProperties(ctx context.Context) ([]domain.Property, error) {
	if err := p.sim.Wait(ctx, fetchPropertiesDelay); err != nil {
		return nil, err
	}
	out := make([]domain.Property, len(catalog))
	for i, prop := range catalog {
		out[i] = cloneProperty(prop)
	}
	return out, nil
}

func (p *Provider) FetchPropertyByID(ctx context.Context, id domain.PropertyID) (domain.Property, error) {
	if err := p.sim.Wait(ctx, fetchByIDDelay); err != nil {
		return domain.Property{}, err
	}
	for _, prop := range catalog {
		if prop.ID == id {
			return cloneProperty(prop), nil
		}
	}
	return domain.Property{}, placeprovider.ErrNotFound
}

func (p *Provider) AddProperty(ctx context.Context, in placeprovider.NewProperty) (domain.Property, error) {
	if err := p.sim.Wait(ctx, addPropertyDelay); err != nil {
		return domain.Property{}, err
	}

	prop := domain.Property{
		ID:            p.newPropertyID(),
		Name:          in.Name,
		Type:          in.Type,
		Location:      in.Location,
		Country:       in.Country,
		ImageURL:      defaultImageURL,
		Images:        []string{},
		PricePerNight: defaultPricePerNight,
		Currency:      "USD",
		Description:   in.Description,
		Amenities:     []domain.Amenity{},
		HostName:      defaultHostName,
		HostAvatar:    defaultHostAvatar,
	}
	if prop.Name == "" {
		prop.Name = defaultName
	}
	if prop.Type == "" {
		prop.Type = domain.PropertyTypeHotel
	}
	if in.PricePerNight != nil {
		prop.PricePerNight = *in.PricePerNight
	}
	return prop, nil
}

func cloneProperty(prop domain.Property) domain.Property {
	cp := prop
	if prop.Images != nil {
		cp.Images = append([]string(nil), prop.Images...)
	}
	if prop.Amenities != nil {
		cp.Amenities = append([]domain.Amenity(nil), prop.Amenities...)
	}
	return cp
}
