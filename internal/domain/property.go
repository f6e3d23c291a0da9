package domain

// PropertyType is the listing category of a property.
type PropertyType string

const (
	PropertyTypeHotel     PropertyType = "hotel"
	PropertyTypeVilla     PropertyType = "villa"
	PropertyTypeHostel    PropertyType = "hostel"
	PropertyTypeResort    PropertyType = "resort"
	PropertyTypeApartment PropertyType = "apartment"
)

// ValidPropertyType reports whether t is one of the known listing categories.
func ValidPropertyType(t PropertyType) bool {
	switch t {
	case PropertyTypeHotel, PropertyTypeVilla, PropertyTypeHostel, PropertyTypeResort, PropertyTypeApartment:
		return true
	default:
		return false
	}
}

// Amenity is a single labeled amenity on a property listing.
type Amenity struct {
	Icon  string
	Label string
}

// Property is a bookable listing. IsFavorited is the only field mutated after
// fetch; everything else comes from the provider payload.
type Property struct {
	ID PropertyID

	Name     string
	Type     PropertyType
	Location string
	Country  string

	ImageURL string
	Images   []string

	PricePerNight float64
	Currency      string

	Rating      float64
	ReviewCount int

	Description string
	Amenities   []Amenity

	HostName   string
	HostAvatar string

	IsFavorited bool
}
