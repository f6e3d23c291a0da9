package httpapi

import (
	"time"

	"github.com/oapi-codegen/nullable"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/triplinker/triplinker-api/internal/app/auth"
	"github.com/triplinker/triplinker-api/internal/domain"
	"github.com/triplinker/triplinker-api/internal/ports/out/placeprovider"
)

// Request bodies.

type loginRequest struct {
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
	Role     string              `json:"role,omitempty"`
}

type signupRequest struct {
	Name     string              `json:"name"`
	Email    openapi_types.Email `json:"email"`
	Password string              `json:"password"`
	Role     string              `json:"role,omitempty"`
}

// addPropertyRequest is all-optional: absent or null fields take provider
// defaults. Nullable keeps "present but null" decodable instead of failing
// the whole body.
type addPropertyRequest struct {
	Name          nullable.Nullable[string]  `json:"name,omitempty"`
	Type          nullable.Nullable[string]  `json:"type,omitempty"`
	Location      nullable.Nullable[string]  `json:"location,omitempty"`
	Country       nullable.Nullable[string]  `json:"country,omitempty"`
	Description   nullable.Nullable[string]  `json:"description,omitempty"`
	PricePerNight nullable.Nullable[float64] `json:"pricePerNight,omitempty"`
}

// generateItineraryRequest carries the raw form input. Budget stays a string
// so that parse failures surface as INVALID_BUDGET, not a JSON decode error.
type generateItineraryRequest struct {
	Location string `json:"location"`
	Budget   string `json:"budget"`
}

// Response bodies.

type userDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Avatar   string    `json:"avatar"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

type sessionResponse struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

type authStateResponse struct {
	Authenticated bool     `json:"authenticated"`
	User          *userDTO `json:"user,omitempty"`
	Role          string   `json:"role,omitempty"`
	Loading       bool     `json:"loading"`
	Error         string   `json:"error,omitempty"`
}

type postDTO struct {
	ID         string    `json:"id"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar"`
	Location   string    `json:"location"`
	Country    string    `json:"country"`
	Image      string    `json:"image"`
	Caption    string    `json:"caption"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Tags       []string  `json:"tags"`
	CreatedAt  time.Time `json:"createdAt"`
	IsLiked    bool      `json:"isLiked"`
}

type postListResponse struct {
	Posts []postDTO `json:"posts"`
}

type amenityDTO struct {
	Icon  string `json:"icon"`
	Label string `json:"label"`
}

type propertyDTO struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Type          string       `json:"type"`
	Location      string       `json:"location"`
	Country       string       `json:"country"`
	Image         string       `json:"image"`
	Images        []string     `json:"images"`
	PricePerNight float64      `json:"pricePerNight"`
	Currency      string       `json:"currency"`
	Rating        float64      `json:"rating"`
	ReviewCount   int          `json:"reviewCount"`
	Description   string       `json:"description"`
	Amenities     []amenityDTO `json:"amenities"`
	HostName      string       `json:"hostName"`
	HostAvatar    string       `json:"hostAvatar"`
	IsFavorited   bool         `json:"isFavorited"`
}

type propertyListResponse struct {
	Properties []propertyDTO `json:"properties"`
}

type activityDTO struct {
	Time        string `json:"time"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Cost        int    `json:"cost"`
}

type itineraryDayDTO struct {
	Day        int           `json:"day"`
	Title      string        `json:"title"`
	Activities []activityDTO `json:"activities"`
}

type itineraryDTO struct {
	ID            string            `json:"id"`
	Location      string            `json:"location"`
	Budget        float64           `json:"budget"`
	Currency      string            `json:"currency"`
	TotalDays     int               `json:"totalDays"`
	EstimatedCost int               `json:"estimatedCost"`
	Summary       string            `json:"summary"`
	Days          []itineraryDayDTO `json:"days"`
	Tips          []string          `json:"tips"`
	GeneratedAt   time.Time         `json:"generatedAt"`
}

type statsResponse struct {
	TripsPlanned  int `json:"tripsPlanned"`
	PlacesVisited int `json:"placesVisited"`
	ReviewsGiven  int `json:"reviewsGiven"`
	Followers     int `json:"followers"`
	Following     int `json:"following"`
}

// Mapping helpers.

func toUserDTO(u domain.User) userDTO {
	return userDTO{
		ID:       string(u.ID),
		Name:     u.Name,
		Email:    u.Email,
		Avatar:   u.AvatarURL,
		Role:     string(u.Role),
		JoinedAt: u.JoinedAt,
	}
}

func toAuthStateResponse(s auth.State) authStateResponse {
	resp := authStateResponse{
		Authenticated: s.IsAuthenticated(),
		Role:          string(s.Role),
		Loading:       s.Loading,
		Error:         s.Err,
	}
	if s.User != nil {
		u := toUserDTO(*s.User)
		resp.User = &u
	}
	return resp
}

func toPostDTO(p domain.TravelPost) postDTO {
	return postDTO{
		ID:         string(p.ID),
		UserName:   p.AuthorName,
		UserAvatar: p.AuthorAvatar,
		Location:   p.Location,
		Country:    p.Country,
		Image:      p.ImageURL,
		Caption:    p.Caption,
		Likes:      p.Likes,
		Comments:   p.Comments,
		Tags:       p.Tags,
		CreatedAt:  p.CreatedAt,
		IsLiked:    p.IsLiked,
	}
}

func toPropertyDTO(p domain.Property) propertyDTO {
	amenities := make([]amenityDTO, 0, len(p.Amenities))
	for _, a := range p.Amenities {
		amenities = append(amenities, amenityDTO{Icon: a.Icon, Label: a.Label})
	}
	return propertyDTO{
		ID:            string(p.ID),
		Name:          p.Name,
		Type:          string(p.Type),
		Location:      p.Location,
		Country:       p.Country,
		Image:         p.ImageURL,
		Images:        p.Images,
		PricePerNight: p.PricePerNight,
		Currency:      p.Currency,
		Rating:        p.Rating,
		ReviewCount:   p.ReviewCount,
		Description:   p.Description,
		Amenities:     amenities,
		HostName:      p.HostName,
		HostAvatar:    p.HostAvatar,
		IsFavorited:   p.IsFavorited,
	}
}

func toItineraryDTO(it domain.Itinerary) itineraryDTO {
	days := make([]itineraryDayDTO, 0, len(it.Days))
	for _, d := range it.Days {
		activities := make([]activityDTO, 0, len(d.Activities))
		for _, a := range d.Activities {
			activities = append(activities, activityDTO{
				Time:        a.Time,
				Description: a.Description,
				Type:        string(a.Type),
				Cost:        a.Cost,
			})
		}
		days = append(days, itineraryDayDTO{Day: d.Day, Title: d.Title, Activities: activities})
	}
	return itineraryDTO{
		ID:            string(it.ID),
		Location:      it.Location,
		Budget:        it.Budget,
		Currency:      it.Currency,
		TotalDays:     it.TotalDays,
		EstimatedCost: it.EstimatedCost,
		Summary:       it.Summary,
		Days:          days,
		Tips:          it.Tips,
		GeneratedAt:   it.GeneratedAt,
	}
}

func toNewProperty(req addPropertyRequest) placeprovider.NewProperty {
	var in placeprovider.NewProperty
	if v, err := req.Name.Get(); err == nil {
		in.Name = v
	}
	if v, err := req.Type.Get(); err == nil {
		in.Type = domain.PropertyType(v)
	}
	if v, err := req.Location.Get(); err == nil {
		in.Location = v
	}
	if v, err := req.Country.Get(); err == nil {
		in.Country = v
	}
	if v, err := req.Description.Get(); err == nil {
		in.Description = v
	}
	if v, err := req.PricePerNight.Get(); err == nil {
		in.PricePerNight = &v
	}
	return in
}
