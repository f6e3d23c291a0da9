package domain

import "time"

// TravelPost is a social feed item. Authored content is immutable mock data;
// only the like state (Likes, IsLiked) changes after fetch, and only through
// the explore container's toggle.
type TravelPost struct {
	ID PostID

	AuthorName   string
	AuthorAvatar string

	Location string
	Country  string
	ImageURL string
	Caption  string

	Likes    int
	Comments int
	Tags     []string

	CreatedAt time.Time
	IsLiked   bool
}
