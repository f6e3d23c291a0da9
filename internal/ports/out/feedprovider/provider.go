package feedprovider

import (
	"context"

	"github.com/triplinker/triplinker-api/internal/domain"
)

// Provider fulfills explore feed requests.
//
// Result ordering expectations:
//   - FetchPosts returns posts in canonical feed order (newest first); the
//     explore container replaces its list wholesale with whatever is returned.
type Provider interface {
	FetchPosts(ctx context.Context) ([]domain.TravelPost, error)
}
