package statsprovider

import (
	"context"

	"github.com/triplinker/triplinker-api/internal/domain"
)

// Provider fulfills profile statistics requests.
type Provider interface {
	FetchStats(ctx context.Context, userID domain.UserID) (domain.ProfileStats, error)
}
