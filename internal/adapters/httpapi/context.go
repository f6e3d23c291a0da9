package httpapi

import (
	"context"

	"github.com/triplinker/triplinker-api/internal/platform/auth/sessiontoken"
)

type sessionKey struct{}

func WithSession(ctx context.Context, s sessiontoken.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFromContext(ctx context.Context) (sessiontoken.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(sessiontoken.Session)
	return s, ok && s.UserID != ""
}
