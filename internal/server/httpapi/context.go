package httpapi

import (
	"context"

	"github.com/avasiljevs/itemvault/internal/server/models"
)

type actorContextKey struct{}

// WithActor returns a new context with the authenticated user attached.
func WithActor(ctx context.Context, actor *models.User) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actor)
}

// ActorFromContext retrieves the authenticated user from the context,
// returning nil if not present.
func ActorFromContext(ctx context.Context) *models.User {
	actor, ok := ctx.Value(actorContextKey{}).(*models.User)
	if !ok {
		return nil
	}
	return actor
}
