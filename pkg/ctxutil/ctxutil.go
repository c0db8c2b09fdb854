package ctxutil

import (
	"context"

	"github.com/launchhub/launchpad-backend/internal/domain"
)

type ctxKey string

const (
	actorKey     ctxKey = "actor"
	requestIDKey ctxKey = "request_id"
)

// WithActor stores the authenticated actor in the context. Handlers extract
// it and pass it to services as an explicit parameter; services never read
// the context for identity.
func WithActor(ctx context.Context, actor domain.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromCtx extracts the actor from the context. Returns the anonymous
// actor if the value is missing or of the wrong type.
func ActorFromCtx(ctx context.Context) domain.Actor {
	actor, ok := ctx.Value(actorKey).(domain.Actor)
	if !ok {
		return domain.Anonymous
	}
	return actor
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
