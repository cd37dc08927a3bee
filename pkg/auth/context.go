package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// contextKey is an unexported type to prevent key collisions in context.
type contextKey string

const ownerIDKey contextKey = "owner_id"

// ErrOwnerIDNotFound is returned when no owner is attached to the request
// context. Handlers should return 401 when this error occurs.
var ErrOwnerIDNotFound = errors.New("owner_id not found in context")

// OwnerIDFromCtx extracts the owner whose items the request may touch.
// Returns uuid.Nil and ErrOwnerIDNotFound for unauthenticated requests.
func OwnerIDFromCtx(ctx context.Context) (uuid.UUID, error) {
	ownerID, ok := ctx.Value(ownerIDKey).(uuid.UUID)
	if !ok || ownerID == uuid.Nil {
		return uuid.Nil, ErrOwnerIDNotFound
	}
	return ownerID, nil
}

// WithOwnerID returns a new context with the given owner attached.
func WithOwnerID(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, ownerIDKey, ownerID)
}
