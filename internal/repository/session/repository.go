package session

import (
	"context"
	"time"

	"shoply/internal/domain"
)

// Repository stores per-session browse state keyed by the opaque session id
// issued in the session cookie. Expired sessions behave as missing.
type Repository interface {
	Get(ctx context.Context, id string) (*domain.SessionState, error)
	Save(ctx context.Context, id string, state domain.SessionState, expiresAt time.Time) error
	Delete(ctx context.Context, id string) error
}
