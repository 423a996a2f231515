// Package session holds the server-side login state. Callers carry only an
// opaque session id in a cookie; everything else lives in the store.
package session

import (
	"context"
	"time"

	"zyro-visual/internal/entity"
)

// TTL is the fixed session lifetime. The cookie max-age matches it.
const TTL = 24 * time.Hour

type Session struct {
	ID        string    `json:"id"`
	UserID    int       `json:"userId"`
	Username  string    `json:"username"`
	IsAdmin   bool      `json:"isAdmin"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is the session backend. Get returns (nil, nil) for unknown or expired
// ids; Delete on an unknown id is a no-op.
type Store interface {
	Create(ctx context.Context, user *entity.User) (*Session, error)
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}
