package session

import (
	"context"
	"errors"
	"time"
)

// TTL is how long a session lives in the backing store. The cookie max-age
// matches it so the browser and the store expire together.
const TTL = 24 * time.Hour

// CookieName carries the session id to the browser.
const CookieName = "spice_sid"

// ErrNotFound is returned when a session id has no live record.
var ErrNotFound = errors.New("session not found")

// Session is the server-side record behind one cookie.
type Session struct {
	ID        string    `json:"id"`
	UserID    uint      `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Store persists sessions. The redis-backed implementation is used when the
// cache store is reachable; the in-memory one is the degraded fallback
// (sessions lost on restart, not shared across instances).
type Store interface {
	// Get retrieves a live session by id, or ErrNotFound.
	Get(ctx context.Context, id string) (*Session, error)
	// Save writes the session with the standard TTL.
	Save(ctx context.Context, s *Session) error
	// Delete removes the session; deleting a missing session is not an error.
	Delete(ctx context.Context, id string) error
	// Close releases any underlying connection.
	Close() error
}
