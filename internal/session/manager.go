package session

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const contextKey = "session"

// Manager owns the session store and the cookie contract. It is handed to
// the pipeline constructor and the auth controller explicitly so tests can
// substitute a store.
type Manager struct {
	store  Store
	secure bool
}

// NewManager wraps a store. secure controls the cookie flags: production
// uses Secure + SameSite=None for the cross-origin frontend, everything
// else uses SameSite=Lax over plain HTTP.
func NewManager(store Store, secure bool) *Manager {
	return &Manager{store: store, secure: secure}
}

// Middleware resolves the session cookie into a Session on the request
// context. Requests without a valid session pass through; gating is the
// auth middleware's job.
func (m *Manager) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(CookieName)
		if err == nil && cookie != "" {
			sess, err := m.store.Get(c.Request.Context(), cookie)
			if err == nil {
				c.Set(contextKey, sess)
			} else if err != ErrNotFound {
				log.WithError(err).Warn("Session lookup failed")
			}
		}
		c.Next()
	}
}

// Start creates a session for the given user and sets the cookie.
func (m *Manager) Start(c *gin.Context, userID uint) (*Session, error) {
	sess := &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.Save(c.Request.Context(), sess); err != nil {
		return nil, err
	}

	m.setSameSite(c)
	c.SetCookie(CookieName, sess.ID, int(TTL.Seconds()), "/", "", m.secure, true)
	c.Set(contextKey, sess)
	return sess, nil
}

// Destroy deletes the current session and expires the cookie.
func (m *Manager) Destroy(c *gin.Context) error {
	sess := Current(c)
	if sess == nil {
		return nil
	}
	if err := m.store.Delete(c.Request.Context(), sess.ID); err != nil {
		return err
	}

	m.setSameSite(c)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
	return nil
}

// Close releases the underlying store connection.
func (m *Manager) Close() error {
	return m.store.Close()
}

func (m *Manager) setSameSite(c *gin.Context) {
	if m.secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
}

// Current returns the resolved session for this request, or nil.
func Current(c *gin.Context) *Session {
	value, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, ok := value.(*Session)
	if !ok {
		return nil
	}
	return sess
}
