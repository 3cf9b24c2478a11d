package ports

import (
	"context"

	"github.com/realto/plots-api/internal/core/domain"
)

// SessionStore holds at most one Session per app instance. Put replaces
// the previous value wholesale.
type SessionStore interface {
	// Get returns domain.ErrNoSession when the instance has no Session.
	Get(ctx context.Context, instanceID string) (*domain.Session, error)
	Put(ctx context.Context, s *domain.Session) error
	// Delete succeeds when nothing is stored.
	Delete(ctx context.Context, instanceID string) error
}

// SessionObserver is notified after every Session transition. The
// navigation layer and metrics are observers; the service never routes.
type SessionObserver interface {
	SessionChanged(ev domain.SessionEvent)
}

// SessionGrant is the result of opening a Session.
type SessionGrant struct {
	Session *domain.Session
	Token   string
	Route   string
}

type SessionService interface {
	SelectRole(ctx context.Context, instanceID, role string) (*SessionGrant, error)
	SignIn(ctx context.Context, instanceID, email, password string) (*SessionGrant, error)
	Current(ctx context.Context, instanceID string) (*domain.Session, error)
	// Logout clears the instance's Session and returns the route to show next.
	Logout(ctx context.Context, instanceID string) (string, error)
	// Verify checks that sessionID is still the active Session of instanceID.
	Verify(ctx context.Context, instanceID, sessionID string) error
}
