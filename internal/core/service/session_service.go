package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/realto/plots-api/internal/core/domain"
	"github.com/realto/plots-api/internal/core/ports"
)

const defaultSessionTTL = 24 * time.Hour

// SessionService owns the Session cell of every app instance.
// It is created once at startup and handed to its consumers by reference.
type SessionService struct {
	store     ports.SessionStore
	auth      ports.AuthService
	jwtSecret []byte
	tokenTTL  time.Duration
	observers []ports.SessionObserver
	log       zerolog.Logger

	now   func() time.Time
	newID func() string
}

func NewSessionService(
	store ports.SessionStore,
	auth ports.AuthService,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
	observers ...ports.SessionObserver,
) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = defaultSessionTTL
	}
	return &SessionService{
		store:     store,
		auth:      auth,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
		observers: observers,
		log:       log.With().Str("component", "session").Logger(),
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// SelectRole opens the canned demo Session for role on instanceID,
// replacing whatever Session the instance had.
func (s *SessionService) SelectRole(ctx context.Context, instanceID, role string) (*ports.SessionGrant, error) {
	if err := requireInstance(instanceID); err != nil {
		return nil, err
	}
	r, err := domain.ParseRole(role)
	if err != nil {
		return nil, err
	}

	sess, err := domain.DemoSession(r, instanceID, s.newID(), s.now())
	if err != nil {
		return nil, err
	}
	return s.open(ctx, sess, domain.SessionSelected)
}

// SignIn opens a Session for a stored account.
func (s *SessionService) SignIn(ctx context.Context, instanceID, email, password string) (*ports.SessionGrant, error) {
	if err := requireInstance(instanceID); err != nil {
		return nil, err
	}
	user, err := s.auth.Authenticate(ctx, email, password)
	if err != nil {
		return nil, err
	}

	contact := user.Phone
	if contact == "" {
		contact = user.Email
	}
	sess := &domain.Session{
		ID:          s.newID(),
		InstanceID:  instanceID,
		ActorID:     user.ID,
		Role:        user.Role,
		DisplayName: user.Name,
		Contact:     contact,
		IssuedAt:    s.now().UTC(),
	}
	return s.open(ctx, sess, domain.SessionSignedIn)
}

func (s *SessionService) open(ctx context.Context, sess *domain.Session, kind domain.SessionEventKind) (*ports.SessionGrant, error) {
	token, err := IssueToken(s.jwtSecret, sess, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	if err := s.store.Put(ctx, sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}

	route := sess.Role.HomeRoute()
	s.notify(domain.SessionEvent{Kind: kind, InstanceID: sess.InstanceID, Session: sess, Route: route})
	s.log.Info().
		Str("instance_id", sess.InstanceID).
		Str("actor_id", sess.ActorID).
		Str("role", sess.Role.String()).
		Str("event", string(kind)).
		Msg("session opened")

	return &ports.SessionGrant{Session: sess, Token: token, Route: route}, nil
}

func (s *SessionService) Current(ctx context.Context, instanceID string) (*domain.Session, error) {
	if err := requireInstance(instanceID); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, instanceID)
}

// Logout clears the Session regardless of prior state.
func (s *SessionService) Logout(ctx context.Context, instanceID string) (string, error) {
	if err := requireInstance(instanceID); err != nil {
		return "", err
	}
	if err := s.store.Delete(ctx, instanceID); err != nil {
		return "", fmt.Errorf("clear session: %w", err)
	}

	s.notify(domain.SessionEvent{Kind: domain.SessionCleared, InstanceID: instanceID, Route: domain.RouteRoleSelect})
	s.log.Info().Str("instance_id", instanceID).Msg("session cleared")
	return domain.RouteRoleSelect, nil
}

func (s *SessionService) Verify(ctx context.Context, instanceID, sessionID string) error {
	cur, err := s.store.Get(ctx, instanceID)
	if err != nil {
		if errors.Is(err, domain.ErrNoSession) {
			return domain.ErrSessionRevoked
		}
		return err
	}
	if cur.ID != sessionID {
		return domain.ErrSessionRevoked
	}
	return nil
}

func (s *SessionService) notify(ev domain.SessionEvent) {
	for _, o := range s.observers {
		o.SessionChanged(ev)
	}
}

func requireInstance(instanceID string) error {
	if strings.TrimSpace(instanceID) == "" {
		return fmt.Errorf("%w: instance id is required", domain.ErrValidation)
	}
	return nil
}
