package domain

import "time"

// Session is the in-memory identity of one running app instance.
// A Session is never mutated: a role switch replaces it wholesale.
type Session struct {
	ID          string    `json:"id"`
	InstanceID  string    `json:"instance_id"`
	ActorID     string    `json:"actor_id"`
	Role        Role      `json:"role"`
	DisplayName string    `json:"display_name"`
	Contact     string    `json:"contact"`
	IssuedAt    time.Time `json:"issued_at"`
}

// SessionEventKind names a Session lifecycle transition.
type SessionEventKind string

const (
	SessionSelected SessionEventKind = "selected"
	SessionSignedIn SessionEventKind = "signed_in"
	SessionCleared  SessionEventKind = "cleared"
)

// SessionEvent is published to observers after every transition.
// Session is nil for SessionCleared.
type SessionEvent struct {
	Kind       SessionEventKind
	InstanceID string
	Session    *Session
	Route      string
}

type demoIdentity struct {
	actorID     string
	displayName string
	contact     string
}

// Placeholder identities handed out by role selection. They stand in for
// real credential issuance; see SignIn for the account-backed path.
var demoIdentities = map[Role]demoIdentity{
	RoleGuest:   {actorID: "guest-001", displayName: "Guest User", contact: ""},
	RoleClient:  {actorID: "client-001", displayName: "Demo Client", contact: "+91 90000 00000"},
	RoleManager: {actorID: "manager-001", displayName: "Demo Manager", contact: "+91 80000 00000"},
}

// DemoSession synthesises the canned Session for role. The result depends
// only on role, instanceID, sessionID and now.
func DemoSession(role Role, instanceID, sessionID string, now time.Time) (*Session, error) {
	id, ok := demoIdentities[role]
	if !ok {
		return nil, ErrInvalidRole
	}
	return &Session{
		ID:          sessionID,
		InstanceID:  instanceID,
		ActorID:     id.actorID,
		Role:        role,
		DisplayName: id.displayName,
		Contact:     id.contact,
		IssuedAt:    now.UTC(),
	}, nil
}
