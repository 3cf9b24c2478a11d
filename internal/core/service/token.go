package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/realto/plots-api/internal/core/domain"
)

// SessionClaims is the JWT payload handed to the app after a Session opens.
type SessionClaims struct {
	SessionID  string `json:"sid"`
	InstanceID string `json:"iid"`
	Role       string `json:"role"`
	Name       string `json:"name"`
	Contact    string `json:"contact,omitempty"`
	jwt.RegisteredClaims
}

var errUnexpectedAlg = errors.New("unexpected signing method")

// IssueToken signs an HS256 token for s that expires after ttl.
func IssueToken(secret []byte, s *domain.Session, ttl time.Duration) (string, error) {
	claims := SessionClaims{
		SessionID:  s.ID,
		InstanceID: s.InstanceID,
		Role:       s.Role.String(),
		Name:       s.DisplayName,
		Contact:    s.Contact,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.ActorID,
			IssuedAt:  jwt.NewNumericDate(s.IssuedAt),
			ExpiresAt: jwt.NewNumericDate(s.IssuedAt.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// ParseToken validates signature and expiry and returns the claims.
func ParseToken(secret []byte, raw string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errUnexpectedAlg
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}

// Session rebuilds the Session carried by the token.
func (c *SessionClaims) Session() *domain.Session {
	s := &domain.Session{
		ID:          c.SessionID,
		InstanceID:  c.InstanceID,
		ActorID:     c.Subject,
		Role:        domain.Role(c.Role),
		DisplayName: c.Name,
		Contact:     c.Contact,
	}
	if c.IssuedAt != nil {
		s.IssuedAt = c.IssuedAt.Time.UTC()
	}
	return s
}
