package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRole    = errors.New("invalid role")
	ErrNoSession      = errors.New("no active session")
	ErrSessionRevoked = errors.New("session revoked")
	ErrForbidden      = errors.New("access forbidden")
	ErrValidation     = errors.New("validation failed")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")

	ErrUnknownCollection = errors.New("unknown collection")
	ErrRecordNotFound    = errors.New("record not found")
	ErrDuplicateRecord   = errors.New("record already exists")

	ErrPlotNotFound    = errors.New("plot not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrVisitNotFound   = errors.New("site visit not found")

	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrFeedbackNotAllowed = errors.New("feedback is only accepted for completed visits")

	ErrOutsideSite      = errors.New("not within an allowed site region")
	ErrAttendanceMarked = errors.New("attendance already marked today")
)

// StorageError reports a failed read or write against device-style
// key-value storage. Callers recover from it locally.
type StorageError struct {
	Op  string // "read", "decode", "write"
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
