package model

import (
	"errors"
	"fmt"
)

// Failure classes shared by the storage implementations and services.
// Handlers translate these into the response envelope: malformed identifiers
// and duplicate emails are client errors, a missing record is a 404.
var (
	ErrNotFound       = errors.New("record not found")
	ErrMalformedID    = errors.New("invalid identifier format")
	ErrDuplicateEmail = errors.New("student with this email already exists")
	ErrInvalidEmail   = errors.New("please provide a valid email address")
)

// UnresolvedReferenceError reports the first registeredEvents entry that did
// not resolve to a stored Event. The whole student write is rejected; no
// partial write happens.
type UnresolvedReferenceError struct {
	EventID string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("event with ID %s not found", e.EventID)
}
