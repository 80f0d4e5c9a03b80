package domain

import "errors"

var (
	// ErrUnauthenticated means no valid session exists for the request.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidCredentials is returned when the upstream rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrSessionNotFound means the persisted session record is missing or
	// incomplete; the caller must treat the user as logged out.
	ErrSessionNotFound = errors.New("session not found")
)
