package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized indicates the current session lacks the required permission.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidCredentials is returned when username/password/role do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
