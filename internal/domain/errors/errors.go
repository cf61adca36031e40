package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrEmailTaken         = errors.New("email address already registered")
	ErrNotOwner           = errors.New("course is owned by another user")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
