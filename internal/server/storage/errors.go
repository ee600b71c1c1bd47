package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateIdentity indicates that username or email is already taken.
	// The store deliberately does not say which one (surfaced as one message).
	ErrDuplicateIdentity = errors.New("username or email already exists")
)
