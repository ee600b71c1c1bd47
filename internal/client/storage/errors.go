package storage

import "errors"

// ErrAuthNotFound indicates that no saved session exists
var ErrAuthNotFound = errors.New("auth data not found")
