package storage

import "context"

// AuthStorage defines interface for storing the CLI session on disk so
// the user stays logged in between invocations. Only the token and its
// expiry live here; the profile mirror is always fetched from the server.
type AuthStorage interface {
	// SaveAuth stores authentication data, replacing any previous session
	SaveAuth(ctx context.Context, auth *AuthData) error

	// GetAuth retrieves stored authentication data
	// Returns ErrAuthNotFound if no auth data exists
	GetAuth(ctx context.Context) (*AuthData, error)

	// DeleteAuth removes stored authentication data (logout)
	DeleteAuth(ctx context.Context) error

	// IsAuthenticated checks if valid authentication exists (not expired)
	IsAuthenticated(ctx context.Context) (bool, error)
}

// AuthData represents the CLI session in storage
type AuthData struct {
	Username    string `json:"username"`     // владелец сессии
	AccessToken string `json:"access_token"` // JWT access token
	ExpiresAt   int64  `json:"expires_at"`   // unix время истечения токена
}
