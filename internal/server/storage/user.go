package storage

import (
	"context"

	"github.com/iudanet/studybuddy/internal/models"
)

// UserStorage defines interface for user account persistence
type UserStorage interface {
	// CreateUser creates a new user account
	// Returns ErrDuplicateIdentity if username or email already exists
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves user by username
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// VerifyCredentials reports whether a record exists with exactly
	// this username/secretHash pair
	VerifyCredentials(ctx context.Context, username, secretHash string) (bool, error)

	// UpdateLearningStyle overwrites the learning_style field
	// Returns ErrUserNotFound if user doesn't exist
	UpdateLearningStyle(ctx context.Context, username, style string) error

	// UpdateDifficulty overwrites the difficulty_level field
	// Returns ErrUserNotFound if user doesn't exist
	UpdateDifficulty(ctx context.Context, username, level string) error

	// UpdateTopics replaces the whole topics_of_interest list.
	// The list is JSON-encoded before storage; an empty list is stored
	// as "[]", not NULL. Returns ErrUserNotFound if user doesn't exist.
	UpdateTopics(ctx context.Context, username string, topics []string) error
}
