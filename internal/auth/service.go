// Package auth implements signup and login orchestration in front of
// the user storage: input validation, secret hashing, credential checks.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/studybuddy/internal/crypto"
	"github.com/iudanet/studybuddy/internal/models"
	"github.com/iudanet/studybuddy/internal/server/storage"
	"github.com/iudanet/studybuddy/internal/validation"
)

// ErrAuthFailed is the single login failure returned for both an unknown
// username and a wrong secret. The two causes are deliberately
// indistinguishable so the API does not leak which usernames exist.
var ErrAuthFailed = errors.New("invalid username or password")

// Service проверяет входные данные и управляет учетными записями
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewService создает новый auth сервис
func NewService(logger *slog.Logger, users storage.UserStorage) *Service {
	return &Service{
		logger: logger,
		users:  users,
	}
}

// Signup validates the raw signup input, hashes the secret and creates
// the account. Validation failures and storage.ErrDuplicateIdentity are
// returned verbatim for the caller to render.
func (s *Service) Signup(ctx context.Context, username, secret, email string) error {
	if err := validation.ValidateSignup(username, secret, email); err != nil {
		return err
	}

	user := &models.User{
		Username:   username,
		SecretHash: crypto.HashSecret(secret),
		Email:      email,
		CreatedAt:  time.Now(),
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrDuplicateIdentity) {
			return err
		}
		return fmt.Errorf("failed to create account: %w", err)
	}

	s.logger.InfoContext(ctx, "user signed up", slog.String("username", username))

	return nil
}

// Login hashes the supplied secret and verifies the username/hash pair.
// On success returns the full stored record for session hydration.
// On any failure returns ErrAuthFailed.
func (s *Service) Login(ctx context.Context, username, secret string) (*models.User, error) {
	ok, err := s.users.VerifyCredentials(ctx, username, crypto.HashSecret(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to verify credentials: %w", err)
	}
	if !ok {
		s.logger.WarnContext(ctx, "login failed", slog.String("username", username))
		return nil, ErrAuthFailed
	}

	user, err := s.users.GetUserByUsername(ctx, username)
	if err != nil {
		// Учетная запись исчезла между проверкой и чтением, для клиента
		// это все тот же неуспешный логин
		if errors.Is(err, storage.ErrUserNotFound) {
			return nil, ErrAuthFailed
		}
		return nil, fmt.Errorf("failed to load account: %w", err)
	}

	s.logger.InfoContext(ctx, "user logged in", slog.String("username", username))

	return user, nil
}
