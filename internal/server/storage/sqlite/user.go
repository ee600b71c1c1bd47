package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/studybuddy/internal/models"
	"github.com/iudanet/studybuddy/internal/server/storage"
)

// CreateUser creates a new user account
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, secret_hash, email, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.Username,
		user.SecretHash,
		user.Email,
		user.CreatedAt,
	)

	if err != nil {
		// Нарушение UNIQUE по username или email поднимаем как duplicate,
		// не различая какое именно поле занято
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return storage.ErrDuplicateIdentity
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByUsername retrieves user by username
func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `
		SELECT username, secret_hash, email, learning_style, difficulty_level, topics_of_interest, created_at
		FROM users
		WHERE username = ?
	`

	user := &models.User{}
	var learningStyle, difficulty, topicsJSON sql.NullString

	err := s.db.QueryRowContext(ctx, query, username).Scan(
		&user.Username,
		&user.SecretHash,
		&user.Email,
		&learningStyle,
		&difficulty,
		&topicsJSON,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if learningStyle.Valid {
		user.LearningStyle = learningStyle.String
	}
	if difficulty.Valid {
		user.DifficultyLevel = difficulty.String
	}
	if topicsJSON.Valid {
		topics := []string{}
		if err := json.Unmarshal([]byte(topicsJSON.String), &topics); err != nil {
			return nil, fmt.Errorf("failed to decode topics: %w", err)
		}
		user.TopicsOfInterest = topics
	}

	return user, nil
}

// VerifyCredentials reports whether a record exists with exactly
// this username/secretHash pair
func (s *Storage) VerifyCredentials(ctx context.Context, username, secretHash string) (bool, error) {
	query := `SELECT COUNT(1) FROM users WHERE username = ? AND secret_hash = ?`

	var count int
	if err := s.db.QueryRowContext(ctx, query, username, secretHash).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to verify credentials: %w", err)
	}

	return count > 0, nil
}

// UpdateLearningStyle overwrites the learning_style field
func (s *Storage) UpdateLearningStyle(ctx context.Context, username, style string) error {
	return s.updateField(ctx, "learning_style", username, style)
}

// UpdateDifficulty overwrites the difficulty_level field
func (s *Storage) UpdateDifficulty(ctx context.Context, username, level string) error {
	return s.updateField(ctx, "difficulty_level", username, level)
}

// UpdateTopics replaces the whole topics_of_interest list
func (s *Storage) UpdateTopics(ctx context.Context, username string, topics []string) error {
	if topics == nil {
		topics = []string{}
	}

	// Сериализуем список в JSON, пустой список хранится как "[]"
	encoded, err := json.Marshal(topics)
	if err != nil {
		return fmt.Errorf("failed to encode topics: %w", err)
	}

	return s.updateField(ctx, "topics_of_interest", username, string(encoded))
}

// updateField перезаписывает одно изменяемое поле для существующего пользователя.
// Имя колонки всегда приходит из кода, не от пользователя.
func (s *Storage) updateField(ctx context.Context, column, username, value string) error {
	query := fmt.Sprintf(`UPDATE users SET %s = ? WHERE username = ?`, column)

	result, err := s.db.ExecContext(ctx, query, value, username)
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", column, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return storage.ErrUserNotFound
	}

	return nil
}
