// Package profile keeps the in-memory session mirror and the stored
// account consistent for the three mutable preference fields.
package profile

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/iudanet/studybuddy/internal/models"
	"github.com/iudanet/studybuddy/internal/server/storage"
)

// Service применяет изменения профиля к хранилищу и зеркалу сессии.
// Порядок всегда один: сначала запись в хранилище, затем обновление
// зеркала, чтобы при ошибке записи сессия не разошлась с БД.
type Service struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewService создает новый profile сервис
func NewService(logger *slog.Logger, users storage.UserStorage) *Service {
	return &Service{
		logger: logger,
		users:  users,
	}
}

// SetLearningStyle persists the learning style and updates the session
// mirror. Overwrite-safe: calling it again with any catalog value is fine.
func (s *Service) SetLearningStyle(ctx context.Context, session *models.SessionProfile, username string, style models.LearningStyle) error {
	if err := s.users.UpdateLearningStyle(ctx, username, string(style)); err != nil {
		return fmt.Errorf("failed to save learning style: %w", err)
	}

	session.LearningStyle = style

	s.logger.InfoContext(ctx, "learning style saved",
		slog.String("username", username),
		slog.String("style", string(style)))

	return nil
}

// SetDifficulty persists the difficulty level and updates the session
// mirror. Skips the store write when the value is already current.
func (s *Service) SetDifficulty(ctx context.Context, session *models.SessionProfile, username string, level models.Difficulty) error {
	if session.DifficultyLevel == level {
		return nil
	}

	if err := s.users.UpdateDifficulty(ctx, username, string(level)); err != nil {
		return fmt.Errorf("failed to save difficulty level: %w", err)
	}

	session.DifficultyLevel = level

	s.logger.InfoContext(ctx, "difficulty level saved",
		slog.String("username", username),
		slog.String("level", string(level)))

	return nil
}

// SetTopics replaces the whole topics list in storage and in the session
// mirror. An empty list clears previously stored topics. Skips the store
// write when the list is unchanged.
func (s *Service) SetTopics(ctx context.Context, session *models.SessionProfile, username string, topics []string) error {
	if topics == nil {
		topics = []string{}
	}

	if slices.Equal(session.TopicsOfInterest, topics) {
		return nil
	}

	if err := s.users.UpdateTopics(ctx, username, topics); err != nil {
		return fmt.Errorf("failed to save topics: %w", err)
	}

	session.TopicsOfInterest = topics

	s.logger.InfoContext(ctx, "topics saved",
		slog.String("username", username),
		slog.Int("count", len(topics)))

	return nil
}
