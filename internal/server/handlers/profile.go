package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/studybuddy/internal/models"
	"github.com/iudanet/studybuddy/internal/profile"
	"github.com/iudanet/studybuddy/internal/server/storage"
	"github.com/iudanet/studybuddy/internal/session"
	"github.com/iudanet/studybuddy/pkg/api"
)

// ProfileHandler обрабатывает запросы на чтение и изменение профиля
type ProfileHandler struct {
	logger   *slog.Logger
	profiles *profile.Service
	sessions *session.Manager
}

// NewProfileHandler создает новый handler для профиля
func NewProfileHandler(logger *slog.Logger, profiles *profile.Service, sessions *session.Manager) *ProfileHandler {
	return &ProfileHandler{
		logger:   logger,
		profiles: profiles,
		sessions: sessions,
	}
}

// Get обрабатывает GET /api/v1/profile
// Возвращает снимок зеркала активной сессии
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	sendJSON(h.logger, w, profileSnapshot(username, sess), http.StatusOK)
}

// SetLearningStyle обрабатывает PUT /api/v1/profile/learning-style
func (h *ProfileHandler) SetLearningStyle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req api.SetLearningStyleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Принимаем только значения из каталога
	style, err := models.ParseLearningStyle(req.LearningStyle)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid learning style",
			slog.String("username", username),
			slog.String("value", req.LearningStyle))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.profiles.SetLearningStyle(ctx, sess, username, style); err != nil {
		h.writeUpdateError(ctx, w, username, err)
		return
	}

	sendJSON(h.logger, w, profileSnapshot(username, sess), http.StatusOK)
}

// SetDifficulty обрабатывает PUT /api/v1/profile/difficulty
func (h *ProfileHandler) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req api.SetDifficultyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	level, err := models.ParseDifficulty(req.DifficultyLevel)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid difficulty level",
			slog.String("username", username),
			slog.String("value", req.DifficultyLevel))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.profiles.SetDifficulty(ctx, sess, username, level); err != nil {
		h.writeUpdateError(ctx, w, username, err)
		return
	}

	sendJSON(h.logger, w, profileSnapshot(username, sess), http.StatusOK)
}

// SetTopics обрабатывает PUT /api/v1/profile/topics
// Пустой список допустим и очищает сохраненные темы
func (h *ProfileHandler) SetTopics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req api.SetTopicsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := models.ValidateTopics(req.Topics); err != nil {
		h.logger.WarnContext(ctx, "invalid topics", slog.String("username", username), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.profiles.SetTopics(ctx, sess, username, req.Topics); err != nil {
		h.writeUpdateError(ctx, w, username, err)
		return
	}

	sendJSON(h.logger, w, profileSnapshot(username, sess), http.StatusOK)
}

// requireSession извлекает username из контекста и находит активную сессию
func (h *ProfileHandler) requireSession(w http.ResponseWriter, r *http.Request) (string, *models.SessionProfile, bool) {
	username, ok := r.Context().Value(UsernameKey).(string)
	if !ok || username == "" {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return "", nil, false
	}

	sess, ok := h.sessions.Get(username)
	if !ok {
		// Токен валиден, но сессии нет: пользователь разлогинился
		sendError(h.logger, w, "no active session, please log in again", http.StatusUnauthorized)
		return "", nil, false
	}

	return username, sess, true
}

// writeUpdateError переводит ошибку записи профиля в HTTP ответ
func (h *ProfileHandler) writeUpdateError(ctx context.Context, w http.ResponseWriter, username string, err error) {
	// Запись обновлялась для сессии, чей аккаунт исчез из хранилища
	if errors.Is(err, storage.ErrUserNotFound) {
		h.logger.ErrorContext(ctx, "account vanished for active session", slog.String("username", username))
		sendError(h.logger, w, "account no longer exists", http.StatusConflict)
		return
	}

	h.logger.ErrorContext(ctx, "failed to update profile", slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}
