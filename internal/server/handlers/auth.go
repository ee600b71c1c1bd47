package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/studybuddy/internal/auth"
	"github.com/iudanet/studybuddy/internal/server/storage"
	"github.com/iudanet/studybuddy/internal/session"
	"github.com/iudanet/studybuddy/internal/validation"
	"github.com/iudanet/studybuddy/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger      *slog.Logger
	authService *auth.Service
	sessions    *session.Manager
	jwtConfig   JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, authService *auth.Service, sessions *session.Manager, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:      logger,
		authService: authService,
		sessions:    sessions,
		jwtConfig:   jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.authService.Signup(ctx, req.Username, req.Password, req.Email); err != nil {
		// Занятый username/email это конфликт, не ошибка сервера
		if errors.Is(err, storage.ErrDuplicateIdentity) {
			h.logger.WarnContext(ctx, "duplicate identity", slog.String("username", req.Username))
			sendError(h.logger, w, err.Error(), http.StatusConflict)
			return
		}

		// Ошибки валидации отдаем пользователю как есть, все сразу
		if isValidationError(err) {
			h.logger.WarnContext(ctx, "invalid signup input",
				slog.String("username", req.Username),
				slog.Any("error", err))
			sendError(h.logger, w, err.Error(), http.StatusBadRequest)
			return
		}

		h.logger.ErrorContext(ctx, "failed to sign up user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully", slog.String("username", req.Username))

	resp := api.RegisterResponse{
		Username: req.Username,
		Message:  "Signup successful!",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя и создание сессии
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.authService.Login(ctx, req.Username, req.Password)
	if err != nil {
		// Одно сообщение для неизвестного username и неверного пароля
		if errors.Is(err, auth.ErrAuthFailed) {
			sendError(h.logger, w, "invalid username or password", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to log in user", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Гидратируем зеркало сессии из сохраненной записи
	profile := h.sessions.Create(user.Username, user)

	// Генерируем JWT access token
	accessToken, expiresIn, err := GenerateAccessToken(h.jwtConfig, user.Username)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate access token", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	resp := api.LoginResponse{
		AccessToken: accessToken,
		ExpiresIn:   expiresIn,
		Profile:     profileSnapshot(user.Username, profile),
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Logout обрабатывает POST /api/v1/auth/logout
// Сессия удаляется целиком, история занятий не сохраняется
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, ok := ctx.Value(UsernameKey).(string)
	if !ok || username == "" {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	h.sessions.Delete(username)

	h.logger.InfoContext(ctx, "user logged out", slog.String("username", username))

	w.WriteHeader(http.StatusNoContent)
}

// isValidationError проверяет, является ли ошибка ошибкой валидации входных данных
func isValidationError(err error) bool {
	return errors.Is(err, validation.ErrUsernameTooShort) ||
		errors.Is(err, validation.ErrSecretTooShort) ||
		errors.Is(err, validation.ErrInvalidEmail)
}
