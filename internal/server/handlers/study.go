package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/studybuddy/internal/genai"
	"github.com/iudanet/studybuddy/internal/models"
	"github.com/iudanet/studybuddy/internal/session"
	"github.com/iudanet/studybuddy/pkg/api"
)

// DefaultHistoryLimit сколько последних учебных сессий отдаем по умолчанию
const DefaultHistoryLimit = 5

// StudyHandler обрабатывает генерацию учебных материалов, тестов и чат
type StudyHandler struct {
	logger   *slog.Logger
	provider genai.Provider
	sessions *session.Manager
}

// NewStudyHandler создает новый handler для генерации материалов
func NewStudyHandler(logger *slog.Logger, provider genai.Provider, sessions *session.Manager) *StudyHandler {
	return &StudyHandler{
		logger:   logger,
		provider: provider,
		sessions: sessions,
	}
}

// GenerateMaterials обрабатывает POST /api/v1/study/materials
// Сгенерированные материалы добавляются в историю занятий сессии
func (h *StudyHandler) GenerateMaterials(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	// Генерация персонализирована стилем обучения, без него не работаем
	if sess.LearningStyle == "" {
		sendError(h.logger, w, "please complete your profile setup first", http.StatusBadRequest)
		return
	}

	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		sendError(h.logger, w, "topic is required", http.StatusBadRequest)
		return
	}

	prompt := genai.StudyMaterialsPrompt(topic, sess.LearningStyle, sess.DifficultyLevel)

	content, err := h.provider.GenerateContent(ctx, prompt)
	if err != nil {
		h.writeGenerationError(ctx, w, err)
		return
	}

	// Сохраняем в историю занятий (только в памяти сессии)
	sess.AppendStudyRecord(topic, content, time.Now())

	h.logger.InfoContext(ctx, "study materials generated",
		slog.String("username", username),
		slog.String("topic", topic))

	resp := api.GenerateResponse{
		Topic:   topic,
		Content: content,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// GeneratePracticeTest обрабатывает POST /api/v1/study/practice-test
// В отличие от материалов, тесты в историю не попадают
func (h *StudyHandler) GeneratePracticeTest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	if sess.LearningStyle == "" {
		sendError(h.logger, w, "please complete your profile setup first", http.StatusBadRequest)
		return
	}

	var req api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		sendError(h.logger, w, "topic is required", http.StatusBadRequest)
		return
	}

	prompt := genai.PracticeTestPrompt(topic, sess.LearningStyle, sess.DifficultyLevel)

	content, err := h.provider.GenerateContent(ctx, prompt)
	if err != nil {
		h.writeGenerationError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "practice test generated",
		slog.String("username", username),
		slog.String("topic", topic))

	resp := api.GenerateResponse{
		Topic:   topic,
		Content: content,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Chat обрабатывает POST /api/v1/study/chat
// Вопрос к AI tutor, персонализированный стилем обучения
func (h *StudyHandler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	username, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	var req api.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		sendError(h.logger, w, "please enter a question before asking", http.StatusBadRequest)
		return
	}

	prompt := genai.TutorChatPrompt(question, sess.LearningStyle)

	answer, err := h.provider.GenerateContent(ctx, prompt)
	if err != nil {
		h.writeGenerationError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "tutor chat answered", slog.String("username", username))

	sendJSON(h.logger, w, api.ChatResponse{Answer: answer}, http.StatusOK)
}

// History обрабатывает GET /api/v1/study/history
// Последние учебные сессии, самые свежие первыми
func (h *StudyHandler) History(w http.ResponseWriter, r *http.Request) {
	_, sess, ok := h.requireSession(w, r)
	if !ok {
		return
	}

	limit := DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			sendError(h.logger, w, "limit must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	records := sess.RecentHistory(limit)

	resp := api.HistoryResponse{
		Records: make([]api.StudyRecordResponse, 0, len(records)),
	}
	for _, record := range records {
		resp.Records = append(resp.Records, api.StudyRecordResponse{
			Topic:     record.Topic,
			Timestamp: record.Timestamp,
		})
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// requireSession извлекает username из контекста и находит активную сессию
func (h *StudyHandler) requireSession(w http.ResponseWriter, r *http.Request) (string, *models.SessionProfile, bool) {
	username, ok := r.Context().Value(UsernameKey).(string)
	if !ok || username == "" {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return "", nil, false
	}

	sess, ok := h.sessions.Get(username)
	if !ok {
		sendError(h.logger, w, "no active session, please log in again", http.StatusUnauthorized)
		return "", nil, false
	}

	return username, sess, true
}

// writeGenerationError переводит ошибку провайдера в HTTP ответ.
// Ошибка генерации никогда не фатальна: сессия и аккаунт не затронуты.
func (h *StudyHandler) writeGenerationError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, genai.ErrGenerationFailed) {
		h.logger.WarnContext(ctx, "generation failed", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadGateway)
		return
	}

	h.logger.ErrorContext(ctx, "unexpected generation error", slog.Any("error", err))
	sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
}
