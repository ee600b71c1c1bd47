package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/studybuddy/internal/genai"
	"github.com/iudanet/studybuddy/internal/models"
	"github.com/iudanet/studybuddy/internal/session"
	"github.com/iudanet/studybuddy/pkg/api"
)

// fakeProvider возвращает заранее заданный ответ или ошибку
type fakeProvider struct {
	response   string
	err        error
	lastPrompt string
}

func (p *fakeProvider) GenerateContent(_ context.Context, prompt string) (string, error) {
	p.lastPrompt = prompt
	if p.err != nil {
		return "", p.err
	}
	return p.response, nil
}

func setupStudyHandler(provider genai.Provider) (*StudyHandler, *session.Manager) {
	sessions := session.NewManager()
	handler := NewStudyHandler(testLogger(), provider, sessions)
	return handler, sessions
}

func createStudySession(sessions *session.Manager, username string) *models.SessionProfile {
	return sessions.Create(username, &models.User{
		Username:      username,
		LearningStyle: string(models.StyleVisual),
	})
}

func TestStudyHandler_GenerateMaterials(t *testing.T) {
	provider := &fakeProvider{response: "here are your materials"}
	handler, sessions := setupStudyHandler(provider)
	sess := createStudySession(sessions, "bob")

	body, _ := json.Marshal(api.GenerateRequest{Topic: "Algebra"})

	req := authedRequest(http.MethodPost, "/api/v1/study/materials", body, "bob")
	w := httptest.NewRecorder()

	handler.GenerateMaterials(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Algebra", resp.Topic)
	assert.Equal(t, "here are your materials", resp.Content)

	// Prompt собран из темы, стиля и сложности
	assert.Contains(t, provider.lastPrompt, "Algebra")
	assert.Contains(t, provider.lastPrompt, string(models.StyleVisual))
	assert.Contains(t, provider.lastPrompt, "medium")

	// Материалы записаны в историю сессии
	require.Len(t, sess.StudyHistory, 1)
	assert.Equal(t, "Algebra", sess.StudyHistory[0].Topic)
	assert.Equal(t, "here are your materials", sess.StudyHistory[0].Content)
}

func TestStudyHandler_GenerateMaterials_ProfileIncomplete(t *testing.T) {
	handler, sessions := setupStudyHandler(&fakeProvider{response: "materials"})
	// Сессия без выбранного стиля обучения
	sessions.Create("bob", &models.User{Username: "bob"})

	body, _ := json.Marshal(api.GenerateRequest{Topic: "Algebra"})

	req := authedRequest(http.MethodPost, "/api/v1/study/materials", body, "bob")
	w := httptest.NewRecorder()

	handler.GenerateMaterials(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "please complete your profile setup first", resp.Message)
}

func TestStudyHandler_GenerateMaterials_EmptyTopic(t *testing.T) {
	handler, sessions := setupStudyHandler(&fakeProvider{response: "materials"})
	createStudySession(sessions, "bob")

	tests := []struct {
		name  string
		topic string
	}{
		{name: "empty", topic: ""},
		{name: "whitespace only", topic: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, _ := json.Marshal(api.GenerateRequest{Topic: tt.topic})

			req := authedRequest(http.MethodPost, "/api/v1/study/materials", body, "bob")
			w := httptest.NewRecorder()

			handler.GenerateMaterials(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestStudyHandler_GenerateMaterials_ProviderFailure(t *testing.T) {
	provider := &fakeProvider{
		err: fmt.Errorf("%w: quota exceeded", genai.ErrGenerationFailed),
	}
	handler, sessions := setupStudyHandler(provider)
	sess := createStudySession(sessions, "bob")

	body, _ := json.Marshal(api.GenerateRequest{Topic: "Algebra"})

	req := authedRequest(http.MethodPost, "/api/v1/study/materials", body, "bob")
	w := httptest.NewRecorder()

	handler.GenerateMaterials(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Contains(t, resp.Message, "quota exceeded")

	// Неуспешная генерация не попадает в историю
	assert.Empty(t, sess.StudyHistory)
}

func TestStudyHandler_GeneratePracticeTest(t *testing.T) {
	provider := &fakeProvider{response: "question 1: ..."}
	handler, sessions := setupStudyHandler(provider)
	sess := createStudySession(sessions, "bob")

	body, _ := json.Marshal(api.GenerateRequest{Topic: "Geometry"})

	req := authedRequest(http.MethodPost, "/api/v1/study/practice-test", body, "bob")
	w := httptest.NewRecorder()

	handler.GeneratePracticeTest(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.GenerateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "Geometry", resp.Topic)
	assert.Contains(t, provider.lastPrompt, "practice test")

	// Тесты в историю занятий не записываются
	assert.Empty(t, sess.StudyHistory)
}

func TestStudyHandler_Chat(t *testing.T) {
	provider := &fakeProvider{response: "a derivative measures..."}
	handler, sessions := setupStudyHandler(provider)
	createStudySession(sessions, "bob")

	body, _ := json.Marshal(api.ChatRequest{Question: "what is a derivative?"})

	req := authedRequest(http.MethodPost, "/api/v1/study/chat", body, "bob")
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.ChatResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "a derivative measures...", resp.Answer)
	assert.Contains(t, provider.lastPrompt, "what is a derivative?")
}

func TestStudyHandler_Chat_BlankQuestion(t *testing.T) {
	handler, sessions := setupStudyHandler(&fakeProvider{response: "answer"})
	createStudySession(sessions, "bob")

	body, _ := json.Marshal(api.ChatRequest{Question: "  "})

	req := authedRequest(http.MethodPost, "/api/v1/study/chat", body, "bob")
	w := httptest.NewRecorder()

	handler.Chat(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "please enter a question before asking", resp.Message)
}

func TestStudyHandler_History(t *testing.T) {
	handler, sessions := setupStudyHandler(&fakeProvider{})
	sess := createStudySession(sessions, "bob")

	base := time.Now()
	for i := range 7 {
		sess.AppendStudyRecord(fmt.Sprintf("topic-%d", i), "content", base.Add(time.Duration(i)*time.Minute))
	}

	req := authedRequest(http.MethodGet, "/api/v1/study/history", nil, "bob")
	w := httptest.NewRecorder()

	handler.History(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HistoryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))

	// Дефолтный лимит 5, самые свежие первыми
	require.Len(t, resp.Records, 5)
	assert.Equal(t, "topic-6", resp.Records[0].Topic)
	assert.Equal(t, "topic-2", resp.Records[4].Topic)
}

func TestStudyHandler_History_CustomLimit(t *testing.T) {
	handler, sessions := setupStudyHandler(&fakeProvider{})
	sess := createStudySession(sessions, "bob")
	sess.AppendStudyRecord("one", "content", time.Now())
	sess.AppendStudyRecord("two", "content", time.Now())

	req := authedRequest(http.MethodGet, "/api/v1/study/history?limit=1", nil, "bob")
	w := httptest.NewRecorder()

	handler.History(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp api.HistoryResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Records, 1)
	assert.Equal(t, "two", resp.Records[0].Topic)
}

func TestStudyHandler_History_BadLimit(t *testing.T) {
	handler, sessions := setupStudyHandler(&fakeProvider{})
	createStudySession(sessions, "bob")

	tests := []string{"0", "-1", "abc"}
	for _, limit := range tests {
		t.Run(limit, func(t *testing.T) {
			req := authedRequest(http.MethodGet, "/api/v1/study/history?limit="+limit, nil, "bob")
			w := httptest.NewRecorder()

			handler.History(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestStudyHandler_NoSession(t *testing.T) {
	handler, _ := setupStudyHandler(&fakeProvider{})

	body, _ := json.Marshal(api.GenerateRequest{Topic: "Algebra"})

	req := authedRequest(http.MethodPost, "/api/v1/study/materials", body, "bob")
	w := httptest.NewRecorder()

	handler.GenerateMaterials(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
