package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/studybuddy/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			// Генерация материалов у провайдера может занимать десятки секунд
			Timeout: 90 * time.Second,
		},
	}
}

// SetToken задает access token для авторизованных запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.RegisterResponse, error) {
	var resp api.RegisterResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout завершает сессию на сервере
func (c *Client) Logout(ctx context.Context) error {
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/auth/logout", nil, nil); err != nil {
		return fmt.Errorf("logout request failed: %w", err)
	}
	return nil
}

// GetProfile возвращает снимок профиля активной сессии
func (c *Client) GetProfile(ctx context.Context) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/profile", nil, &resp); err != nil {
		return nil, fmt.Errorf("get profile request failed: %w", err)
	}
	return &resp, nil
}

// SetLearningStyle устанавливает стиль обучения
func (c *Client) SetLearningStyle(ctx context.Context, style string) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	req := api.SetLearningStyleRequest{LearningStyle: style}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/profile/learning-style", req, &resp); err != nil {
		return nil, fmt.Errorf("set learning style request failed: %w", err)
	}
	return &resp, nil
}

// SetDifficulty устанавливает уровень сложности
func (c *Client) SetDifficulty(ctx context.Context, level string) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	req := api.SetDifficultyRequest{DifficultyLevel: level}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/profile/difficulty", req, &resp); err != nil {
		return nil, fmt.Errorf("set difficulty request failed: %w", err)
	}
	return &resp, nil
}

// SetTopics заменяет список тем целиком
func (c *Client) SetTopics(ctx context.Context, topics []string) (*api.ProfileResponse, error) {
	var resp api.ProfileResponse
	req := api.SetTopicsRequest{Topics: topics}
	if err := c.doRequest(ctx, http.MethodPut, "/api/v1/profile/topics", req, &resp); err != nil {
		return nil, fmt.Errorf("set topics request failed: %w", err)
	}
	return &resp, nil
}

// GenerateMaterials запрашивает учебные материалы по теме
func (c *Client) GenerateMaterials(ctx context.Context, topic string) (*api.GenerateResponse, error) {
	var resp api.GenerateResponse
	req := api.GenerateRequest{Topic: topic}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/study/materials", req, &resp); err != nil {
		return nil, fmt.Errorf("generate materials request failed: %w", err)
	}
	return &resp, nil
}

// GeneratePracticeTest запрашивает практический тест по теме
func (c *Client) GeneratePracticeTest(ctx context.Context, topic string) (*api.GenerateResponse, error) {
	var resp api.GenerateResponse
	req := api.GenerateRequest{Topic: topic}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/study/practice-test", req, &resp); err != nil {
		return nil, fmt.Errorf("generate practice test request failed: %w", err)
	}
	return &resp, nil
}

// Chat задает вопрос AI tutor
func (c *Client) Chat(ctx context.Context, question string) (*api.ChatResponse, error) {
	var resp api.ChatResponse
	req := api.ChatRequest{Question: question}
	if err := c.doRequest(ctx, http.MethodPost, "/api/v1/study/chat", req, &resp); err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	return &resp, nil
}

// History возвращает последние учебные сессии
func (c *Client) History(ctx context.Context) (*api.HistoryResponse, error) {
	var resp api.HistoryResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/v1/study/history", nil, &resp); err != nil {
		return nil, fmt.Errorf("history request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
