// Package genai talks to the external generative-text provider. The
// provider is opaque to the rest of the system: one prompt string in,
// one completion string out.
package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrGenerationFailed wraps any failure coming from the text provider.
// It is surfaced with the provider's message and never crashes the
// session: the profile and stored account stay untouched.
var ErrGenerationFailed = errors.New("generation failed")

// Provider abstracts the text-generation collaborator
type Provider interface {
	// GenerateContent отправляет prompt и возвращает сгенерированный текст
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// Client представляет HTTP клиент Gemini-style generateContent API
type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
	apiKey     string
}

// NewClient creates a provider client.
// baseURL is the API root, model the model identifier, apiKey the key
// passed as a query parameter.
func NewClient(baseURL, model, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// Формат запроса/ответа generateContent API
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// GenerateContent отправляет prompt провайдеру и возвращает текст
// первого кандидата
func (c *Client) GenerateContent(ctx context.Context, prompt string) (string, error) {
	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)

	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %v", ErrGenerationFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %v", ErrGenerationFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %v", ErrGenerationFailed, err)
	}

	var result generateResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", fmt.Errorf("%w: failed to decode response: %v", ErrGenerationFailed, err)
	}

	// Ошибку провайдера отдаем с его собственным сообщением
	if resp.StatusCode != http.StatusOK {
		if result.Error != nil && result.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrGenerationFailed, result.Error.Message)
		}
		return "", fmt.Errorf("%w: provider returned status %d", ErrGenerationFailed, resp.StatusCode)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("%w: provider returned no candidates", ErrGenerationFailed)
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
