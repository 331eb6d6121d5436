package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/fahrielsara/portfolio-backend/internal/models"
)

// Sentinel errors used by the fallback loop to decide whether trying the
// next model makes sense.
var (
	// ErrModelNotFound means the requested model id is unknown or retired.
	ErrModelNotFound = errors.New("model not found")
	// ErrRateLimited means the API key's quota is exhausted.
	ErrRateLimited = errors.New("rate limited")
	// ErrEmptyResponse means the API answered 200 but produced no usable text.
	ErrEmptyResponse = errors.New("empty response from model")
)

// GeminiClient talks to the Google generative language REST API.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiClient creates a new GeminiClient. baseURL should point at the
// API root (e.g. https://generativelanguage.googleapis.com/v1beta).
func NewGeminiClient(apiKey, baseURL string) *GeminiClient {
	return &GeminiClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// geminiPart is a single text fragment inside a content turn.
type geminiPart struct {
	Text string `json:"text"`
}

// geminiContent is one turn of the conversation on the wire. Role is
// "user" or "model".
type geminiContent struct {
	Role  string       `json:"role"`
	Parts []geminiPart `json:"parts"`
}

type geminiGenerationConfig struct {
	MaxOutputTokens int     `json:"maxOutputTokens"`
	Temperature     float64 `json:"temperature"`
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// Generate sends the conversation to the named model and returns the
// generated text. history is sent first, then the current message as the
// final user turn.
func (c *GeminiClient) Generate(ctx context.Context, model string, history []models.ChatTurn, message string) (string, error) {
	contents := make([]geminiContent, 0, len(history)+1)
	for _, turn := range history {
		role := "model"
		if turn.Role == models.RoleUser {
			role = "user"
		}
		contents = append(contents, geminiContent{
			Role:  role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	reqBody := geminiRequest{
		Contents: contents,
		GenerationConfig: geminiGenerationConfig{
			MaxOutputTokens: 1000,
			Temperature:     0.7,
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return "", fmt.Errorf("model %s: %w", model, ErrModelNotFound)
	case http.StatusTooManyRequests:
		return "", fmt.Errorf("model %s: %w", model, ErrRateLimited)
	default:
		log.Printf("[Gemini] Model %s returned status %d: %s", model, resp.StatusCode, string(body))
		return "", fmt.Errorf("model %s returned status %d", model, resp.StatusCode)
	}

	var parsed geminiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("model %s: %w", model, ErrEmptyResponse)
	}

	text := parsed.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("model %s: %w", model, ErrEmptyResponse)
	}
	return text, nil
}
