package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahrielsara/portfolio-backend/internal/models"
)

func TestGeminiClientGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("maps roles and returns candidate text", func(t *testing.T) {
		var gotPath string
		var gotBody geminiRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			resp := map[string]interface{}{
				"candidates": []map[string]interface{}{
					{"content": map[string]interface{}{
						"parts": []map[string]string{{"text": "merhaba!"}},
					}},
				},
			}
			json.NewEncoder(w).Encode(resp)
		}))
		defer srv.Close()

		client := NewGeminiClient("test-key", srv.URL)
		history := []models.ChatTurn{
			{Role: models.RoleUser, Text: "soru"},
			{Role: models.RoleAssistant, Text: "cevap"},
		}

		text, err := client.Generate(ctx, "gemini-2.0-flash", history, "yeni soru")

		require.NoError(t, err)
		assert.Equal(t, "merhaba!", text)
		assert.Equal(t, "/models/gemini-2.0-flash:generateContent", gotPath)

		require.Len(t, gotBody.Contents, 3)
		assert.Equal(t, "user", gotBody.Contents[0].Role)
		assert.Equal(t, "model", gotBody.Contents[1].Role)
		assert.Equal(t, "user", gotBody.Contents[2].Role)
		assert.Equal(t, "yeni soru", gotBody.Contents[2].Parts[0].Text)
		assert.Equal(t, 1000, gotBody.GenerationConfig.MaxOutputTokens)
		assert.InDelta(t, 0.7, gotBody.GenerationConfig.Temperature, 1e-9)
	})

	t.Run("classifies 404 as model not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":404}}`, http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := NewGeminiClient("test-key", srv.URL).Generate(ctx, "gemini-pro", nil, "soru")
		assert.ErrorIs(t, err, ErrModelNotFound)
	})

	t.Run("classifies 429 as rate limited", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":{"code":429}}`, http.StatusTooManyRequests)
		}))
		defer srv.Close()

		_, err := NewGeminiClient("test-key", srv.URL).Generate(ctx, "gemini-pro", nil, "soru")
		assert.ErrorIs(t, err, ErrRateLimited)
	})

	t.Run("empty candidate list is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		_, err := NewGeminiClient("test-key", srv.URL).Generate(ctx, "gemini-pro", nil, "soru")
		assert.ErrorIs(t, err, ErrEmptyResponse)
	})
}
