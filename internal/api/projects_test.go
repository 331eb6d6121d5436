package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProjectCRUD(t *testing.T) {
	env := setupTestEnv(t, "")
	_, token := createTestOwnerAndToken(t, env)

	t.Run("create requires authentication", func(t *testing.T) {
		body := bytes.NewBufferString(`{"title":"Portfolio","description":"Bu site"}`)
		req := httptest.NewRequest("POST", "/api/v1/projects", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})

	var projectID string
	t.Run("create", func(t *testing.T) {
		body := bytes.NewBufferString(`{"title":"Portfolio","description":"Bu site","tags":["react","go"]}`)
		req := httptest.NewRequest("POST", "/api/v1/projects", body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, 201, w.Code)

		var project map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &project); err != nil {
			t.Fatalf("Failed to parse response: %v", err)
		}
		projectID, _ = project["id"].(string)
		if projectID == "" {
			t.Fatal("Expected project id in response")
		}
	})

	t.Run("public listing", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/v1/projects", nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var listing struct {
			Projects []map[string]interface{} `json:"projects"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
			t.Fatalf("Failed to parse response: %v", err)
		}
		assert.Len(t, listing.Projects, 1)
	})

	t.Run("update", func(t *testing.T) {
		body := bytes.NewBufferString(`{"title":"Portfolio v2"}`)
		req := httptest.NewRequest("PUT", "/api/v1/projects/"+projectID, body)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		var project map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &project); err != nil {
			t.Fatalf("Failed to parse response: %v", err)
		}
		assert.Equal(t, "Portfolio v2", project["title"])
		// Unchanged fields survive a partial update.
		assert.Equal(t, "Bu site", project["description"])
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/v1/projects/"+projectID, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)

		req = httptest.NewRequest("DELETE", "/api/v1/projects/"+projectID, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w = httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, 404, w.Code)
	})
}

func TestContactMessages(t *testing.T) {
	env := setupTestEnv(t, "")
	_, token := createTestOwnerAndToken(t, env)

	body := bytes.NewBufferString(`{"name":"Ziyaretçi","email":"visitor@example.com","subject":"Merhaba","body":"Projeniz harika"}`)
	req := httptest.NewRequest("POST", "/api/v1/messages", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, 201, w.Code)

	// Inbox is admin-only.
	req = httptest.NewRequest("GET", "/api/v1/messages", nil)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, 401, w.Code)

	req = httptest.NewRequest("GET", "/api/v1/messages", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	assert.Equal(t, 200, w.Code)

	var listing struct {
		Messages []map[string]interface{} `json:"messages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(listing.Messages) != 1 {
		t.Fatalf("Expected 1 message, got %d", len(listing.Messages))
	}

	msgID, _ := listing.Messages[0]["id"].(string)
	req = httptest.NewRequest("DELETE", "/api/v1/messages/"+msgID, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, 200, w.Code)
}
