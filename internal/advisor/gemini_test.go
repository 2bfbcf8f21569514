package advisor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateContent_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1beta/models/gemini-pro:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiRequest
		err := json.NewDecoder(r.Body).Decode(&req)
		assert.NoError(t, err)
		assert.Equal(t, "hello", req.Contents[0].Parts[0].Text)
		assert.Equal(t, 0.7, req.GenerationConfig.Temperature)
		assert.Equal(t, 1024, req.GenerationConfig.MaxOutputTokens)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "{\"recommendations\": [\"ok\"]}"}]}}]}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.baseURL = server.URL

	text, err := client.GenerateContent("hello")
	assert.NoError(t, err)
	assert.Equal(t, `{"recommendations": ["ok"]}`, text)
}

func TestGenerateContent_MissingKey(t *testing.T) {
	client := NewGeminiClient("")

	_, err := client.GenerateContent("hello")
	assert.Error(t, err)
}

func TestGenerateContent_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.baseURL = server.URL

	_, err := client.GenerateContent("hello")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGenerateContent_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewGeminiClient("test-key")
	client.baseURL = server.URL

	_, err := client.GenerateContent("hello")
	assert.Error(t, err)
}
