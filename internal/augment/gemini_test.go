package augment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// geminiServer answers generateContent calls with replyText as the model
// output and records the decoded request bodies.
type geminiServer struct {
	*httptest.Server

	mu        sync.Mutex
	replyText string
	status    int
	paths     []string
	requests  []map[string]any
	apiKeys   []string
}

func newGeminiServer(t *testing.T) *geminiServer {
	t.Helper()

	s := &geminiServer{status: http.StatusOK}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		s.mu.Lock()
		s.paths = append(s.paths, r.URL.Path)
		s.requests = append(s.requests, body)
		s.apiKeys = append(s.apiKeys, r.Header.Get("x-goog-api-key"))
		status, text := s.status, s.replyText
		s.mu.Unlock()

		if status != http.StatusOK {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = w.Write([]byte(`{"error": {"code": 500, "message": "backend unavailable", "status": "INTERNAL"}}`))
			return
		}

		reply := map[string]any{
			"candidates": []any{map[string]any{
				"content": map[string]any{
					"role":  "model",
					"parts": []any{map[string]any{"text": text}},
				},
				"finishReason": "STOP",
			}},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(reply)
	}))
	t.Cleanup(s.Close)

	return s
}

func (s *geminiServer) reply(status int, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status, s.replyText = status, text
}

func (s *geminiServer) lastRequest(t *testing.T) (path string, body map[string]any, apiKey string) {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	require.NotEmpty(t, s.requests)
	last := len(s.requests) - 1
	return s.paths[last], s.requests[last], s.apiKeys[last]
}

func newTestGenerator(t *testing.T, s *geminiServer) *GeminiGenerator {
	t.Helper()
	gen, err := NewGeminiGenerator(context.Background(), GeminiConfig{
		APIKey:      "test-key",
		Model:       "gemini-test",
		Temperature: 0.5,
		BaseURL:     s.URL + "/",
	}, nil)
	require.NoError(t, err)
	return gen
}

func generationConfig(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	cfg, ok := body["generationConfig"].(map[string]any)
	require.True(t, ok, "request has no generationConfig: %v", body)
	return cfg
}

func TestGeminiGenerate(t *testing.T) {
	server := newGeminiServer(t)
	gen := newTestGenerator(t, server)

	server.reply(http.StatusOK, `["the Lessee shall pay", "the Tenant must pay"]`)

	out, err := gen.Generate(context.Background(), Request{Task: TaskSynonym, Text: "the Tenant shall pay", Count: 2, AugP: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []string{"the Lessee shall pay", "the Tenant must pay"}, out)

	path, body, apiKey := server.lastRequest(t)
	assert.True(t, strings.HasSuffix(path, "models/gemini-test:generateContent"), path)
	assert.Equal(t, "test-key", apiKey)
	assert.Contains(t, body, "systemInstruction")

	cfg := generationConfig(t, body)
	assert.Equal(t, "application/json", cfg["responseMimeType"])
	assert.Equal(t, 0.5, cfg["temperature"])

	schema, ok := cfg["responseSchema"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ARRAY", schema["type"])
	items, ok := schema["items"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "STRING", items["type"])
}

func TestGeminiTranslateOmitsTemperature(t *testing.T) {
	server := newGeminiServer(t)
	gen := newTestGenerator(t, server)

	server.reply(http.StatusOK, `["der Mieter zahlt"]`)

	out, err := gen.Generate(context.Background(), Request{Task: TaskTranslate, Text: "the Tenant pays", Count: 1, From: English, To: German})
	require.NoError(t, err)
	assert.Equal(t, []string{"der Mieter zahlt"}, out)

	_, body, _ := server.lastRequest(t)
	cfg := generationConfig(t, body)
	assert.NotContains(t, cfg, "temperature")
	assert.Equal(t, "application/json", cfg["responseMimeType"])
}

func TestGeminiGenerateErrors(t *testing.T) {
	server := newGeminiServer(t)
	gen := newTestGenerator(t, server)
	req := Request{Task: TaskAntonym, Text: "the Tenant shall pay", Count: 1}

	t.Run("reply is not JSON", func(t *testing.T) {
		server.reply(http.StatusOK, "Sure! Here are some rewrites.")

		_, err := gen.Generate(context.Background(), req)
		assert.ErrorContains(t, err, "failed to unmarshal gemini JSON response")
		assert.ErrorContains(t, err, "Sure! Here are some rewrites.")
	})

	t.Run("reply is not an array of strings", func(t *testing.T) {
		server.reply(http.StatusOK, `{"rewrites": ["x"]}`)

		_, err := gen.Generate(context.Background(), req)
		assert.ErrorContains(t, err, "failed to unmarshal gemini JSON response")
	})

	t.Run("server error", func(t *testing.T) {
		server.reply(http.StatusInternalServerError, "")

		_, err := gen.Generate(context.Background(), req)
		assert.ErrorContains(t, err, "gemini API call failed")
	})
}

func TestNewGeminiGeneratorRequiresKey(t *testing.T) {
	_, err := NewGeminiGenerator(context.Background(), GeminiConfig{}, nil)
	assert.ErrorContains(t, err, "API key is required")
}
