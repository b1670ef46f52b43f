package improve

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HartBrook/promptarchitect/internal/errors"
)

func completion(content string) map[string]any {
	return map[string]any{
		"id":     "chatcmpl-1",
		"object": "chat.completion",
		"model":  DefaultModel,
		"choices": []map[string]any{
			{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			},
		},
	}
}

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient(WithAPIKey("test-api-key"), WithBaseURL(server.URL))
	require.NoError(t, err)
	return client
}

func TestNewClient_NoAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	t.Setenv(FallbackAPIKeyEnv, "")

	_, err := NewClient()

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAINotConfigured))
}

func TestNewClient_ReadsEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	t.Setenv(FallbackAPIKeyEnv, "fallback-key")

	client, err := NewClient()
	require.NoError(t, err)
	assert.Equal(t, "fallback-key", client.apiKey)

	t.Setenv(APIKeyEnv, "groq-key")
	client, err = NewClient()
	require.NoError(t, err)
	assert.Equal(t, "groq-key", client.apiKey)
	assert.Equal(t, DefaultModel, client.Model())
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultMaxTokens, client.maxTokens)
}

func TestNewClient_WithOptions(t *testing.T) {
	custom := &http.Client{}
	client, err := NewClient(
		WithAPIKey("k"),
		WithModel("llama-3.1-70b"),
		WithBaseURL("https://example.com/v1/"),
		WithHTTPClient(custom),
		WithMaxTokens(200),
		WithTemperature(0.2),
		WithRateLimit(30),
	)

	require.NoError(t, err)
	assert.Equal(t, "llama-3.1-70b", client.model)
	assert.Equal(t, "https://example.com/v1", client.baseURL)
	assert.Equal(t, custom, client.httpClient)
	assert.Equal(t, 200, client.maxTokens)
	assert.InDelta(t, 0.2, client.temperature, 1e-6)
	require.NotNil(t, client.limiter)
	assert.Equal(t, 6, client.limiter.Burst())

	client, err = NewClient(WithAPIKey("k"), WithModel(""), WithRateLimit(0))
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.model)
	assert.Nil(t, client.limiter)
}

func TestClient_Improve(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))

		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, DefaultModel, req.Model)
		assert.Equal(t, DefaultMaxTokens, req.MaxTokens)
		assert.InDelta(t, DefaultTemperature, req.Temperature, 1e-6)
		assert.InDelta(t, 1.0, req.TopP, 1e-6)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, req.Messages[0].Role)
		assert.Contains(t, req.Messages[0].Content, "ingeniería de prompts")
		assert.Equal(t, openai.ChatMessageRoleUser, req.Messages[1].Role)
		assert.Contains(t, req.Messages[1].Content, "Por favor, mejora este prompt:\n\nPROMPT ORIGINAL\n\n")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("  PROMPT MEJORADO \n"))
	})

	got, err := client.Improve(context.Background(), "PROMPT ORIGINAL")

	require.NoError(t, err)
	assert.Equal(t, "PROMPT MEJORADO", got)
}

func TestClient_Suggest(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 500, req.MaxTokens)
		assert.InDelta(t, 0.8, req.Temperature, 1e-6)
		assert.Contains(t, req.Messages[1].Content, "Tema: Marketing y ventas\nObjetivo: Vender más")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("Define la audiencia\n\n  Añade métricas  \nIncluye un plazo\n"))
	})

	got, err := client.Suggest(context.Background(), "Marketing y ventas", "Vender más")

	require.NoError(t, err)
	assert.Equal(t, []string{"Define la audiencia", "Añade métricas", "Incluye un plazo"}, got)
}

func TestClient_APIError(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	})

	_, err := client.Improve(context.Background(), "x")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAIRequestFailed))
	assert.Contains(t, err.Error(), "API error (401): Invalid API Key")
}

func TestClient_NoChoices(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	})

	_, err := client.Improve(context.Background(), "x")

	assert.True(t, errors.Is(err, errors.ErrAIInvalidResponse))
}

func TestClient_EmptyContent(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(completion("   "))
	})

	_, err := client.Improve(context.Background(), "x")

	assert.True(t, errors.Is(err, errors.ErrAIInvalidResponse))
}

func TestClient_Timeout(t *testing.T) {
	release := make(chan struct{})
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Improve(ctx, "x")

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrAITimeout))
}
