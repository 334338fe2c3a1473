package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ai-lessonplanner-be/pkg/llm"

	"github.com/stretchr/testify/assert"
)

func TestChat(t *testing.T) {
	var gotBody chatRequest
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/chat/completions", r.URL.Path)
		json.NewDecoder(r.Body).Decode(&gotBody)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "Hello there"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL)

	text, err := provider.Chat(context.Background(),
		[]llm.Message{
			{Role: "system", Content: "Be helpful."},
			{Role: "user", Content: "Hi"},
			{Role: "model", Content: "Previous reply"},
		},
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(2000),
	)

	assert.NoError(t, err)
	assert.Equal(t, "Hello there", text)
	assert.Equal(t, "Bearer test-key", gotAuth)

	assert.Equal(t, "gpt-4o", gotBody.Model)
	assert.NotNil(t, gotBody.Temperature)
	assert.Equal(t, 0.7, *gotBody.Temperature)
	assert.Equal(t, 2000, gotBody.MaxTokens)

	// Internal "model" role maps to the API's "assistant" role.
	assert.Equal(t, "assistant", gotBody.Messages[2].Role)
}

func TestChatAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "Incorrect API key provided"},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("bad-key", "gpt-4o", server.URL)

	_, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "Hi"}})
	assert.ErrorContains(t, err, "Incorrect API key provided")
}

func TestChatNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL)

	text, err := provider.Chat(context.Background(), []llm.Message{{Role: "user", Content: "Hi"}})
	assert.NoError(t, err)
	assert.Empty(t, text)
}

func TestGenerateDelegatesToChat(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body chatRequest
		json.NewDecoder(r.Body).Decode(&body)
		assert.Len(t, body.Messages, 1)
		assert.Equal(t, "user", body.Messages[0].Role)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	provider := NewOpenAIProvider("test-key", "gpt-4o", server.URL)

	text, err := provider.Generate(context.Background(), "single prompt")
	assert.NoError(t, err)
	assert.Equal(t, "ok", text)
}
