package factory

import (
	"testing"

	"ai-lessonplanner-be/pkg/llm/ollama"
	"ai-lessonplanner-be/pkg/llm/openai"

	"github.com/stretchr/testify/assert"
)

func TestNewLLMProvider(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		provider, err := NewLLMProvider("openai", "sk-test", "gpt-4o", "")
		assert.NoError(t, err)
		assert.IsType(t, &openai.OpenAIProvider{}, provider)
	})

	t.Run("openai requires api key", func(t *testing.T) {
		_, err := NewLLMProvider("openai", "", "gpt-4o", "")
		assert.Error(t, err)
	})

	t.Run("ollama defaults base url", func(t *testing.T) {
		provider, err := NewLLMProvider("ollama", "", "llama3", "")
		assert.NoError(t, err)
		assert.IsType(t, &ollama.OllamaProvider{}, provider)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewLLMProvider("anthropic", "key", "model", "")
		assert.Error(t, err)
	})
}
