package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobconnect-backend/internal/config"
)

func llmConfig(provider, apiKey string) *config.Config {
	cfg := &config.Config{}
	cfg.LLM.Provider = provider
	cfg.LLM.APIKey = apiKey
	cfg.LLM.Model = "claude-3-haiku-20240307"
	cfg.LLM.Timeout = time.Second
	return cfg
}

func TestNewProviderUnsupported(t *testing.T) {
	_, err := newProvider(llmConfig("gpt", ""))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported LLM provider: gpt")
}

func TestManagerStartFailsOnUnsupportedProvider(t *testing.T) {
	m := NewManager(llmConfig("gpt", ""))

	require.Error(t, m.Start())
	assert.False(t, m.IsHealthy())
}

func TestManagerDegradesWithoutAPIKey(t *testing.T) {
	m := NewManager(llmConfig("claude", ""))

	require.NoError(t, m.Start())
	assert.False(t, m.IsHealthy())
	assert.Equal(t, "claude", m.GetProviderName())

	_, err := m.Chat(context.Background(), "how do I prepare for interviews?")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM provider is not available")

	require.NoError(t, m.Stop())
}

func TestManagerChatBeforeStart(t *testing.T) {
	m := NewManager(llmConfig("claude", ""))

	_, err := m.Chat(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not started")
}
