package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "LLM_PROVIDER", "LLM_TEMPERATURE", "GOOGLE_API_KEY", "GEMINI_API_KEY", "JWT_ISSUER", "MAX_UPLOAD_BYTES", "LLM_HTTP_TIMEOUT"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Nil(t, cfg.LLMTemperature)
	assert.Equal(t, "mediaid", cfg.JWTIssuer)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
	assert.Empty(t, cfg.GoogleAPIKey)
	assert.Zero(t, cfg.LLMHTTPTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "OpenRouter")
	t.Setenv("LLM_TEMPERATURE", "0.7")
	t.Setenv("GOOGLE_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("GOOGLE_GENAI_USE_VERTEXAI", "true")
	t.Setenv("JWT_TTL_MINUTES", "not-a-number")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")

	cfg := Load()
	assert.Equal(t, "openrouter", cfg.LLMProvider)
	require.NotNil(t, cfg.LLMTemperature)
	assert.InDelta(t, 0.7, *cfg.LLMTemperature, 1e-6)
	assert.Equal(t, "gem-key", cfg.GoogleAPIKey)
	assert.True(t, cfg.GoogleUseVertexAI)
	assert.Equal(t, 60, cfg.JWTTTLMinutes)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
}

func TestMalformedTemperatureUsesProviderDefault(t *testing.T) {
	t.Setenv("LLM_TEMPERATURE", "warm")
	assert.Nil(t, Load().LLMTemperature)
}

func TestLLMHTTPTimeout(t *testing.T) {
	t.Setenv("LLM_HTTP_TIMEOUT", "90s")
	assert.Equal(t, 90*time.Second, Load().LLMHTTPTimeout)

	t.Setenv("LLM_HTTP_TIMEOUT", "soon")
	assert.Zero(t, Load().LLMHTTPTimeout)
}
