package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	// Make sure ambient env does not leak into the assertions. t.Setenv
	// snapshots the old value for cleanup; Unsetenv removes it for the test.
	for _, key := range []string{
		"PORT", "GOOGLE_API_KEY", "EAGER_INIT", "CATALOG_PATH",
		"EMBEDDING_PROVIDER", "LLM_PROVIDER", "ANSWER_CACHE_TTL",
		"EMBED_ASSESSMENT_TOPIC_NAME",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := Load()

	assert.Equal(t, "5001", cfg.App.Port)
	assert.False(t, cfg.App.EagerInit)
	assert.Equal(t, 15*time.Minute, cfg.App.AnswerCacheTTL)
	assert.Equal(t, "data/catalog.json", cfg.Catalog.Path)
	assert.Equal(t, "gemini", cfg.Ai.EmbeddingProvider)
	assert.Equal(t, "gemini", cfg.Ai.LLMProvider)
	assert.Equal(t, "EMBED_ASSESSMENT", cfg.Keys.EmbedTopic)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("EAGER_INIT", "true")
	t.Setenv("CATALOG_PATH", "/srv/catalog.json")
	t.Setenv("EMBEDDING_PROVIDER", "ollama")
	t.Setenv("ANSWER_CACHE_TTL", "1h")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "test-key", cfg.Keys.GoogleGemini)
	assert.True(t, cfg.App.EagerInit)
	assert.Equal(t, "/srv/catalog.json", cfg.Catalog.Path)
	assert.Equal(t, "ollama", cfg.Ai.EmbeddingProvider)
	assert.Equal(t, time.Hour, cfg.App.AnswerCacheTTL)
}

func TestLoadIgnoresGarbageValues(t *testing.T) {
	t.Setenv("EAGER_INIT", "definitely")
	t.Setenv("ANSWER_CACHE_TTL", "soon")
	t.Setenv("SMTP_PORT", "not-a-number")

	cfg := Load()

	assert.False(t, cfg.App.EagerInit)
	assert.Equal(t, 15*time.Minute, cfg.App.AnswerCacheTTL)
	assert.Equal(t, 587, cfg.SMTP.Port)
}
