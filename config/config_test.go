package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DB_PATH", "AI_PROVIDER", "EMBED_DIM", "CHAT_TOP_K", "CHUNK_MIN_LEN"} {
		t.Setenv(k, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "clubchat.db", cfg.DBPath)
	assert.Equal(t, "mock", cfg.AIProvider)
	assert.Equal(t, 1536, cfg.EmbedDim)
	assert.Equal(t, 3, cfg.ChatTopK)
	assert.Equal(t, 50, cfg.ChunkMinLen)
}

func TestLoadOverridesAndBadInt(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("AI_PROVIDER", "openai")
	t.Setenv("EMBED_DIM", "768")
	t.Setenv("CHAT_TOP_K", "not-a-number")

	cfg := Load()
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "openai", cfg.AIProvider)
	assert.Equal(t, 768, cfg.EmbedDim)
	assert.Equal(t, 3, cfg.ChatTopK) // bad value falls back to the default
}
