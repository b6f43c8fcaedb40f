package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port       string
	DBPath     string
	AIProvider string // openai|mock

	OpenAIKey      string
	OpenAIModel    string
	EmbeddingModel string
	EmbedDim       int

	ChatTopK    int
	ChunkMinLen int

	KBAllowedDomains string
	KBMaxBytes       int

	SMTPHost   string
	SMTPFrom   string
	TwilioSID  string
	TwilioFrom string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Printf("[cfg] no .env file found: %v", err)
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Printf("[cfg] bad int for %s, using %d", k, def)
		}
		return def
	}

	cfg := AppConfig{
		Port:       get("PORT", "8080"),
		DBPath:     get("DB_PATH", "clubchat.db"),
		AIProvider: get("AI_PROVIDER", "mock"),

		OpenAIKey:      get("OPENAI_API_KEY", ""),
		OpenAIModel:    get("OPENAI_MODEL", "gpt-3.5-turbo"),
		EmbeddingModel: get("OPENAI_EMBEDDING_MODEL", "text-embedding-3-small"),
		EmbedDim:       getInt("EMBED_DIM", 1536),

		ChatTopK:    getInt("CHAT_TOP_K", 3),
		ChunkMinLen: getInt("CHUNK_MIN_LEN", 50),

		KBAllowedDomains: get("KB_ALLOWED_DOMAINS", ""),
		KBMaxBytes:       getInt("KB_MAX_BYTES_PER_PAGE", 1500000),

		SMTPHost:   get("SMTP_HOST", ""),
		SMTPFrom:   get("SMTP_FROM", "noreply@widzew.com"),
		TwilioSID:  get("TWILIO_ACCOUNT_SID", ""),
		TwilioFrom: get("TWILIO_PHONE_NUMBER", ""),
	}
	log.Printf("[cfg] port=%s db=%s ai=%s dim=%d topk=%d", cfg.Port, cfg.DBPath, cfg.AIProvider, cfg.EmbedDim, cfg.ChatTopK)
	return cfg
}
