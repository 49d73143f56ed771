package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DefaultEngine string
	Language      string

	OpenAIAPIKey string
	OpenAIModel  string
	GeminiAPIKey string
	GeminiModel  string

	TelegramToken string
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads .env (when present) and the process environment. A missing key
// for one engine is not fatal: that engine reports the failure on first use.
// Having no engine key at all is a startup error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		DefaultEngine: getEnv("DEFAULT_ENGINE", "openai"),
		Language:      getEnv("REPORT_LANGUAGE", "english"),

		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),

		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
	}

	if cfg.OpenAIAPIKey == "" && cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("no engine configured: set OPENAI_API_KEY or GEMINI_API_KEY")
	}
	return cfg, nil
}
