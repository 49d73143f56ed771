package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"car-damage-analyzer/api/internal/config"
	"car-damage-analyzer/api/internal/telegram"
	"car-damage-analyzer/api/internal/vision"
	"car-damage-analyzer/api/internal/vision/gemini"
	"car-damage-analyzer/api/internal/vision/openai"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("configuration failed")
	}
	if cfg.TelegramToken == "" {
		log.Fatal().Msg("TELEGRAM_TOKEN is required")
	}

	engines := &vision.Engines{
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}

	bot, err := telegram.NewBot(cfg.TelegramToken, engines, cfg.DefaultEngine, cfg.Language)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create bot")
	}

	log.Info().Msg("bot is running")
	if err := bot.Run(); err != nil {
		log.Fatal().Err(err).Msg("bot stopped")
	}
}
