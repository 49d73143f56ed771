package main

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"car-damage-analyzer/api/internal/config"
	"car-damage-analyzer/api/internal/handle"
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

	engines := &vision.Engines{
		OpenAI: openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel),
		Gemini: gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel),
	}
	h := handle.New(engines)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/analyze", h.Analyze)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("car-damage-analyzer listening")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
