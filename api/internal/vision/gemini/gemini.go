package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"car-damage-analyzer/api/internal/util"
	"car-damage-analyzer/api/internal/vision"
)

type Engine struct {
	APIKey string
	Model  string
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

func (e *Engine) GetModel() string { return e.Model }

// Analyze sends the photo inline and returns the model's free-text report.
func (e *Engine) Analyze(ctx context.Context, image []byte, language string) (string, error) {
	if e.APIKey == "" {
		return "", errors.New("GEMINI_API_KEY is empty")
	}
	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", fmt.Errorf("gemini client: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{
		Temperature: ptrFloat32(0),
	}

	resp, err := m.GenerateContent(ctx,
		genai.Text(vision.Prompt(language)),
		genai.ImageData(util.SniffImageFormat(image), image),
	)
	if err != nil {
		return "", fmt.Errorf("gemini analyze: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini analyze: empty response")
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", errors.New("gemini analyze: empty response")
	}
	return out, nil
}

func ptrFloat32(v float32) *float32 { return &v }
