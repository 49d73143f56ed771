package openai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"car-damage-analyzer/api/internal/util"
	"car-damage-analyzer/api/internal/vision"
)

type Engine struct {
	APIKey string
	Model  string
	client *openai.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		Model:  strings.TrimSpace(model),
		client: openai.NewClient(strings.TrimSpace(key)),
	}
}

func (e *Engine) Name() string { return "openai" }

func (e *Engine) GetModel() string { return e.Model }

// Analyze sends the photo as a base64 data URL and returns the model's
// free-text report.
func (e *Engine) Analyze(ctx context.Context, image []byte, language string) (string, error) {
	if e.APIKey == "" {
		return "", fmt.Errorf("OPENAI_API_KEY is empty")
	}
	mime := util.SniffMimeHTTP(image)
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(image)

	resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     e.Model,
		MaxTokens: 1500,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: vision.Prompt(language)},
					{Type: openai.ChatMessagePartTypeImageURL, ImageURL: &openai.ChatMessageImageURL{
						URL:    dataURL,
						Detail: openai.ImageURLDetailHigh,
					}},
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai analyze: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai analyze: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
