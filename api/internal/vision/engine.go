package vision

import (
	"context"
	"fmt"
	"strings"
	"sync"
)

// Engine is a vision-capable model that turns a damage photo into a
// free-text assessment report.
type Engine interface {
	Name() string
	GetModel() string
	Analyze(ctx context.Context, image []byte, language string) (string, error)
}

// Engines holds the configured engines and resolves the caller's choice.
type Engines struct {
	OpenAI Engine
	Gemini Engine
}

// GetEngine resolves an engine by name. An empty name selects OpenAI.
func (e *Engines) GetEngine(name string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "openai", "gpt":
		if e.OpenAI == nil {
			return nil, fmt.Errorf("openai engine is not configured")
		}
		return e.OpenAI, nil
	case "gemini", "google":
		if e.Gemini == nil {
			return nil, fmt.Errorf("gemini engine is not configured")
		}
		return e.Gemini, nil
	}
	return nil, fmt.Errorf("unknown engine %q", name)
}

// Manager keeps a per-chat engine choice for the bot front end.
type Manager struct {
	def Engine
	m   sync.Map // chatID -> Engine
}

func NewManager(defaultEngine Engine) *Manager {
	return &Manager{def: defaultEngine}
}

func (m *Manager) Get(chatID int64) Engine {
	if v, ok := m.m.Load(chatID); ok {
		return v.(Engine)
	}
	return m.def
}

func (m *Manager) Set(chatID int64, e Engine) {
	m.m.Store(chatID, e)
}
