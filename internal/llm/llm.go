package llm

import (
	"github.com/sashabaranov/go-openai"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/config"
)

// NewClient creates a new OpenAI-compatible chat client
func NewClient(cfg config.LLMConfig) *openai.Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	return openai.NewClientWithConfig(clientCfg)
}
