package llm

import (
	"context"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/config"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
)

// Fixed user-facing strings returned when a completion cannot be made. Callers
// upstream rely on Complete never failing harder than one of these.
const (
	ErrReplySystem  = "⚠️ System configuration error. Please contact support."
	ErrReplyMessage = "⚠️ Please provide a valid message."
	ErrReplyFailed  = "⚠️ AI response failed. Please try again."
)

// Completer wraps the chat client with the application's calling convention:
// conversation history first, then the system prompt, then the current user
// message. It fails soft: every error path collapses into a fixed reply string.
type Completer struct {
	client  Client
	model   string
	temp    float32
	timeout time.Duration
}

// NewCompleter builds a Completer from config.
func NewCompleter(client Client, cfg config.LLMConfig) *Completer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Completer{
		client:  client,
		model:   cfg.Model,
		temp:    cfg.Temperature,
		timeout: timeout,
	}
}

// Complete sends a chat completion request and returns the model's text.
// It never returns an error: invalid input and backend failures all map to
// fixed reply strings. A timeout counts as a backend failure; there is no retry.
func (c *Completer) Complete(ctx context.Context, systemPrompt, userMessage string, history []memory.Message) string {
	if strings.TrimSpace(systemPrompt) == "" {
		return ErrReplySystem
	}
	if strings.TrimSpace(userMessage) == "" {
		return ErrReplyMessage
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages,
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: strings.TrimSpace(systemPrompt)},
		openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: strings.TrimSpace(userMessage)},
	)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: c.temp,
	})
	if err != nil {
		logger.L.Error("chat completion failed", "error", err)
		return ErrReplyFailed
	}
	if len(resp.Choices) == 0 {
		logger.L.Warn("chat completion returned no choices")
		return ErrReplyFailed
	}
	return resp.Choices[0].Message.Content
}
