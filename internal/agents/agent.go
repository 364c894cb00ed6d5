package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/rag"
)

// ErrReplyInvalidMessage is returned for empty or whitespace-only input
// without touching any external capability.
const ErrReplyInvalidMessage = "⚠️ Please provide a valid message."

// Completer is the completion capability agents delegate to. It fails soft:
// implementations return a fixed error string instead of an error.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userMessage string, history []memory.Message) string
}

// Agent answers user messages in the voice of one persona, grounding the
// prompt with passages retrieved from the persona's corpus.
type Agent struct {
	persona   Persona
	completer Completer
	retriever rag.Retriever
	topK      int
}

// NewAgent builds the specialized agent for a category.
func NewAgent(category Category, completer Completer, retriever rag.Retriever, topK int) *Agent {
	if topK < 1 {
		topK = 4
	}
	return &Agent{
		persona:   personaFor(category),
		completer: completer,
		retriever: retriever,
		topK:      topK,
	}
}

// Category returns the agent's category.
func (a *Agent) Category() Category {
	return a.persona.Category
}

// Answer produces the agent's reply to message given the conversation
// history. Retrieval failure degrades to an empty context; the completer's
// output is returned verbatim, disclaimer included, exactly as the model
// produced it.
func (a *Agent) Answer(ctx context.Context, message string, history []memory.Message) string {
	if strings.TrimSpace(message) == "" {
		return ErrReplyInvalidMessage
	}

	corpusCtx := a.retriever.Retrieve(ctx, message, a.persona.CorpusID, a.topK)
	if corpusCtx == "" {
		logger.L.Debug("no corpus context retrieved", "agent", a.persona.Category, "corpus", a.persona.CorpusID)
	}

	prompt := fmt.Sprintf(a.persona.Prompt, corpusCtx)
	return a.completer.Complete(ctx, prompt, message, history)
}
