package agents

import (
	"context"
	"strings"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/metrics"
)

const reflectionPrompt = `You are an AI quality reviewer.

Task:
- Review the assistant's answer
- Check for factual uncertainty
- Identify assumptions
- Assess clarity and safety

Return STRICT JSON with:
{
  "confidence": number (0-100),
  "notes": "short explanation of confidence score"
}

Rules:
- Be conservative
- If unsure, reduce confidence
- Do NOT rewrite the answer`

// ReflectionResult is an independent quality estimate for a single answer.
type ReflectionResult struct {
	Confidence float64 `json:"confidence"`
	Notes      string  `json:"notes"`
}

// Reflector scores answer quality without rewriting the answer.
type Reflector struct {
	completer Completer
}

// NewReflector creates a reflector backed by the completion capability.
func NewReflector(completer Completer) *Reflector {
	return &Reflector{completer: completer}
}

// Score reviews the answer and returns a confidence in [0,100]. An empty
// answer yields a fixed low-confidence result without a model call. A failed
// completion or unparseable review degrades to a fixed moderate confidence.
// The conversation history is accepted for context but not currently fed to
// the reviewer; the answer is judged on its own.
func (r *Reflector) Score(ctx context.Context, answer string, history []memory.Message) ReflectionResult {
	if strings.TrimSpace(answer) == "" {
		return ReflectionResult{
			Confidence: 40,
			Notes:      "Empty or invalid answer provided",
		}
	}

	review := r.completer.Complete(ctx, reflectionPrompt, answer, []memory.Message{})

	var raw map[string]any
	if err := unmarshalModelJSON(review, &raw); err != nil {
		logger.L.Warn("reflection output parse failed", "error", err, "output", review)
		metrics.ParseFallbacks.WithLabelValues("reflection").Inc()
		return ReflectionResult{
			Confidence: defaultConfidence,
			Notes:      "Automatic confidence assigned due to parsing issue",
		}
	}

	result := ReflectionResult{
		Confidence: defaultConfidence,
		Notes:      "Quality assessment completed",
	}
	if c, ok := raw["confidence"].(float64); ok {
		result.Confidence = c
	}
	if n, ok := raw["notes"].(string); ok && n != "" {
		result.Notes = n
	}
	result.Confidence = clamp(result.Confidence, 0, 100)
	return result
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
