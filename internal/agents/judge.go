package agents

import (
	"context"
	"fmt"
	"strings"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/metrics"
)

const judgePrompt = `You are an expert AI judge.

You will receive:
- A user question
- Multiple agent answers (LAW, POLICE, PRESS)

Your task:
1. Compare all answers
2. Identify inaccuracies or risks
3. Decide which answer is BEST for the user
4. Give a confidence score (0–100)

Rules:
- Prefer safety over completeness
- Prefer educational tone
- Avoid legal advice or verdicts
- Be conservative

Return STRICT JSON only in this format:
{
  "winner": "law_agent | police_agent | press_agent",
  "confidence": number,
  "reason": "short explanation"
}`

const missingAnswerPlaceholder = "(no answer provided)"

const defaultConfidence = 60

// Verdict is the judge's structured decision for one voting round. It is
// never persisted; the orchestrator only uses it to pick the answer to keep.
type Verdict struct {
	Winner     Category `json:"winner"`
	Confidence float64  `json:"confidence"`
	Reason     string   `json:"reason"`
}

// Judge arbitrates between parallel agent answers.
type Judge struct {
	completer Completer
}

// NewJudge creates a judge backed by the completion capability.
func NewJudge(completer Completer) *Judge {
	return &Judge{completer: completer}
}

// Decide compares the candidate answers and selects a winner. Invalid input
// short-circuits to a LAW fallback verdict without calling the model, and a
// malformed model response degrades to the same fallback with its own reason.
// The returned winner is always one of the three agent categories.
func (j *Judge) Decide(ctx context.Context, message string, answers map[Category]string) Verdict {
	if strings.TrimSpace(message) == "" || len(answers) == 0 {
		return Verdict{
			Winner:     CategoryLaw,
			Confidence: defaultConfidence,
			Reason:     "Fallback decision due to invalid input",
		}
	}

	combined := fmt.Sprintf(`USER QUESTION:
%s

LAW AGENT ANSWER:
%s

POLICE AGENT ANSWER:
%s

PRESS AGENT ANSWER:
%s`,
		message,
		answerOrPlaceholder(answers, CategoryLaw),
		answerOrPlaceholder(answers, CategoryPolice),
		answerOrPlaceholder(answers, CategoryPress),
	)

	result := j.completer.Complete(ctx, judgePrompt, combined, []memory.Message{})

	var raw map[string]any
	if err := unmarshalModelJSON(result, &raw); err != nil {
		logger.L.Warn("judge output parse failed", "error", err, "output", result)
		metrics.ParseFallbacks.WithLabelValues("judge").Inc()
		return Verdict{
			Winner:     CategoryLaw,
			Confidence: defaultConfidence,
			Reason:     "Fallback decision due to parsing issue",
		}
	}

	verdict := Verdict{
		Winner:     CategoryLaw,
		Confidence: defaultConfidence,
		Reason:     "No reason provided",
	}
	if w, ok := raw["winner"].(string); ok {
		if cat, valid := CategoryFromAgentKey(strings.ToLower(strings.TrimSpace(w))); valid {
			verdict.Winner = cat
		}
	}
	if c, ok := raw["confidence"].(float64); ok {
		verdict.Confidence = c
	}
	if r, ok := raw["reason"].(string); ok && r != "" {
		verdict.Reason = r
	}
	return verdict
}

func answerOrPlaceholder(answers map[Category]string, c Category) string {
	if a, ok := answers[c]; ok && strings.TrimSpace(a) != "" {
		return a
	}
	return missingAnswerPlaceholder
}
