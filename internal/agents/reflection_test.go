package agents

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/llm"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
)

func TestReflectorScore_ParsesResult(t *testing.T) {
	completer := &mockCompleter{reply: func(sys, user string) string {
		return `{"confidence": 82, "notes": "clear and well disclaimed"}`
	}}
	r := NewReflector(completer)

	got := r.Score(context.Background(), "some answer", nil)
	require.Equal(t, 82.0, got.Confidence)
	require.Equal(t, "clear and well disclaimed", got.Notes)

	require.Len(t, completer.calls, 1)
	require.Contains(t, completer.calls[0].SystemPrompt, "AI quality reviewer")
	require.Equal(t, "some answer", completer.calls[0].UserMessage)
}

func TestReflectorScore_EmptyAnswerSkipsModel(t *testing.T) {
	completer := &mockCompleter{}
	got := NewReflector(completer).Score(context.Background(), "  \n ", nil)
	require.Equal(t, 40.0, got.Confidence)
	require.Equal(t, "Empty or invalid answer provided", got.Notes)
	require.Zero(t, completer.callCount())
}

func TestReflectorScore_ConfidenceClamped(t *testing.T) {
	for _, tt := range []struct {
		raw  float64
		want float64
	}{
		{-5, 0},
		{150, 100},
		{0, 0},
		{100, 100},
		{55.5, 55.5},
	} {
		completer := &mockCompleter{reply: func(sys, user string) string {
			return fmt.Sprintf(`{"confidence": %v, "notes": "n"}`, tt.raw)
		}}
		got := NewReflector(completer).Score(context.Background(), "answer", nil)
		require.Equal(t, tt.want, got.Confidence, "raw confidence %v", tt.raw)
	}
}

func TestReflectorScore_ParseFailureFallback(t *testing.T) {
	completer := &mockCompleter{reply: func(sys, user string) string {
		return "Looks fine to me!"
	}}
	got := NewReflector(completer).Score(context.Background(), "answer", nil)
	require.Equal(t, 60.0, got.Confidence)
	require.Equal(t, "Automatic confidence assigned due to parsing issue", got.Notes)
}

func TestReflectorScore_CompletionFailureFallback(t *testing.T) {
	// A failed completion surfaces as the completer's fixed error string,
	// which cannot parse as JSON and therefore hits the same fallback.
	completer := &mockCompleter{reply: func(sys, user string) string {
		return llm.ErrReplyFailed
	}}
	got := NewReflector(completer).Score(context.Background(), "answer", nil)
	require.Equal(t, 60.0, got.Confidence)
}

func TestReflectorScore_HistoryNotForwarded(t *testing.T) {
	// The reviewer judges the answer on its own; the conversation history is
	// accepted by Score but never sent along with the review request.
	completer := &mockCompleter{reply: func(sys, user string) string {
		return `{"confidence": 75, "notes": "n"}`
	}}
	history := []memory.Message{{Role: memory.RoleUser, Content: "earlier"}}

	got := NewReflector(completer).Score(context.Background(), "answer", history)
	require.Equal(t, 75.0, got.Confidence)
	require.Len(t, completer.calls, 1)
	require.Empty(t, completer.calls[0].History)
}

func TestReflectorScore_NonNumericConfidenceDefaulted(t *testing.T) {
	completer := &mockCompleter{reply: func(sys, user string) string {
		return `{"confidence": "very high", "notes": 12}`
	}}
	got := NewReflector(completer).Score(context.Background(), "answer", nil)
	require.Equal(t, 60.0, got.Confidence)
	require.Equal(t, "Quality assessment completed", got.Notes)
}
