// Package orchestrator is the entry point of the multi-agent core. It owns
// the two execution strategies (single-agent and voting), coordinates the
// conversation store, and guarantees that no failure escapes past it: every
// path ends in a well-formed result, degraded if necessary.
package orchestrator

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qmuntal/stateless"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/agents"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/metrics"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/rag"
)

// Execution modes.
const (
	ModeSingle = "single"
	ModeVoting = "voting"
)

const errReplyGeneric = "⚠️ An error occurred while processing your request. Please try again."

// FSM states
type fsmState stateless.State

var (
	stateRouting    fsmState = "Routing"
	stateAnswering  fsmState = "Answering"
	stateReflecting fsmState = "Reflecting"
	stateFanOut     fsmState = "FanOut"
	stateJudging    fsmState = "Judging"
	stateDone       fsmState = "Done"
)

// FSM triggers
type fsmTrigger stateless.Trigger

var (
	triggerStart     fsmTrigger = "Start"
	triggerRouted    fsmTrigger = "Routed"
	triggerAnswered  fsmTrigger = "Answered"
	triggerReflected fsmTrigger = "Reflected"
	triggerCollected fsmTrigger = "Collected"
	triggerJudged    fsmTrigger = "Judged"
)

// SingleResult is the caller-facing response of the single-agent path.
type SingleResult struct {
	Mode       string  `json:"mode"`
	AgentUsed  string  `json:"agent_used"`
	Reply      string  `json:"reply"`
	Confidence float64 `json:"confidence"`
	Notes      string  `json:"notes"`
}

// VotingResult is the caller-facing response of the voting path. AllAnswers
// is diagnostic only; the store keeps just the winning answer.
type VotingResult struct {
	Mode        string            `json:"mode"`
	FinalAnswer string            `json:"final_answer"`
	Winner      string            `json:"winner"`
	Confidence  float64           `json:"confidence"`
	Reason      string            `json:"reason"`
	AllAnswers  map[string]string `json:"all_answers"`
}

// Orchestrator wires the router, agents, judge, reflector and conversation
// store into the two execution strategies.
type Orchestrator struct {
	store     *memory.Store
	agents    map[agents.Category]*agents.Agent
	judge     *agents.Judge
	reflector *agents.Reflector
}

// New builds an orchestrator with one agent per category, all sharing the
// completion and retrieval capabilities.
func New(store *memory.Store, completer agents.Completer, retriever rag.Retriever, topK int) *Orchestrator {
	byCategory := make(map[agents.Category]*agents.Agent, len(agents.Categories))
	for _, c := range agents.Categories {
		byCategory[c] = agents.NewAgent(c, completer, retriever, topK)
	}
	return &Orchestrator{
		store:     store,
		agents:    byCategory,
		judge:     agents.NewJudge(completer),
		reflector: agents.NewReflector(completer),
	}
}

// Run dispatches to the strategy named by mode. Unknown or empty modes run
// the single-agent path.
func (o *Orchestrator) Run(ctx context.Context, sessionID, message, mode string) any {
	if strings.ToLower(strings.TrimSpace(mode)) == ModeVoting {
		return o.RunVoting(ctx, sessionID, message)
	}
	return o.RunSingle(ctx, sessionID, message)
}

// RunSingle executes the single-agent path: route, answer, reflect, persist.
// It never fails: unexpected panics are converted to a fixed error result.
func (o *Orchestrator) RunSingle(ctx context.Context, sessionID, message string) (result SingleResult) {
	start := time.Now()
	runID := uuid.NewString()
	log := logger.L.With("run_id", runID, "session_id", sessionID, "mode", ModeSingle)
	outcome := "ok"
	defer func() {
		if r := recover(); r != nil {
			log.Error("single-agent run panicked", "panic", r)
			outcome = "error"
			result = SingleResult{
				Mode:       ModeSingle,
				AgentUsed:  "ERROR",
				Reply:      errReplyGeneric,
				Confidence: 0,
				Notes:      "System error",
			}
		}
		metrics.RequestsTotal.WithLabelValues(ModeSingle, outcome).Inc()
		metrics.RequestDuration.WithLabelValues(ModeSingle).Observe(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(message) == "" {
		outcome = "invalid"
		return SingleResult{
			Mode:       ModeSingle,
			AgentUsed:  "NONE",
			Reply:      agents.ErrReplyInvalidMessage,
			Confidence: 0,
			Notes:      "Invalid input",
		}
	}

	history := o.store.Get(sessionID)
	o.store.Append(sessionID, memory.RoleUser, message)

	run := struct {
		category   agents.Category
		reply      string
		reflection agents.ReflectionResult
	}{}

	fsm := stateless.NewStateMachine(stateRouting)
	fsm.Configure(stateRouting).
		PermitReentry(triggerStart).
		OnEntry(func(ctx context.Context, _ ...any) error {
			run.category = agents.Classify(message)
			log.Debug("message routed", "agent", run.category)
			return fsm.FireCtx(ctx, triggerRouted)
		}).
		Permit(triggerRouted, stateAnswering)
	fsm.Configure(stateAnswering).
		OnEntry(func(ctx context.Context, _ ...any) error {
			run.reply = o.agents[run.category].Answer(ctx, message, history)
			return fsm.FireCtx(ctx, triggerAnswered)
		}).
		Permit(triggerAnswered, stateReflecting)
	fsm.Configure(stateReflecting).
		OnEntry(func(ctx context.Context, _ ...any) error {
			run.reflection = o.scoreWithFallback(ctx, run.reply, history)
			return fsm.FireCtx(ctx, triggerReflected)
		}).
		Permit(triggerReflected, stateDone)
	fsm.Configure(stateDone)

	if err := fsm.FireCtx(ctx, triggerStart); err != nil {
		log.Error("single-agent state machine failed", "error", err)
		panic(err)
	}

	o.store.Append(sessionID, memory.RoleAssistant, run.reply)
	metrics.AgentWins.WithLabelValues(run.category.AgentKey()).Inc()
	log.Info("single-agent run complete", "agent", run.category, "confidence", run.reflection.Confidence)

	return SingleResult{
		Mode:       ModeSingle,
		AgentUsed:  string(run.category),
		Reply:      run.reply,
		Confidence: run.reflection.Confidence,
		Notes:      run.reflection.Notes,
	}
}

// RunVoting executes the voting path: all agents answer concurrently, the
// judge arbitrates, and only the winning answer is persisted.
func (o *Orchestrator) RunVoting(ctx context.Context, sessionID, message string) (result VotingResult) {
	start := time.Now()
	runID := uuid.NewString()
	log := logger.L.With("run_id", runID, "session_id", sessionID, "mode", ModeVoting)
	outcome := "ok"
	defer func() {
		if r := recover(); r != nil {
			log.Error("voting run panicked", "panic", r)
			outcome = "error"
			result = VotingResult{
				Mode:        ModeVoting,
				FinalAnswer: errReplyGeneric,
				Winner:      "ERROR",
				Confidence:  0,
				Reason:      "System error",
				AllAnswers:  map[string]string{},
			}
		}
		metrics.RequestsTotal.WithLabelValues(ModeVoting, outcome).Inc()
		metrics.RequestDuration.WithLabelValues(ModeVoting).Observe(time.Since(start).Seconds())
	}()

	if strings.TrimSpace(message) == "" {
		outcome = "invalid"
		return VotingResult{
			Mode:        ModeVoting,
			FinalAnswer: agents.ErrReplyInvalidMessage,
			Winner:      "NONE",
			Confidence:  0,
			Reason:      "Invalid input",
			AllAnswers:  map[string]string{},
		}
	}

	history := o.store.Get(sessionID)
	o.store.Append(sessionID, memory.RoleUser, message)

	run := struct {
		mu      sync.Mutex
		answers map[agents.Category]string
		verdict agents.Verdict
	}{answers: make(map[agents.Category]string, len(o.agents))}

	fsm := stateless.NewStateMachine(stateFanOut)
	fsm.Configure(stateFanOut).
		PermitReentry(triggerStart).
		OnEntry(func(ctx context.Context, _ ...any) error {
			// The three agents are independent; the judge is the barrier.
			var wg sync.WaitGroup
			for _, ag := range o.agents {
				wg.Add(1)
				go func(ag *agents.Agent) {
					defer wg.Done()
					answer := ag.Answer(ctx, message, history)
					run.mu.Lock()
					run.answers[ag.Category()] = answer
					run.mu.Unlock()
				}(ag)
			}
			wg.Wait()
			return fsm.FireCtx(ctx, triggerCollected)
		}).
		Permit(triggerCollected, stateJudging)
	fsm.Configure(stateJudging).
		OnEntry(func(ctx context.Context, _ ...any) error {
			run.verdict = o.judge.Decide(ctx, message, run.answers)
			return fsm.FireCtx(ctx, triggerJudged)
		}).
		Permit(triggerJudged, stateDone)
	fsm.Configure(stateDone)

	if err := fsm.FireCtx(ctx, triggerStart); err != nil {
		log.Error("voting state machine failed", "error", err)
		panic(err)
	}

	// The judge never emits a winner outside the three categories, but the
	// persisted answer must exist, so check anyway.
	winner := run.verdict.Winner
	if _, ok := run.answers[winner]; !ok {
		winner = agents.CategoryLaw
	}
	finalAnswer := run.answers[winner]

	o.store.Append(sessionID, memory.RoleAssistant, finalAnswer)
	metrics.AgentWins.WithLabelValues(winner.AgentKey()).Inc()
	log.Info("voting run complete", "winner", winner, "confidence", run.verdict.Confidence)

	allAnswers := make(map[string]string, len(run.answers))
	for c, a := range run.answers {
		allAnswers[c.AgentKey()] = a
	}

	return VotingResult{
		Mode:        ModeVoting,
		FinalAnswer: finalAnswer,
		Winner:      winner.AgentKey(),
		Confidence:  run.verdict.Confidence,
		Reason:      run.verdict.Reason,
		AllAnswers:  allAnswers,
	}
}

// scoreWithFallback shields the request from a reflection failure: whatever
// goes wrong, the reply still ships with a fixed moderate confidence.
func (o *Orchestrator) scoreWithFallback(ctx context.Context, reply string, history []memory.Message) (result agents.ReflectionResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.L.Warn("reflection panicked; using fallback score", "panic", r)
			result = agents.ReflectionResult{
				Confidence: 70,
				Notes:      "Reflection skipped due to internal safety.",
			}
		}
	}()
	return o.reflector.Score(ctx, reply, history)
}
