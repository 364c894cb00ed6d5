package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/logger"
	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
)

// Runner is the orchestrator surface the HTTP layer needs.
type Runner interface {
	Run(ctx context.Context, sessionID, message, mode string) any
}

// Handler serves the chat API.
type Handler struct {
	runner Runner
	store  *memory.Store
}

// NewHandler creates the chat API handler.
func NewHandler(runner Runner, store *memory.Store) *Handler {
	return &Handler{runner: runner, store: store}
}

type chatRequest struct {
	SessionID string `json:"session_id"`
	ChatID    string `json:"chat_id"` // accepted for older clients
	Message   string `json:"message"`
	Mode      string `json:"mode"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Chat handles POST /chat. A missing session id or message is the only
// client-visible hard failure; every downstream problem comes back as a
// degraded-but-successful orchestrator result.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	sessionID := strings.TrimSpace(req.SessionID)
	if sessionID == "" {
		sessionID = strings.TrimSpace(req.ChatID)
	}
	if sessionID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "session_id is required and must not be empty"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "message is required and must not be empty"})
		return
	}

	result := h.runner.Run(r.Context(), sessionID, req.Message, req.Mode)
	writeJSON(w, http.StatusOK, result)
}

// ClearSession handles DELETE /chat/{sessionID} and drops that session's history.
func (h *Handler) ClearSession(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if strings.TrimSpace(sessionID) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "sessionID is required"})
		return
	}
	h.store.Clear(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "Backend running 🚀"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.L.Error("response encode failed", "error", err)
	}
}
