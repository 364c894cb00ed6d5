// Package memory holds per-session conversation history for the lifetime of the
// process. Sessions are created lazily on first valid append and histories are
// append-only: messages are never reordered or mutated after insertion.
package memory

import (
	"sync"
)

// Roles recognized by the store. Appends with any other role are dropped.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
)

// Message is a single role-tagged entry in a conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Store maps session ids to their ordered message history. All mutation goes
// through Append and Clear; concurrent requests for the same session are safe,
// though their relative append order is whatever the lock hands out.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]Message
}

// NewStore creates an empty conversation store.
func NewStore() *Store {
	return &Store{sessions: make(map[string][]Message)}
}

// Get returns a copy of the session's history in chronological order.
// Unknown or empty session ids yield an empty slice, never an error.
func (s *Store) Get(sessionID string) []Message {
	if sessionID == "" {
		return []Message{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	msgs := s.sessions[sessionID]
	out := make([]Message, len(msgs))
	copy(out, msgs)
	return out
}

// Append adds a message to the session, creating the session on first valid
// append. Invalid input (empty session id, unrecognized role, empty content)
// is silently dropped.
func (s *Store) Append(sessionID, role, content string) {
	if sessionID == "" || !validRole(role) || content == "" {
		return
	}
	s.mu.Lock()
	s.sessions[sessionID] = append(s.sessions[sessionID], Message{Role: role, Content: content})
	s.mu.Unlock()
}

// Clear removes all history for the session. No-op for unknown ids.
func (s *Store) Clear(sessionID string) {
	if sessionID == "" {
		return
	}
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func validRole(role string) bool {
	switch role {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}
