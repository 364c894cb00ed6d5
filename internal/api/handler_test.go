package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/naveenchouti-ops/agentic-rag-law-police-press-assis-chatbot/internal/memory"
)

type stubRunner struct {
	lastSession string
	lastMessage string
	lastMode    string
	result      any
}

func (s *stubRunner) Run(ctx context.Context, sessionID, message, mode string) any {
	s.lastSession = sessionID
	s.lastMessage = message
	s.lastMode = mode
	return s.result
}

func newTestServer(runner Runner, store *memory.Store) *httptest.Server {
	return httptest.NewServer(NewRouter(runner, store))
}

func postChat(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url+"/chat", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	return resp
}

func TestChat_OK(t *testing.T) {
	runner := &stubRunner{result: map[string]string{"mode": "single", "reply": "hello"}}
	srv := newTestServer(runner, memory.NewStore())
	defer srv.Close()

	resp := postChat(t, srv.URL, `{"session_id": "s1", "message": "hi", "mode": "voting"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "s1", runner.lastSession)
	require.Equal(t, "hi", runner.lastMessage)
	require.Equal(t, "voting", runner.lastMode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "hello", body["reply"])
}

func TestChat_AcceptsLegacyChatID(t *testing.T) {
	runner := &stubRunner{result: map[string]string{}}
	srv := newTestServer(runner, memory.NewStore())
	defer srv.Close()

	resp := postChat(t, srv.URL, `{"chat_id": "old-client", "message": "hi"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "old-client", runner.lastSession)
}

func TestChat_ClientErrors(t *testing.T) {
	runner := &stubRunner{}
	srv := newTestServer(runner, memory.NewStore())
	defer srv.Close()

	for _, body := range []string{
		`{"message": "hi"}`,                       // missing session id
		`{"session_id": "s1"}`,                    // missing message
		`{"session_id": "  ", "message": "hi"}`,   // blank session id
		`{"session_id": "s1", "message": "   "}`,  // blank message
		`{"session_id": "s1", "message": "hi"`,    // malformed JSON
	} {
		resp := postChat(t, srv.URL, body)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
		resp.Body.Close()
	}
	require.Empty(t, runner.lastSession)
}

func TestClearSession(t *testing.T) {
	store := memory.NewStore()
	store.Append("s1", memory.RoleUser, "hello")
	srv := newTestServer(&stubRunner{}, store)
	defer srv.Close()

	req, err := http.NewRequest(http.MethodDelete, srv.URL+"/chat/s1", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	require.Empty(t, store.Get("s1"))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(&stubRunner{}, memory.NewStore())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
}
