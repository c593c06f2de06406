// Package session implements the HTTP transport's session management
// layer: creating sessions on demand, addressing them by token, and
// tearing them down on explicit close or transport-level teardown.
package session

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HeaderSessionID is the HTTP header carrying the session token in both
// directions.
const HeaderSessionID = "Mcp-Session-Id"

// JSON-RPC error codes used on transport-level rejections.
const (
	codeBadRequest      = -32000
	codeSessionNotFound = -32001
)

// Manager multiplexes MCP sessions over a single HTTP endpoint. Each
// session binds one server instance (from newServer) to one streamable
// transport for its entire lifetime; the binding is immutable after
// creation and the token is never reused after closure.
//
// The session table is only mutated here: insert on handshake, remove on
// explicit DELETE or on transport teardown, whichever fires first.
type Manager struct {
	newServer func() *sdkmcp.Server

	mu       sync.Mutex
	sessions map[string]*session
}

// session is one table entry.
type session struct {
	transport *sdkmcp.StreamableServerTransport
	server    *sdkmcp.ServerSession
}

// NewManager creates a Manager that builds one server instance per
// session using newServer.
func NewManager(newServer func() *sdkmcp.Server) *Manager {
	return &Manager{
		newServer: newServer,
		sessions:  make(map[string]*session),
	}
}

// Count reports the number of open sessions.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) lookup(token string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[token]
}

// take removes and returns the session for token. A nil return means the
// token never existed or was already closed; the two are not
// distinguished.
func (m *Manager) take(token string) *session {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[token]
	delete(m.sessions, token)
	return s
}

// ServeHTTP routes one inbound exchange to the right session. Sessions
// are independent: nothing here blocks across tokens, and per-session
// ordering is preserved by the underlying transport.
func (m *Manager) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	token := req.Header.Get(HeaderSessionID)

	switch req.Method {
	case http.MethodGet:
		// Stream-subscribe: open the server-to-client notification
		// stream for an existing session.
		if !accepts(req, "text/event-stream") {
			writeError(w, http.StatusBadRequest, codeBadRequest,
				"Accept must contain 'text/event-stream' for GET requests")
			return
		}
		sess := m.lookup(token)
		if sess == nil {
			writeError(w, http.StatusBadRequest, codeBadRequest,
				"missing or unknown session ID")
			return
		}
		sess.transport.ServeHTTP(w, req)

	case http.MethodPost:
		// Payload delivery: dispatch to the bound session, creating one
		// first when the payload is an initialize handshake.
		if !accepts(req, "application/json") || !accepts(req, "text/event-stream") {
			writeError(w, http.StatusBadRequest, codeBadRequest,
				"Accept must contain both 'application/json' and 'text/event-stream'")
			return
		}
		if sess := m.lookup(token); sess != nil {
			sess.transport.ServeHTTP(w, req)
			return
		}
		m.servePostWithoutSession(w, req)

	case http.MethodDelete:
		// Explicit close.
		sess := m.take(token)
		if sess == nil {
			writeError(w, http.StatusNotFound, codeSessionNotFound, "session not found")
			return
		}
		if err := sess.server.Close(); err != nil {
			slog.Warn("closing session", "session_id", token, "error", err)
		}
		slog.Info("session closed", "session_id", token)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "session closed"})

	default:
		w.Header().Set("Allow", "GET, POST, DELETE")
		writeError(w, http.StatusMethodNotAllowed, codeBadRequest, "method not allowed")
	}
}

// servePostWithoutSession handles a POST whose token is absent or
// unknown. Only an initialize handshake may create a session; anything
// else has no binding to dispatch against and is rejected without any
// state change.
func (m *Manager) servePostWithoutSession(w http.ResponseWriter, req *http.Request) {
	body, err := io.ReadAll(req.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "reading request body")
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))

	if !isInitialize(body) {
		writeError(w, http.StatusBadRequest, codeBadRequest,
			"no valid session ID: only an initialize request may create a session")
		return
	}

	token := uuid.NewString()
	transport := &sdkmcp.StreamableServerTransport{SessionID: token}
	ss, err := m.newServer().Connect(req.Context(), transport, nil)
	if err != nil {
		writeError(w, http.StatusInternalServerError, codeBadRequest, "failed to connect session")
		return
	}

	// Insert before delegating: the token becomes observable to the
	// caller only through the response, so a fast follow-up request
	// always finds the entry.
	m.mu.Lock()
	m.sessions[token] = &session{transport: transport, server: ss}
	m.mu.Unlock()
	go m.watch(token, ss)

	slog.Info("session created", "session_id", token)
	w.Header().Set(HeaderSessionID, token)
	transport.ServeHTTP(w, req)
}

// watch is the teardown side channel: when a session's transport closes
// for any reason other than an explicit DELETE (connection drop, server
// shutdown), the table entry is removed here. Whichever of the two paths
// fires first performs the removal; the other is a no-op.
func (m *Manager) watch(token string, ss *sdkmcp.ServerSession) {
	err := ss.Wait()
	if m.take(token) != nil {
		slog.Info("session ended", "session_id", token, "error", err)
	}
}

// CloseAll tears down every open session, for process shutdown.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	sessions := m.sessions
	m.sessions = make(map[string]*session)
	m.mu.Unlock()

	for token, sess := range sessions {
		if err := sess.server.Close(); err != nil {
			slog.Warn("closing session", "session_id", token, "error", err)
		}
	}
}

// isInitialize reports whether body is a JSON-RPC initialize request.
// Only the method name is inspected; the SDK owns the rest of the
// payload.
func isInitialize(body []byte) bool {
	var probe struct {
		Method string `json:"method"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return false
	}
	return probe.Method == "initialize"
}

// accepts reports whether the request's Accept headers include mimeType.
func accepts(req *http.Request, mimeType string) bool {
	for _, h := range req.Header.Values("Accept") {
		for _, part := range strings.Split(h, ",") {
			mt := strings.TrimSpace(part)
			if i := strings.IndexByte(mt, ';'); i >= 0 {
				mt = strings.TrimSpace(mt[:i])
			}
			if mt == mimeType || mt == "*/*" {
				return true
			}
		}
	}
	return false
}

// writeError reports a protocol-shape error as a JSON-RPC error body.
// Error paths never mutate the session table.
func writeError(w http.ResponseWriter, status, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"jsonrpc": "2.0",
		"id":      nil,
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
}
