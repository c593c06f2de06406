package session

import (
	"encoding/json"
	"net/http"
)

// healthResponse is the body served by the health endpoint.
type healthResponse struct {
	Status       string `json:"status"`
	Name         string `json:"name"`
	Version      string `json:"version"`
	OpenSessions int    `json:"open_sessions"`
}

// HealthHandler reports process status, the server identity, and the
// current count of open sessions.
func HealthHandler(name, version string, m *Manager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.Header().Set("Allow", "GET")
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:       "ok",
			Name:         name,
			Version:      version,
			OpenSessions: m.Count(),
		})
	})
}
