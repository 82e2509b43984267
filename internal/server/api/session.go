package api

import (
	"net/http"
	"strings"

	"github.com/ayusman/hasta/internal/app"
)

// SessionHandler handles session state queries and control commands.
type SessionHandler struct {
	app *app.App
}

// NewSessionHandler creates a new SessionHandler for the given app.
func NewSessionHandler(a *app.App) *SessionHandler {
	return &SessionHandler{app: a}
}

// ServeHTTP routes session requests.
// GET /api/session returns the session snapshot; POST /api/session/{start,
// stop,reset} drives the session state machine.
func (h *SessionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/session")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.snapshot(w, r)
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sess := h.app.Session()

	switch path {
	case "start":
		sess.Start()
	case "stop":
		sess.Stop()
	case "reset":
		sess.Reset()
	default:
		writeError(w, http.StatusNotFound, "unknown session command")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"state": sess.State().String(),
	})
}

// snapshot handles GET /api/session.
func (h *SessionHandler) snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.app.Session().Snapshot())
}
