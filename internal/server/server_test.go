package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ayusman/hasta/internal/app"
)

func TestServer_Health(t *testing.T) {
	a := app.New(app.Config{})
	srv := New(Config{App: a})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("health status = %d, want 200", w.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Errorf("status field = %v, want ok", resp["status"])
	}
	if _, ok := resp["degraded"]; !ok {
		t.Error("health response should report degraded mode")
	}
}

func TestServer_HealthMethodNotAllowed(t *testing.T) {
	srv := New(Config{})

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestServer_SessionRoutes(t *testing.T) {
	a := app.New(app.Config{})
	srv := New(Config{App: a})

	req := httptest.NewRequest(http.MethodPost, "/api/session/start", nil)
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("session start via server = %d, want 200", w.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/session", nil)
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("session snapshot via server = %d, want 200", w.Code)
	}

	var snap struct {
		State string `json:"state"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("failed to parse snapshot: %v", err)
	}
	if snap.State != "active" {
		t.Errorf("snapshot state = %q, want active", snap.State)
	}
}
