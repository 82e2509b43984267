package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/hasta/internal/session"
)

func TestEventsHandler_BroadcastsOutcomes(t *testing.T) {
	h := NewEventsHandler()
	srv := httptest.NewServer(h)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("websocket dial error = %v", err)
	}
	defer conn.Close()

	// Wait for the server side to register the client
	deadline := time.Now().Add(time.Second)
	for h.ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client never registered")
		}
		time.Sleep(10 * time.Millisecond)
	}

	h.Broadcast(&session.Outcome{
		Label:      "Thumbs Up",
		Confidence: 92,
	})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, msg, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message error = %v", err)
	}

	var payload struct {
		Outcome struct {
			Label      string  `json:"label"`
			Confidence float64 `json:"confidence"`
		} `json:"outcome"`
		Timestamp int64 `json:"timestamp"`
	}
	if err := json.Unmarshal(msg, &payload); err != nil {
		t.Fatalf("failed to parse message: %v", err)
	}

	if payload.Outcome.Label != "Thumbs Up" {
		t.Errorf("outcome label = %q, want Thumbs Up", payload.Outcome.Label)
	}
	if payload.Outcome.Confidence != 92 {
		t.Errorf("outcome confidence = %f, want 92", payload.Outcome.Confidence)
	}
	if payload.Timestamp == 0 {
		t.Error("timestamp should be set")
	}
}

func TestEventsHandler_IgnoresNil(t *testing.T) {
	h := NewEventsHandler()
	// Must not panic with no clients and a nil outcome
	h.Broadcast(nil)
}
