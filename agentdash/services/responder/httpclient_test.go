package responder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agentdash/agentdash/config"
	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"
)

func newTestHTTPResponder(t *testing.T, handler http.HandlerFunc) *HTTPResponder {
	t.Helper()
	logging.InitTestLogger()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPResponder(config.AgentAPIConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

func TestHTTPRespondSuccess(t *testing.T) {
	r := newTestHTTPResponder(t, func(w http.ResponseWriter, req *http.Request) {
		if req.URL.Path != "/agents/cicd/chat" {
			t.Errorf("unexpected path %s", req.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		if body["message"] != "hello" {
			t.Errorf("expected message=hello, got %q", body["message"])
		}
		json.NewEncoder(w).Encode(map[string]string{
			"id":        "srv-1",
			"content":   "server reply",
			"timestamp": "2024-06-01T12:30:45.123Z",
		})
	})

	msg, err := r.Respond(context.Background(), types.AgentCICD, "hello")
	if err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if msg.ID != "srv-1" || msg.Content != "server reply" {
		t.Errorf("unexpected message %+v", msg)
	}
	if msg.Role != types.RoleAgent || msg.AgentID != types.AgentCICD {
		t.Errorf("unexpected role/agent %+v", msg)
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not parsed")
	}
}

func TestHTTPRespondMessageFieldFallback(t *testing.T) {
	r := newTestHTTPResponder(t, func(w http.ResponseWriter, req *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"message": "fallback body"})
	})
	msg, err := r.Respond(context.Background(), types.AgentCloud, "hi")
	if err != nil {
		t.Fatalf("respond failed: %v", err)
	}
	if msg.Content != "fallback body" {
		t.Errorf("expected fallback content, got %q", msg.Content)
	}
	if msg.ID == "" {
		t.Error("expected a generated id when server omits one")
	}
}

func TestHTTPRespondNon2xx(t *testing.T) {
	r := newTestHTTPResponder(t, func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	_, err := r.Respond(context.Background(), types.AgentConfig, "hi")
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected *TransportError, got %T (%v)", err, err)
	}
}

func TestHTTPRespondEmptyInput(t *testing.T) {
	r := newTestHTTPResponder(t, func(w http.ResponseWriter, req *http.Request) {
		t.Error("server should not be called for empty input")
	})
	_, err := r.Respond(context.Background(), types.AgentConfig, "   ")
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}
}
