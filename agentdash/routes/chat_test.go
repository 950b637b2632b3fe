package routes

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"agentdash/agentdash/chat"
	"agentdash/agentdash/controllers"
	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"

	"github.com/coder/websocket"
)

type wsEvent struct {
	Type    string        `json:"type"`
	Message types.Message `json:"message"`
	Error   string        `json:"error"`
}

func readEvent(ctx context.Context, t *testing.T, conn *websocket.Conn) wsEvent {
	t.Helper()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("websocket read failed: %v", err)
	}
	var ev wsEvent
	if err := json.Unmarshal(data, &ev); err != nil {
		t.Fatalf("bad event payload %q: %v", data, err)
	}
	return ev
}

func TestChatWebSocketEmitsAckAndReply(t *testing.T) {
	logging.InitTestLogger()
	store := chat.NewStore(nil, routeResponder{}, nil)
	srv := httptest.NewServer(ChatRoutes(controllers.NewChatController(store)))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"agent_id":"cicd","content":"hello"}`)); err != nil {
		t.Fatalf("websocket write failed: %v", err)
	}

	ack := readEvent(ctx, t, conn)
	if ack.Type != "user_message" {
		t.Fatalf("expected user_message event first, got %q", ack.Type)
	}
	if ack.Message.Role != types.RoleUser || ack.Message.Content != "hello" {
		t.Errorf("unexpected ack message %+v", ack.Message)
	}

	reply := readEvent(ctx, t, conn)
	if reply.Type != "agent_message" {
		t.Fatalf("expected agent_message event second, got %q", reply.Type)
	}
	if reply.Message.Role != types.RoleAgent || reply.Message.AgentID != types.AgentCICD {
		t.Errorf("unexpected reply message %+v", reply.Message)
	}
}

func TestChatWebSocketRejectsUnknownAgent(t *testing.T) {
	logging.InitTestLogger()
	store := chat.NewStore(nil, routeResponder{}, nil)
	srv := httptest.NewServer(ChatRoutes(controllers.NewChatController(store)))
	t.Cleanup(srv.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.Dial(ctx, wsURL, nil)
	if err != nil {
		t.Fatalf("websocket dial failed: %v", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"agent_id":"bogus","content":"x"}`)); err != nil {
		t.Fatalf("websocket write failed: %v", err)
	}
	ev := readEvent(ctx, t, conn)
	if ev.Error == "" {
		t.Errorf("expected error event, got %+v", ev)
	}
}
