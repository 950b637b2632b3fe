package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"agentdash/agentdash/types"
)

// --- Helpers ---

type stubResponder struct {
	fn func(ctx context.Context, agentID types.AgentType, content string) (types.Message, error)
}

func (r *stubResponder) Respond(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
	return r.fn(ctx, agentID, content)
}

func echoResponder() *stubResponder {
	return &stubResponder{fn: func(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
		return types.Message{
			ID:        "reply-1",
			Role:      types.RoleAgent,
			Content:   "echo: " + content,
			Timestamp: time.Now(),
			AgentID:   agentID,
		}, nil
	}}
}

func waitSettled(t *testing.T, done <-chan types.Message) types.Message {
	t.Helper()
	select {
	case reply := <-done:
		return reply
	case <-time.After(5 * time.Second):
		t.Fatal("send did not settle")
		return types.Message{}
	}
}

// --- Tests ---

func TestNewStateHasAllAgentKeys(t *testing.T) {
	s := NewState()
	for _, agent := range types.AllAgentTypes() {
		msgs, ok := s.Messages[agent]
		if !ok {
			t.Errorf("missing messages key for %s", agent)
		}
		if len(msgs) != 0 {
			t.Errorf("expected empty history for %s, got %d", agent, len(msgs))
		}
		if _, ok := s.IsLoading[agent]; !ok {
			t.Errorf("missing isLoading key for %s", agent)
		}
	}
}

func TestSendAppendsUserMessageImmediately(t *testing.T) {
	release := make(chan struct{})
	blocking := &stubResponder{fn: func(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
		<-release
		return types.Message{ID: "r", Role: types.RoleAgent, Content: "done", Timestamp: time.Now(), AgentID: agentID}, nil
	}}
	store := NewStore(nil, blocking, nil)

	userMsg, done := store.Send(context.Background(), types.AgentCICD, "How do I set up CI?")

	msgs := store.Messages(types.AgentCICD)
	if len(msgs) != 1 {
		t.Fatalf("expected 1 message before reply settles, got %d", len(msgs))
	}
	if msgs[0].ID != userMsg.ID {
		t.Errorf("returned user message %s does not match stored %s", userMsg.ID, msgs[0].ID)
	}
	if msgs[0].Role != types.RoleUser {
		t.Errorf("expected role user, got %s", msgs[0].Role)
	}
	if msgs[0].Content != "How do I set up CI?" {
		t.Errorf("unexpected user content %q", msgs[0].Content)
	}
	if !store.Loading(types.AgentCICD) {
		t.Error("expected loading=true while reply is in flight")
	}

	close(release)
	waitSettled(t, done)

	msgs = store.Messages(types.AgentCICD)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages after settle, got %d", len(msgs))
	}
	if msgs[1].Role != types.RoleAgent {
		t.Errorf("expected role agent, got %s", msgs[1].Role)
	}
	if msgs[1].AgentID != types.AgentCICD {
		t.Errorf("expected agentId cicd, got %s", msgs[1].AgentID)
	}
	if store.Loading(types.AgentCICD) {
		t.Error("expected loading=false after settle")
	}
}

func TestSendAbsorbsResponderFailure(t *testing.T) {
	failing := &stubResponder{fn: func(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
		return types.Message{}, errors.New("request timed out")
	}}
	store := NewStore(nil, failing, nil)

	_, done := store.Send(context.Background(), types.AgentCloud, "hello")
	reply := waitSettled(t, done)

	if reply.Role != types.RoleAgent {
		t.Errorf("expected agent-role error message, got %s", reply.Role)
	}
	if !strings.HasPrefix(reply.Content, "Error: ") {
		t.Errorf("expected error content, got %q", reply.Content)
	}
	if !strings.Contains(reply.Content, "request timed out") {
		t.Errorf("expected cause in error content, got %q", reply.Content)
	}
	msgs := store.Messages(types.AgentCloud)
	if len(msgs) != 2 {
		t.Fatalf("expected user message + error message, got %d", len(msgs))
	}
	if store.Loading(types.AgentCloud) {
		t.Error("loading flag stuck after failure")
	}
}

func TestPartitionIndependence(t *testing.T) {
	store := NewStore(nil, echoResponder(), nil)

	_, done := store.Send(context.Background(), types.AgentSecurity, "secrets?")
	waitSettled(t, done)
	before := store.Messages(types.AgentSecurity)

	_, done = store.Send(context.Background(), types.AgentContainer, "dockerfile?")
	waitSettled(t, done)
	store.ClearHistory(types.AgentContainer)

	after := store.Messages(types.AgentSecurity)
	if len(after) != len(before) {
		t.Fatalf("security history changed: %d != %d", len(after), len(before))
	}
	for i := range after {
		if after[i].ID != before[i].ID {
			t.Errorf("message %d changed id: %s != %s", i, after[i].ID, before[i].ID)
		}
	}
	if len(store.Messages(types.AgentContainer)) != 0 {
		t.Error("container history should be empty after clear")
	}
}

func TestClearHistoryKeepsLoadingFlag(t *testing.T) {
	store := NewStore(nil, echoResponder(), nil)
	store.SetLoading(types.AgentMonitoring, true)
	store.ClearHistory(types.AgentMonitoring)
	if !store.Loading(types.AgentMonitoring) {
		t.Error("clearHistory must not touch the loading flag")
	}
}

func TestReplaceNormalizesPartialState(t *testing.T) {
	store := NewStore(nil, echoResponder(), nil)
	partial := &State{
		Messages: map[types.AgentType][]types.Message{
			types.AgentCICD: {{ID: "m1", Role: types.RoleUser, Content: "x", AgentID: types.AgentCICD}},
		},
		IsLoading: map[types.AgentType]bool{},
	}
	store.Replace(partial)

	snap := store.Snapshot()
	for _, agent := range types.AllAgentTypes() {
		if snap.Messages[agent] == nil {
			t.Errorf("missing messages key for %s after replace", agent)
		}
		if _, ok := snap.IsLoading[agent]; !ok {
			t.Errorf("missing isLoading key for %s after replace", agent)
		}
	}
	if len(snap.Messages[types.AgentCICD]) != 1 {
		t.Errorf("replace lost the cicd history")
	}
}

func TestEveryMutationTriggersPersist(t *testing.T) {
	var saves []*State
	persist := func(s *State) { saves = append(saves, s) }
	store := NewStore(nil, echoResponder(), persist)

	store.Append(types.Message{ID: "m1", Role: types.RoleUser, Content: "x", AgentID: types.AgentConfig})
	store.SetLoading(types.AgentConfig, true)
	store.ClearHistory(types.AgentConfig)
	store.Replace(NewState())

	if len(saves) != 4 {
		t.Fatalf("expected 4 persist calls, got %d", len(saves))
	}
	// Snapshots must be isolated from later mutations.
	saves[0].Messages[types.AgentConfig][0].Content = "mutated"
	if got := store.Messages(types.AgentConfig); len(got) != 0 {
		t.Errorf("snapshot mutation leaked into store")
	}
}

func TestSendUsesInjectedClockAndIDs(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	n := 0
	store := NewStore(nil, echoResponder(), nil,
		WithClock(func() time.Time { return fixed }),
		WithIDSource(func() string { n++; return fmt.Sprintf("msg-%d", n) }),
	)

	userMsg, done := store.Send(context.Background(), types.AgentConfig, "x")
	waitSettled(t, done)

	if userMsg.ID != "msg-1" {
		t.Errorf("expected id msg-1, got %s", userMsg.ID)
	}
	if !userMsg.Timestamp.Equal(fixed) {
		t.Errorf("expected injected timestamp, got %v", userMsg.Timestamp)
	}
	msgs := store.Messages(types.AgentConfig)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(msgs))
	}
	if !msgs[0].Timestamp.Equal(fixed) {
		t.Errorf("stored user message lost the injected timestamp: %v", msgs[0].Timestamp)
	}
}

func TestConcreteScenario(t *testing.T) {
	store := NewStore(nil, echoResponder(), nil)

	_, done := store.Send(context.Background(), types.AgentCICD, "How do I set up CI?")
	if got := len(store.Messages(types.AgentCICD)); got != 1 {
		t.Fatalf("expected 1 message immediately, got %d", got)
	}
	waitSettled(t, done)

	msgs := store.Messages(types.AgentCICD)
	if len(msgs) != 2 {
		t.Fatalf("expected 2 messages after settle, got %d", len(msgs))
	}
	if msgs[1].Role != types.RoleAgent || msgs[1].AgentID != types.AgentCICD {
		t.Errorf("unexpected reply message: role=%s agentId=%s", msgs[1].Role, msgs[1].AgentID)
	}
	if store.Loading(types.AgentCICD) {
		t.Error("expected isLoading false after settle")
	}
}
