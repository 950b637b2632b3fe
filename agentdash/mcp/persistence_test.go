package mcp

import (
	"context"
	"testing"

	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"
)

type memSlot struct {
	values map[string]string
}

func newMemSlot() *memSlot {
	return &memSlot{values: make(map[string]string)}
}

func (s *memSlot) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memSlot) Put(ctx context.Context, key, value string) error {
	s.values[key] = value
	return nil
}

func TestSaverRestoreRoundTrip(t *testing.T) {
	logging.InitTestLogger()
	slot := newMemSlot()

	s := NewStore(Saver(slot), WithSeed(seedFor(t, true)), WithNoDelay())
	if err := s.Connect(context.Background(), "vault", types.AgentSecurity, map[string]string{"addr": "https://vault:8200"}); err != nil {
		t.Fatalf("connect failed: %v", err)
	}

	restored := NewStore(nil, WithNoDelay())
	restored.Restore(context.Background(), slot)

	conns := restored.Connections()
	if len(conns) != 1 {
		t.Fatalf("expected 1 restored connection, got %d", len(conns))
	}
	if conns[0].ServerID != "vault" || conns[0].AgentID != types.AgentSecurity {
		t.Errorf("unexpected restored connection %+v", conns[0])
	}
	if conns[0].ConnectedAt.IsZero() {
		t.Error("connectedAt not restored")
	}
	if got := serverStatus(t, restored, "vault"); got != StatusConnected {
		t.Errorf("status not reconciled, got %s", got)
	}
	found := false
	for _, srv := range restored.Servers() {
		if srv.ID == "vault" && srv.Config["addr"] == "https://vault:8200" {
			found = true
		}
	}
	if !found {
		t.Error("server config not restored")
	}
}

func TestRestoreIgnoresBadPayload(t *testing.T) {
	logging.InitTestLogger()
	slot := newMemSlot()
	slot.values[ConnectionSlotKey] = "not json"

	s := NewStore(nil, WithNoDelay())
	s.Restore(context.Background(), slot)
	if len(s.Connections()) != 0 {
		t.Error("bad payload should leave the store fresh")
	}
	for _, srv := range s.Servers() {
		if srv.Status != StatusDisconnected {
			t.Errorf("server %s status changed by bad payload", srv.ID)
		}
	}
}
