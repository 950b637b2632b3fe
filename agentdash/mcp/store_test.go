package mcp

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"
)

// seedFor finds a seed whose first draw produces the wanted connect outcome,
// so the 90%-success simulation is deterministic in tests.
func seedFor(t *testing.T, success bool) int64 {
	t.Helper()
	for seed := int64(0); seed < 100000; seed++ {
		ok := rand.New(rand.NewSource(seed)).Float64() > 0.1
		if ok == success {
			return seed
		}
	}
	t.Fatal("no seed found for wanted connect outcome")
	return 0
}

func serverStatus(t *testing.T, s *Store, serverID string) Status {
	t.Helper()
	for _, srv := range s.Servers() {
		if srv.ID == serverID {
			return srv.Status
		}
	}
	t.Fatalf("server %s not in catalog", serverID)
	return ""
}

func TestConnectSuccess(t *testing.T) {
	logging.InitTestLogger()
	s := NewStore(nil, WithSeed(seedFor(t, true)), WithNoDelay())

	err := s.Connect(context.Background(), "github", types.AgentCICD, map[string]string{"token": "x"})
	if err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	if got := serverStatus(t, s, "github"); got != StatusConnected {
		t.Errorf("expected status connected, got %s", got)
	}
	conns := s.Connections()
	if len(conns) != 1 {
		t.Fatalf("expected 1 connection, got %d", len(conns))
	}
	if conns[0].ServerID != "github" || conns[0].AgentID != types.AgentCICD || !conns[0].IsActive {
		t.Errorf("unexpected connection %+v", conns[0])
	}

	connected := s.ConnectedServers(types.AgentCICD)
	if len(connected) != 1 || connected[0].ID != "github" {
		t.Errorf("ConnectedServers = %+v", connected)
	}
	for _, srv := range s.AvailableServers(types.AgentCICD) {
		if srv.ID == "github" {
			t.Error("connected server still listed as available")
		}
	}
}

func TestConnectFailure(t *testing.T) {
	logging.InitTestLogger()
	s := NewStore(nil, WithSeed(seedFor(t, false)), WithNoDelay())

	err := s.Connect(context.Background(), "aws", types.AgentCloud, nil)
	if !errors.Is(err, ErrConnectFailed) {
		t.Fatalf("expected ErrConnectFailed, got %v", err)
	}
	if got := serverStatus(t, s, "aws"); got != StatusError {
		t.Errorf("expected status error, got %s", got)
	}
	if len(s.Connections()) != 0 {
		t.Error("failed connect must not record a connection")
	}
}

func TestConnectUnknownServer(t *testing.T) {
	logging.InitTestLogger()
	s := NewStore(nil, WithNoDelay())
	if err := s.Connect(context.Background(), "nope", types.AgentCICD, nil); err == nil {
		t.Error("expected error for unknown server")
	}
}

func TestConnectConcurrentCalls(t *testing.T) {
	logging.InitTestLogger()
	s := NewStore(nil, WithNoDelay())
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				err := s.Connect(context.Background(), "github", types.AgentCICD, nil)
				if err != nil && !errors.Is(err, ErrConnectFailed) {
					t.Errorf("unexpected connect error: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDisconnectResetsStatusWhenLastAgentLeaves(t *testing.T) {
	logging.InitTestLogger()
	s := NewStore(nil, WithSeed(seedFor(t, true)), WithNoDelay())

	if err := s.Connect(context.Background(), "prometheus", types.AgentMonitoring, nil); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	s.Disconnect("prometheus", types.AgentMonitoring)

	if got := serverStatus(t, s, "prometheus"); got != StatusDisconnected {
		t.Errorf("expected status disconnected, got %s", got)
	}
	if len(s.Connections()) != 0 {
		t.Error("connection not removed")
	}
}

func TestDisconnectKeepsServerForOtherAgents(t *testing.T) {
	logging.InitTestLogger()
	seed := seedFor(t, true)
	s := NewStore(nil, WithSeed(seed), WithNoDelay())

	// Two agents connect to the same server; draws may differ, so retry the
	// second connect until it lands.
	if err := s.Connect(context.Background(), "slack", types.AgentIncident, nil); err != nil {
		t.Fatalf("first connect failed: %v", err)
	}
	for {
		err := s.Connect(context.Background(), "slack", types.AgentMonitoring, nil)
		if err == nil {
			break
		}
		if !errors.Is(err, ErrConnectFailed) {
			t.Fatalf("unexpected connect error: %v", err)
		}
	}

	s.Disconnect("slack", types.AgentIncident)
	if got := serverStatus(t, s, "slack"); got != StatusConnected {
		t.Errorf("server should stay connected while another agent holds it, got %s", got)
	}
	if len(s.Connections()) != 1 {
		t.Errorf("expected 1 remaining connection, got %d", len(s.Connections()))
	}
}

func TestAvailableServersFiltersBySupport(t *testing.T) {
	logging.InitTestLogger()
	s := NewStore(nil, WithNoDelay())
	for _, srv := range s.AvailableServers(types.AgentCICD) {
		supported := false
		for _, a := range srv.SupportedAgents {
			if a == types.AgentCICD {
				supported = true
			}
		}
		if !supported {
			t.Errorf("server %s does not support cicd", srv.ID)
		}
	}
}
