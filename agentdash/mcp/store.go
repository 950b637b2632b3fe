// Package mcp tracks simulated MCP (external tool) server connections per
// agent. Same keyed-state shape as the chat store, with simulated
// connect/disconnect instead of message traffic.
package mcp

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"agentdash/agentdash/registry"
	"agentdash/agentdash/types"
)

type Status string

const (
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
	StatusConnecting   Status = "connecting"
	StatusError        Status = "error"
)

var ErrConnectFailed = errors.New("failed to connect to MCP server")

const connectDelay = 1500 * time.Millisecond

// Server is a catalog entry plus its runtime status and config.
type Server struct {
	registry.MCPServerSpec
	Status Status            `json:"status"`
	Config map[string]string `json:"config,omitempty"`
}

// Connection records one agent's link to one server.
type Connection struct {
	ServerID    string          `json:"serverId"`
	AgentID     types.AgentType `json:"agentId"`
	ConnectedAt time.Time       `json:"connectedAt"`
	IsActive    bool            `json:"isActive"`
}

// Store owns server statuses and connections. Mutations are atomic under
// the mutex and trigger the best-effort persist hook.
type Store struct {
	mu      sync.Mutex
	servers []Server
	conns   []Connection
	persist func(snapshot)

	rng   *rand.Rand
	sleep func(ctx context.Context, d time.Duration)
	now   func() time.Time
}

type Option func(*Store)

// WithSeed makes the simulated connect outcome deterministic.
func WithSeed(seed int64) Option {
	return func(s *Store) {
		s.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNoDelay skips the simulated connect latency (tests).
func WithNoDelay() Option {
	return func(s *Store) {
		s.sleep = func(context.Context, time.Duration) {}
	}
}

func NewStore(persist func(snapshot), opts ...Option) *Store {
	specs := registry.MCPServers()
	servers := make([]Server, len(specs))
	for i, spec := range specs {
		servers[i] = Server{MCPServerSpec: spec, Status: StatusDisconnected}
	}
	s := &Store{
		servers: servers,
		persist: persist,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
	}
	s.sleep = func(ctx context.Context, d time.Duration) {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect links agentID to serverID after a simulated handshake. One in ten
// attempts fails, leaving the server in the error status.
func (s *Store) Connect(ctx context.Context, serverID string, agentID types.AgentType, config map[string]string) error {
	if _, ok := registry.MCPServer(serverID); !ok {
		return errors.New("unknown MCP server: " + serverID)
	}

	s.mu.Lock()
	s.setStatus(serverID, StatusConnecting)
	if config != nil {
		s.setConfig(serverID, config)
	}
	s.mu.Unlock()
	s.save()

	s.sleep(ctx, connectDelay)

	s.mu.Lock()
	// Draw under the mutex; Connect runs on concurrent request goroutines
	// and *rand.Rand is not safe for concurrent use.
	success := s.rng.Float64() > 0.1
	if !success {
		s.setStatus(serverID, StatusError)
		s.mu.Unlock()
		s.save()
		return ErrConnectFailed
	}
	s.setStatus(serverID, StatusConnected)
	s.conns = append(s.conns, Connection{
		ServerID:    serverID,
		AgentID:     agentID,
		ConnectedAt: s.now(),
		IsActive:    true,
	})
	s.mu.Unlock()
	s.save()
	return nil
}

// Disconnect drops the agent's link; the server goes back to disconnected
// once no agent holds it.
func (s *Store) Disconnect(serverID string, agentID types.AgentType) {
	s.mu.Lock()
	kept := s.conns[:0]
	remaining := 0
	for _, c := range s.conns {
		if c.ServerID == serverID && c.AgentID == agentID {
			continue
		}
		kept = append(kept, c)
		if c.ServerID == serverID {
			remaining++
		}
	}
	s.conns = kept
	if remaining == 0 {
		s.setStatus(serverID, StatusDisconnected)
	}
	s.mu.Unlock()
	s.save()
}

// ConnectedServers lists servers the agent holds an active connection to.
func (s *Store) ConnectedServers(agentID types.AgentType) []Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	connected := s.connectedIDs(agentID)
	var out []Server
	for _, srv := range s.servers {
		if connected[srv.ID] {
			out = append(out, srv)
		}
	}
	return out
}

// AvailableServers lists servers the agent supports but is not connected to.
func (s *Store) AvailableServers(agentID types.AgentType) []Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	connected := s.connectedIDs(agentID)
	var out []Server
	for _, srv := range s.servers {
		if connected[srv.ID] {
			continue
		}
		for _, supported := range srv.SupportedAgents {
			if supported == agentID {
				out = append(out, srv)
				break
			}
		}
	}
	return out
}

// Servers returns a copy of the full server list with current statuses.
func (s *Store) Servers() []Server {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Server, len(s.servers))
	copy(out, s.servers)
	return out
}

// Connections returns a copy of all connections.
func (s *Store) Connections() []Connection {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Connection, len(s.conns))
	copy(out, s.conns)
	return out
}

func (s *Store) connectedIDs(agentID types.AgentType) map[string]bool {
	ids := make(map[string]bool)
	for _, c := range s.conns {
		if c.AgentID == agentID && c.IsActive {
			ids[c.ServerID] = true
		}
	}
	return ids
}

func (s *Store) setStatus(serverID string, status Status) {
	for i := range s.servers {
		if s.servers[i].ID == serverID {
			s.servers[i].Status = status
			return
		}
	}
}

func (s *Store) setConfig(serverID string, config map[string]string) {
	for i := range s.servers {
		if s.servers[i].ID == serverID {
			s.servers[i].Config = config
			return
		}
	}
}

func (s *Store) save() {
	if s.persist == nil {
		return
	}
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	s.persist(snap)
}
