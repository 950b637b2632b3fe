package mcp

import (
	"context"
	"encoding/json"
	"time"

	"agentdash/agentdash/chat"
	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"

	"go.uber.org/zap"
)

// ConnectionSlotKey is the storage slot for MCP connections and per-server
// configs. Kept from the original dashboard.
const ConnectionSlotKey = "devops-ai-agents-mcp-connections"

type serializedConnection struct {
	ServerID    string `json:"serverId"`
	AgentID     string `json:"agentId"`
	ConnectedAt string `json:"connectedAt"`
	IsActive    bool   `json:"isActive"`
}

type snapshot struct {
	Connections   []serializedConnection       `json:"connections"`
	ServerConfigs map[string]map[string]string `json:"serverConfigs,omitempty"`
}

func (s *Store) snapshotLocked() snapshot {
	snap := snapshot{
		Connections:   make([]serializedConnection, 0, len(s.conns)),
		ServerConfigs: make(map[string]map[string]string),
	}
	for _, c := range s.conns {
		snap.Connections = append(snap.Connections, serializedConnection{
			ServerID:    c.ServerID,
			AgentID:     string(c.AgentID),
			ConnectedAt: c.ConnectedAt.UTC().Format(time.RFC3339Nano),
			IsActive:    c.IsActive,
		})
	}
	for _, srv := range s.servers {
		if len(srv.Config) > 0 {
			snap.ServerConfigs[srv.ID] = srv.Config
		}
	}
	return snap
}

// Restore loads connections and configs from slot and reconciles server
// statuses. Bad or absent payloads leave the store in its fresh state.
func (s *Store) Restore(ctx context.Context, slot chat.Slot) {
	payload, ok, err := slot.Get(ctx, ConnectionSlotKey)
	if err != nil || !ok {
		return
	}
	var snap snapshot
	if err := json.Unmarshal([]byte(payload), &snap); err != nil {
		logging.AppLogger.Warn("discarding stored MCP state", zap.Error(err))
		return
	}

	s.mu.Lock()
	s.conns = s.conns[:0]
	for _, sc := range snap.Connections {
		connectedAt, perr := time.Parse(time.RFC3339, sc.ConnectedAt)
		if perr != nil {
			connectedAt = time.Time{}
		}
		s.conns = append(s.conns, Connection{
			ServerID:    sc.ServerID,
			AgentID:     types.AgentType(sc.AgentID),
			ConnectedAt: connectedAt,
			IsActive:    sc.IsActive,
		})
	}
	for i := range s.servers {
		srv := &s.servers[i]
		if cfg, ok := snap.ServerConfigs[srv.ID]; ok {
			srv.Config = cfg
		}
		srv.Status = StatusDisconnected
		for _, c := range s.conns {
			if c.ServerID == srv.ID && c.IsActive {
				srv.Status = StatusConnected
				break
			}
		}
	}
	s.mu.Unlock()
}

// Saver returns the persist hook for NewStore: marshal and write after every
// mutation, best-effort.
func Saver(slot chat.Slot) func(snapshot) {
	return func(snap snapshot) {
		data, err := json.Marshal(snap)
		if err != nil {
			logging.ErrorLogger.Error("MCP state serialize failed", zap.Error(err))
			return
		}
		if err := slot.Put(context.Background(), ConnectionSlotKey, string(data)); err != nil {
			logging.AppLogger.Warn("MCP state write failed", zap.Error(err))
		}
	}
}
