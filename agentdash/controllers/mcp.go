package controllers

import (
	"context"

	"agentdash/agentdash/mcp"
	"agentdash/agentdash/types"
)

type MCPController struct {
	store *mcp.Store
}

func NewMCPController(store *mcp.Store) *MCPController {
	return &MCPController{store: store}
}

func (c *MCPController) Servers() []mcp.Server {
	return c.store.Servers()
}

func (c *MCPController) Connections() []mcp.Connection {
	return c.store.Connections()
}

func (c *MCPController) Connect(ctx context.Context, serverID string, agentID types.AgentType, config map[string]string) error {
	if !types.ValidAgentType(agentID) {
		return ErrUnknownAgent
	}
	return c.store.Connect(ctx, serverID, agentID, config)
}

func (c *MCPController) Disconnect(serverID string, agentID types.AgentType) error {
	if !types.ValidAgentType(agentID) {
		return ErrUnknownAgent
	}
	c.store.Disconnect(serverID, agentID)
	return nil
}

func (c *MCPController) ConnectedServers(agentID types.AgentType) ([]mcp.Server, error) {
	if !types.ValidAgentType(agentID) {
		return nil, ErrUnknownAgent
	}
	return c.store.ConnectedServers(agentID), nil
}

func (c *MCPController) AvailableServers(agentID types.AgentType) ([]mcp.Server, error) {
	if !types.ValidAgentType(agentID) {
		return nil, ErrUnknownAgent
	}
	return c.store.AvailableServers(agentID), nil
}
