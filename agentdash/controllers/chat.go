package controllers

import (
	"context"

	"agentdash/agentdash/chat"
	"agentdash/agentdash/types"
)

// ChatController is the HTTP-facing surface over the chat store. It exposes
// exactly what the presentation layer may depend on: per-agent messages and
// loading flag, send, and clear.
type ChatController struct {
	store *chat.Store
}

func NewChatController(store *chat.Store) *ChatController {
	return &ChatController{store: store}
}

// Send records the user message and blocks until the reply settles. The
// returned message is either the agent's reply or the in-band error message;
// Send itself fails only for an unknown agent id.
func (c *ChatController) Send(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
	if !types.ValidAgentType(agentID) {
		return types.Message{}, ErrUnknownAgent
	}
	_, done := c.store.Send(ctx, agentID, content)
	return <-done, nil
}

// SendAsync records the user message and returns it together with the
// channel delivering the settled agent message. The websocket surface uses
// it to emit the user ack before the reply lands.
func (c *ChatController) SendAsync(ctx context.Context, agentID types.AgentType, content string) (types.Message, <-chan types.Message, error) {
	if !types.ValidAgentType(agentID) {
		return types.Message{}, nil, ErrUnknownAgent
	}
	userMsg, done := c.store.Send(ctx, agentID, content)
	return userMsg, done, nil
}

func (c *ChatController) Messages(agentID types.AgentType) ([]types.Message, error) {
	if !types.ValidAgentType(agentID) {
		return nil, ErrUnknownAgent
	}
	return c.store.Messages(agentID), nil
}

func (c *ChatController) Loading(agentID types.AgentType) (bool, error) {
	if !types.ValidAgentType(agentID) {
		return false, ErrUnknownAgent
	}
	return c.store.Loading(agentID), nil
}

func (c *ChatController) ClearHistory(agentID types.AgentType) error {
	if !types.ValidAgentType(agentID) {
		return ErrUnknownAgent
	}
	c.store.ClearHistory(agentID)
	return nil
}

// StatePayload returns the serialized full state, the same payload the
// persistence slot holds.
func (c *ChatController) StatePayload() (string, error) {
	return chat.Serialize(c.store.Snapshot())
}
