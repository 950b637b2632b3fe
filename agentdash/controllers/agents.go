package controllers

import (
	"errors"

	"agentdash/agentdash/registry"
	"agentdash/agentdash/types"
)

var ErrUnknownAgent = errors.New("unknown agent")

type AgentsController struct{}

func NewAgentsController() *AgentsController {
	return &AgentsController{}
}

func (c *AgentsController) List() []registry.Agent {
	return registry.All()
}

func (c *AgentsController) Get(id types.AgentType) (registry.Agent, error) {
	agent, ok := registry.Get(id)
	if !ok {
		return registry.Agent{}, ErrUnknownAgent
	}
	return agent, nil
}
