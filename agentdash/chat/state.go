// Package chat owns the canonical per-agent chat state: one message history
// and one loading flag per agent, with serialization to the storage slot.
package chat

import "agentdash/agentdash/types"

// State holds every agent's message history and loading flag. Both maps
// always carry an entry for every agent in the closed enumeration; lists may
// be empty but keys are never missing.
type State struct {
	Messages  map[types.AgentType][]types.Message
	IsLoading map[types.AgentType]bool
}

// NewState returns a fresh state with all agent keys present and empty.
func NewState() *State {
	s := &State{
		Messages:  make(map[types.AgentType][]types.Message),
		IsLoading: make(map[types.AgentType]bool),
	}
	for _, agent := range types.AllAgentTypes() {
		s.Messages[agent] = []types.Message{}
		s.IsLoading[agent] = false
	}
	return s
}

// Clone deep-copies the state so snapshots stay valid while the store keeps
// mutating.
func (s *State) Clone() *State {
	c := &State{
		Messages:  make(map[types.AgentType][]types.Message, len(s.Messages)),
		IsLoading: make(map[types.AgentType]bool, len(s.IsLoading)),
	}
	for agent, msgs := range s.Messages {
		copied := make([]types.Message, len(msgs))
		copy(copied, msgs)
		c.Messages[agent] = copied
	}
	for agent, loading := range s.IsLoading {
		c.IsLoading[agent] = loading
	}
	return c
}

// normalize fills in any missing agent keys. Replace and Deserialize funnel
// through it so the all-keys-present invariant survives arbitrary input.
func (s *State) normalize() {
	if s.Messages == nil {
		s.Messages = make(map[types.AgentType][]types.Message)
	}
	if s.IsLoading == nil {
		s.IsLoading = make(map[types.AgentType]bool)
	}
	for _, agent := range types.AllAgentTypes() {
		if s.Messages[agent] == nil {
			s.Messages[agent] = []types.Message{}
		}
		if _, ok := s.IsLoading[agent]; !ok {
			s.IsLoading[agent] = false
		}
	}
}
