package chat

import (
	"context"
	"fmt"
	"sync"
	"time"

	"agentdash/agentdash/types"

	"github.com/google/uuid"
)

// Responder produces one agent reply per user message. Satisfied by the
// responder service; tests substitute their own.
type Responder interface {
	Respond(ctx context.Context, agentID types.AgentType, content string) (types.Message, error)
}

// Store owns the session's State and is the only sanctioned way to mutate
// it. Each operation is atomic under the store mutex, and every mutation
// triggers the best-effort persist hook.
type Store struct {
	mu        sync.Mutex
	state     *State
	responder Responder
	persist   func(*State)
	now       func() time.Time
	newID     func() string
}

type StoreOption func(*Store)

// WithClock overrides message timestamps.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDSource overrides message id generation.
func WithIDSource(newID func() string) StoreOption {
	return func(s *Store) {
		s.newID = newID
	}
}

// NewStore builds a store around initial (a fresh state when nil). persist
// may be nil; when set it receives a snapshot after every mutation and its
// failures are its own problem, the store never checks.
func NewStore(initial *State, r Responder, persist func(*State), opts ...StoreOption) *Store {
	if initial == nil {
		initial = NewState()
	}
	initial.normalize()
	s := &Store{
		state:     initial,
		responder: r,
		persist:   persist,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append inserts msg at the end of its agent's history.
func (s *Store) Append(msg types.Message) {
	s.mu.Lock()
	s.state.Messages[msg.AgentID] = append(s.state.Messages[msg.AgentID], msg)
	snap := s.state.Clone()
	s.mu.Unlock()
	s.save(snap)
}

// SetLoading replaces the agent's loading flag.
func (s *Store) SetLoading(agentID types.AgentType, loading bool) {
	s.mu.Lock()
	s.state.IsLoading[agentID] = loading
	snap := s.state.Clone()
	s.mu.Unlock()
	s.save(snap)
}

// ClearHistory empties the agent's message list. Other agents' histories and
// the loading flags are untouched.
func (s *Store) ClearHistory(agentID types.AgentType) {
	s.mu.Lock()
	s.state.Messages[agentID] = []types.Message{}
	snap := s.state.Clone()
	s.mu.Unlock()
	s.save(snap)
}

// Replace swaps in newState wholesale. Used by the restore-from-storage path
// at startup.
func (s *Store) Replace(newState *State) {
	if newState == nil {
		return
	}
	newState.normalize()
	s.mu.Lock()
	s.state = newState
	snap := s.state.Clone()
	s.mu.Unlock()
	s.save(snap)
}

// Messages returns a copy of the agent's history in append order.
func (s *Store) Messages(agentID types.AgentType) []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.state.Messages[agentID]
	out := make([]types.Message, len(msgs))
	copy(out, msgs)
	return out
}

// Loading returns the agent's current loading flag.
func (s *Store) Loading(agentID types.AgentType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsLoading[agentID]
}

// Snapshot returns a deep copy of the full state.
func (s *Store) Snapshot() *State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Send records the user message and flips the agent's loading flag, then
// returns the recorded user message and a channel that delivers the settled
// agent message (reply or in-band error text) and then closes. Failures
// never escape: validation and transport errors surface as chat content, and
// the loading flag is cleared on every path.
//
// Concurrent sends for the same agent append their user messages in call
// order, but the two replies may land in either order. That matches the
// dashboard's behavior and is left as is.
func (s *Store) Send(ctx context.Context, agentID types.AgentType, content string) (types.Message, <-chan types.Message) {
	userMsg := types.Message{
		ID:        s.newID(),
		Role:      types.RoleUser,
		Content:   content,
		Timestamp: s.now(),
		AgentID:   agentID,
	}
	s.Append(userMsg)
	s.SetLoading(agentID, true)

	done := make(chan types.Message, 1)
	go func() {
		defer close(done)
		defer s.SetLoading(agentID, false)

		reply, err := s.responder.Respond(ctx, agentID, content)
		if err != nil {
			reply = types.Message{
				ID:        s.newID(),
				Role:      types.RoleAgent,
				Content:   fmt.Sprintf("Error: %s", errorText(err)),
				Timestamp: s.now(),
				AgentID:   agentID,
			}
		}
		s.Append(reply)
		done <- reply
	}()
	return userMsg, done
}

func errorText(err error) string {
	if err == nil || err.Error() == "" {
		return "Failed to get response from agent. Please try again."
	}
	return err.Error()
}

func (s *Store) save(snap *State) {
	if s.persist != nil {
		s.persist(snap)
	}
}
