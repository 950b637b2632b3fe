package chat

import (
	"encoding/json"
	"errors"
	"time"

	"agentdash/agentdash/types"
)

// ErrMalformedState marks stored payloads that cannot be restored at all:
// invalid JSON or a missing top-level messages/isLoading field.
var ErrMalformedState = errors.New("malformed chat state payload")

// Millisecond-precision ISO-8601, matching what the dashboard wrote to
// session storage.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

type serializedMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	AgentID   string `json:"agentId"`
}

type serializedState struct {
	Messages  map[string][]serializedMessage `json:"messages"`
	IsLoading map[string]bool                `json:"isLoading"`
}

// Serialize renders the state as the storage payload. Every agent key is
// present in both maps even when its history is empty.
func Serialize(state *State) (string, error) {
	out := serializedState{
		Messages:  make(map[string][]serializedMessage, len(types.AllAgentTypes())),
		IsLoading: make(map[string]bool, len(types.AllAgentTypes())),
	}
	for _, agent := range types.AllAgentTypes() {
		msgs := state.Messages[agent]
		serialized := make([]serializedMessage, 0, len(msgs))
		for _, msg := range msgs {
			serialized = append(serialized, serializedMessage{
				ID:        msg.ID,
				Role:      string(msg.Role),
				Content:   msg.Content,
				Timestamp: msg.Timestamp.UTC().Format(timestampLayout),
				AgentID:   string(msg.AgentID),
			})
		}
		out.Messages[string(agent)] = serialized
		out.IsLoading[string(agent)] = state.IsLoading[agent]
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Deserialize parses a storage payload back into a State. It returns
// ErrMalformedState when the payload is unusable as a whole; per-agent
// damage degrades gracefully instead: a missing or non-array entry becomes
// an empty history, and an unparseable timestamp becomes the zero time.
// Every agent key is present in the result either way.
func Deserialize(payload string) (*State, error) {
	// Raw messages so one broken agent entry doesn't sink the others.
	var parsed struct {
		Messages  map[string]json.RawMessage `json:"messages"`
		IsLoading map[string]bool            `json:"isLoading"`
	}
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, ErrMalformedState
	}
	if parsed.Messages == nil || parsed.IsLoading == nil {
		return nil, ErrMalformedState
	}

	state := &State{
		Messages:  make(map[types.AgentType][]types.Message),
		IsLoading: make(map[types.AgentType]bool),
	}
	for _, agent := range types.AllAgentTypes() {
		state.Messages[agent] = decodeAgentMessages(parsed.Messages[string(agent)])
		state.IsLoading[agent] = parsed.IsLoading[string(agent)]
	}
	return state, nil
}

func decodeAgentMessages(raw json.RawMessage) []types.Message {
	if raw == nil {
		return []types.Message{}
	}
	var serialized []serializedMessage
	if err := json.Unmarshal(raw, &serialized); err != nil {
		return []types.Message{}
	}
	msgs := make([]types.Message, 0, len(serialized))
	for _, sm := range serialized {
		ts, err := time.Parse(time.RFC3339, sm.Timestamp)
		if err != nil {
			ts = time.Time{}
		}
		msgs = append(msgs, types.Message{
			ID:        sm.ID,
			Role:      types.Role(sm.Role),
			Content:   sm.Content,
			Timestamp: ts,
			AgentID:   types.AgentType(sm.AgentID),
		})
	}
	return msgs
}
