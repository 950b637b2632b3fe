package chat

import (
	"context"

	"agentdash/agentdash/utils/logging"

	"go.uber.org/zap"
)

// StateSlotKey is the storage slot holding the serialized chat state. The
// key is kept from the original dashboard so existing slots restore cleanly.
const StateSlotKey = "devops-ai-agents-chat-state"

// Slot is a single string-keyed storage cell. Backed by the gorm slot DAO in
// production and by in-memory fakes in tests.
type Slot interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key, value string) error
}

// LoadState restores the chat state from slot at startup. Any failure
// (read error, empty slot, malformed payload) falls back to a fresh empty
// state; startup never fails on bad storage.
func LoadState(ctx context.Context, slot Slot) *State {
	payload, ok, err := slot.Get(ctx, StateSlotKey)
	if err != nil || !ok {
		return NewState()
	}
	state, err := Deserialize(payload)
	if err != nil {
		logging.AppLogger.Warn("discarding stored chat state", zap.Error(err))
		return NewState()
	}
	return state
}

// Saver returns the persist hook for NewStore: serialize and write after
// every mutation. Writes are best-effort; failures are logged and otherwise
// swallowed, the in-memory state stays canonical.
func Saver(slot Slot) func(*State) {
	return func(state *State) {
		payload, err := Serialize(state)
		if err != nil {
			logging.ErrorLogger.Error("chat state serialize failed", zap.Error(err))
			return
		}
		if err := slot.Put(context.Background(), StateSlotKey, payload); err != nil {
			logging.AppLogger.Warn("chat state write failed", zap.Error(err))
		}
	}
}
