package responder

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"agentdash/agentdash/registry"
	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"

	"github.com/google/uuid"
)

const (
	minMockDelay = 300 * time.Millisecond
	maxMockDelay = 1500 * time.Millisecond
	echoLimit    = 50
)

// Mock is the templated response simulator. It is a pure function of its
// inputs plus the injected randomness and clock: no I/O, no shared state
// beyond the rng.
type Mock struct {
	// rngMu guards rng; Respond runs on concurrent request goroutines and
	// *rand.Rand is not safe for concurrent use.
	rngMu    sync.Mutex
	rng      *rand.Rand
	sleep    func(ctx context.Context, d time.Duration)
	now      func() time.Time
	newID    func() string
	minDelay time.Duration
	maxDelay time.Duration
}

type MockOption func(*Mock)

// WithSeed makes template selection and delay choice deterministic.
func WithSeed(seed int64) MockOption {
	return func(m *Mock) {
		m.rng = rand.New(rand.NewSource(seed))
	}
}

// WithDelayBounds overrides the simulated latency range. Tests pass (0, 0)
// to settle immediately.
func WithDelayBounds(min, max time.Duration) MockOption {
	return func(m *Mock) {
		m.minDelay = min
		m.maxDelay = max
	}
}

// WithClock overrides message timestamps.
func WithClock(now func() time.Time) MockOption {
	return func(m *Mock) {
		m.now = now
	}
}

func NewMock(opts ...MockOption) *Mock {
	m := &Mock{
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		newID:    uuid.NewString,
		minDelay: minMockDelay,
		maxDelay: maxMockDelay,
	}
	m.sleep = func(ctx context.Context, d time.Duration) {
		if d <= 0 {
			return
		}
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
		}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mock) Respond(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
	defer logging.LogDuration(ctx, "mock_respond")()

	if strings.TrimSpace(content) == "" {
		return types.Message{}, &ValidationError{Reason: "message content cannot be empty"}
	}

	// Hold the caller in its loading state for the simulated latency.
	m.sleep(ctx, m.pickDelay())

	templates := mockResponseTemplates[agentID]
	if len(templates) == 0 {
		return types.Message{}, &TransportError{Reason: fmt.Sprintf("no response templates for agent %q", agentID)}
	}
	template := templates[m.randIntn(len(templates))]

	prefix := fmt.Sprintf(
		"Based on your question about %q, here's my recommendation as your %s:\n\n",
		truncateEcho(content), registry.DisplayName(agentID),
	)

	return types.Message{
		ID:        m.newID(),
		Role:      types.RoleAgent,
		Content:   prefix + template,
		Timestamp: m.now(),
		AgentID:   agentID,
	}, nil
}

func (m *Mock) pickDelay() time.Duration {
	if m.maxDelay <= m.minDelay {
		return m.minDelay
	}
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return m.minDelay + time.Duration(m.rng.Int63n(int64(m.maxDelay-m.minDelay)+1))
}

func (m *Mock) randIntn(n int) int {
	m.rngMu.Lock()
	defer m.rngMu.Unlock()
	return m.rng.Intn(n)
}

func truncateEcho(s string) string {
	runes := []rune(s)
	if len(runes) <= echoLimit {
		return s
	}
	return string(runes[:echoLimit]) + "..."
}
