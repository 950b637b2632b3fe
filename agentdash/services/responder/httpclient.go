package responder

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"agentdash/agentdash/config"
	"agentdash/agentdash/types"
	httputils "agentdash/agentdash/utils/http"
	"agentdash/agentdash/utils/logging"

	"github.com/google/uuid"
)

// HTTPResponder is the non-mock path: it forwards the user message to a real
// agent backend and maps every failure to a TransportError.
type HTTPResponder struct {
	baseURL string
	client  *http.Client
	now     func() time.Time
}

func NewHTTPResponder(cfg config.AgentAPIConfig) *HTTPResponder {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPResponder{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

type chatAPIResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

func (h *HTTPResponder) Respond(ctx context.Context, agentID types.AgentType, content string) (types.Message, error) {
	defer logging.LogDuration(ctx, "http_respond")()

	if strings.TrimSpace(content) == "" {
		return types.Message{}, &ValidationError{Reason: "message content cannot be empty"}
	}

	url := fmt.Sprintf("%s/agents/%s/chat", h.baseURL, agentID)
	var resp chatAPIResponse
	err := httputils.PostJSON(ctx, h.client, url, map[string]string{"message": content}, &resp)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return types.Message{}, &TransportError{Reason: "request timed out"}
		}
		return types.Message{}, &TransportError{Reason: "failed to communicate with agent", Err: err}
	}

	body := resp.Content
	if body == "" {
		body = resp.Message
	}
	if body == "" {
		return types.Message{}, &TransportError{Reason: "agent response has no content"}
	}

	id := resp.ID
	if id == "" {
		id = uuid.NewString()
	}
	ts := h.now()
	if resp.Timestamp != "" {
		if parsed, perr := time.Parse(time.RFC3339, resp.Timestamp); perr == nil {
			ts = parsed
		}
	}

	return types.Message{
		ID:        id,
		Role:      types.RoleAgent,
		Content:   body,
		Timestamp: ts,
		AgentID:   agentID,
	}, nil
}
