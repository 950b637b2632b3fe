package types

// Request/response shapes for the HTTP surface.

type SendMessageRequest struct {
	Message string `json:"message"`
}

type MCPConnectRequest struct {
	AgentID string            `json:"agent_id"`
	Config  map[string]string `json:"config,omitempty"`
}

type SnapshotResponse struct {
	Key string `json:"key"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
