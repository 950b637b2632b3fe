package routes

import (
	"encoding/json"
	"net/http"

	"agentdash/agentdash/controllers"
	"agentdash/agentdash/types"
	"agentdash/agentdash/utils/logging"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ChatRoutes serves the full serialized state and the websocket chat
// endpoint.
func ChatRoutes(ctrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()

	// GET /chat/state : the same payload the persistence slot holds.
	r.Get("/state", func(w http.ResponseWriter, r *http.Request) {
		payload, err := ctrl.StatePayload()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	})

	// Websocket chat: one frame in ({agent_id, content}), two events out
	// (user message ack, settled agent message).
	r.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
		if err != nil {
			logging.ErrorLogger.Error("websocket accept error", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusInternalError, "internal error")

		ctx := r.Context()
		for {
			typ, data, err := conn.Read(ctx)
			if err != nil {
				return
			}
			if typ != websocket.MessageText {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"unsupported data"}`))
				continue
			}

			var req struct {
				AgentID string `json:"agent_id"`
				Content string `json:"content"`
			}
			if err := json.Unmarshal(data, &req); err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"invalid json"}`))
				continue
			}
			agentID := types.AgentType(req.AgentID)
			if !types.ValidAgentType(agentID) {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"unknown agent"}`))
				continue
			}

			userMsg, done, err := ctrl.SendAsync(ctx, agentID, req.Content)
			if err != nil {
				conn.Write(ctx, websocket.MessageText, []byte(`{"error":"`+err.Error()+`"}`))
				continue
			}
			ack, _ := json.Marshal(map[string]interface{}{"type": "user_message", "message": userMsg})
			if err := conn.Write(ctx, websocket.MessageText, ack); err != nil {
				return
			}
			reply := <-done
			event, _ := json.Marshal(map[string]interface{}{"type": "agent_message", "message": reply})
			if err := conn.Write(ctx, websocket.MessageText, event); err != nil {
				return
			}
		}
	})

	return r
}
