package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"agentdash/agentdash/controllers"
	"agentdash/agentdash/types"
	utiltypes "agentdash/agentdash/utils/types"

	"github.com/go-chi/chi/v5"
)

// AgentRoutes serves the agent catalog and the per-agent chat operations:
// send, history, clear, loading flag.
func AgentRoutes(agentsCtrl *controllers.AgentsController, chatCtrl *controllers.ChatController) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(agentsCtrl.List())
	})

	r.Get("/{agentId}", func(w http.ResponseWriter, r *http.Request) {
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		agent, err := agentsCtrl.Get(agentID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(agent)
	})

	// POST /agents/{agentId}/chat : send message, respond with the settled
	// agent message (reply or in-band error text).
	r.Post("/{agentId}/chat", func(w http.ResponseWriter, r *http.Request) {
		var req utiltypes.SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		reply, err := chatCtrl.Send(r.Context(), agentID, req.Message)
		if err != nil {
			writeAgentErr(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(reply)
	})

	r.Get("/{agentId}/messages", func(w http.ResponseWriter, r *http.Request) {
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		msgs, err := chatCtrl.Messages(agentID)
		if err != nil {
			writeAgentErr(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(msgs)
	})

	r.Delete("/{agentId}/messages", func(w http.ResponseWriter, r *http.Request) {
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		if err := chatCtrl.ClearHistory(agentID); err != nil {
			writeAgentErr(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/{agentId}/loading", func(w http.ResponseWriter, r *http.Request) {
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		loading, err := chatCtrl.Loading(agentID)
		if err != nil {
			writeAgentErr(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]bool{"is_loading": loading})
	})

	return r
}

func writeAgentErr(w http.ResponseWriter, err error) {
	if errors.Is(err, controllers.ErrUnknownAgent) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
