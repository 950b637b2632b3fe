package routes

import (
	"encoding/json"
	"errors"
	"net/http"

	"agentdash/agentdash/controllers"
	"agentdash/agentdash/mcp"
	"agentdash/agentdash/types"
	utiltypes "agentdash/agentdash/utils/types"

	"github.com/go-chi/chi/v5"
)

func MCPRoutes(ctrl *controllers.MCPController) chi.Router {
	r := chi.NewRouter()

	r.Get("/servers", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ctrl.Servers())
	})

	r.Get("/connections", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ctrl.Connections())
	})

	r.Post("/servers/{serverId}/connect", func(w http.ResponseWriter, r *http.Request) {
		var req utiltypes.MCPConnectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		serverID := chi.URLParam(r, "serverId")
		err := ctrl.Connect(r.Context(), serverID, types.AgentType(req.AgentID), req.Config)
		if err != nil {
			switch {
			case errors.Is(err, controllers.ErrUnknownAgent):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, mcp.ErrConnectFailed):
				http.Error(w, err.Error(), http.StatusBadGateway)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Delete("/servers/{serverId}/connections/{agentId}", func(w http.ResponseWriter, r *http.Request) {
		serverID := chi.URLParam(r, "serverId")
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		if err := ctrl.Disconnect(serverID, agentID); err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	r.Get("/agents/{agentId}/connected", func(w http.ResponseWriter, r *http.Request) {
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		servers, err := ctrl.ConnectedServers(agentID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(servers)
	})

	r.Get("/agents/{agentId}/available", func(w http.ResponseWriter, r *http.Request) {
		agentID := types.AgentType(chi.URLParam(r, "agentId"))
		servers, err := ctrl.AvailableServers(agentID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(servers)
	})

	return r
}
