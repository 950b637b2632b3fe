package routes

import (
	"encoding/json"
	"net/http"

	"agentdash/agentdash/controllers"
	utiltypes "agentdash/agentdash/utils/types"

	"github.com/go-chi/chi/v5"
)

func SnapshotRoutes(ctrl *controllers.SnapshotController) chi.Router {
	r := chi.NewRouter()

	r.Post("/", func(w http.ResponseWriter, r *http.Request) {
		key, err := ctrl.Create(r.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(utiltypes.SnapshotResponse{Key: key})
	})

	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := chi.URLParam(r, "*")
		payload, err := ctrl.Get(r.Context(), key)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(payload))
	})

	return r
}
