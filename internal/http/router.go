package http

import (
	nethttp "net/http"

	"github.com/gorilla/mux"
)

// NewRouter registers the API routes.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", h.Root).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/health", h.Health).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/organizations", h.Organizations).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/stats/{organization_id}", h.Stats).Methods(nethttp.MethodGet)
	r.HandleFunc("/api/token", h.UpdateToken).Methods(nethttp.MethodPost)
	return r
}
