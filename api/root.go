// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"net/http"

	"github.com/anisan-cli/aniserve/constant"
)

// rootResponse is the static API description served at /.
type rootResponse struct {
	Name      string   `json:"name"`
	Provider  string   `json:"provider"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// Root serves the static API description.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, rootResponse{
		Name:     constant.Aniserve,
		Provider: h.src.Name(),
		Version:  constant.Version,
		Endpoints: []string{
			"/health",
			"/search?query={query}&limit={limit}",
			"/search/suggestions?query={query}",
			"/popular?page={page}&limit={limit}",
			"/anime/{identifier}",
			"/anime/{identifier}/episodes?language={sub|dub}",
			"/anime/{identifier}/episode/{episode}/stream?language={sub|dub}",
		},
	})
}

// Health serves the static liveness indicator. It never touches the provider.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
