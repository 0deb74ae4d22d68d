// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"net/http"

	"github.com/anisan-cli/aniserve/source"
)

// episodesResponse is the envelope returned by /anime/{identifier}/episodes.
type episodesResponse struct {
	Identifier string            `json:"identifier"`
	Episodes   []*source.Episode `json:"episodes"`
}

// Info handles GET /anime/{identifier}.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("identifier")
	if id == "" {
		writeError(w, validationf("path parameter %q is required", "identifier"))
		return
	}

	info, err := h.src.InfoOf(r.Context(), id)
	if err != nil {
		writeError(w, fromProvider(err))
		return
	}

	writeJSON(w, http.StatusOK, info)
}

// Episodes handles GET /anime/{identifier}/episodes.
// language is an optional filter over {sub, dub}; matching is literal.
// Ordering is passed through from the provider client untouched.
func (h *Handler) Episodes(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("identifier")
	if id == "" {
		writeError(w, validationf("path parameter %q is required", "identifier"))
		return
	}

	var filter source.Language
	if raw := r.URL.Query().Get("language"); raw != "" {
		lang, err := source.ParseLanguage(raw)
		if err != nil {
			writeError(w, validationf("%s", err))
			return
		}
		filter = lang
	}

	episodes, err := h.src.EpisodesOf(r.Context(), id)
	if err != nil {
		writeError(w, fromProvider(err))
		return
	}

	if filter != "" {
		filtered := make([]*source.Episode, 0, len(episodes))
		for _, ep := range episodes {
			if ep.Language == filter {
				filtered = append(filtered, ep)
			}
		}
		episodes = filtered
	}

	writeJSON(w, http.StatusOK, episodesResponse{
		Identifier: id,
		Episodes:   episodes,
	})
}
