// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"net/http"
	"strconv"

	"github.com/anisan-cli/aniserve/source"
)

// streamResponse is the envelope returned by /anime/{identifier}/episode/{episode}/stream.
type streamResponse struct {
	Identifier string          `json:"identifier"`
	Episode    int             `json:"episode"`
	Language   source.Language `json:"language"`
	Streams    []*source.Video `json:"streams"`
}

// Stream handles GET /anime/{identifier}/episode/{episode}/stream.
// episode must be a positive integer; language is required and one of {sub, dub}.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("identifier")
	if id == "" {
		writeError(w, validationf("path parameter %q is required", "identifier"))
		return
	}

	rawEpisode := r.PathValue("episode")
	episode, err := strconv.Atoi(rawEpisode)
	if err != nil {
		writeError(w, validationf("path parameter %q must be an integer, got %q", "episode", rawEpisode))
		return
	}
	if episode <= 0 {
		writeError(w, validationf("path parameter %q must be positive, got %d", "episode", episode))
		return
	}

	rawLang := r.URL.Query().Get("language")
	if rawLang == "" {
		writeError(w, validationf("parameter %q is required", "language"))
		return
	}
	lang, err := source.ParseLanguage(rawLang)
	if err != nil {
		writeError(w, validationf("%s", err))
		return
	}

	streams, err := h.src.VideosOf(r.Context(), id, episode, lang)
	if err != nil {
		writeError(w, fromProvider(err))
		return
	}

	writeJSON(w, http.StatusOK, streamResponse{
		Identifier: id,
		Episode:    episode,
		Language:   lang,
		Streams:    streams,
	})
}
