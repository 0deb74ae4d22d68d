// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"net/http"
	"strconv"

	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/query"
	"github.com/anisan-cli/aniserve/source"
)

const (
	defaultSearchLimit = 10
	maxSearchLimit     = 50
)

// searchResponse is the envelope returned by /search.
type searchResponse struct {
	Query        string          `json:"query"`
	TotalResults int             `json:"total_results"`
	Results      []*source.Anime `json:"results"`
}

// suggestionsResponse is the envelope returned by /search/suggestions.
type suggestionsResponse struct {
	Query       string   `json:"query"`
	Suggestions []string `json:"suggestions"`
}

// Search handles GET /search.
// query is required and non-empty; limit is optional within [1,50], default 10.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		writeError(w, validationf("parameter %q is required and must be non-empty", "query"))
		return
	}

	limit := defaultSearchLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, validationf("parameter %q must be an integer, got %q", "limit", raw))
			return
		}
		if parsed < 1 || parsed > maxSearchLimit {
			writeError(w, validationf("parameter %q must be between 1 and %d, got %d", "limit", maxSearchLimit, parsed))
			return
		}
		limit = parsed
	}

	results, err := h.src.Search(r.Context(), q)
	if err != nil {
		writeError(w, fromProvider(err))
		return
	}

	// Record the query for suggestion serving; never fails the request.
	if err := query.Remember(q, 1); err != nil {
		log.Warnf("remember query %q: %v", q, err)
	}

	total := len(results)
	if len(results) > limit {
		results = results[:limit]
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:        q,
		TotalResults: total,
		Results:      results,
	})
}

// Suggestions handles GET /search/suggestions, serving recorded query history.
func (h *Handler) Suggestions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("query")
	if q == "" {
		writeError(w, validationf("parameter %q is required and must be non-empty", "query"))
		return
	}

	writeJSON(w, http.StatusOK, suggestionsResponse{
		Query:       q,
		Suggestions: query.SuggestMany(q),
	})
}
