// Package api implements the HTTP handlers exposing the provider client as a JSON API.
package api

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/anisan-cli/aniserve/anilist"
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/source"
	"github.com/spf13/viper"
)

const defaultPopularLimit = 20

// animeCard is one entry of a discovery listing, optionally enriched with Anilist metadata.
type animeCard struct {
	Identifier    string            `json:"identifier"`
	Name          string            `json:"name"`
	Image         string            `json:"image,omitempty"`
	Languages     []source.Language `json:"languages"`
	TotalEpisodes int               `json:"total_episodes,omitempty"`
	RatingScore   int               `json:"rating_score,omitempty"`
	AnilistURL    string            `json:"anilist_url,omitempty"`
}

// popularResponse is the envelope returned by /popular.
type popularResponse struct {
	Page    int          `json:"page"`
	HasNext bool         `json:"has_next"`
	Data    []*animeCard `json:"data"`
}

// Popular handles GET /popular.
// page defaults to 1, limit to 20 within [1,50]. Requires a provider
// implementing the Browser capability.
func (h *Handler) Popular(w http.ResponseWriter, r *http.Request) {
	browser, ok := h.src.(source.Browser)
	if !ok {
		writeError(w, notImplementedf("provider %s does not support popular listings", h.src.Name()))
		return
	}

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, validationf("parameter %q must be a positive integer, got %q", "page", raw))
			return
		}
		page = parsed
	}

	limit := defaultPopularLimit
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

	results, hasNext, err := browser.Popular(r.Context(), page, limit)
	if err != nil {
		writeError(w, fromProvider(err))
		return
	}

	cards := make([]*animeCard, len(results))
	for i, anime := range results {
		cards[i] = &animeCard{
			Identifier: anime.ID,
			Name:       anime.Name,
			Image:      anime.Image,
			Languages:  anime.Languages,
		}
	}

	if viper.GetBool(key.MetadataFetchAnilist) {
		enrichCards(r, cards)
	}

	writeJSON(w, http.StatusOK, popularResponse{
		Page:    page,
		HasNext: hasNext,
		Data:    cards,
	})
}

// enrichCards attaches Anilist metadata to each card. Lookups fan out
// concurrently and are best-effort; a failed lookup leaves the card bare.
func enrichCards(r *http.Request, cards []*animeCard) {
	var wg sync.WaitGroup
	for _, card := range cards {
		wg.Add(1)
		go func(card *animeCard) {
			defer wg.Done()

			match, err := anilist.FindClosest(r.Context(), card.Name)
			if err != nil {
				log.Debugf("anilist enrichment for %q: %v", card.Name, err)
				return
			}

			card.TotalEpisodes = match.Episodes
			card.RatingScore = match.AverageScore
			card.AnilistURL = match.SiteURL
		}(card)
	}
	wg.Wait()
}
