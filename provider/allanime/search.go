// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"context"
	"fmt"

	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/source"
)

const searchQuery = `
query ($search: SearchInput, $limit: Int, $page: Int, $translationType: VaildTranslationTypeEnumType, $countryOrigin: VaildCountryOriginEnumType) {
  shows(search: $search, limit: $limit, page: $page, translationType: $translationType, countryOrigin: $countryOrigin) {
    edges {
      _id
      name
      thumbnail
      availableEpisodes
    }
  }
}`

// searchResponse defines the anticipated JSON response structure for show searches.
type searchResponse struct {
	Data struct {
		Shows struct {
			Edges []showCard `json:"edges"`
		} `json:"shows"`
	} `json:"data"`
}

// showCard is the summary record the provider returns in listings.
type showCard struct {
	ID                string `json:"_id"`
	Name              string `json:"name"`
	Thumbnail         string `json:"thumbnail"`
	AvailableEpisodes struct {
		Sub int `json:"sub"`
		Dub int `json:"dub"`
		Raw int `json:"raw"`
	} `json:"availableEpisodes"`
}

// anime maps a provider show card to the domain model.
func (c *showCard) anime() *source.Anime {
	languages := make([]source.Language, 0, 2)
	if c.AvailableEpisodes.Sub > 0 {
		languages = append(languages, source.Sub)
	}
	if c.AvailableEpisodes.Dub > 0 {
		languages = append(languages, source.Dub)
	}

	return &source.Anime{
		Name:      c.Name,
		ID:        c.ID,
		Languages: languages,
		Image:     c.Thumbnail,
	}
}

// Search executes a show search against the provider.
func (a *Allanime) Search(ctx context.Context, query string) ([]*source.Anime, error) {
	log.Debugf("searching allanime for %q", query)

	variables := map[string]any{
		"search": map[string]any{
			"query":        query,
			"allowAdult":   false,
			"allowUnknown": false,
		},
		"limit":           40,
		"page":            1,
		"translationType": "sub",
		"countryOrigin":   "ALL",
	}

	var response searchResponse
	if err := a.gql(ctx, searchQuery, variables, &response); err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}

	animes := make([]*source.Anime, 0, len(response.Data.Shows.Edges))
	for i := range response.Data.Shows.Edges {
		animes = append(animes, response.Data.Shows.Edges[i].anime())
	}

	return animes, nil
}
