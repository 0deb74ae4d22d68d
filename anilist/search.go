// Package anilist provides a client for the Anilist GraphQL API.
package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/network"
	"github.com/samber/lo"
)

const apiURL = "https://graphql.anilist.co"

// searchByNameQuery requests the enrichment subset for up to one page of matches.
const searchByNameQuery = `
query ($query: String) {
  page: Page(page: 1, perPage: 10) {
    media(search: $query, type: ANIME) {
      id
      title {
        romaji
        english
        native
      }
      episodes
      averageScore
      siteUrl
      status
      genres
    }
  }
}`

// searchByNameResponse defines the anticipated JSON response structure for anime-by-name searches.
type searchByNameResponse struct {
	Data struct {
		Page struct {
			Media []*Anime `json:"media"`
		} `json:"page"`
	} `json:"data"`
}

// SearchByName returns a list of animes that match the given name.
func SearchByName(ctx context.Context, name string) ([]*Anime, error) {
	name = normalizedName(name)

	if _, failed := failCacher.Get(name).Get(); failed {
		return nil, fmt.Errorf("failed to search for %s", name)
	}

	if ids, ok := searchCacher.Get(name).Get(); ok {
		animes := lo.FilterMap(ids, func(item, _ int) (*Anime, bool) {
			return idCacher.Get(item).Get()
		})

		if len(animes) == 0 {
			_ = searchCacher.Delete(name)
			return SearchByName(ctx, name)
		}

		return animes, nil
	}

	// Prepare the request body for the GraphQL query.
	log.Debugf("searching anilist for anime %s", name)
	body := map[string]any{
		"query": searchByNameQuery,
		"variables": map[string]any{
			"query": name,
		},
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		log.Error(err)
		return nil, err
	}

	// Dispatch the GraphQL request to the Anilist API.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error(err)
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Error(err)
		_ = failCacher.Set(name, true)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Error("Anilist returned status code " + strconv.Itoa(resp.StatusCode))
		_ = failCacher.Set(name, true)
		return nil, fmt.Errorf("invalid response code %d", resp.StatusCode)
	}

	// Decode the JSON response into the response structure.
	var response searchByNameResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		log.Error(err)
		return nil, err
	}

	animes := response.Data.Page.Media

	ids := make([]int, 0, len(animes))
	for _, anime := range animes {
		ids = append(ids, anime.ID)
		_ = idCacher.Set(anime.ID, anime)
	}
	_ = searchCacher.Set(name, ids)

	return animes, nil
}
