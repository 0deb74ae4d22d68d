// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/source"
)

const episodesQuery = `
query ($id: String!) {
  show(_id: $id) {
    _id
    availableEpisodesDetail
  }
}`

// episodesResponse defines the anticipated JSON response structure for episode listings.
type episodesResponse struct {
	Data struct {
		Show *struct {
			ID     string `json:"_id"`
			Detail struct {
				Sub []string `json:"sub"`
				Dub []string `json:"dub"`
			} `json:"availableEpisodesDetail"`
		} `json:"show"`
	} `json:"data"`
}

// EpisodesOf retrieves every available episode for a show across both language
// tracks, in ascending episode order.
// Returns source.ErrNotFound when the provider has no show under that id.
func (a *Allanime) EpisodesOf(ctx context.Context, id string) ([]*source.Episode, error) {
	var response episodesResponse
	if err := a.gql(ctx, episodesQuery, map[string]any{"id": id}, &response); err != nil {
		return nil, fmt.Errorf("episodes of %q: %w", id, err)
	}

	show := response.Data.Show
	if show == nil || show.ID == "" {
		return nil, fmt.Errorf("show %q: %w", id, source.ErrNotFound)
	}

	episodes := make([]*source.Episode, 0, len(show.Detail.Sub)+len(show.Detail.Dub))
	episodes = append(episodes, parseEpisodes(show.Detail.Sub, source.Sub)...)
	episodes = append(episodes, parseEpisodes(show.Detail.Dub, source.Dub)...)

	slices.SortStableFunc(episodes, func(a, b *source.Episode) int {
		if a.Number != b.Number {
			return a.Number - b.Number
		}
		// Sub entries sort before dub at equal numbers.
		if a.Language == b.Language {
			return 0
		}
		if a.Language == source.Sub {
			return -1
		}
		return 1
	})

	return episodes, nil
}

// parseEpisodes converts the provider's episode string list for one language track.
// The provider reports episode numbers as strings and occasionally lists
// fractional specials ("7.5"); those are skipped.
func parseEpisodes(raw []string, lang source.Language) []*source.Episode {
	episodes := make([]*source.Episode, 0, len(raw))
	for _, s := range raw {
		number, err := strconv.Atoi(s)
		if err != nil || number <= 0 {
			log.Debugf("skipping non-integer episode %q (%s)", s, lang)
			continue
		}
		episodes = append(episodes, &source.Episode{Number: number, Language: lang})
	}
	return episodes
}
