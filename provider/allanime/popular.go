// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"context"
	"fmt"

	"github.com/anisan-cli/aniserve/source"
)

const popularQuery = `
query ($type: VaildPopularTypeEnumType!, $size: Int!, $page: Int) {
  queryPopular(type: $type, size: $size, page: $page) {
    recommendations {
      anyCard {
        _id
        name
        englishName
        thumbnail
      }
    }
  }
}`

// popularResponse defines the anticipated JSON response structure for popularity listings.
type popularResponse struct {
	Data struct {
		QueryPopular struct {
			Recommendations []struct {
				AnyCard *struct {
					ID          string `json:"_id"`
					Name        string `json:"name"`
					EnglishName string `json:"englishName"`
					Thumbnail   string `json:"thumbnail"`
				} `json:"anyCard"`
			} `json:"recommendations"`
		} `json:"queryPopular"`
	} `json:"data"`
}

// Popular returns one page of trending shows. The provider does not report
// language tracks in this listing, so entries carry no languages.
func (a *Allanime) Popular(ctx context.Context, page, perPage int) ([]*source.Anime, bool, error) {
	variables := map[string]any{
		"type": "anime",
		"size": perPage,
		"page": page,
	}

	var response popularResponse
	if err := a.gql(ctx, popularQuery, variables, &response); err != nil {
		return nil, false, fmt.Errorf("popular page %d: %w", page, err)
	}

	recommendations := response.Data.QueryPopular.Recommendations
	animes := make([]*source.Anime, 0, len(recommendations))
	for _, rec := range recommendations {
		card := rec.AnyCard
		if card == nil || card.ID == "" {
			continue
		}

		name := card.EnglishName
		if name == "" {
			name = card.Name
		}

		animes = append(animes, &source.Anime{
			Name:      name,
			ID:        card.ID,
			Languages: []source.Language{},
			Image:     card.Thumbnail,
		})
	}

	// The provider exposes no page count; a full page implies more may follow.
	hasNext := len(animes) == perPage
	return animes, hasNext, nil
}
