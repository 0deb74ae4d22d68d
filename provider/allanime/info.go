// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"context"
	"fmt"
	"strings"

	"github.com/anisan-cli/aniserve/source"
)

const infoQuery = `
query ($id: String!) {
  show(_id: $id) {
    _id
    name
    thumbnail
    description
    genres
    status
    altNames
    airedStart
  }
}`

// infoResponse defines the anticipated JSON response structure for show lookups.
type infoResponse struct {
	Data struct {
		Show *struct {
			ID          string   `json:"_id"`
			Name        string   `json:"name"`
			Thumbnail   string   `json:"thumbnail"`
			Description string   `json:"description"`
			Genres      []string `json:"genres"`
			Status      string   `json:"status"`
			AltNames    []string `json:"altNames"`
			AiredStart  struct {
				Year int `json:"year"`
			} `json:"airedStart"`
		} `json:"show"`
	} `json:"data"`
}

// InfoOf retrieves descriptive metadata for a specific show identifier.
// Returns source.ErrNotFound when the provider has no show under that id.
func (a *Allanime) InfoOf(ctx context.Context, id string) (*source.Info, error) {
	var response infoResponse
	if err := a.gql(ctx, infoQuery, map[string]any{"id": id}, &response); err != nil {
		return nil, fmt.Errorf("info of %q: %w", id, err)
	}

	show := response.Data.Show
	if show == nil || show.ID == "" {
		return nil, fmt.Errorf("show %q: %w", id, source.ErrNotFound)
	}

	return &source.Info{
		ID:               show.ID,
		Name:             show.Name,
		Image:            show.Thumbnail,
		Genres:           show.Genres,
		Synopsis:         stripTags(show.Description),
		ReleaseYear:      show.AiredStart.Year,
		Status:           show.Status,
		AlternativeNames: show.AltNames,
	}, nil
}

// stripTags removes the lightweight HTML markup the provider embeds in descriptions.
func stripTags(s string) string {
	s = strings.ReplaceAll(s, "<br>", "\n")
	s = strings.ReplaceAll(s, "<br/>", "\n")
	s = strings.ReplaceAll(s, "<br />", "\n")

	var b strings.Builder
	inTag := false
	for _, r := range s {
		switch {
		case r == '<':
			inTag = true
		case r == '>':
			inTag = false
		case !inTag:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
