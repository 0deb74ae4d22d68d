// Package allanime implements the AllAnime provider client over its GraphQL API.
package allanime

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anisan-cli/aniserve/log"
	"github.com/anisan-cli/aniserve/source"
)

const videosQuery = `
query ($showId: String!, $translationType: VaildTranslationTypeEnumType!, $episodeString: String!) {
  episode(showId: $showId, translationType: $translationType, episodeString: $episodeString) {
    episodeString
    sourceUrls
  }
}`

// videosResponse defines the anticipated JSON response structure for episode source lookups.
type videosResponse struct {
	Data struct {
		Episode *struct {
			EpisodeString string `json:"episodeString"`
			SourceUrls    []struct {
				SourceURL  string  `json:"sourceUrl"`
				SourceName string  `json:"sourceName"`
				Priority   float64 `json:"priority"`
			} `json:"sourceUrls"`
		} `json:"episode"`
	} `json:"data"`
}

// linksResponse is the shape of the provider's internal link resolution endpoint.
type linksResponse struct {
	Links []struct {
		Link          string `json:"link"`
		ResolutionStr string `json:"resolutionStr"`
		HLS           bool   `json:"hls"`
		MP4           bool   `json:"mp4"`
	} `json:"links"`
}

// VideosOf retrieves the available streams for one episode and language track.
// Returns source.ErrNotFound when the episode does not exist for that show/language combination.
func (a *Allanime) VideosOf(ctx context.Context, id string, episode int, lang source.Language) ([]*source.Video, error) {
	variables := map[string]any{
		"showId":          id,
		"translationType": lang.String(),
		"episodeString":   strconv.Itoa(episode),
	}

	var response videosResponse
	if err := a.gql(ctx, videosQuery, variables, &response); err != nil {
		return nil, fmt.Errorf("videos of %q episode %d: %w", id, episode, err)
	}

	ep := response.Data.Episode
	if ep == nil || len(ep.SourceUrls) == 0 {
		return nil, fmt.Errorf("episode %d (%s) of %q: %w", episode, lang, id, source.ErrNotFound)
	}

	var videos []*source.Video
	for _, src := range ep.SourceUrls {
		decoded, err := decodeSourceURL(src.SourceURL)
		if err != nil {
			log.Warnf("skipping undecodable source %q: %v", src.SourceName, err)
			continue
		}

		switch {
		case strings.HasPrefix(decoded, "/apivtwo/clock"):
			resolved, err := a.resolveInternal(ctx, decoded, lang)
			if err != nil {
				log.Warnf("resolving internal source %q failed: %v", src.SourceName, err)
				continue
			}
			videos = append(videos, resolved...)
		case strings.HasPrefix(decoded, "http"):
			// External embed hosts are passed through as-is with the source
			// name standing in for a resolution label.
			videos = append(videos, &source.Video{
				URL:      decoded,
				Quality:  src.SourceName,
				Language: lang,
				Referer:  referer,
			})
		}
	}

	if len(videos) == 0 {
		return nil, fmt.Errorf("no playable sources for episode %d (%s) of %q", episode, lang, id)
	}

	return videos, nil
}

// resolveInternal expands one of the provider's internal source paths into
// direct stream links via the clock.json endpoint.
func (a *Allanime) resolveInternal(ctx context.Context, path string, lang source.Language) ([]*source.Video, error) {
	url := a.base + strings.Replace(path, "/clock?", "/clock.json?", 1)

	var links linksResponse
	if err := a.get(ctx, url, &links); err != nil {
		return nil, err
	}

	videos := make([]*source.Video, 0, len(links.Links))
	for _, link := range links.Links {
		if link.Link == "" {
			continue
		}
		videos = append(videos, &source.Video{
			URL:      link.Link,
			Quality:  link.ResolutionStr,
			Language: lang,
			Referer:  referer,
		})
	}

	return videos, nil
}
