// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import (
	"context"
	"errors"
)

// ErrNotFound marks a provider response for an identifier or episode that does not exist upstream.
// Providers wrap it so callers can distinguish missing resources from transport failures.
var ErrNotFound = errors.New("not found")

// Source defines the required capabilities for a media provider client.
type Source interface {
	// Name returns the unique identifier for the provider.
	Name() string

	// ID returns the unique identifier of the source.
	ID() string

	// Search executes a query against the provider to discover matching anime entities.
	Search(ctx context.Context, query string) ([]*Anime, error)

	// InfoOf retrieves descriptive metadata for a specific anime identifier.
	InfoOf(ctx context.Context, id string) (*Info, error)

	// EpisodesOf retrieves the complete list of available episodes for an anime,
	// covering every language track, in ascending episode order.
	EpisodesOf(ctx context.Context, id string) ([]*Episode, error)

	// VideosOf retrieves the available media streams for a specific episode and language track.
	VideosOf(ctx context.Context, id string, episode int, lang Language) ([]*Video, error)
}

// Browser is an optional capability for providers that expose a popularity listing.
type Browser interface {
	// Popular returns one page of trending anime and whether a further page exists.
	Popular(ctx context.Context, page, perPage int) (results []*Anime, hasNext bool, err error)
}
