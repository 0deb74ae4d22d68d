// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import "fmt"

// Episode represents a discrete media segment within an anime series.
type Episode struct {
	// Number is the positive episode index as reported by the provider.
	Number int `json:"number"`
	// Language is the audio track variant this entry belongs to.
	Language Language `json:"language"`
}

// String returns the canonical string representation of the episode.
func (e *Episode) String() string {
	return fmt.Sprintf("Episode %d (%s)", e.Number, e.Language)
}
