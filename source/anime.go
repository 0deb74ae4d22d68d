// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

// Anime represents a media entity discovered through a provider search.
type Anime struct {
	// Name is the display title returned by the provider.
	Name string `json:"name"`
	// ID is the opaque provider token uniquely naming this title.
	ID string `json:"identifier"`
	// Languages lists the available audio track variants.
	Languages []Language `json:"languages"`

	// Image is the cover/thumbnail URL, when the provider supplies one.
	Image string `json:"image,omitempty"`
}

func (a *Anime) String() string {
	return a.Name
}

// Info carries the descriptive metadata for a single anime title.
// Every field except ID passes through from the provider and may be absent.
type Info struct {
	ID               string   `json:"identifier"`
	Name             string   `json:"name,omitempty"`
	Image            string   `json:"image,omitempty"`
	Genres           []string `json:"genres,omitempty"`
	Synopsis         string   `json:"synopsis,omitempty"`
	ReleaseYear      int      `json:"release_year,omitempty"`
	Status           string   `json:"status,omitempty"`
	AlternativeNames []string `json:"alternative_names,omitempty"`
}
