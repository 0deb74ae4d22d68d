// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

// Video represents a streamable video resource.
// URLs are returned to the caller as-is; reachability is never verified here.
type Video struct {
	// Direct URL to the stream/file.
	URL string `json:"url"`
	// Quality label (e.g. "1080p", "720p").
	Quality string `json:"quality"`
	// Language track of the stream.
	Language Language `json:"language"`
	// Referer header required by some hosts to serve the stream.
	Referer string `json:"referer,omitempty"`
}

// String returns the quality or URL for display.
func (v *Video) String() string {
	if v.Quality != "" {
		return v.Quality
	}
	return v.URL
}
