// Package anilist provides a client for the Anilist GraphQL API.
package anilist

// Anime is the subset of Anilist metadata used to enrich discovery listings.
type Anime struct {
	// Title is the structured title metadata for the anime.
	Title struct {
		// Romaji is the romanized title of the anime.
		Romaji string `json:"romaji"`
		// English is the english title of the anime.
		English string `json:"english"`
		// Native is the native title of the anime. (Usually in kanji)
		Native string `json:"native"`
	} `json:"title"`
	// ID is the unique identifier for the anime on Anilist.
	ID int `json:"id"`
	// Episodes is the total episode count from the Anilist API.
	Episodes int `json:"episodes"`
	// AverageScore is the average score of the anime on Anilist.
	AverageScore int `json:"averageScore"`
	// SiteURL is the url of the anime on Anilist.
	SiteURL string `json:"siteUrl"`
	// Status is the status of the anime. (FINISHED, RELEASING, NOT_YET_RELEASED, CANCELLED)
	Status string `json:"status"`
	// Genres is a collection of strings representing the anime's genres.
	Genres []string `json:"genres"`
}

// Name returns the primary display name of the anime. If English is available, it is preferred; otherwise, Romaji is used.
func (m *Anime) Name() string {
	if m.Title.English == "" {
		return m.Title.Romaji
	}

	return m.Title.English
}
