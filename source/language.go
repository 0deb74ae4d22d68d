// Package source defines the domain models and interfaces for media discovery and retrieval.
package source

import "fmt"

// Language identifies an episode's audio track variant.
type Language string

const (
	// Sub is the subtitled original-audio track.
	Sub Language = "sub"
	// Dub is the dubbed-audio track.
	Dub Language = "dub"
)

// ParseLanguage validates a raw language token. Matching is literal; only the
// exact strings "sub" and "dub" are accepted.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case Sub:
		return Sub, nil
	case Dub:
		return Dub, nil
	default:
		return "", fmt.Errorf("invalid language %q, must be %q or %q", s, Sub, Dub)
	}
}

func (l Language) String() string {
	return string(l)
}
