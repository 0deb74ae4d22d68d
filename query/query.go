// Package query manages the persistence and retrieval of search query history and suggestions.
package query

import (
	"strings"

	"github.com/anisan-cli/aniserve/filesystem"
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// sanitize normalizes a raw query for consistent history keys.
func sanitize(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Remember records a search query in the persistent history or increments its popularity rank.
func Remember(q string, weight int) error {
	if !viper.GetBool(key.SearchSuggestions) {
		return nil
	}

	q = sanitize(q)
	if q == "" {
		return nil
	}

	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	return cacher.Set(cached)
}

// SuggestMany returns a collection of historical query suggestions matching the partial input, sorted by popularity rank.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchSuggestions) {
		return []string{}
	}

	q = sanitize(q)

	cached, expired, err := cacher.Get()
	if err != nil || expired || cached == nil {
		return []string{}
	}

	var records []*queryRecord
	for _, record := range cached {
		if fuzzy.Match(q, record.Query) {
			records = append(records, record)
		}
	}

	slices.SortFunc(records, func(a, b *queryRecord) int {
		return b.Rank - a.Rank
	})

	return lo.Map(records, func(record *queryRecord, _ int) string {
		return record.Query
	})
}
