// Package provider manages the registry of built-in provider sources.
package provider

import (
	"github.com/anisan-cli/aniserve/key"
	"github.com/anisan-cli/aniserve/provider/allanime"
	"github.com/anisan-cli/aniserve/source"
	"github.com/spf13/viper"
)

// Provider represents a source provider.
type Provider struct {
	ID           string
	Name         string
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   "allanime",
			Name: "AllAnime",
			CreateSource: func() (source.Source, error) {
				return allanime.New(), nil
			},
		},
	}
}

// Get finds a provider by its registry id.
func Get(id string) (*Provider, bool) {
	for _, p := range Builtins() {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

// Default returns the provider selected by the sources.default configuration key.
func Default() (*Provider, bool) {
	return Get(viper.GetString(key.DefaultSource))
}
