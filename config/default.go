// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"encoding/json"
	"strings"

	"github.com/anisan-cli/aniserve/constant"
	"github.com/anisan-cli/aniserve/key"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Aniserve + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case []int:
		return "[]int"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

func init() {
	// register validates and adds a new configuration field to the global registry.
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		f := Field{Key: k, Value: v, Description: desc}
		Default[k] = f
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ServerHost, "0.0.0.0", "Address the HTTP server binds to")
	register(key.ServerPort, 8000, "Port the HTTP server listens on")
	register(key.ServerCorsOrigins, []string{"*"}, "Origins allowed by the CORS policy.\nUse \"*\" to allow any origin")
	register(key.DefaultSource, "allanime", "Provider source backing the API.\nType \"aniserve sources\" to show available sources")
	register(key.ProviderTLSFingerprint, true, "Use a Chrome TLS fingerprint for provider requests.\nRequired to pass the anti-bot checks some provider hosts run")
	register(key.ProviderInsecureTLS, false, "Skip TLS certificate verification on provider requests.\nLeave disabled unless the provider host presents a broken certificate chain")
	register(key.MetadataFetchAnilist, true, "Fetch metadata from Anilist for discovery endpoints\nIt will also cache the results to not spam the API")
	register(key.SearchSuggestions, true, "Record search queries and serve them back on /search/suggestions")
	register(key.LogsWrite, false, "Persist logs to a daily file in addition to stderr")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
}
