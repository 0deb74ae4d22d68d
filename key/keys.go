// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// HTTP Server - these keys govern the listening socket and cross-origin policy of the API surface.
const (
	ServerHost        = "server.host"
	ServerPort        = "server.port"
	ServerCorsOrigins = "server.cors_origins"
)

// Provider Source Identifiers - these keys manage the registration and selection of scraping providers.
const (
	DefaultSource = "sources.default"
)

// Provider Network Policy - these keys govern outbound TLS behavior for provider requests.
const (
	ProviderTLSFingerprint = "provider.tls_fingerprint"
	ProviderInsecureTLS    = "provider.insecure_tls"
)

// Metadata Configuration - these keys govern the retrieval and processing of media metadata.
const (
	MetadataFetchAnilist = "metadata.fetch_anilist"
)

// Search Interaction - these keys define the behavior of search discovery endpoints.
const (
	SearchSuggestions = "search.suggestions"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the command-line application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
