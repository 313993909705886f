// Package key defines the configuration keys understood by the application.
package key

// Airing site - where series listing pages are fetched from.
const (
	AiringHost   = "airing.host"
	AiringScheme = "airing.scheme"
)

// Network - HTTP client behaviour.
const (
	NetworkTimeout   = "network.timeout"
	NetworkUserAgent = "network.user_agent"
)

// Iconography.
const (
	IconsVariant = "icons.variant"
)

// Logging.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI output.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
