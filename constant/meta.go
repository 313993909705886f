// Package constant defines immutable application-level identifiers and defaults.
package constant

const (
	// App is the canonical application identifier used for paths, env prefixes and CLI branding.
	App = "nextairing"

	// Version is the current application semantic version string.
	Version = "0.3.1"

	// DefaultHost serves the series listing pages.
	DefaultHost = "nextairing.com"

	// UserAgent identifies the tool to airing sites.
	UserAgent = App + "/" + Version
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
