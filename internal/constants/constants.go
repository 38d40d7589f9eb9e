package constants

// AppName is the CLI binary and config directory base name.
const AppName = "mediatag"

// EnvPrefix is the prefix for environment variable overrides,
// e.g. MEDIATAG_OUTPUT_FORMAT.
const EnvPrefix = "MEDIATAG"

// Canonical media type labels used across the parser and CLI output.
const (
	TypeMovie  = "Movie"
	TypeSeries = "Series"
)
