package config

import "github.com/spf13/viper"

// Default values applied before any config file or environment variable.
const (
	// DefaultPattern produces a capitalized cluster-vowel-closer name,
	// a reasonable fantasy name out of the box.
	DefaultPattern = "!BVC"

	// DefaultCount is how many names forge prints per run.
	DefaultCount = 10

	// DefaultSeparator places each name on its own line.
	DefaultSeparator = "\n"

	// DefaultListLimit guards against accidentally enumerating patterns
	// with huge output spaces.
	DefaultListLimit = 10000

	// DefaultInspectWarnCount is the output-space size above which inspect
	// calls a pattern impractical to enumerate.
	DefaultInspectWarnCount = 1000000
)

// SetDefaults applies default configuration values to a Viper instance
func SetDefaults(v *viper.Viper) {
	v.SetDefault("pattern", DefaultPattern)
	v.SetDefault("count", DefaultCount)
	v.SetDefault("separator", DefaultSeparator)
	v.SetDefault("table", "")

	v.SetDefault("log.json", false)

	v.SetDefault("list.limit", DefaultListLimit)

	v.SetDefault("inspect.warn_count", DefaultInspectWarnCount)
}
