// Package config loads the namegen configuration from files and environment
// variables.
//
// Precedence, lowest to highest: built-in defaults, /etc/namegen/namegen.toml,
// ~/.config/namegen/namegen.toml, the nearest namegen.toml found walking up
// from the working directory, then NAMEGEN_* environment variables. Flags
// handled by the CLI sit above all of these.
package config

// Config is the full configuration for the namegen CLI.
type Config struct {
	// Pattern is the template compiled when no pattern argument is given.
	Pattern string `mapstructure:"pattern"`

	// Count is the number of names a single forge run produces.
	Count int `mapstructure:"count"`

	// Separator goes between generated names on output.
	Separator string `mapstructure:"separator"`

	// Table is the path to a custom symbol table TOML file, layered over
	// the built-in table. Empty means built-in only.
	Table string `mapstructure:"table"`

	Log     LogConfig     `mapstructure:"log"`
	List    ListConfig    `mapstructure:"list"`
	Inspect InspectConfig `mapstructure:"inspect"`
}

// LogConfig controls log output.
type LogConfig struct {
	// JSON switches logs from human-readable console lines to JSON.
	JSON bool `mapstructure:"json"`
}

// ListConfig controls full enumeration.
type ListConfig struct {
	// Limit refuses enumerations larger than this many names.
	// 0 disables the guard.
	Limit int `mapstructure:"limit"`
}

// InspectConfig controls pattern inspection.
type InspectConfig struct {
	// WarnCount is the output-space size above which inspect flags a
	// pattern as impractical to enumerate. 0 disables the warning.
	WarnCount int `mapstructure:"warn_count"`
}
